package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

// MazeGenerator runs the generation pipeline: rooms, corridors, then doors.
type MazeGenerator struct {
	logger i.Logger
	rng    maze.Rand
}

// Config holds the dependencies of a MazeGenerator.
type Config struct {
	Logger i.Logger
	Rand   maze.Rand // Defaults to a source seeded from the clock.
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

// NewMazeGenerator creates a generator. A nil config, logger or random source falls back to a
// silent logger and a clock seeded source.
func NewMazeGenerator(c *Config) (*MazeGenerator, error) {
	if c == nil {
		c = &Config{}
	}

	g := &MazeGenerator{
		logger: c.Logger,
		rng:    c.Rand,
	}

	if g.logger == nil {
		g.logger = nopLogger{}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g, nil
}

// Generate builds a maze described by opts. The first failing step halts generation.
func (g *MazeGenerator) Generate(opts i.GenerateOptions) (*maze.Maze, error) {
	m, err := maze.New(opts.Rows, opts.Cols)
	if err != nil {
		return nil, fmt.Errorf("creating %dx%d maze: %w", opts.Rows, opts.Cols, err)
	}

	var rooms []maze.Room
	if opts.Rooms.Count > 0 {
		rooms, err = m.PlaceRooms(opts.Rooms, g.rng)
		if err != nil {
			return nil, fmt.Errorf("placing rooms: %w", err)
		}
		if len(rooms) < opts.Rooms.Count {
			g.logger.Warning(fmt.Sprintf("maze %s: placed %d of %d rooms", m.ID(), len(rooms), opts.Rooms.Count))
		}
	}

	if err := m.GrowingTree(opts.Start, g.rng); err != nil {
		return nil, fmt.Errorf("carving corridors: %w", err)
	}

	if opts.ConnectRooms && len(rooms) > 0 {
		if err := m.ConnectRooms(rooms, g.rng); err != nil {
			return nil, fmt.Errorf("connecting rooms: %w", err)
		}
	}

	reached := 0
	if m.Rows() > 0 && m.Cols() > 0 {
		reached, err = m.Reachable(opts.Start)
		if err != nil {
			return nil, fmt.Errorf("measuring reachability: %w", err)
		}
	}

	g.logger.Info(fmt.Sprintf("maze %s: %dx%d, %d/%d rooms, %d/%d cells reachable from %v",
		m.ID(), m.Rows(), m.Cols(), len(rooms), opts.Rooms.Count, reached, m.Rows()*m.Cols(), opts.Start))

	return m, nil
}
