/*
Package maze provides tools for carving rectangular mazes.

It defines the `Maze` structure, a fixed grid of `Cell` objects that carry four walls
and a region tag telling whether the cell is untouched, part of a corridor or part of a room.

The package includes wall carving, room placement, corridor generation with the growing tree
algorithm, a flood fill used to check connectivity, and ASCII rendering of the result.
Every random decision is drawn from an injected Rand so that generation can be replayed.
*/
package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

var (
	ErrInvalidDimensions  = errors.New("invalid maze dimensions")
	ErrOutOfBounds        = errors.New("cell is out of the maze")
	ErrWallExitsMaze      = errors.New("wall would exit the maze")
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrNoInitialDirection = errors.New("unable to pick initial direction")
)

// Coord is a cell position, X being the column and Y the row.
type Coord struct {
	X int
	Y int
}

// Maze represents a rectangular maze consisting of cells with walls.
// Cells are stored row by row; the cell at (x, y) lives at y*cols + x.
type Maze struct {
	id    uuid.UUID
	rows  int
	cols  int
	cells []Cell
}

// New allocates a maze of the given dimensions with every wall standing.
// A zero-sized maze is valid but has nothing to carve.
func New(rows, cols int) (*Maze, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d cells overflow", ErrInvalidDimensions, rows, cols)
	}

	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = NewCell()
	}

	return &Maze{
		id:    uuid.New(),
		rows:  rows,
		cols:  cols,
		cells: cells,
	}, nil
}

// ID returns the identifier assigned to the maze at creation.
func (m *Maze) ID() uuid.UUID {
	return m.id
}

// Rows returns the number of rows in the maze.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the maze.
func (m *Maze) Cols() int {
	return m.cols
}

// InBound reports whether (x, y) addresses a cell of the maze.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.cols && y >= 0 && y < m.rows
}

// Cell returns a copy of the cell at (x, y).
func (m *Maze) Cell(x, y int) (Cell, error) {
	if !m.InBound(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	return m.cells[m.offset(x, y)], nil
}

func (m *Maze) offset(x, y int) int {
	return y*m.cols + x
}

// at returns the cell at (x, y). Callers must check bounds first.
func (m *Maze) at(x, y int) *Cell {
	return &m.cells[m.offset(x, y)]
}

// neighbor returns the position one step from (x, y) towards dir and whether it is inside the maze.
func (m *Maze) neighbor(x, y int, dir Direction) (Coord, bool) {
	if !dir.Valid() {
		return Coord{}, false
	}
	dx, dy := dir.Delta()
	c := Coord{X: x + dx, Y: y + dy}
	return c, m.InBound(c.X, c.Y)
}

// Carve removes the wall of (x, y) facing dir together with the matching wall of the neighbor
// on the other side, connecting the two cells.
//
// The origin cell is always tagged with region. The neighbor is tagged as well unless carveOut
// is set, which lets a corridor open into a room without taking over the room's region.
// Either both walls change or nothing does.
func (m *Maze) Carve(x, y int, dir Direction, region Region, carveOut bool) error {
	if !m.InBound(x, y) {
		return fmt.Errorf("%w: can't carve at (%d, %d)", ErrOutOfBounds, x, y)
	}
	if !dir.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}

	dest, ok := m.neighbor(x, y, dir)
	if !ok {
		return fmt.Errorf("%w: can't break %s wall at (%d, %d)", ErrWallExitsMaze, dir, x, y)
	}

	origin := m.at(x, y)
	origin.BreakWall(dir)
	origin.Region = region

	other := m.at(dest.X, dest.Y)
	other.BreakWall(dir.Opposite())
	if !carveOut {
		other.Region = region
	}

	return nil
}
