package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/beka-birhanu/vinom-maze/cli"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

// Global variables for dependencies
var (
	appLogger *logger.Logger
	generator i.Generator
	brush     maze.Brush
	args      cli.Args
)

func logWriter() io.Writer {
	if config.Envs.Verbose {
		return os.Stderr
	}
	return nil
}

func initArgs() {
	var err error
	args, err = cli.Parse(os.Args[1:])
	if err != nil {
		appLogger.Error(err.Error())
		fmt.Fprint(os.Stdout, cli.Usage(filepath.Base(os.Args[0])))
		os.Exit(1)
	}
}

func initGenerator() {
	seed := config.Envs.Seed
	if !config.Envs.SeedSet {
		seed = time.Now().UnixNano()
	}

	mazeLogger, err := logger.New("MAZE", config.ColorCyan, logWriter())
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}

	generator, err = service.NewMazeGenerator(&service.Config{
		Logger: mazeLogger,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze generator: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Maze generator initialized with seed %d", seed))
}

func initBrush() {
	if !config.Envs.Color {
		brush = maze.PlainBrush{}
		return
	}
	brush = render.NewStyled(nil, render.DefaultPalette)
	appLogger.Info("Color rendering enabled")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, logWriter())

	initArgs()
	initGenerator()
	initBrush()

	m, err := generator.Generate(i.GenerateOptions{
		Rows:         args.Rows,
		Cols:         args.Cols,
		Rooms:        args.Rooms,
		Start:        maze.Coord{X: config.Envs.StartX, Y: config.Envs.StartY},
		ConnectRooms: config.Envs.ConnectRooms,
	})
	if err != nil {
		// Generation failures are reported even when logging is off.
		fmt.Fprintf(os.Stderr, "generating maze: %v\n", err)
		os.Exit(1)
	}

	if err := m.Render(os.Stdout, brush); err != nil {
		appLogger.Error(fmt.Sprintf("Rendering maze: %v", err))
		os.Exit(1)
	}
}
