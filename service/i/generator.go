package i

import "github.com/beka-birhanu/vinom-maze/maze"

// Generator builds mazes.
type Generator interface {
	Generate(opts GenerateOptions) (*maze.Maze, error)
}

// GenerateOptions describes one maze to generate.
type GenerateOptions struct {
	Rows         int
	Cols         int
	Rooms        maze.RoomConfig // Rooms.Count == 0 generates a perfect maze.
	Start        maze.Coord      // Cell the corridor generator grows from.
	ConnectRooms bool            // Open one door into every placed room.
}
