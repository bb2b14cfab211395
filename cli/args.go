/*
Package cli parses the positional command line of the maze generator:

	vinom-maze <rows> <cols>
	vinom-maze <rows> <cols> <rooms> <min_w> <min_h> <max_w> <max_h>
*/
package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	ErrArgCount     = errors.New("wrong number of arguments")
	ErrInvalidValue = errors.New("argument must be a positive integer")
	ErrTooManyRooms = errors.New("more room attempts than maze cells")
)

var argNames = [...]string{"rows", "cols", "rooms", "min_w", "min_h", "max_w", "max_h"}

// Args holds a parsed command line.
type Args struct {
	Rows  int
	Cols  int
	Rooms maze.RoomConfig // Zero when only the dimensions were given.
}

// Parse reads args, which exclude the program name. Room ranges are validated too, so every
// malformed command line is reported by Parse.
func Parse(args []string) (Args, error) {
	if len(args) != 2 && len(args) != len(argNames) {
		return Args{}, fmt.Errorf("%w: got %d, want 2 or %d", ErrArgCount, len(args), len(argNames))
	}

	values := make([]int, len(args))
	for idx, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return Args{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, argNames[idx], raw)
		}
		values[idx] = v
	}

	a := Args{Rows: values[0], Cols: values[1]}
	if len(values) == len(argNames) {
		a.Rooms = maze.RoomConfig{
			Count:     values[2],
			MinWidth:  values[3],
			MinHeight: values[4],
			MaxWidth:  values[5],
			MaxHeight: values[6],
		}
		if err := a.Rooms.Validate(); err != nil {
			return Args{}, err
		}
		// Compared by division so that huge dimensions can't overflow.
		if a.Rooms.Count/a.Cols > a.Rows {
			return Args{}, fmt.Errorf("%w: %d rooms for %dx%d", ErrTooManyRooms, a.Rooms.Count, a.Rows, a.Cols)
		}
	}
	return a, nil
}

// Usage returns the usage message for the program called name.
func Usage(name string) string {
	return fmt.Sprintf("usage: %s <rows> <cols> <rooms> <min_w> <min_h> <max_w> <max_h>\n"+
		"       %s <rows> <cols>\n", name, name)
}
