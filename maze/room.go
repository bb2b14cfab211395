package maze

import (
	"errors"
	"fmt"
)

var ErrInvalidRoomConfig = errors.New("invalid room configuration")

// RoomConfig describes how many rooms to attempt and how big they may be.
type RoomConfig struct {
	Count     int // Count is the number of placement attempts.
	MinWidth  int // MinWidth is the smallest room width, in cells.
	MinHeight int // MinHeight is the smallest room height, in cells.
	MaxWidth  int // MaxWidth is the largest room width, in cells.
	MaxHeight int // MaxHeight is the largest room height, in cells.
}

// Validate checks that the configured ranges are usable.
func (c RoomConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: negative room count %d", ErrInvalidRoomConfig, c.Count)
	}
	if c.MinWidth < 1 || c.MinHeight < 1 {
		return fmt.Errorf("%w: minimum size %dx%d", ErrInvalidRoomConfig, c.MinWidth, c.MinHeight)
	}
	if c.MinWidth > c.MaxWidth || c.MinHeight > c.MaxHeight {
		return fmt.Errorf("%w: minimum size %dx%d exceeds maximum %dx%d",
			ErrInvalidRoomConfig, c.MinWidth, c.MinHeight, c.MaxWidth, c.MaxHeight)
	}
	return nil
}

// Room is a rectangle of cells tagged with the same room region.
type Room struct {
	X      int // X is the column of the top-left cell.
	Y      int // Y is the row of the top-left cell.
	Width  int
	Height int
	ID     int // ID is the room identifier, starting at 1.
}

// Contains reports whether (x, y) lies inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// PlaceRooms makes cfg.Count attempts at placing a room and returns the rooms that fit.
//
// Every room keeps a one cell margin from the maze border and from other rooms. An attempt whose
// size can't fit, or whose margin touches an existing room, is dropped without retrying.
// Accepted rooms get their interior walls carved while their outer walls stay up.
// When even the smallest room can't fit, no attempt is made and no randomness is drawn.
func (m *Maze) PlaceRooms(cfg RoomConfig, rng Rand) ([]Room, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MinWidth+2 > m.cols || cfg.MinHeight+2 > m.rows {
		return []Room{}, nil
	}

	rooms := make([]Room, 0, min(cfg.Count, len(m.cells)))
	for attempt := 0; attempt < cfg.Count; attempt++ {
		width := cfg.MinWidth + rng.Intn(cfg.MaxWidth-cfg.MinWidth+1)
		height := cfg.MinHeight + rng.Intn(cfg.MaxHeight-cfg.MinHeight+1)

		// Positions leaving a margin on both sides: [1, cols-width-1].
		xSpan := m.cols - width - 1
		ySpan := m.rows - height - 1
		if xSpan < 1 || ySpan < 1 {
			continue
		}
		room := Room{
			X:      1 + rng.Intn(xSpan),
			Y:      1 + rng.Intn(ySpan),
			Width:  width,
			Height: height,
			ID:     len(rooms) + 1,
		}

		if m.overlapsRoom(room) {
			continue
		}
		if err := m.carveRoom(room); err != nil {
			return rooms, err
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// overlapsRoom reports whether r, grown by one cell on every side, covers a room cell.
func (m *Maze) overlapsRoom(r Room) bool {
	for y := r.Y - 1; y <= r.Y+r.Height; y++ {
		for x := r.X - 1; x <= r.X+r.Width; x++ {
			if m.InBound(x, y) && m.at(x, y).IsPartOfRoom() {
				return true
			}
		}
	}
	return false
}

// carveRoom tags every cell of r and breaks the walls between them.
func (m *Maze) carveRoom(r Room) error {
	region := RoomRegion(r.ID)
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			m.at(x, y).Region = region
		}
	}

	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if x+1 < r.X+r.Width {
				if err := m.Carve(x, y, East, region, false); err != nil {
					return err
				}
			}
			if y+1 < r.Y+r.Height {
				if err := m.Carve(x, y, South, region, false); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// opening is a wall on the edge of a room that leads out of it.
type opening struct {
	from Coord     // from is the cell outside the room.
	dir  Direction // dir points from the outside cell into the room.
}

// openings lists every boundary wall of r whose far side is an in-bounds cell outside any room.
func (m *Maze) openings(r Room) []opening {
	var result []opening
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			for _, dir := range Directions {
				n, ok := m.neighbor(x, y, dir)
				if !ok || r.Contains(n.X, n.Y) || m.at(n.X, n.Y).IsPartOfRoom() {
					continue
				}
				result = append(result, opening{from: n, dir: dir.Opposite()})
			}
		}
	}
	return result
}

// ConnectRooms opens one door into each room from the cells around it.
// The door is carved from the outside so the room keeps its region. Rooms without any
// usable wall are left closed.
func (m *Maze) ConnectRooms(rooms []Room, rng Rand) error {
	for _, r := range rooms {
		doors := m.openings(r)
		if len(doors) == 0 {
			continue
		}
		door := doors[rng.Intn(len(doors))]
		if err := m.Carve(door.from.X, door.from.Y, door.dir, CorridorRegion, true); err != nil {
			return fmt.Errorf("connecting room %d: %w", r.ID, err)
		}
	}
	return nil
}
