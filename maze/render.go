package maze

import (
	"io"
	"strings"
)

const (
	wallGlyph  = "X"
	floorGlyph = " "
)

// Brush paints the glyphs of a rendered maze.
type Brush interface {
	// Wall paints a wall segment.
	Wall(glyph string) string
	// Floor paints an open segment belonging to a cell of the given region.
	Floor(glyph string, region Region) string
}

// PlainBrush leaves glyphs untouched.
type PlainBrush struct{}

// Wall returns glyph unchanged.
func (PlainBrush) Wall(glyph string) string { return glyph }

// Floor returns glyph unchanged.
func (PlainBrush) Floor(glyph string, _ Region) string { return glyph }

// Render writes the maze as text, two characters per cell.
//
// The first line is the top border. Each row then takes two lines: one showing the east walls
// and one showing the south walls. Inside rooms, the corner between two cells whose south walls
// are both open is left blank so rooms don't show pillars.
func (m *Maze) Render(w io.Writer, b Brush) error {
	var sb strings.Builder

	// Top boundary
	sb.WriteString(b.Wall(wallGlyph + strings.Repeat(wallGlyph+wallGlyph, m.cols)))
	sb.WriteByte('\n')

	for y := 0; y < m.rows; y++ {
		// East walls
		sb.WriteString(b.Wall(wallGlyph))
		for x := 0; x < m.cols; x++ {
			cell := m.at(x, y)
			sb.WriteString(b.Floor(floorGlyph, cell.Region))
			if cell.HasWall(East) {
				sb.WriteString(b.Wall(wallGlyph))
			} else {
				sb.WriteString(b.Floor(floorGlyph, cell.Region))
			}
		}
		sb.WriteByte('\n')

		// South walls
		sb.WriteString(b.Wall(wallGlyph))
		for x := 0; x < m.cols; x++ {
			cell := m.at(x, y)
			switch {
			case cell.HasWall(South):
				sb.WriteString(b.Wall(wallGlyph + wallGlyph))
			case m.openRoomCorner(x, y):
				sb.WriteString(b.Floor(floorGlyph+floorGlyph, cell.Region))
			default:
				sb.WriteString(b.Floor(floorGlyph, cell.Region))
				sb.WriteString(b.Wall(wallGlyph))
			}
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// openRoomCorner reports whether the corner south-east of (x, y) sits between two room cells
// that both have their south walls open.
func (m *Maze) openRoomCorner(x, y int) bool {
	if x+1 >= m.cols {
		return false
	}
	cell, east := m.at(x, y), m.at(x+1, y)
	return cell.IsPartOfRoom() && east.IsPartOfRoom() &&
		!cell.HasWall(South) && !east.HasWall(South)
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var sb strings.Builder
	_ = m.Render(&sb, PlainBrush{})
	return sb.String()
}
