// Package render paints maze glyphs for terminals that understand colors.
package render

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colors of the styled brush.
type Palette struct {
	Wall  lipgloss.Color   // Wall is the foreground of wall segments.
	Rooms []lipgloss.Color // Rooms are the floor backgrounds, picked by room id.
}

// DefaultPalette is a grey maze with rooms shaded in cycling hues.
var DefaultPalette = Palette{
	Wall: lipgloss.Color("245"),
	Rooms: []lipgloss.Color{
		lipgloss.Color("#3A2E5C"), // Purple
		lipgloss.Color("#2E4A5C"), // Steel blue
		lipgloss.Color("#2E5C3A"), // Green
		lipgloss.Color("#5C4A2E"), // Brown
		lipgloss.Color("#5C2E3A"), // Wine
	},
}

// Styled is a maze.Brush backed by lipgloss styles.
type Styled struct {
	wall     lipgloss.Style
	corridor lipgloss.Style
	rooms    []lipgloss.Style
}

// NewStyled builds a brush rendering through r. A nil renderer uses the lipgloss default,
// which adapts to the color support of standard output.
func NewStyled(r *lipgloss.Renderer, p Palette) *Styled {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	rooms := make([]lipgloss.Style, len(p.Rooms))
	for i, c := range p.Rooms {
		rooms[i] = r.NewStyle().Background(c)
	}

	return &Styled{
		wall:     r.NewStyle().Foreground(p.Wall).Bold(true),
		corridor: r.NewStyle(),
		rooms:    rooms,
	}
}

// Wall paints a wall segment.
func (s *Styled) Wall(glyph string) string {
	return s.wall.Render(glyph)
}

// Floor paints an open segment, shading it when it belongs to a room.
func (s *Styled) Floor(glyph string, region maze.Region) string {
	if !region.IsRoom() || len(s.rooms) == 0 {
		return s.corridor.Render(glyph)
	}
	idx := max(region.RoomID-1, 0) % len(s.rooms)
	return s.rooms[idx].Render(glyph)
}
