package maze

import "fmt"

// Direction identifies one of the four walls of a cell.
type Direction int

// Directions, in wall order.
const (
	North Direction = iota
	South
	East
	West

	numDirections = 4
)

// Directions lists every valid direction in wall order.
var Directions = [numDirections]Direction{North, South, East, West}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= North && d < numDirections
}

// Opposite returns the direction facing d. An invalid direction is returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the column and row offsets of a single step towards d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// RegionKind tells what a cell has been carved into.
type RegionKind uint8

const (
	UncarvedKind RegionKind = iota // UncarvedKind marks a cell nothing has touched yet.
	CorridorKind                   // CorridorKind marks a cell carved by the corridor generator.
	RoomKind                       // RoomKind marks a cell that belongs to a placed room.
)

// Region tags a cell with the structure it belongs to.
// RoomID is only meaningful when Kind is RoomKind.
type Region struct {
	Kind   RegionKind
	RoomID int
}

var (
	UncarvedRegion = Region{Kind: UncarvedKind}
	CorridorRegion = Region{Kind: CorridorKind}
)

// RoomRegion returns the region of the room with the given identifier.
func RoomRegion(id int) Region {
	return Region{Kind: RoomKind, RoomID: id}
}

// IsRoom reports whether the region belongs to a room.
func (r Region) IsRoom() bool {
	return r.Kind == RoomKind
}

func (r Region) String() string {
	switch r.Kind {
	case UncarvedKind:
		return "uncarved"
	case CorridorKind:
		return "corridor"
	case RoomKind:
		return fmt.Sprintf("room#%d", r.RoomID)
	default:
		return fmt.Sprintf("region(%d)", r.Kind)
	}
}

// Cell represents a single cell in a maze grid.
// Walls are indexed by Direction: [North, South, East, West].
type Cell struct {
	Walls  [numDirections]bool // Walls holds true for every wall still standing.
	Region Region              // Region is the structure the cell has been carved into.
}

// NewCell returns a cell with all four walls standing and no region.
func NewCell() Cell {
	return Cell{
		Walls:  [numDirections]bool{true, true, true, true},
		Region: UncarvedRegion,
	}
}

// HasWall returns true if the wall facing dir is standing.
// An invalid direction has no wall.
func (c *Cell) HasWall(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	return c.Walls[dir]
}

// BreakWall removes the wall facing dir. Invalid directions are ignored.
func (c *Cell) BreakWall(dir Direction) {
	c.setWall(dir, false)
}

// BuildWall puts back the wall facing dir. Invalid directions are ignored.
func (c *Cell) BuildWall(dir Direction) {
	c.setWall(dir, true)
}

func (c *Cell) setWall(dir Direction, present bool) {
	if !dir.Valid() {
		return
	}
	c.Walls[dir] = present
}

// IsCarved returns true if at least one wall of the cell has been removed.
func (c *Cell) IsCarved() bool {
	for _, present := range c.Walls {
		if !present {
			return true
		}
	}
	return false
}

// IsPartOfRoom returns true if the cell is tagged with a room region.
func (c *Cell) IsPartOfRoom() bool {
	return c.Region.IsRoom()
}
