package maze

import "fmt"

// Rand is the source of every random decision taken while carving.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a pseudo-random number in [0, n). n is always positive.
	Intn(n int) int
}

// candidates lists the directions from (x, y) that lead to an uncarved cell inside the maze,
// in wall order.
func (m *Maze) candidates(x, y int) []Direction {
	dirs := make([]Direction, 0, numDirections)
	for _, dir := range Directions {
		n, ok := m.neighbor(x, y, dir)
		if !ok {
			continue
		}
		if !m.at(n.X, n.Y).IsCarved() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// PickDirection chooses uniformly among the directions from (x, y) that lead to an uncarved cell.
// It returns false when there is none, including when (x, y) is outside the maze.
func (m *Maze) PickDirection(x, y int, rng Rand) (Direction, bool) {
	if !m.InBound(x, y) {
		return 0, false
	}
	dirs := m.candidates(x, y)
	if len(dirs) == 0 {
		return 0, false
	}
	return dirs[rng.Intn(len(dirs))], true
}

// GrowingTree carves a perfect maze through every uncarved cell reachable from start.
// Already carved cells, such as room interiors, are treated as visited.
//
// Backtracking uses an explicit stack so that large mazes don't grow the call stack.
// Generating over an empty maze does nothing.
func (m *Maze) GrowingTree(start Coord, rng Rand) error {
	if len(m.cells) == 0 {
		return nil
	}
	if !m.InBound(start.X, start.Y) {
		return fmt.Errorf("%w: growing tree start (%d, %d)", ErrOutOfBounds, start.X, start.Y)
	}
	if len(m.candidates(start.X, start.Y)) == 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrNoInitialDirection, start.X, start.Y)
	}

	visited := make([]Coord, 0, len(m.cells))
	cur := start
	for {
		dir, ok := m.PickDirection(cur.X, cur.Y, rng)
		if !ok {
			// Dead end. Back up to the most recent cell that may still have room to grow.
			if len(visited) == 0 {
				return nil
			}
			cur = visited[len(visited)-1]
			visited = visited[:len(visited)-1]
			continue
		}

		if err := m.carveCorridor(cur, dir); err != nil {
			return err
		}
		visited = append(visited, cur)
		dx, dy := dir.Delta()
		cur = Coord{X: cur.X + dx, Y: cur.Y + dy}
	}
}

// carveCorridor opens the wall from c towards dir on behalf of the corridor generator.
// A room cell on either end keeps its room region.
func (m *Maze) carveCorridor(c Coord, dir Direction) error {
	dest, ok := m.neighbor(c.X, c.Y, dir)
	if !ok {
		return m.Carve(c.X, c.Y, dir, CorridorRegion, false)
	}

	if m.at(c.X, c.Y).IsPartOfRoom() {
		// Growing out of a single cell room: carve from the far side so only the corridor end is stamped.
		return m.Carve(dest.X, dest.Y, dir.Opposite(), CorridorRegion, true)
	}
	return m.Carve(c.X, c.Y, dir, CorridorRegion, m.at(dest.X, dest.Y).IsPartOfRoom())
}
