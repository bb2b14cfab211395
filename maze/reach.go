package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Reachable counts the cells that can be walked to from start through open walls, start included.
func (m *Maze) Reachable(start Coord) (int, error) {
	if !m.InBound(start.X, start.Y) {
		return 0, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, start.X, start.Y)
	}

	visited := mapset.New[Coord]()
	visited.Put(start)
	stack := []Coord{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := m.at(cur.X, cur.Y)
		for _, dir := range Directions {
			if cell.HasWall(dir) {
				continue
			}
			n, ok := m.neighbor(cur.X, cur.Y, dir)
			if !ok || visited.Has(n) {
				continue
			}
			visited.Put(n)
			stack = append(stack, n)
		}
	}

	return visited.Size(), nil
}

// Passages counts the open walls between pairs of cells.
// A perfect maze over n cells has exactly n-1 of them.
func (m *Maze) Passages() int {
	count := 0
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			cell := m.at(x, y)
			if x+1 < m.cols && !cell.HasWall(East) {
				count++
			}
			if y+1 < m.rows && !cell.HasWall(South) {
				count++
			}
		}
	}
	return count
}
