package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockRand scripts the random decisions taken by the generators.
type mockRand struct {
	mock.Mock
}

func (r *mockRand) Intn(n int) int {
	args := r.Called(n)
	return args.Int(0)
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestPickDirectionCorners(t *testing.T) {
	m, err := New(10, 10)
	require.NoError(t, err)
	rng := seeded(1)

	tests := []struct {
		name    string
		x, y    int
		allowed []Direction
	}{
		{"top left", 0, 0, []Direction{South, East}},
		{"top right", 9, 0, []Direction{South, West}},
		{"bottom left", 0, 9, []Direction{North, East}},
		{"bottom right", 9, 9, []Direction{North, West}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := map[Direction]bool{}
			for i := 0; i < 50; i++ {
				dir, ok := m.PickDirection(tt.x, tt.y, rng)
				require.True(t, ok)
				assert.Contains(t, tt.allowed, dir)
				seen[dir] = true
			}
			assert.Len(t, seen, 2)
		})
	}
}

func TestPickDirectionShrinksAsNeighborsAreCarved(t *testing.T) {
	m, err := New(10, 10)
	require.NoError(t, err)
	rng := seeded(2)

	pickAll := func() map[Direction]bool {
		seen := map[Direction]bool{}
		for i := 0; i < 100; i++ {
			dir, ok := m.PickDirection(3, 3, rng)
			if !ok {
				return seen
			}
			seen[dir] = true
		}
		return seen
	}

	assert.Equal(t, map[Direction]bool{North: true, South: true, East: true, West: true}, pickAll())

	require.NoError(t, m.Carve(3, 2, North, CorridorRegion, false))
	assert.Equal(t, map[Direction]bool{South: true, East: true, West: true}, pickAll())

	require.NoError(t, m.Carve(2, 3, West, CorridorRegion, false))
	assert.Equal(t, map[Direction]bool{South: true, East: true}, pickAll())

	require.NoError(t, m.Carve(4, 3, South, CorridorRegion, false))
	assert.Equal(t, map[Direction]bool{South: true}, pickAll())

	require.NoError(t, m.Carve(3, 4, West, CorridorRegion, false))
	_, ok := m.PickDirection(3, 3, rng)
	assert.False(t, ok)
}

func TestPickDirectionIsUniform(t *testing.T) {
	m, err := New(10, 10)
	require.NoError(t, err)
	rng := seeded(42)

	const trials = 8000
	counts := map[Direction]int{}
	for i := 0; i < trials; i++ {
		dir, ok := m.PickDirection(5, 5, rng)
		require.True(t, ok)
		counts[dir]++
	}

	for _, dir := range Directions {
		assert.InDelta(t, trials/4, counts[dir], trials/20, dir.String())
	}
}

func TestPickDirectionUsesInjectedRand(t *testing.T) {
	m, err := New(10, 10)
	require.NoError(t, err)

	rng := &mockRand{}
	rng.On("Intn", 2).Return(1).Once()
	rng.On("Intn", 4).Return(0).Once()

	dir, ok := m.PickDirection(0, 0, rng)
	assert.True(t, ok)
	assert.Equal(t, East, dir)

	dir, ok = m.PickDirection(4, 4, rng)
	assert.True(t, ok)
	assert.Equal(t, North, dir)

	_, ok = m.PickDirection(10, 10, rng)
	assert.False(t, ok)
	rng.AssertExpectations(t)
}

func TestGrowingTreePerfectMaze(t *testing.T) {
	tests := []struct {
		rows, cols int
		seed       int64
	}{
		{10, 10, 1},
		{1, 2, 2},
		{2, 1, 3},
		{3, 7, 4},
		{25, 40, 5},
		{60, 60, 6},
	}

	for _, tt := range tests {
		m, err := New(tt.rows, tt.cols)
		require.NoError(t, err)
		require.NoError(t, m.GrowingTree(Coord{}, seeded(tt.seed)))

		for _, c := range m.cells {
			assert.True(t, c.IsCarved())
			assert.Equal(t, CorridorRegion, c.Region)
		}

		reached, err := m.Reachable(Coord{X: tt.cols - 1, Y: tt.rows - 1})
		require.NoError(t, err)
		assert.Equal(t, tt.rows*tt.cols, reached)
		assert.Equal(t, tt.rows*tt.cols-1, m.Passages(), "a perfect maze has no cycles")
	}
}

func TestGrowingTreeFloodFillFromOrigin(t *testing.T) {
	m, err := New(10, 10)
	require.NoError(t, err)
	require.NoError(t, m.GrowingTree(Coord{}, seeded(1234)))

	reached, err := m.Reachable(Coord{})
	require.NoError(t, err)
	assert.Equal(t, 100, reached)
}

func TestGrowingTreeFromOtherStart(t *testing.T) {
	m, err := New(8, 9)
	require.NoError(t, err)
	require.NoError(t, m.GrowingTree(Coord{X: 4, Y: 7}, seeded(9)))

	reached, err := m.Reachable(Coord{})
	require.NoError(t, err)
	assert.Equal(t, 72, reached)
}

func TestGrowingTreeIsReproducible(t *testing.T) {
	a, err := New(12, 15)
	require.NoError(t, err)
	b, err := New(12, 15)
	require.NoError(t, err)

	require.NoError(t, a.GrowingTree(Coord{}, seeded(77)))
	require.NoError(t, b.GrowingTree(Coord{}, seeded(77)))
	assert.Equal(t, a.String(), b.String())
}

func TestGrowingTreeScripted(t *testing.T) {
	m, err := New(1, 3)
	require.NoError(t, err)

	// A single row only ever offers one way forward.
	rng := &mockRand{}
	rng.On("Intn", 1).Return(0).Twice()

	require.NoError(t, m.GrowingTree(Coord{}, rng))
	rng.AssertExpectations(t)
	assert.Equal(t, [4]bool{true, true, false, true}, walls(t, m, 0, 0))
	assert.Equal(t, [4]bool{true, true, false, false}, walls(t, m, 1, 0))
	assert.Equal(t, [4]bool{true, true, true, false}, walls(t, m, 2, 0))
}

func TestGrowingTreeErrors(t *testing.T) {
	single, err := New(1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, single.GrowingTree(Coord{}, seeded(1)), ErrNoInitialDirection)
	assert.False(t, single.cells[0].IsCarved())

	m, err := New(4, 4)
	require.NoError(t, err)
	assert.ErrorIs(t, m.GrowingTree(Coord{X: 4, Y: 0}, seeded(1)), ErrOutOfBounds)

	// A start enclosed by carved cells has nowhere to go.
	require.NoError(t, m.GrowingTree(Coord{}, seeded(1)))
	assert.ErrorIs(t, m.GrowingTree(Coord{X: 2, Y: 2}, seeded(1)), ErrNoInitialDirection)
}
