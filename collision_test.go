package planner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRectangle(t *testing.T, minX, minY, maxX, maxY float64) Obstacle {
	t.Helper()
	obs, err := NewRectangle(minX, minY, maxX, maxY)
	require.NoError(t, err)
	return obs
}

func mustCircle(t *testing.T, cx, cy, r float64) Obstacle {
	t.Helper()
	obs, err := NewCircle(cx, cy, r)
	require.NoError(t, err)
	return obs
}

func TestIsBlocked_Rectangle(t *testing.T) {
	requireT := require.New(t)
	obstacles := []Obstacle{mustRectangle(t, 20, 10, 40, 20)}
	const margin = 0.5

	// Edge crossing the rectangle.
	requireT.True(IsBlocked(Point{10, 15}, Point{50, 15}, obstacles, margin))

	// Endpoint inside the margin-inflated bounds but outside the
	// rectangle proper.
	requireT.True(IsBlocked(Point{19.7, 15}, Point{0, 15}, obstacles, margin))

	// Edge touching the inflated boundary blocks.
	requireT.True(IsBlocked(Point{0, 9.5}, Point{100, 9.5}, obstacles, margin))

	// Edge passing below the inflated bounds is clear.
	requireT.False(IsBlocked(Point{0, 0}, Point{100, 9}, obstacles, margin))

	// Edge entirely inside the rectangle blocks via containment.
	requireT.True(IsBlocked(Point{25, 15}, Point{35, 15}, obstacles, margin))

	// Edge far away is clear.
	requireT.False(IsBlocked(Point{0, 100}, Point{100, 100}, obstacles, margin))
}

func TestIsBlocked_Circle(t *testing.T) {
	requireT := require.New(t)
	obstacles := []Obstacle{mustCircle(t, 50, 50, 20)}
	const margin = 0.5

	// Endpoint strictly inside the disc.
	requireT.True(IsBlocked(Point{50, 50}, Point{100, 100}, obstacles, margin))

	// Edge crossing the disc with both endpoints outside.
	requireT.True(IsBlocked(Point{20, 50}, Point{80, 50}, obstacles, margin))

	// Edge tangent to the boundary blocks (touching counts).
	requireT.True(IsBlocked(Point{0, 70}, Point{100, 70}, obstacles, margin))

	// Edge clear of the disc.
	requireT.False(IsBlocked(Point{0, 0}, Point{10, 0}, obstacles, margin))
	requireT.False(IsBlocked(Point{0, 75}, Point{100, 75}, obstacles, margin))
}

func TestIsBlocked_CircleIgnoresMargin(t *testing.T) {
	// Circles use their stated radius: a segment within the margin
	// band but outside the radius stays clear.
	obstacles := []Obstacle{mustCircle(t, 0, 0, 5)}
	require.False(t, IsBlocked(Point{5.3, 0}, Point{10, 0}, obstacles, 0.5))
}

func TestIsBlocked_ShortCircuitsAcrossObstacles(t *testing.T) {
	requireT := require.New(t)
	obstacles := []Obstacle{
		mustRectangle(t, 20, 10, 40, 20),
		mustCircle(t, 10, 10, 3),
		mustCircle(t, 50, 50, 20),
	}

	// Blocked by the second obstacle only.
	requireT.True(IsBlocked(Point{10, 0}, Point{10, 10}, obstacles, 0.5))

	// No obstacles at all.
	requireT.False(IsBlocked(Point{0, 0}, Point{1, 1}, nil, 0.5))
}

func TestCollisionChecker_MatchesLinearScan(t *testing.T) {
	requireT := require.New(t)
	rng := rand.New(rand.NewSource(7))

	obstacles := make([]Obstacle, 0, 24)
	for i := 0; i < 12; i++ {
		x := rng.Float64() * 90
		y := rng.Float64() * 90
		obstacles = append(obstacles, mustRectangle(t, x, y, x+1+rng.Float64()*8, y+1+rng.Float64()*8))
		obstacles = append(obstacles, mustCircle(t, rng.Float64()*100, rng.Float64()*100, 1+rng.Float64()*6))
	}

	const margin = 0.5
	checker := NewCollisionChecker(obstacles, margin)

	for i := 0; i < 500; i++ {
		a := Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
		b := Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
		requireT.Equal(IsBlocked(a, b, obstacles, margin), checker.IsBlocked(a, b),
			"edge (%v)-(%v)", a, b)
	}
}

func TestCollisionChecker_Empty(t *testing.T) {
	checker := NewCollisionChecker(nil, 0.5)
	require.False(t, checker.IsBlocked(Point{0, 0}, Point{100, 100}))
}

func TestCollisionChecker_DegenerateEdge(t *testing.T) {
	requireT := require.New(t)
	checker := NewCollisionChecker([]Obstacle{mustCircle(t, 5, 5, 2)}, 0.5)

	// Zero-length edge inside and outside the obstacle.
	requireT.True(checker.IsBlocked(Point{5, 5}, Point{5, 5}))
	requireT.False(checker.IsBlocked(Point{0, 0}, Point{0, 0}))

	// Axis-aligned edge has a degenerate bounding box.
	requireT.True(checker.IsBlocked(Point{0, 5}, Point{10, 5}))
}
