package planner

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// IsBlocked reports whether the edge from a to b is blocked by any
// obstacle. Rectangle bounds are inflated by margin on all sides;
// circles keep their stated radius. The scan short-circuits on the
// first blocking obstacle. Pure predicate, no side effects.
func IsBlocked(a, b Point, obstacles []Obstacle, margin float64) bool {
	for _, obs := range obstacles {
		if obs.Blocks(a, b, margin) {
			return true
		}
	}
	return false
}

// Blocks reports whether the edge from a to b is blocked by this
// obstacle under the given safety margin.
func (o Obstacle) Blocks(a, b Point, margin float64) bool {
	switch o.Shape {
	case ShapeRectangle:
		return rectBlocks(o.Rect, a, b, margin)
	case ShapeCircle:
		return circleBlocks(o.Circle, a, b)
	}
	return false
}

// rectBlocks tests the edge against the margin-inflated rectangle:
// an endpoint inside the inflated bounds or the segment touching any
// of its four boundary edges blocks.
func rectBlocks(r Rect, a, b Point, margin float64) bool {
	bound := Obstacle{Shape: ShapeRectangle, Rect: r}.Bound().Pad(margin)

	if bound.Contains(orb.Point{a.X, a.Y}) || bound.Contains(orb.Point{b.X, b.Y}) {
		return true
	}

	edge := LineSegment{P1: a, P2: b}
	corners := [4]Point{
		{X: bound.Min.X(), Y: bound.Min.Y()},
		{X: bound.Max.X(), Y: bound.Min.Y()},
		{X: bound.Max.X(), Y: bound.Max.Y()},
		{X: bound.Min.X(), Y: bound.Max.Y()},
	}
	for i := range corners {
		side := LineSegment{P1: corners[i], P2: corners[(i+1)%4]}
		if SegmentsIntersect(edge, side) {
			return true
		}
	}
	return false
}

// circleBlocks tests the edge against the circle's stated radius: an
// endpoint strictly inside the disc or the segment passing within the
// radius of the center blocks. The safety margin is not applied to
// circles.
func circleBlocks(c Circle, a, b Point) bool {
	center := Point{X: c.CX, Y: c.CY}
	if a.Distance(center) < c.R || b.Distance(center) < c.R {
		return true
	}
	return pointSegmentDistance(center, a, b) <= c.R
}

// obstacleEntry wraps an obstacle for R-tree storage
type obstacleEntry struct {
	obstacle Obstacle
	bbox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *obstacleEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// CollisionChecker tests edges against a fixed obstacle set. An
// R-tree over margin-inflated obstacle bounds limits each edge test
// to the obstacles near the edge's bounding box.
type CollisionChecker struct {
	tree   *rtreego.Rtree
	margin float64
	count  int
}

// NewCollisionChecker indexes the obstacle set for the given margin.
func NewCollisionChecker(obstacles []Obstacle, margin float64) *CollisionChecker {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	count := 0
	for _, obs := range obstacles {
		bbox, err := rectFromBound(obs.Bound().Pad(margin))
		if err != nil {
			continue
		}
		tree.Insert(&obstacleEntry{obstacle: obs, bbox: bbox})
		count++
	}

	return &CollisionChecker{tree: tree, margin: margin, count: count}
}

// IsBlocked reports whether the edge from a to b is blocked by any
// indexed obstacle.
func (c *CollisionChecker) IsBlocked(a, b Point) bool {
	if c.count == 0 {
		return false
	}

	query := orb.Bound{
		Min: orb.Point{min(a.X, b.X), min(a.Y, b.Y)},
		Max: orb.Point{max(a.X, b.X), max(a.Y, b.Y)},
	}
	bbox, err := rectFromBound(query)
	if err != nil {
		return false
	}

	for _, item := range c.tree.SearchIntersect(bbox) {
		entry := item.(*obstacleEntry)
		if entry.obstacle.Blocks(a, b, c.margin) {
			return true
		}
	}
	return false
}

// minExtent keeps degenerate (point or axis-aligned) boxes acceptable
// to rtreego, which rejects non-positive side lengths.
const minExtent = 1e-9

// rectFromBound converts orb bounds to an rtreego rectangle.
func rectFromBound(b orb.Bound) (rtreego.Rect, error) {
	dx := b.Max.X() - b.Min.X()
	dy := b.Max.Y() - b.Min.Y()
	if dx < minExtent {
		dx = minExtent
	}
	if dy < minExtent {
		dy = minExtent
	}
	return rtreego.NewRect(
		rtreego.Point{b.Min.X(), b.Min.Y()},
		[]float64{dx, dy},
	)
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
