package planner

import "math"

// Point is a location in the 2-D plane. Points have no identity
// beyond their coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// coord returns the coordinate selected by axis (0 is x, 1 is y).
func (p Point) coord(axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// Steer moves from a point toward a target by at most dMax. A target
// already within dMax is returned unmodified.
func Steer(from, toward Point, dMax float64) Point {
	dist := from.Distance(toward)
	if dist <= dMax {
		return toward
	}
	return Point{
		X: from.X + (toward.X-from.X)/dist*dMax,
		Y: from.Y + (toward.Y-from.Y)/dist*dMax,
	}
}

// LineSegment represents a line segment between two points
type LineSegment struct {
	P1, P2 Point
}

// SegmentsIntersect checks if two line segments intersect. Touching
// counts: segments that merely share a point intersect.
func SegmentsIntersect(seg1, seg2 LineSegment) bool {
	p1, p2 := seg1.P1, seg1.P2
	p3, p4 := seg2.P1, seg2.P2

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear cases: an endpoint lies on the other segment.
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

// direction calculates the cross product to determine orientation
func direction(p1, p2, p3 Point) float64 {
	return (p3.X-p1.X)*(p2.Y-p1.Y) - (p2.X-p1.X)*(p3.Y-p1.Y)
}

// onSegment checks if point q lies on segment pr, assuming p, r and q
// are collinear
func onSegment(p, r, q Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// pointSegmentDistance returns the shortest distance from point p to
// the segment ab.
func pointSegmentDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	segLenSq := dx*dx + dy*dy
	if segLenSq == 0 {
		return p.Distance(a)
	}

	// Project p onto the segment, clamped to its endpoints.
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / segLenSq
	t = math.Max(0, math.Min(1, t))

	closest := Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return p.Distance(closest)
}
