package planner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointDistance(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal(5.0, Point{X: 0, Y: 0}.Distance(Point{X: 3, Y: 4}))
	requireT.Equal(0.0, Point{X: 2, Y: 2}.Distance(Point{X: 2, Y: 2}))
}

func TestSteer(t *testing.T) {
	requireT := require.New(t)

	// Beyond the step bound: move dMax along the direction.
	p := Steer(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, 4)
	requireT.InDelta(4.0, p.X, 1e-12)
	requireT.InDelta(0.0, p.Y, 1e-12)

	// Within the step bound: target returned unmodified.
	p = Steer(Point{X: 0, Y: 0}, Point{X: 2, Y: 1}, 4)
	requireT.Equal(Point{X: 2, Y: 1}, p)

	// Exactly at the bound counts as within.
	p = Steer(Point{X: 0, Y: 0}, Point{X: 4, Y: 0}, 4)
	requireT.Equal(Point{X: 4, Y: 0}, p)

	// Diagonal direction keeps the step length.
	p = Steer(Point{X: 1, Y: 1}, Point{X: 101, Y: 101}, 10)
	requireT.InDelta(10.0, Point{X: 1, Y: 1}.Distance(p), 1e-12)
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b LineSegment
		want bool
	}{
		{
			name: "crossing",
			a:    LineSegment{Point{0, 0}, Point{10, 10}},
			b:    LineSegment{Point{0, 10}, Point{10, 0}},
			want: true,
		},
		{
			name: "parallel",
			a:    LineSegment{Point{0, 0}, Point{10, 0}},
			b:    LineSegment{Point{0, 1}, Point{10, 1}},
			want: false,
		},
		{
			name: "collinear overlapping",
			a:    LineSegment{Point{0, 0}, Point{5, 0}},
			b:    LineSegment{Point{3, 0}, Point{8, 0}},
			want: true,
		},
		{
			name: "collinear disjoint",
			a:    LineSegment{Point{0, 0}, Point{2, 0}},
			b:    LineSegment{Point{3, 0}, Point{8, 0}},
			want: false,
		},
		{
			name: "touching at endpoint",
			a:    LineSegment{Point{0, 0}, Point{5, 5}},
			b:    LineSegment{Point{5, 5}, Point{10, 0}},
			want: true,
		},
		{
			name: "T touch",
			a:    LineSegment{Point{0, 0}, Point{10, 0}},
			b:    LineSegment{Point{5, 5}, Point{5, 0}},
			want: true,
		},
		{
			name: "near miss",
			a:    LineSegment{Point{0, 0}, Point{10, 0}},
			b:    LineSegment{Point{5, 5}, Point{5, 0.1}},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SegmentsIntersect(tc.a, tc.b))
			// Intersection is symmetric.
			require.Equal(t, tc.want, SegmentsIntersect(tc.b, tc.a))
		})
	}
}

func TestPointSegmentDistance(t *testing.T) {
	requireT := require.New(t)

	// Perpendicular foot inside the segment.
	requireT.InDelta(3.0, pointSegmentDistance(Point{5, 3}, Point{0, 0}, Point{10, 0}), 1e-12)

	// Foot outside the segment: distance to the nearest endpoint.
	requireT.InDelta(5.0, pointSegmentDistance(Point{13, 4}, Point{0, 0}, Point{10, 0}), 1e-12)

	// Degenerate segment.
	requireT.InDelta(5.0, pointSegmentDistance(Point{3, 4}, Point{0, 0}, Point{0, 0}), 1e-12)

	// Point on the segment.
	requireT.Equal(0.0, pointSegmentDistance(Point{5, 0}, Point{0, 0}, Point{10, 0}))
}
