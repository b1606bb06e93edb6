package planner

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Shape discriminates the obstacle variants.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
)

// Rect is an axis-aligned rectangle given by its lower-left and
// upper-right corners.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Circle is a disc given by its center and radius.
type Circle struct {
	CX, CY, R float64
}

// Obstacle is a tagged union over the two supported shapes. Exactly
// one of Rect or Circle is meaningful, selected by Shape. Obstacles
// are immutable for the duration of a planning run.
type Obstacle struct {
	Shape  Shape
	Rect   Rect
	Circle Circle
}

// NewRectangle creates a validated rectangle obstacle.
func NewRectangle(minX, minY, maxX, maxY float64) (Obstacle, error) {
	o := Obstacle{Shape: ShapeRectangle, Rect: Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}}
	if err := o.Validate(); err != nil {
		return Obstacle{}, err
	}
	return o, nil
}

// NewCircle creates a validated circle obstacle.
func NewCircle(cx, cy, r float64) (Obstacle, error) {
	o := Obstacle{Shape: ShapeCircle, Circle: Circle{CX: cx, CY: cy, R: r}}
	if err := o.Validate(); err != nil {
		return Obstacle{}, err
	}
	return o, nil
}

// Validate rejects degenerate geometry. A malformed obstacle must
// fail here rather than produce silently wrong collision results.
func (o Obstacle) Validate() error {
	switch o.Shape {
	case ShapeRectangle:
		if o.Rect.MaxX <= o.Rect.MinX || o.Rect.MaxY <= o.Rect.MinY {
			return errors.Errorf("rectangle bounds are degenerate or swapped: (%v,%v)-(%v,%v)",
				o.Rect.MinX, o.Rect.MinY, o.Rect.MaxX, o.Rect.MaxY)
		}
		return nil
	case ShapeCircle:
		if o.Circle.R <= 0 {
			return errors.Errorf("circle radius must be positive, got %v", o.Circle.R)
		}
		return nil
	default:
		return errors.Errorf("unknown obstacle shape %q", o.Shape)
	}
}

// Bound returns the obstacle's tight axis-aligned bounds.
func (o Obstacle) Bound() orb.Bound {
	switch o.Shape {
	case ShapeRectangle:
		return orb.Bound{
			Min: orb.Point{o.Rect.MinX, o.Rect.MinY},
			Max: orb.Point{o.Rect.MaxX, o.Rect.MaxY},
		}
	case ShapeCircle:
		return orb.Bound{
			Min: orb.Point{o.Circle.CX - o.Circle.R, o.Circle.CY - o.Circle.R},
			Max: orb.Point{o.Circle.CX + o.Circle.R, o.Circle.CY + o.Circle.R},
		}
	}
	return orb.Bound{}
}

// obstacleJSON is the wire form shared with the front end:
// {"shape":"rectangle","definition":[xMin,yMin,xMax,yMax]} or
// {"shape":"circle","definition":[cx,cy,r]}.
type obstacleJSON struct {
	Shape      Shape     `json:"shape"`
	Definition []float64 `json:"definition"`
}

// MarshalJSON implements json.Marshaler.
func (o Obstacle) MarshalJSON() ([]byte, error) {
	var def []float64
	switch o.Shape {
	case ShapeRectangle:
		def = []float64{o.Rect.MinX, o.Rect.MinY, o.Rect.MaxX, o.Rect.MaxY}
	case ShapeCircle:
		def = []float64{o.Circle.CX, o.Circle.CY, o.Circle.R}
	default:
		return nil, errors.Errorf("unknown obstacle shape %q", o.Shape)
	}
	return json.Marshal(obstacleJSON{Shape: o.Shape, Definition: def})
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Obstacle) UnmarshalJSON(data []byte) error {
	var raw obstacleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "decode obstacle")
	}

	switch raw.Shape {
	case ShapeRectangle:
		if len(raw.Definition) != 4 {
			return errors.Errorf("rectangle definition needs 4 values, got %d", len(raw.Definition))
		}
		o.Shape = ShapeRectangle
		o.Rect = Rect{MinX: raw.Definition[0], MinY: raw.Definition[1], MaxX: raw.Definition[2], MaxY: raw.Definition[3]}
		o.Circle = Circle{}
	case ShapeCircle:
		if len(raw.Definition) != 3 {
			return errors.Errorf("circle definition needs 3 values, got %d", len(raw.Definition))
		}
		o.Shape = ShapeCircle
		o.Circle = Circle{CX: raw.Definition[0], CY: raw.Definition[1], R: raw.Definition[2]}
		o.Rect = Rect{}
	default:
		return errors.Errorf("unknown obstacle shape %q", raw.Shape)
	}
	return nil
}
