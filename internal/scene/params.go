package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/shapenest/shapenest/internal/geom"
)

// circlePointCount is the fixed sample count of the circle approximation,
// regardless of radius.
const circlePointCount = 100

// ErrUnknownKind is returned when a shape kind outside the closed set is named.
var ErrUnknownKind = errors.New("scene: unknown shape kind")

// ParamError describes a missing or unusable construction parameter for a
// shape kind.
type ParamError struct {
	Kind  Kind
	Param string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("scene: %s requires numeric parameter %q", e.Kind, e.Param)
}

// Params carries the named numeric fields an input form produced for shape
// construction. It is parsed into a per-kind record before any geometry is
// built; absent or non-finite fields are a typed construction error, never an
// implicit zero.
type Params map[string]float64

// ParamSpec declares one named numeric field a shape kind requires, for
// building input forms.
type ParamSpec struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// ParamSpecs returns the construction fields for the given kind, in form order.
func ParamSpecs(kind Kind) []ParamSpec {
	switch kind {
	case KindCanvas, KindRectangle:
		return []ParamSpec{
			{ID: "width", DisplayName: "Width"},
			{ID: "height", DisplayName: "Height"},
		}
	case KindCircle:
		return []ParamSpec{
			{ID: "radius", DisplayName: "Radius"},
		}
	case KindTriangle:
		return []ParamSpec{
			{ID: "x1", DisplayName: "Point 1 X"},
			{ID: "y1", DisplayName: "Point 1 Y"},
			{ID: "x2", DisplayName: "Point 2 X"},
			{ID: "y2", DisplayName: "Point 2 Y"},
			{ID: "x3", DisplayName: "Point 3 X"},
			{ID: "y3", DisplayName: "Point 3 Y"},
		}
	}
	return nil
}

func (p Params) get(kind Kind, name string) (float64, error) {
	v, ok := p[name]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParamError{Kind: kind, Param: name}
	}
	return v, nil
}

// localPointsFor builds the fixed local polygon for a shape kind from its
// typed parameters.
func localPointsFor(kind Kind, params Params) ([]geom.Point, error) {
	switch kind {
	case KindCanvas, KindRectangle:
		w, err := params.get(kind, "width")
		if err != nil {
			return nil, err
		}
		h, err := params.get(kind, "height")
		if err != nil {
			return nil, err
		}
		return rectanglePoints(w, h), nil

	case KindCircle:
		r, err := params.get(kind, "radius")
		if err != nil {
			return nil, err
		}
		return circlePoints(r), nil

	case KindTriangle:
		pts := make([]geom.Point, 3)
		for i := 0; i < 3; i++ {
			x, err := params.get(kind, fmt.Sprintf("x%d", i+1))
			if err != nil {
				return nil, err
			}
			y, err := params.get(kind, fmt.Sprintf("y%d", i+1))
			if err != nil {
				return nil, err
			}
			pts[i] = geom.Pt(x, y)
		}
		return pts, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// rectanglePoints returns the four corners of an axis-aligned rectangle
// centered at the local origin.
func rectanglePoints(width, height float64) []geom.Point {
	hw, hh := width/2, height/2
	return []geom.Point{
		geom.Pt(-hw, -hh),
		geom.Pt(hw, -hh),
		geom.Pt(hw, hh),
		geom.Pt(-hw, hh),
	}
}

// circlePoints evenly samples a circle of the given radius. The fixed sample
// count trades precision for simplicity.
func circlePoints(radius float64) []geom.Point {
	pts := make([]geom.Point, circlePointCount)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / circlePointCount
		pts[i] = geom.Pt(radius*math.Cos(angle), radius*math.Sin(angle))
	}
	return pts
}
