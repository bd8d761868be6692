package scene

import (
	"github.com/shapenest/shapenest/internal/geom"
)

// NewSampleTree builds a small committed hierarchy used to seed the
// playground session: a canvas with a rectangle, a circle, and a triangle,
// plus a smaller rectangle nested inside the first.
func NewSampleTree(width, height float64) *Tree {
	t := NewTree(width, height, geom.Transform{
		Position: geom.Pt(width/2, height/2),
		Scale:    geom.Pt(1, 1),
	})

	rect, err := t.CreateChild(t.Root(), KindRectangle,
		Params{"width": 180, "height": 120},
		geom.Transform{Position: geom.Pt(-120, -60), Scale: geom.Pt(1, 1)})
	if err == nil {
		t.Commit(rect)

		inner, err := t.CreateChild(rect, KindRectangle,
			Params{"width": 60, "height": 40},
			geom.Transform{Position: geom.Pt(0, 0), Rotation: 15, Scale: geom.Pt(1, 1)})
		if err == nil {
			t.Commit(inner)
		}
	}

	circle, err := t.CreateChild(t.Root(), KindCircle,
		Params{"radius": 55},
		geom.Transform{Position: geom.Pt(150, -80), Scale: geom.Pt(1, 1)})
	if err == nil {
		t.Commit(circle)
	}

	triangle, err := t.CreateChild(t.Root(), KindTriangle,
		Params{"x1": 0, "y1": -50, "x2": 60, "y2": 50, "x3": -60, "y3": 50},
		geom.Transform{Position: geom.Pt(0, 130), Scale: geom.Pt(1, 1)})
	if err == nil {
		t.Commit(triangle)
	}

	return t
}
