package geom

import "errors"

// ErrInvalidOperand is returned when a polygon predicate is invoked against an
// operand that is not a usable polygon (fewer than three points).
var ErrInvalidOperand = errors.New("geom: operand is not a polygon")

// PointInPolygon reports whether p lies inside the closed polygon poly using
// the ray casting / crossing number test. An implicit edge connects the last
// point back to the first. Points exactly on the boundary get whatever the
// crossing formula yields; they are not special-cased.
func PointInPolygon(p Point, poly []Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y
		if (yi > p.Y) != (yj > p.Y) && p.X < (xj-xi)*(p.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// PolygonsIntersect reports whether any edge of a's closed point loop
// intersects any edge of b's closed point loop. The test is pairwise,
// O(|a|*|b|). Either operand having fewer than three points is a contract
// violation and returns ErrInvalidOperand.
func PolygonsIntersect(a, b []Point) (bool, error) {
	if len(a) < 3 || len(b) < 3 {
		return false, ErrInvalidOperand
	}
	for i := range a {
		a1 := a[i]
		a2 := a[(i+1)%len(a)]
		for j := range b {
			if SegmentsIntersect(a1, a2, b[j], b[(j+1)%len(b)]) {
				return true, nil
			}
		}
	}
	return false, nil
}

// Centroid returns the arithmetic mean of the polygon's points.
func Centroid(poly []Point) Point {
	var c Point
	if len(poly) == 0 {
		return c
	}
	for _, p := range poly {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(poly))
	c.Y /= float64(len(poly))
	return c
}
