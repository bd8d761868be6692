package geom

// SegmentsIntersect reports whether segment a1-a2 intersects segment b1-b2.
// It solves the parametric 2x2 system via the cross-product parametrization
// and requires both parameters to lie in [0,1].
//
// A zero denominator (parallel or collinear segments) divides to NaN or Inf,
// whose range comparisons evaluate false: parallel non-overlapping segments
// correctly report no intersection, while exactly collinear overlapping
// segments are a known false negative.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	den := (b2.Y-b1.Y)*(a2.X-a1.X) - (b2.X-b1.X)*(a2.Y-a1.Y)
	ua := ((b2.X-b1.X)*(a1.Y-b1.Y) - (b2.Y-b1.Y)*(a1.X-b1.X)) / den
	ub := ((a2.X-a1.X)*(a1.Y-b1.Y) - (a2.Y-a1.Y)*(a1.X-b1.X)) / den
	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}
