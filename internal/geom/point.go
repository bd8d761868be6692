package geom

import "math"

// Point is a 2D coordinate. It has no identity beyond its coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// ScaleBy returns the point scaled component-wise by s.
func (p Point) ScaleBy(s Point) Point {
	return Point{X: p.X * s.X, Y: p.Y * s.Y}
}

// RotateAround rotates the point in place by angleDegrees about center.
// Positive angles rotate clockwise: the sine term on the y axis carries an
// inverted sign. All downstream geometry depends on this sign convention.
func (p *Point) RotateAround(center Point, angleDegrees float64) {
	rad := angleDegrees * math.Pi / 180.0
	sin := math.Sin(rad)
	cos := math.Cos(rad)
	dx := p.X - center.X
	dy := p.Y - center.Y
	p.X = center.X + dx*cos + dy*sin
	p.Y = center.Y - dx*sin + dy*cos
}
