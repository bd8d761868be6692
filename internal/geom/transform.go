package geom

// Transform places a shape relative to its parent's local coordinate frame,
// not in absolute canvas space. Rotation is in degrees and deliberately left
// unnormalized; it may exceed 360 or go negative, and the trigonometry
// downstream accepts that.
type Transform struct {
	Position Point   `json:"position"`
	Rotation float64 `json:"rotation"`
	Scale    Point   `json:"scale"`
}

// DefaultTransform returns the identity placement: zero offset, zero rotation,
// unit scale.
func DefaultTransform() Transform {
	return Transform{Scale: Point{X: 1, Y: 1}}
}

// ZeroTransform returns the all-zero transform, including zero scale.
func ZeroTransform() Transform {
	return Transform{}
}

// Add combines two transforms without mutating either: positions sum,
// rotations sum, scales multiply component-wise. It computes what a transform
// would become, so a speculative move can be rolled back if validation fails.
func (t Transform) Add(other Transform) Transform {
	return Transform{
		Position: t.Position.Add(other.Position),
		Rotation: t.Rotation + other.Rotation,
		Scale:    t.Scale.ScaleBy(other.Scale),
	}
}
