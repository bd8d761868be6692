package scene

import (
	"github.com/shapenest/shapenest/internal/geom"
)

// Kind identifies a shape variant. The set is closed: dispatch happens by
// switching on Kind, and the canvas-is-always-stable rule is one switch arm.
type Kind string

const (
	KindCanvas    Kind = "canvas"
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindTriangle  Kind = "triangle"
)

// Valid reports whether k names one of the known shape kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindCanvas, KindRectangle, KindCircle, KindTriangle:
		return true
	}
	return false
}

// Node is one shape in the hierarchy. The parent pointer is a non-owning
// back-reference; the parent owns its ordered child list. The root is always
// exactly one canvas with a nil parent.
type Node struct {
	ID   string
	Kind Kind

	// Local placement relative to the parent's frame, not canvas space.
	Transform geom.Transform

	// UI state, orthogonal to geometry.
	Selected bool

	// Provisional marks a preview node that has not been committed yet.
	Provisional bool

	Parent   *Node
	Children []*Node

	// localPoints is the polygon in the shape's own unscaled, unrotated,
	// untranslated frame. Set once at construction, never mutated, len >= 3.
	localPoints []geom.Point

	// drawPoints is a derived cache of the boundary in absolute canvas space.
	// It is a pure function of the transform chain from root to this node and
	// is recomputed by every resolve pass; it is never authoritative state.
	drawPoints []geom.Point
}

// LocalPoints returns the shape's fixed local polygon. Callers must not
// mutate the returned slice.
func (n *Node) LocalPoints() []geom.Point {
	return n.localPoints
}

// DrawPoints returns the absolute boundary from the most recent resolve pass.
// Callers must not mutate the returned slice.
func (n *Node) DrawPoints() []geom.Point {
	return n.drawPoints
}

// Center returns the node's absolute centroid from the most recent resolve pass.
func (n *Node) Center() geom.Point {
	return geom.Centroid(n.drawPoints)
}
