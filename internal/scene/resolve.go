package scene

import (
	"github.com/shapenest/shapenest/internal/geom"
)

// Resolve recomputes absolute draw points for every node, top-down from the
// canvas. Resolution is a pure function of the transform chain; it is rerun in
// full after every edit rather than updated incrementally.
//
// The accumulated transform handed to children carries summed rotation and
// component-wise multiplied scale only. The position fed to children is the
// parent's own absolute centroid, which is deliberately distinct from the
// parent's transform position.
func (t *Tree) Resolve() {
	resolveNode(t.root, geom.Point{}, 0, geom.Pt(1, 1))
}

// resolveNode computes n's draw points against its parent's absolute centroid
// and accumulated rotation/scale, then recurses.
//
// Each local point is scaled by the combined scale, offset by the parent
// centroid plus the node's transform position, rotated about that placement
// point by the node's own rotation, and finally rotated about the parent
// centroid by the inherited rotation. The two-stage rotation order is
// load-bearing: swapping the stages changes the result whenever both levels
// carry a non-zero rotation.
func resolveNode(n *Node, parentCenter geom.Point, parentRotation float64, parentScale geom.Point) {
	combined := parentScale.ScaleBy(n.Transform.Scale)
	pivot := parentCenter.Add(n.Transform.Position)

	pts := make([]geom.Point, len(n.localPoints))
	for i, lp := range n.localPoints {
		p := pivot.Add(lp.ScaleBy(combined))
		p.RotateAround(pivot, n.Transform.Rotation)
		p.RotateAround(parentCenter, parentRotation)
		pts[i] = p
	}
	n.drawPoints = pts

	center := geom.Centroid(pts)
	childRotation := parentRotation + n.Transform.Rotation
	for _, c := range n.Children {
		resolveNode(c, center, childRotation, combined)
	}
}
