package scene

import (
	"github.com/shapenest/shapenest/internal/geom"
)

// IsStable reports whether the node satisfies the containment and non-overlap
// invariant against the current draw points of itself, its parent, and its
// siblings. The tree must be resolved first; IsStable is a pure predicate with
// no side effects and is cheap enough to rerun on every interactive change.
//
// The canvas is unconditionally stable: it is the universe boundary and the
// base case of the recursive containment chain. Any other node is stable iff
// every one of its points lies inside the parent polygon and it neither
// contains, is contained by, nor crosses edges with any sibling.
func (t *Tree) IsStable(n *Node) bool {
	if n == nil {
		return false
	}
	if n.Kind == KindCanvas || n.Parent == nil {
		return true
	}

	for _, p := range n.drawPoints {
		if !geom.PointInPolygon(p, n.Parent.drawPoints) {
			return false
		}
	}

	for _, s := range n.Parent.Children {
		if s == n {
			continue
		}
		for _, p := range n.drawPoints {
			if geom.PointInPolygon(p, s.drawPoints) {
				return false
			}
		}
		for _, p := range s.drawPoints {
			if geom.PointInPolygon(p, n.drawPoints) {
				return false
			}
		}
		crossed, err := geom.PolygonsIntersect(n.drawPoints, s.drawPoints)
		if err != nil {
			// An unresolved or degenerate operand cannot be proven stable.
			return false
		}
		if crossed {
			return false
		}
	}
	return true
}
