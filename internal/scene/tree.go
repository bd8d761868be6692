package scene

import (
	"errors"
	"fmt"

	"github.com/shapenest/shapenest/internal/geom"
	"github.com/shapenest/shapenest/internal/typeid"
)

var (
	// ErrNilNode is returned when an operation is handed a nil node.
	ErrNilNode = errors.New("scene: nil node")
	// ErrCanvasChild is returned when a canvas is created anywhere but the root.
	ErrCanvasChild = errors.New("scene: canvas cannot be a child shape")
)

// Tree is the shape hierarchy rooted at a single canvas node. There is exactly
// one logical actor mutating it, so it carries no internal locking; callers
// that share a tree across goroutines must serialize access themselves.
type Tree struct {
	root  *Node
	nodes map[string]*Node
}

// NewTree creates a tree whose root canvas is width x height, placed by the
// given transform in absolute space (the canvas centered at 320,240 has
// transform position 320,240).
func NewTree(width, height float64, transform geom.Transform) *Tree {
	root := &Node{
		ID:          typeid.NewShapeID(),
		Kind:        KindCanvas,
		Transform:   transform,
		localPoints: rectanglePoints(width, height),
	}
	t := &Tree{
		root:  root,
		nodes: map[string]*Node{root.ID: root},
	}
	t.Resolve()
	return t
}

// Root returns the canvas node.
func (t *Tree) Root() *Node {
	return t.root
}

// Find returns the node with the given ID, or nil.
func (t *Tree) Find(id string) *Node {
	return t.nodes[id]
}

// CreateChild builds a shape of the given kind from its typed parameters,
// attaches it under parent as a provisional node, resolves its absolute
// points, and returns it. The caller decides commit versus discard based on
// IsStable.
func (t *Tree) CreateChild(parent *Node, kind Kind, params Params, transform geom.Transform) (*Node, error) {
	if parent == nil {
		return nil, ErrNilNode
	}
	if kind == KindCanvas {
		return nil, ErrCanvasChild
	}
	pts, err := localPointsFor(kind, params)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}

	node := &Node{
		ID:          typeid.NewShapeID(),
		Kind:        kind,
		Transform:   transform,
		Provisional: true,
		Parent:      parent,
		localPoints: pts,
	}
	parent.Children = append(parent.Children, node)
	t.nodes[node.ID] = node

	t.Resolve()
	return node, nil
}

// Commit finalizes a provisional node. Committing a nil or already-committed
// node is a no-op.
func (t *Tree) Commit(n *Node) {
	if n == nil {
		return
	}
	n.Provisional = false
}

// Discard removes a provisional node from the tree.
func (t *Tree) Discard(n *Node) {
	t.Remove(n)
}

// Remove detaches the node from its parent's child list and forgets its
// subtree. Removing the root, a nil node, or a node that is not present is a
// no-op; sibling lists are never corrupted.
func (t *Tree) Remove(n *Node) {
	if n == nil || n.Parent == nil {
		return
	}
	siblings := n.Parent.Children
	for i, s := range siblings {
		if s == n {
			n.Parent.Children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.Parent = nil
	t.forget(n)
}

func (t *Tree) forget(n *Node) {
	delete(t.nodes, n.ID)
	for _, c := range n.Children {
		t.forget(c)
	}
}

// SetTransform attempts a move/resize. The new transform is applied
// speculatively, the tree is re-resolved, and stability is checked: a stable
// result keeps the change and returns true, an unstable one reverts the node
// to its prior transform and returns false. A committed tree is never left
// unstable.
func (t *Tree) SetTransform(n *Node, newTransform geom.Transform) bool {
	if n == nil {
		return false
	}
	prev := n.Transform
	n.Transform = newTransform
	t.Resolve()
	if t.IsStable(n) {
		return true
	}
	n.Transform = prev
	t.Resolve()
	return false
}

// ResolvePoints re-resolves the tree and returns a copy of the node's
// absolute boundary for rendering.
func (t *Tree) ResolvePoints(n *Node) []geom.Point {
	if n == nil {
		return nil
	}
	t.Resolve()
	out := make([]geom.Point, len(n.drawPoints))
	copy(out, n.drawPoints)
	return out
}
