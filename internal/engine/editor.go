package engine

import (
	"errors"
	"fmt"

	"github.com/shapenest/shapenest/internal/geom"
	"github.com/shapenest/shapenest/internal/scene"
)

var (
	// ErrShapeNotFound is returned when a command names an unknown shape ID.
	ErrShapeNotFound = errors.New("engine: shape not found")
	// ErrUnstable is returned when a commit would finalize an unstable placement.
	ErrUnstable = errors.New("engine: placement is unstable")
)

// Editor owns one shape tree plus the selection state around it. It processes
// commands from the presentation layer and answers queries. The engine runs
// purely on demand from a single logical actor, so it has no internal locking;
// the collab room serializes concurrent callers.
type Editor struct {
	tree     *scene.Tree
	selected string
}

// NewEditor creates an editor over an empty canvas of the given size, centered
// in absolute space.
func NewEditor(canvasWidth, canvasHeight float64) *Editor {
	return &Editor{
		tree: scene.NewTree(canvasWidth, canvasHeight, geom.Transform{
			Position: geom.Pt(canvasWidth/2, canvasHeight/2),
			Scale:    geom.Pt(1, 1),
		}),
	}
}

// NewSampleEditor creates an editor pre-populated with the sample hierarchy,
// used for the playground session.
func NewSampleEditor(canvasWidth, canvasHeight float64) *Editor {
	return &Editor{tree: scene.NewSampleTree(canvasWidth, canvasHeight)}
}

// --- Commands (frontend → backend) ---

// CreateResult reports a freshly created provisional shape and whether its
// placement is currently stable.
type CreateResult struct {
	ShapeID string `json:"shapeId"`
	Stable  bool   `json:"stable"`
}

// CreateShape attaches a provisional shape under the given parent and resolves
// its absolute points. The caller gates CommitShape or DiscardShape on the
// returned stability.
func (e *Editor) CreateShape(parentID string, kind scene.Kind, params scene.Params, transform geom.Transform) (*CreateResult, error) {
	parent := e.tree.Find(parentID)
	if parent == nil {
		return nil, fmt.Errorf("%w: parent %q", ErrShapeNotFound, parentID)
	}

	node, err := e.tree.CreateChild(parent, kind, params, transform)
	if err != nil {
		return nil, err
	}

	return &CreateResult{
		ShapeID: node.ID,
		Stable:  e.tree.IsStable(node),
	}, nil
}

// CommitShape finalizes a provisional shape. An unstable placement is refused
// so a committed tree is never left unstable.
func (e *Editor) CommitShape(id string) error {
	node := e.tree.Find(id)
	if node == nil {
		return fmt.Errorf("%w: %q", ErrShapeNotFound, id)
	}
	if !e.tree.IsStable(node) {
		return fmt.Errorf("%w: %q", ErrUnstable, id)
	}
	e.tree.Commit(node)
	return nil
}

// DiscardShape removes a provisional shape from the tree.
func (e *Editor) DiscardShape(id string) error {
	node := e.tree.Find(id)
	if node == nil {
		return fmt.Errorf("%w: %q", ErrShapeNotFound, id)
	}
	if id == e.selected {
		e.SetSelection("")
	}
	e.tree.Discard(node)
	return nil
}

// SetShapeTransform attempts a move/resize. It returns true if the change was
// stable and kept, false if it was reverted.
func (e *Editor) SetShapeTransform(id string, transform geom.Transform) (bool, error) {
	node := e.tree.Find(id)
	if node == nil {
		return false, fmt.Errorf("%w: %q", ErrShapeNotFound, id)
	}
	return e.tree.SetTransform(node, transform), nil
}

// AdjustShapeTransform composes a relative delta onto the shape's current
// transform (positions and rotations sum, scales multiply) and applies the
// result with the same revert-on-unstable rule as SetShapeTransform. Drag
// interactions report deltas, not absolutes.
func (e *Editor) AdjustShapeTransform(id string, delta geom.Transform) (bool, error) {
	node := e.tree.Find(id)
	if node == nil {
		return false, fmt.Errorf("%w: %q", ErrShapeNotFound, id)
	}
	return e.tree.SetTransform(node, node.Transform.Add(delta)), nil
}

// DeleteShape removes a committed shape and its subtree. The canvas root
// cannot be deleted.
func (e *Editor) DeleteShape(id string) error {
	node := e.tree.Find(id)
	if node == nil {
		return fmt.Errorf("%w: %q", ErrShapeNotFound, id)
	}
	if node == e.tree.Root() {
		return errors.New("engine: cannot delete the canvas")
	}
	if id == e.selected {
		e.SetSelection("")
	}
	e.tree.Remove(node)
	return nil
}

// SetSelection marks a single shape as selected; the empty string clears the
// selection. The flag is orthogonal to geometry.
func (e *Editor) SetSelection(id string) {
	if prev := e.tree.Find(e.selected); prev != nil {
		prev.Selected = false
	}
	e.selected = ""
	if node := e.tree.Find(id); node != nil {
		node.Selected = true
		e.selected = id
	}
}

// --- Queries (frontend ← backend) ---

// Selection returns the selected shape ID, or the empty string.
func (e *Editor) Selection() string {
	return e.selected
}

// IsStable re-resolves the tree and reports the node's stability, for live
// feedback coloring during preview.
func (e *Editor) IsStable(id string) (bool, error) {
	node := e.tree.Find(id)
	if node == nil {
		return false, fmt.Errorf("%w: %q", ErrShapeNotFound, id)
	}
	e.tree.Resolve()
	return e.tree.IsStable(node), nil
}

// ResolvePoints returns the shape's absolute drawable boundary.
func (e *Editor) ResolvePoints(id string) ([]geom.Point, error) {
	node := e.tree.Find(id)
	if node == nil {
		return nil, fmt.Errorf("%w: %q", ErrShapeNotFound, id)
	}
	return e.tree.ResolvePoints(node), nil
}

// Params declares the named numeric fields a shape kind requires, for
// building input forms.
func (e *Editor) Params(kind scene.Kind) []scene.ParamSpec {
	return scene.ParamSpecs(kind)
}
