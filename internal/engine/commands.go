package engine

import (
	"encoding/json"

	"github.com/shapenest/shapenest/internal/geom"
	"github.com/shapenest/shapenest/internal/scene"
)

// DrawCommand is a single polygon for the frontend to paint. Commands arrive
// in painter's order (back to front); the stable flag drives the stable versus
// unstable feedback color.
type DrawCommand struct {
	ShapeID     string       `json:"shapeId"`
	Kind        scene.Kind   `json:"kind"`
	Points      []geom.Point `json:"points"`
	Stable      bool         `json:"stable"`
	Selected    bool         `json:"selected"`
	Provisional bool         `json:"provisional"`
}

// Render re-resolves the tree and compiles the draw command buffer.
func (e *Editor) Render() []DrawCommand {
	e.tree.Resolve()
	var commands []DrawCommand
	e.compileNode(e.tree.Root(), &commands)
	return commands
}

// RenderJSON serializes the draw command buffer, for embeddings that speak
// JSON across the boundary.
func (e *Editor) RenderJSON() string {
	data, err := json.Marshal(e.Render())
	if err != nil {
		return "[]"
	}
	return string(data)
}

func (e *Editor) compileNode(node *scene.Node, commands *[]DrawCommand) {
	pts := node.DrawPoints()
	out := make([]geom.Point, len(pts))
	copy(out, pts)

	*commands = append(*commands, DrawCommand{
		ShapeID:     node.ID,
		Kind:        node.Kind,
		Points:      out,
		Stable:      e.tree.IsStable(node),
		Selected:    node.Selected,
		Provisional: node.Provisional,
	})

	for _, child := range node.Children {
		e.compileNode(child, commands)
	}
}

// HitTest returns the ID of the topmost shape containing the point, or the
// empty string. Children are tested before their parent since they paint on
// top, so clicking inside a nested shape selects the deepest one.
func (e *Editor) HitTest(x, y float64) string {
	e.tree.Resolve()
	return hitTestNode(e.tree.Root(), geom.Pt(x, y))
}

func hitTestNode(node *scene.Node, p geom.Point) string {
	for i := len(node.Children) - 1; i >= 0; i-- {
		if hit := hitTestNode(node.Children[i], p); hit != "" {
			return hit
		}
	}
	if geom.PointInPolygon(p, node.DrawPoints()) {
		return node.ID
	}
	return ""
}

// TreeNode is one row of the hierarchy panel summary.
type TreeNode struct {
	ShapeID     string     `json:"shapeId"`
	Kind        scene.Kind `json:"kind"`
	Stable      bool       `json:"stable"`
	Selected    bool       `json:"selected"`
	Provisional bool       `json:"provisional"`
	Children    []TreeNode `json:"children,omitempty"`
}

// TreeSummary re-resolves the tree and returns its structure for the
// hierarchy panel.
func (e *Editor) TreeSummary() TreeNode {
	e.tree.Resolve()
	return e.summarize(e.tree.Root())
}

func (e *Editor) summarize(node *scene.Node) TreeNode {
	out := TreeNode{
		ShapeID:     node.ID,
		Kind:        node.Kind,
		Stable:      e.tree.IsStable(node),
		Selected:    node.Selected,
		Provisional: node.Provisional,
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, e.summarize(child))
	}
	return out
}

// RootID returns the canvas shape ID, the attachment point for top-level shapes.
func (e *Editor) RootID() string {
	return e.tree.Root().ID
}
