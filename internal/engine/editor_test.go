package engine

import (
	"errors"
	"testing"

	"github.com/shapenest/shapenest/internal/geom"
	"github.com/shapenest/shapenest/internal/scene"
)

func ident() geom.Transform {
	return geom.DefaultTransform()
}

func at(x, y float64) geom.Transform {
	return geom.Transform{Position: geom.Pt(x, y), Scale: geom.Pt(1, 1)}
}

func TestCreateCommitFlow(t *testing.T) {
	e := NewEditor(640, 480)

	res, err := e.CreateShape(e.RootID(), scene.KindRectangle,
		scene.Params{"width": 100, "height": 50}, ident())
	if err != nil {
		t.Fatalf("CreateShape: %v", err)
	}
	if !res.Stable {
		t.Fatal("centered rectangle should be stable")
	}
	if err := e.CommitShape(res.ShapeID); err != nil {
		t.Fatalf("CommitShape: %v", err)
	}

	cmds := e.Render()
	if len(cmds) != 2 {
		t.Fatalf("render emitted %d commands, want 2", len(cmds))
	}
	if cmds[0].Kind != scene.KindCanvas || cmds[1].Kind != scene.KindRectangle {
		t.Errorf("painter order wrong: %s then %s", cmds[0].Kind, cmds[1].Kind)
	}
	if cmds[1].Provisional {
		t.Error("committed shape still marked provisional")
	}
}

func TestCommitRefusesUnstablePlacement(t *testing.T) {
	e := NewEditor(640, 480)

	res, err := e.CreateShape(e.RootID(), scene.KindRectangle,
		scene.Params{"width": 100, "height": 50}, at(400, 0))
	if err != nil {
		t.Fatalf("CreateShape: %v", err)
	}
	if res.Stable {
		t.Fatal("out-of-bounds rectangle reported stable")
	}

	if err := e.CommitShape(res.ShapeID); !errors.Is(err, ErrUnstable) {
		t.Errorf("commit of unstable shape: got %v, want ErrUnstable", err)
	}
	if err := e.DiscardShape(res.ShapeID); err != nil {
		t.Fatalf("DiscardShape: %v", err)
	}
	if cmds := e.Render(); len(cmds) != 1 {
		t.Errorf("discarded shape still rendered: %d commands", len(cmds))
	}
}

func TestUnknownShapeErrors(t *testing.T) {
	e := NewEditor(640, 480)

	if _, err := e.CreateShape("shape_missing", scene.KindCircle,
		scene.Params{"radius": 10}, ident()); !errors.Is(err, ErrShapeNotFound) {
		t.Errorf("create under unknown parent: got %v", err)
	}
	if err := e.CommitShape("shape_missing"); !errors.Is(err, ErrShapeNotFound) {
		t.Errorf("commit unknown: got %v", err)
	}
	if _, err := e.SetShapeTransform("shape_missing", ident()); !errors.Is(err, ErrShapeNotFound) {
		t.Errorf("transform unknown: got %v", err)
	}
	if _, err := e.IsStable("shape_missing"); !errors.Is(err, ErrShapeNotFound) {
		t.Errorf("stability of unknown: got %v", err)
	}
}

func TestSetShapeTransformRevert(t *testing.T) {
	e := NewEditor(640, 480)

	res, _ := e.CreateShape(e.RootID(), scene.KindRectangle,
		scene.Params{"width": 100, "height": 50}, ident())
	if err := e.CommitShape(res.ShapeID); err != nil {
		t.Fatalf("CommitShape: %v", err)
	}

	ok, err := e.SetShapeTransform(res.ShapeID, at(400, 0))
	if err != nil {
		t.Fatalf("SetShapeTransform: %v", err)
	}
	if ok {
		t.Error("out-of-bounds move accepted")
	}

	ok, err = e.SetShapeTransform(res.ShapeID, at(50, 0))
	if err != nil {
		t.Fatalf("SetShapeTransform: %v", err)
	}
	if !ok {
		t.Error("legal move rejected")
	}
}

func TestAdjustShapeTransformComposesDeltas(t *testing.T) {
	e := NewEditor(640, 480)

	res, _ := e.CreateShape(e.RootID(), scene.KindRectangle,
		scene.Params{"width": 100, "height": 50}, ident())
	if err := e.CommitShape(res.ShapeID); err != nil {
		t.Fatalf("CommitShape: %v", err)
	}

	ok, err := e.AdjustShapeTransform(res.ShapeID, at(30, 30))
	if err != nil {
		t.Fatalf("AdjustShapeTransform: %v", err)
	}
	if !ok {
		t.Fatal("legal nudge rejected")
	}

	pts, err := e.ResolvePoints(res.ShapeID)
	if err != nil {
		t.Fatalf("ResolvePoints: %v", err)
	}
	if pts[0].X != 300 || pts[0].Y != 245 {
		t.Errorf("first corner after nudge = (%v,%v), want (300,245)", pts[0].X, pts[0].Y)
	}

	// An out-of-bounds delta reverts and leaves the prior placement intact.
	ok, err = e.AdjustShapeTransform(res.ShapeID, at(400, 0))
	if err != nil {
		t.Fatalf("AdjustShapeTransform: %v", err)
	}
	if ok {
		t.Error("out-of-bounds nudge accepted")
	}
	pts, _ = e.ResolvePoints(res.ShapeID)
	if pts[0].X != 300 || pts[0].Y != 245 {
		t.Errorf("reverted nudge moved shape: first corner (%v,%v)", pts[0].X, pts[0].Y)
	}

	if _, err := e.AdjustShapeTransform("shape_missing", at(1, 1)); !errors.Is(err, ErrShapeNotFound) {
		t.Errorf("adjust unknown: got %v, want ErrShapeNotFound", err)
	}
}

func TestDeleteShape(t *testing.T) {
	e := NewEditor(640, 480)

	res, _ := e.CreateShape(e.RootID(), scene.KindCircle,
		scene.Params{"radius": 40}, ident())
	if err := e.CommitShape(res.ShapeID); err != nil {
		t.Fatalf("CommitShape: %v", err)
	}

	if err := e.DeleteShape(e.RootID()); err == nil {
		t.Error("deleting the canvas must fail")
	}
	if err := e.DeleteShape(res.ShapeID); err != nil {
		t.Fatalf("DeleteShape: %v", err)
	}
	if err := e.DeleteShape(res.ShapeID); !errors.Is(err, ErrShapeNotFound) {
		t.Errorf("second delete: got %v, want ErrShapeNotFound", err)
	}
}

func TestSelection(t *testing.T) {
	e := NewEditor(640, 480)

	res, _ := e.CreateShape(e.RootID(), scene.KindCircle,
		scene.Params{"radius": 40}, ident())
	if err := e.CommitShape(res.ShapeID); err != nil {
		t.Fatalf("CommitShape: %v", err)
	}

	e.SetSelection(res.ShapeID)
	if e.Selection() != res.ShapeID {
		t.Errorf("selection = %q, want %q", e.Selection(), res.ShapeID)
	}

	cmds := e.Render()
	if !cmds[1].Selected {
		t.Error("selected shape not flagged in draw commands")
	}

	e.SetSelection("")
	if e.Selection() != "" {
		t.Errorf("selection not cleared: %q", e.Selection())
	}

	// Deleting the selected shape clears the selection.
	e.SetSelection(res.ShapeID)
	if err := e.DeleteShape(res.ShapeID); err != nil {
		t.Fatalf("DeleteShape: %v", err)
	}
	if e.Selection() != "" {
		t.Errorf("selection survived deletion: %q", e.Selection())
	}
}

func TestHitTestTopmost(t *testing.T) {
	e := NewEditor(640, 480)

	outer, _ := e.CreateShape(e.RootID(), scene.KindRectangle,
		scene.Params{"width": 200, "height": 200}, ident())
	if err := e.CommitShape(outer.ShapeID); err != nil {
		t.Fatalf("commit outer: %v", err)
	}
	inner, _ := e.CreateShape(outer.ShapeID, scene.KindRectangle,
		scene.Params{"width": 50, "height": 50}, ident())
	if err := e.CommitShape(inner.ShapeID); err != nil {
		t.Fatalf("commit inner: %v", err)
	}

	tests := []struct {
		name string
		x, y float64
		want string
	}{
		{"center hits deepest shape", 320, 240, inner.ShapeID},
		{"inside outer only", 320, 150, outer.ShapeID},
		{"empty canvas hits canvas", 50, 50, e.RootID()},
		{"off canvas hits nothing", -10, -10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%v,%v) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRenderStabilityFlag(t *testing.T) {
	e := NewEditor(640, 480)

	res, _ := e.CreateShape(e.RootID(), scene.KindRectangle,
		scene.Params{"width": 100, "height": 50}, at(400, 0))
	cmds := e.Render()
	var found bool
	for _, c := range cmds {
		if c.ShapeID == res.ShapeID {
			found = true
			if c.Stable {
				t.Error("unstable preview rendered as stable")
			}
			if !c.Provisional {
				t.Error("preview not flagged provisional")
			}
		}
	}
	if !found {
		t.Fatal("provisional shape missing from render")
	}
}

func TestTreeSummary(t *testing.T) {
	e := NewSampleEditor(640, 480)

	root := e.TreeSummary()
	if root.Kind != scene.KindCanvas || !root.Stable {
		t.Fatalf("root summary = %+v", root)
	}
	if len(root.Children) != 3 {
		t.Fatalf("sample canvas has %d children, want 3", len(root.Children))
	}
	var kinds []scene.Kind
	for _, c := range root.Children {
		kinds = append(kinds, c.Kind)
		if !c.Stable {
			t.Errorf("sample child %s unstable", c.ShapeID)
		}
	}
	want := []scene.Kind{scene.KindRectangle, scene.KindCircle, scene.KindTriangle}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("child %d kind = %s, want %s", i, kinds[i], want[i])
		}
	}
	if len(root.Children[0].Children) != 1 {
		t.Errorf("sample rectangle should nest one child")
	}
}

func TestParamsQuery(t *testing.T) {
	e := NewEditor(640, 480)
	specs := e.Params(scene.KindTriangle)
	if len(specs) != 6 {
		t.Errorf("triangle has %d params, want 6", len(specs))
	}
	if e.Params(scene.Kind("blob")) != nil {
		t.Error("unknown kind should declare no params")
	}
}
