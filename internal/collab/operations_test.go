package collab

import (
	"errors"
	"testing"

	"github.com/shapenest/shapenest/internal/engine"
	"github.com/shapenest/shapenest/internal/geom"
	"github.com/shapenest/shapenest/internal/scene"
)

func newState() *SceneState {
	return NewSceneState(engine.NewEditor(640, 480))
}

func centered() *geom.Transform {
	t := geom.DefaultTransform()
	return &t
}

func TestApplyCreateCommitsStableShape(t *testing.T) {
	ss := newState()

	seq, applied, err := ss.ApplyOperation(Operation{
		ID:       "op_1",
		Type:     OpShapeCreate,
		ParentID: ss.Editor().RootID(),
		Kind:     scene.KindRectangle,
		Params:   scene.Params{"width": 100, "height": 50},
		Trans:    centered(),
	})
	if err != nil {
		t.Fatalf("ApplyOperation: %v", err)
	}
	if seq != 1 {
		t.Errorf("serverSeq = %d, want 1", seq)
	}
	if applied.ShapeID == "" {
		t.Error("create did not assign a shape ID")
	}

	stable, err := ss.Editor().IsStable(applied.ShapeID)
	if err != nil || !stable {
		t.Errorf("created shape stable=%v err=%v", stable, err)
	}
}

func TestApplyCreateRejectsUnstableShape(t *testing.T) {
	ss := newState()

	tr := geom.Transform{Position: geom.Pt(400, 0), Scale: geom.Pt(1, 1)}
	_, _, err := ss.ApplyOperation(Operation{
		ID:       "op_1",
		Type:     OpShapeCreate,
		ParentID: ss.Editor().RootID(),
		Kind:     scene.KindRectangle,
		Params:   scene.Params{"width": 100, "height": 50},
		Trans:    &tr,
	})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("got %v, want ErrRejected", err)
	}
	if ss.ServerSeq() != 0 {
		t.Errorf("rejected op advanced serverSeq to %d", ss.ServerSeq())
	}

	// The provisional shape must be gone: only the canvas renders.
	if cmds := ss.Editor().Render(); len(cmds) != 1 {
		t.Errorf("rejected shape left %d draw commands, want 1", len(cmds))
	}
}

func TestApplyTransformRejection(t *testing.T) {
	ss := newState()

	_, applied, err := ss.ApplyOperation(Operation{
		Type:     OpShapeCreate,
		ParentID: ss.Editor().RootID(),
		Kind:     scene.KindRectangle,
		Params:   scene.Params{"width": 100, "height": 50},
		Trans:    centered(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := geom.Transform{Position: geom.Pt(400, 0), Scale: geom.Pt(1, 1)}
	_, _, err = ss.ApplyOperation(Operation{
		Type:    OpShapeTransform,
		ShapeID: applied.ShapeID,
		Trans:   &bad,
	})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("bad move: got %v, want ErrRejected", err)
	}

	good := geom.Transform{Position: geom.Pt(30, 30), Scale: geom.Pt(1, 1)}
	seq, _, err := ss.ApplyOperation(Operation{
		Type:    OpShapeTransform,
		ShapeID: applied.ShapeID,
		Trans:   &good,
	})
	if err != nil {
		t.Fatalf("good move: %v", err)
	}
	if seq != 2 {
		t.Errorf("serverSeq = %d, want 2", seq)
	}
}

func TestApplyDeleteAndUnknownOp(t *testing.T) {
	ss := newState()

	_, applied, err := ss.ApplyOperation(Operation{
		Type:     OpShapeCreate,
		ParentID: ss.Editor().RootID(),
		Kind:     scene.KindCircle,
		Params:   scene.Params{"radius": 40},
		Trans:    centered(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, _, err := ss.ApplyOperation(Operation{
		Type:    OpShapeDelete,
		ShapeID: applied.ShapeID,
	}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, _, err := ss.ApplyOperation(Operation{
		Type:    OpShapeDelete,
		ShapeID: applied.ShapeID,
	}); err == nil {
		t.Error("deleting a deleted shape should fail")
	}

	if _, _, err := ss.ApplyOperation(Operation{Type: "shape.paint"}); err == nil {
		t.Error("unknown op type should fail")
	}
}

func TestCreateRequiresTransform(t *testing.T) {
	ss := newState()
	_, _, err := ss.ApplyOperation(Operation{
		Type:     OpShapeCreate,
		ParentID: ss.Editor().RootID(),
		Kind:     scene.KindCircle,
		Params:   scene.Params{"radius": 40},
	})
	if err == nil {
		t.Error("create without transform should fail")
	}
}
