package collab

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shapenest/shapenest/internal/engine"
)

// ErrRejected marks an operation the engine refused because the resulting
// placement would violate the containment/non-overlap invariant. It is a
// normal negative outcome, reported to the submitter as a nack.
var ErrRejected = errors.New("collab: placement rejected")

// SceneState holds the authoritative editor for a room. All clients funnel
// through it, restoring the engine's single-actor assumption.
type SceneState struct {
	mu        sync.Mutex
	editor    *engine.Editor
	serverSeq int64
	opLog     []Operation
}

// NewSceneState wraps an editor for shared room use.
func NewSceneState(editor *engine.Editor) *SceneState {
	return &SceneState{
		editor: editor,
		opLog:  make([]Operation, 0),
	}
}

// ApplyOperation validates and applies an operation. On success it returns the
// new server sequence and the operation enriched with any server-assigned IDs.
func (ss *SceneState) ApplyOperation(op Operation) (int64, Operation, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	applied, err := ss.applyLocked(op)
	if err != nil {
		return 0, op, err
	}

	ss.serverSeq++
	ss.opLog = append(ss.opLog, applied)
	return ss.serverSeq, applied, nil
}

func (ss *SceneState) applyLocked(op Operation) (Operation, error) {
	switch op.Type {
	case OpShapeCreate:
		return ss.applyCreate(op)
	case OpShapeTransform:
		return ss.applyTransform(op)
	case OpShapeDelete:
		return ss.applyDelete(op)
	default:
		return op, fmt.Errorf("unknown operation type: %s", op.Type)
	}
}

// applyCreate runs the provisional-then-commit flow in one step: the created
// shape is committed when stable and discarded when not.
func (ss *SceneState) applyCreate(op Operation) (Operation, error) {
	if op.Trans == nil {
		return op, errors.New("shape.create requires a transform")
	}

	res, err := ss.editor.CreateShape(op.ParentID, op.Kind, op.Params, *op.Trans)
	if err != nil {
		return op, err
	}
	if !res.Stable {
		if derr := ss.editor.DiscardShape(res.ShapeID); derr != nil {
			return op, derr
		}
		return op, fmt.Errorf("%w: shape overlaps a sibling or leaves its parent", ErrRejected)
	}
	if err := ss.editor.CommitShape(res.ShapeID); err != nil {
		return op, err
	}

	op.ShapeID = res.ShapeID
	return op, nil
}

func (ss *SceneState) applyTransform(op Operation) (Operation, error) {
	if op.Trans == nil {
		return op, errors.New("shape.transform requires a transform")
	}

	ok, err := ss.editor.SetShapeTransform(op.ShapeID, *op.Trans)
	if err != nil {
		return op, err
	}
	if !ok {
		return op, fmt.Errorf("%w: move reverted", ErrRejected)
	}
	return op, nil
}

func (ss *SceneState) applyDelete(op Operation) (Operation, error) {
	if err := ss.editor.DeleteShape(op.ShapeID); err != nil {
		return op, err
	}
	return op, nil
}

// RenderJSON returns the current draw command buffer.
func (ss *SceneState) RenderJSON() string {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.editor.RenderJSON()
}

// ServerSeq returns the sequence number of the last applied operation.
func (ss *SceneState) ServerSeq() int64 {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.serverSeq
}

// Editor exposes the wrapped editor for queries that need typed access.
// Callers must not retain it across operations.
func (ss *SceneState) Editor() *engine.Editor {
	return ss.editor
}

// TreeSummaryJSON returns the hierarchy panel state.
func (ss *SceneState) TreeSummaryJSON() ([]byte, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return json.Marshal(ss.editor.TreeSummary())
}

// GetServerTimestamp returns the current server timestamp.
func GetServerTimestamp() int64 {
	return time.Now().UnixMilli()
}
