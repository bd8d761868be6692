package collab

import (
	"encoding/json"

	"github.com/shapenest/shapenest/internal/geom"
	"github.com/shapenest/shapenest/internal/scene"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	UserID    string          `json:"userId,omitempty"`
	Seq       int64           `json:"seq,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

type PresencePayload struct {
	Cursor      *CursorPos `json:"cursor,omitempty"`
	Selection   string     `json:"selection,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
}

type CursorPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PresenceStatePayload struct {
	Presences map[string]*PresencePayload `json:"presences"`
}

type PresenceJoinPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type PresenceLeavePayload struct {
	UserID string `json:"userId"`
}

const (
	TypePresenceUpdate = "presence.update"
	TypePresenceState  = "presence.state"
	TypePresenceJoin   = "presence.join"
	TypePresenceLeave  = "presence.leave"
	TypeError          = "error"

	// Connection
	TypeWelcome = "welcome"

	// Scene sync: full draw command buffer, sent on join and after every
	// applied operation. The tree is small and re-resolution is cheap, so a
	// full sync beats incremental patching.
	TypeSceneSync = "scene.sync"

	// Operation message types
	TypeOpSubmit    = "op.submit"
	TypeOpAck       = "op.ack"
	TypeOpNack      = "op.nack"
	TypeOpBroadcast = "op.broadcast"
)

// Operation kinds accepted by op.submit.
const (
	OpShapeCreate    = "shape.create"
	OpShapeTransform = "shape.transform"
	OpShapeDelete    = "shape.delete"
)

// Operation is a single shape-tree mutation. The engine validates every
// operation against the containment/non-overlap invariant before it takes
// effect; an unstable placement is nacked, never applied.
type Operation struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	ClientSeq int64  `json:"clientSeq"`

	// Target shape. For shape.create the server fills this with the ID of the
	// created node before broadcasting.
	ShapeID string `json:"shapeId,omitempty"`

	// For shape.create
	ParentID string          `json:"parentId,omitempty"`
	Kind     scene.Kind      `json:"kind,omitempty"`
	Params   scene.Params    `json:"params,omitempty"`
	Trans    *geom.Transform `json:"transform,omitempty"`
}

// OperationSubmitPayload is the payload for op.submit messages.
type OperationSubmitPayload struct {
	Operation Operation `json:"operation"`
}

// OperationAckPayload is the payload for op.ack messages.
type OperationAckPayload struct {
	OperationID     string `json:"operationId"`
	ShapeID         string `json:"shapeId,omitempty"`
	ServerSeq       int64  `json:"serverSeq"`
	ServerTimestamp int64  `json:"serverTimestamp"`
}

// OperationNackPayload is the payload for op.nack messages.
type OperationNackPayload struct {
	OperationID string `json:"operationId"`
	Reason      string `json:"reason"`
}

// OperationBroadcastPayload is the payload for op.broadcast messages.
type OperationBroadcastPayload struct {
	Operation Operation `json:"operation"`
	UserID    string    `json:"userId"`
	ServerSeq int64     `json:"serverSeq"`
}

// SceneSyncPayload carries the authoritative render state.
type SceneSyncPayload struct {
	Commands  json.RawMessage `json:"commands"`
	Hierarchy json.RawMessage `json:"hierarchy"`
	ServerSeq int64           `json:"serverSeq"`
}
