package collab

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/shapenest/shapenest/internal/engine"
	"github.com/shapenest/shapenest/internal/typeid"
)

// EditorProvider resolves the editor backing a session, so the hub stays
// ignorant of how sessions are stored.
type EditorProvider func(sessionID string) (*engine.Editor, error)

type Room struct {
	sessionID string
	clients   map[string]*Client // clientID -> client
	presence  *roster
	state     *SceneState
}

func NewRoom(sessionID string, editor *engine.Editor) *Room {
	return &Room{
		sessionID: sessionID,
		clients:   make(map[string]*Client),
		presence:  newRoster(),
		state:     NewSceneState(editor),
	}
}

type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room // sessionID -> room
	provider   EditorProvider
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewHub(provider EditorProvider) *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		provider:   provider,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.done:
			return
		}
	}
}

// Stop terminates the hub loop.
func (h *Hub) Stop() {
	close(h.done)
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.SessionID]
	if !ok {
		editor, err := h.provider(client.SessionID)
		if err != nil {
			h.mu.Unlock()
			slog.Warn("no editor for session", "session", client.SessionID, "error", err)
			client.Close()
			return
		}
		room = NewRoom(client.SessionID, editor)
		h.rooms[client.SessionID] = room
	}
	room.clients[client.ClientID] = client
	h.mu.Unlock()

	// Authoritative scene state for the new client
	client.Send(h.sceneSyncMessage(room))

	// Current presence state
	if stateMsg := room.presence.StateMessage(); stateMsg != nil {
		client.Send(stateMsg)
	}

	// Broadcast join to other clients
	joinPayload, _ := json.Marshal(PresenceJoinPayload{
		UserID:      client.UserID,
		DisplayName: client.DisplayName,
	})
	joinMsg := &Message{
		Type:    TypePresenceJoin,
		UserID:  client.UserID,
		Payload: joinPayload,
	}
	h.broadcastToRoom(client.SessionID, joinMsg, client.ClientID)

	slog.Info("client joined", "user", client.UserID, "session", client.SessionID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.SessionID]
	if !ok {
		h.mu.Unlock()
		return
	}

	delete(room.clients, client.ClientID)
	client.Close()
	room.presence.Remove(client.UserID)

	if len(room.clients) == 0 {
		delete(h.rooms, client.SessionID)
	}
	h.mu.Unlock()

	leavePayload, _ := json.Marshal(PresenceLeavePayload{
		UserID: client.UserID,
	})
	leaveMsg := &Message{
		Type:    TypePresenceLeave,
		UserID:  client.UserID,
		Payload: leavePayload,
	}
	h.broadcastToRoom(client.SessionID, leaveMsg, "")

	slog.Info("client left", "user", client.UserID, "session", client.SessionID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch msg.Type {
	case TypePresenceUpdate:
		h.handlePresenceUpdate(sender, msg)
	case TypeOpSubmit:
		h.handleOpSubmit(sender, msg)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "user", sender.UserID)
	}
}

func (h *Hub) handlePresenceUpdate(sender *Client, msg *Message) {
	var presence PresencePayload
	if err := json.Unmarshal(msg.Payload, &presence); err != nil {
		slog.Warn("invalid presence payload", "error", err)
		return
	}

	presence.DisplayName = sender.DisplayName

	room := h.room(sender.SessionID)
	if room == nil {
		return
	}

	room.presence.Update(sender.UserID, &presence)

	outPayload, _ := json.Marshal(presence)
	outMsg := &Message{
		Type:    TypePresenceUpdate,
		UserID:  sender.UserID,
		Payload: outPayload,
	}
	h.broadcastToRoom(sender.SessionID, outMsg, sender.ClientID)
}

// handleOpSubmit validates a shape operation through the engine. A stable
// result is acked and broadcast; a rejected placement is nacked back to the
// submitter only, since nothing changed for anyone else.
func (h *Hub) handleOpSubmit(sender *Client, msg *Message) {
	var payload OperationSubmitPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		slog.Warn("invalid op payload", "error", err, "user", sender.UserID)
		return
	}

	room := h.room(sender.SessionID)
	if room == nil {
		return
	}

	op := payload.Operation
	if op.ID == "" {
		op.ID = typeid.NewOpID()
	}

	seq, applied, err := room.state.ApplyOperation(op)
	if err != nil {
		nackPayload, _ := json.Marshal(OperationNackPayload{
			OperationID: op.ID,
			Reason:      err.Error(),
		})
		sender.Send(&Message{Type: TypeOpNack, Payload: nackPayload})
		return
	}

	ackPayload, _ := json.Marshal(OperationAckPayload{
		OperationID:     applied.ID,
		ShapeID:         applied.ShapeID,
		ServerSeq:       seq,
		ServerTimestamp: GetServerTimestamp(),
	})
	sender.Send(&Message{Type: TypeOpAck, Payload: ackPayload})

	// A deleted shape must not linger in anyone's presence selection.
	if applied.Type == OpShapeDelete {
		room.presence.DropShape(applied.ShapeID)
		if stateMsg := room.presence.StateMessage(); stateMsg != nil {
			h.broadcastToRoom(sender.SessionID, stateMsg, "")
		}
	}

	broadcastPayload, _ := json.Marshal(OperationBroadcastPayload{
		Operation: applied,
		UserID:    sender.UserID,
		ServerSeq: seq,
	})
	h.broadcastToRoom(sender.SessionID, &Message{
		Type:    TypeOpBroadcast,
		UserID:  sender.UserID,
		Payload: broadcastPayload,
	}, sender.ClientID)

	// Everyone repaints from the authoritative state, submitter included.
	h.broadcastToRoom(sender.SessionID, h.sceneSyncMessage(room), "")
}

func (h *Hub) sceneSyncMessage(room *Room) *Message {
	hierarchy, err := room.state.TreeSummaryJSON()
	if err != nil {
		slog.Error("marshal hierarchy", "error", err)
		hierarchy = []byte("{}")
	}
	payload, _ := json.Marshal(SceneSyncPayload{
		Commands:  json.RawMessage(room.state.RenderJSON()),
		Hierarchy: hierarchy,
		ServerSeq: room.state.ServerSeq(),
	})
	return &Message{Type: TypeSceneSync, Payload: payload}
}

func (h *Hub) room(sessionID string) *Room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rooms[sessionID]
}

func (h *Hub) broadcastToRoom(sessionID string, msg *Message, excludeClientID string) {
	h.mu.RLock()
	room, ok := h.rooms[sessionID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}
