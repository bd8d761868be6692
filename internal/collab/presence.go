package collab

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// roster tracks who is in a room and what each participant last reported:
// cursor position and the shape they have selected. Selection here is
// per-user presentation state; it never feeds back into the editor.
type roster struct {
	mu      sync.RWMutex
	entries map[string]*PresencePayload // userID -> last reported presence
}

func newRoster() *roster {
	return &roster{entries: make(map[string]*PresencePayload)}
}

func (r *roster) Update(userID string, p *PresencePayload) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[userID] = p
}

func (r *roster) Remove(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, userID)
}

// DropShape clears any selection pointing at a shape that no longer exists,
// so a deleted shape cannot stay highlighted on another screen.
func (r *roster) DropShape(shapeID string) {
	if shapeID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.entries {
		if p.Selection == shapeID {
			p.Selection = ""
		}
	}
}

func (r *roster) Snapshot() map[string]*PresencePayload {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*PresencePayload, len(r.entries))
	for userID, p := range r.entries {
		cp := *p
		out[userID] = &cp
	}
	return out
}

func (r *roster) StateMessage() *Message {
	payload, err := json.Marshal(PresenceStatePayload{Presences: r.Snapshot()})
	if err != nil {
		slog.Error("marshal presence state", "error", err)
		return nil
	}
	return &Message{
		Type:    TypePresenceState,
		Payload: payload,
	}
}
