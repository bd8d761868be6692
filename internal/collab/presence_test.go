package collab

import "testing"

func TestRosterDropShapeClearsStaleSelections(t *testing.T) {
	r := newRoster()
	r.Update("user_a", &PresencePayload{Selection: "shape_1", DisplayName: "Ada"})
	r.Update("user_b", &PresencePayload{Selection: "shape_2", DisplayName: "Bob"})

	r.DropShape("shape_1")

	snap := r.Snapshot()
	if snap["user_a"].Selection != "" {
		t.Errorf("user_a still selects %q after shape deletion", snap["user_a"].Selection)
	}
	if snap["user_b"].Selection != "shape_2" {
		t.Errorf("user_b selection = %q, want shape_2", snap["user_b"].Selection)
	}

	// Empty shape ID is a no-op, not a wildcard.
	r.DropShape("")
	if r.Snapshot()["user_b"].Selection != "shape_2" {
		t.Error("DropShape(\"\") cleared an unrelated selection")
	}
}

func TestRosterSnapshotIsCopy(t *testing.T) {
	r := newRoster()
	r.Update("user_a", &PresencePayload{Selection: "shape_1"})

	snap := r.Snapshot()
	snap["user_a"].Selection = "tampered"

	if got := r.Snapshot()["user_a"].Selection; got != "shape_1" {
		t.Errorf("snapshot mutation leaked into roster: %q", got)
	}
}

func TestRosterRemoveAndStateMessage(t *testing.T) {
	r := newRoster()
	r.Update("user_a", &PresencePayload{DisplayName: "Ada"})
	r.Remove("user_a")

	if len(r.Snapshot()) != 0 {
		t.Error("roster not empty after Remove")
	}

	msg := r.StateMessage()
	if msg == nil || msg.Type != TypePresenceState {
		t.Fatalf("unexpected state message: %+v", msg)
	}
}
