package session

import (
	"errors"
	"testing"
)

func TestCreateGetDelete(t *testing.T) {
	svc := NewService(640, 480)

	sess, err := svc.Create("demo", "user_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" || sess.Name != "demo" || sess.OwnerID != "user_a" {
		t.Errorf("unexpected session: %+v", sess)
	}

	got, err := svc.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("Get returned %s, want %s", got.ID, sess.ID)
	}

	if err := svc.Delete(sess.ID, "user_b"); !errors.Is(err, ErrForbidden) {
		t.Errorf("delete by non-owner: got %v, want ErrForbidden", err)
	}
	if err := svc.Delete(sess.ID, "user_a"); err != nil {
		t.Fatalf("delete by owner: %v", err)
	}
	if _, err := svc.Get(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete: got %v, want ErrNotFound", err)
	}
}

func TestPlaygroundSeeded(t *testing.T) {
	svc := NewService(640, 480)

	sess, err := svc.Get(PlaygroundID)
	if err != nil {
		t.Fatalf("Get playground: %v", err)
	}
	if sess.Name != "Playground" {
		t.Errorf("playground name = %q", sess.Name)
	}

	ed, err := svc.Editor(PlaygroundID)
	if err != nil {
		t.Fatalf("Editor: %v", err)
	}
	// Sample scene renders more than just the canvas.
	if cmds := ed.Render(); len(cmds) < 2 {
		t.Errorf("playground renders %d commands, want sample content", len(cmds))
	}

	if err := svc.Delete(PlaygroundID, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("playground delete: got %v, want ErrForbidden", err)
	}
}

func TestListScopedToOwner(t *testing.T) {
	svc := NewService(640, 480)

	a1, _ := svc.Create("a1", "user_a")
	svc.Create("b1", "user_b")

	sessions, err := svc.List("user_a")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	// user_a sees their own session plus the playground.
	if len(sessions) != 2 {
		t.Fatalf("List returned %d sessions, want 2", len(sessions))
	}
	found := false
	for _, s := range sessions {
		if s.ID == a1.ID {
			found = true
		}
		if s.OwnerID == "user_b" {
			t.Errorf("leaked session %s owned by user_b", s.ID)
		}
	}
	if !found {
		t.Error("own session missing from list")
	}
}

func TestEditorUnknownSession(t *testing.T) {
	svc := NewService(640, 480)
	if _, err := svc.Editor("sess_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
