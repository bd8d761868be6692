package session

import (
	"errors"
	"sync"
	"time"

	"github.com/shapenest/shapenest/internal/engine"
	"github.com/shapenest/shapenest/internal/typeid"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrForbidden = errors.New("forbidden")
)

// PlaygroundID is a well-known session that anyone may join without an
// account. It is seeded with the sample scene at startup.
const PlaygroundID = "sess_playground"

type Session struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"ownerId"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	CreatedAt string `json:"createdAt"`
}

type entry struct {
	session Session
	editor  *engine.Editor
}

// Service is an in-memory session registry. Each session owns one editor,
// which the collab hub hands out as the authoritative scene for its room.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	width    int
	height   int
}

func NewService(canvasWidth, canvasHeight int) *Service {
	s := &Service{
		sessions: make(map[string]*entry),
		width:    canvasWidth,
		height:   canvasHeight,
	}

	s.sessions[PlaygroundID] = &entry{
		session: Session{
			ID:        PlaygroundID,
			Name:      "Playground",
			Width:     canvasWidth,
			Height:    canvasHeight,
			CreatedAt: now(),
		},
		editor: engine.NewSampleEditor(float64(canvasWidth), float64(canvasHeight)),
	}

	return s
}

func (s *Service) Create(name, ownerID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := Session{
		ID:        typeid.NewSessionID(),
		Name:      name,
		OwnerID:   ownerID,
		Width:     s.width,
		Height:    s.height,
		CreatedAt: now(),
	}
	s.sessions[sess.ID] = &entry{
		session: sess,
		editor:  engine.NewEditor(float64(s.width), float64(s.height)),
	}

	return &sess, nil
}

func (s *Service) Get(sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	sess := e.session
	return &sess, nil
}

// List returns the sessions owned by userID, plus the playground.
func (s *Service) List(userID string) ([]Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]Session, 0, len(s.sessions))
	for _, e := range s.sessions {
		if e.session.OwnerID == userID || e.session.ID == PlaygroundID {
			sessions = append(sessions, e.session)
		}
	}
	return sessions, nil
}

func (s *Service) Delete(sessionID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	if sessionID == PlaygroundID || e.session.OwnerID != userID {
		return ErrForbidden
	}

	delete(s.sessions, sessionID)
	return nil
}

// Editor resolves the editor backing a session. The collab hub uses this as
// its EditorProvider.
func (s *Service) Editor(sessionID string) (*engine.Editor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return e.editor, nil
}

func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}
