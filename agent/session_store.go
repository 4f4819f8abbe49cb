package agent

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jobhunter/backend/models"
)

// ErrSessionNotFound is returned for operations on an unknown session id
var ErrSessionNotFound = errors.New("session not found")

// Session is the conversation state of one chat session
type Session struct {
	ID        string
	Profile   models.ResumeProfile
	CreatedAt time.Time

	mu      sync.Mutex
	history []models.ChatMessage
}

// History returns a copy of the conversation, oldest first
func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.history...)
}

// append must be called with s.mu held
func (s *Session) append(role, content string) {
	s.history = append(s.history, models.ChatMessage{Role: role, Content: content})
}

// SessionStore is a concurrency-safe registry of sessions. Each session
// carries its own lock so work on one session never blocks another.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// Create registers a session, replacing any existing one with the same id
func (s *SessionStore) Create(id string, profile models.ResumeProfile) *Session {
	sess := &Session{
		ID:        id,
		Profile:   profile,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return sess
}

// Get looks up a session
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

// WithSession runs fn while holding the session's lock
func (s *SessionStore) WithSession(id string, fn func(*Session) error) error {
	sess, err := s.Get(id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess)
}

// Delete removes a session. Deleting an unknown id is not an error.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Clear drops every session
func (s *SessionStore) Clear() {
	s.mu.Lock()
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()
}
