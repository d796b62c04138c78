package session

import (
	"log"
	"sync"
	"time"

	"studybuddy/models"
)

// Session holds the chat history for a single conversation.
type Session struct {
	id string

	mu       sync.Mutex
	messages []models.ChatMessage
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Append(msg models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.At.IsZero() {
		msg.At = time.Now()
	}
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of the chat history in insertion order.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = nil
}

// Store is an in-memory registry of sessions keyed by ID.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for the given ID, creating it on first use.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[id]; ok {
		return s
	}

	log.Printf("[INFO] Creating new session %q", id)
	s := &Session{id: id}
	st.sessions[id] = s
	return s
}

// Lookup returns the session only if it already exists.
func (st *Store) Lookup(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	return s, ok
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, id)
}
