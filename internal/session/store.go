// Package session keeps per-visitor form state in memory: one state
// machine and one last result per service form.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-writing-services/internal/form"
	"go-writing-services/pkg/models"
)

// CookieName is the cookie carrying the session id
const CookieName = "ws_session"

// Slot is the state of one form for one visitor
type Slot struct {
	Machine *form.Machine

	mu     sync.Mutex
	result models.Result
	change *models.Change
	values map[string]string
}

func newSlot() *Slot {
	return &Slot{Machine: form.NewMachine()}
}

// Result returns the last successful result, or nil.
func (s *Slot) Result() models.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Change returns the change summary computed with the stored result, or nil.
func (s *Slot) Change() *models.Change {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.change
}

// SetResult stores result, its change summary and the form values that
// produced it. change may be nil.
func (s *Slot) SetResult(result models.Result, change *models.Change, values map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
	s.change = change
	s.values = values
}

// Clear drops the stored result and values.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = nil
	s.change = nil
	s.values = nil
}

// Values returns a copy of the form values of the stored result.
func (s *Slot) Values() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Session is one visitor
type Session struct {
	ID string

	mu       sync.Mutex
	slots    map[string]*Slot
	lastSeen time.Time
}

// Slot returns the slot of a form, creating it on first use.
func (s *Session) Slot(slug string) *Slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[slug]
	if !ok {
		slot = newSlot()
		s.slots[slug] = slot
	}
	return slot
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

// Store holds sessions that expire after a period without use
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store whose sessions live for ttl after their last use
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// TTL returns the idle lifetime of a session
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get returns the live session with id and refreshes its lifetime.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if sess.expired(now, s.ttl) {
		delete(s.sessions, id)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Create starts a new session with a random id
func (s *Store) Create() *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		slots:    make(map[string]*Slot),
		lastSeen: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// GetOrCreate returns the session with id, or a new one when id is unknown
// or expired. created reports which happened.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}
	return s.Create(), true
}

// Len returns the number of stored sessions, expired ones included
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were removed
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if sess.expired(now, s.ttl) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
