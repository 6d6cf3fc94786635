package httpapi

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aaronromeo/swolecrew/internal/form"
)

var errSessionNotFound = errors.New("session not found")

// session is one form being filled in. Its mutex serializes every access to
// the controller, which is not safe for concurrent use.
type session struct {
	mu          sync.Mutex
	id          string
	form        *form.Controller
	generatedAt time.Time
	lastSeen    time.Time
}

// sessionStore keeps sessions in memory and forgets them after ttl of inactivity.
// Expired sessions are swept lazily on create and lookup; nothing runs in the background.
type sessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	newForm func() *form.Controller
	items   map[string]*session
}

func newSessionStore(ttl time.Duration, now func() time.Time, newForm func() *form.Controller) *sessionStore {
	return &sessionStore{
		ttl:     ttl,
		now:     now,
		newForm: newForm,
		items:   make(map[string]*session),
	}
}

func (s *sessionStore) create() *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	sess := &session{
		id:       uuid.NewString(),
		form:     s.newForm(),
		lastSeen: s.now(),
	}
	s.items[sess.id] = sess
	return sess
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.items[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(sess, now) {
		delete(s.items, id)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

func (s *sessionStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[id]
	delete(s.items, id)
	return ok
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *sessionStore) sweepLocked() {
	now := s.now()
	for id, sess := range s.items {
		if s.expired(sess, now) {
			delete(s.items, id)
		}
	}
}

func (s *sessionStore) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}
