package quiz

import (
	"errors"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// SessionStore keeps quiz sessions in memory only; they do not survive a
// restart. Sessions idle longer than ttl are pruned on Create.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (s *SessionStore) Create(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl > 0 {
		cutoff := time.Now().Add(-s.ttl)
		for id, old := range s.sessions {
			if old.UpdatedAt.Before(cutoff) {
				delete(s.sessions, id)
			}
		}
	}
	s.sessions[sess.ID] = sess
}

// Update runs fn on the session under the store lock.
func (s *SessionStore) Update(id string, fn func(*Session) error) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if err := fn(sess); err != nil {
		return Session{}, err
	}
	return sess.snapshot(), nil
}

func (s *SessionStore) Get(id string) (Session, error) {
	return s.Update(id, func(*Session) error { return nil })
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Session) snapshot() Session {
	cp := *s
	cp.Answers = make(Answers, len(s.Answers))
	for k, v := range s.Answers {
		cp.Answers[k] = v
	}
	if s.Result != nil {
		r := *s.Result
		cp.Result = &r
	}
	return cp
}
