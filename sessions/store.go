package sessions

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// CookieName is the cookie carrying the admin session id.
const CookieName = "adminSession"

// TTL bounds a session's server-side lifetime. It matches the cookie
// Max-Age so a replayed cookie is rejected once the server record expires.
const TTL = time.Hour

// Session binds an opaque token to an authenticated username. It stays
// valid until deleted or until ExpiresAt passes.
type Session struct {
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store is the single source of truth for who is currently logged in.
// It lives in process memory only; restarting the server logs everyone out.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create issues a new session for username and returns its id. Ids come
// from crypto/rand, so a token can't be recomputed from the username.
func (s *Store) Create(username string) string {
	id := generateToken(32)
	now := s.now()

	s.mu.Lock()
	s.sessions[id] = Session{
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}
	s.mu.Unlock()

	return id
}

// Lookup resolves a session id. Expired records are evicted lazily and
// reported as absent.
func (s *Store) Lookup(id string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return Session{}, false
	}
	if s.now().After(sess.ExpiresAt) {
		s.Delete(id)
		return Session{}, false
	}
	return sess, true
}

// Delete revokes a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Count reports the number of live records, expired ones included until
// a Lookup evicts them.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func generateToken(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing means the process can't do anything useful
		panic("sessions: failed to generate token: " + err.Error())
	}
	return base64.URLEncoding.EncodeToString(bytes)
}
