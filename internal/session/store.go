// Package session holds the explicit in-memory session store. Login
// registers the token id of every issued JWT here; the auth middleware
// requires a live entry, so logout actually revokes a token instead of
// leaving it valid until expiry.
package session

import (
	"sync"
	"time"
)

// Sesion is the record kept per live login.
type Sesion struct {
	UsuarioID int64
	Email     string
	CreadaEn  time.Time
	ExpiraEn  time.Time
}

type Store struct {
	mu       sync.RWMutex
	sesiones map[string]Sesion
}

func NewStore() *Store {
	return &Store{sesiones: make(map[string]Sesion)}
}

// Set registers a session under the JWT id (jti).
func (s *Store) Set(id string, ses Sesion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sesiones[id] = ses
}

// Get returns the session for id, dropping it lazily when expired.
func (s *Store) Get(id string) (Sesion, bool) {
	s.mu.RLock()
	ses, ok := s.sesiones[id]
	s.mu.RUnlock()
	if !ok {
		return Sesion{}, false
	}
	if time.Now().After(ses.ExpiraEn) {
		s.Clear(id)
		return Sesion{}, false
	}
	return ses, true
}

// Clear removes a session; clearing an unknown id is a no-op.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sesiones, id)
}
