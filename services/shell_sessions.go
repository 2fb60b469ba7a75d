package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"settleedge_web/services/shell"

	"github.com/google/uuid"
)

// ShellFactory builds the shell for a new visitor.
type ShellFactory func() (*shell.Shell, error)

// ShellSessions keeps one shell per visitor in memory, keyed by the session
// cookie. Nothing survives a restart.
type ShellSessions struct {
	mu       sync.RWMutex
	sessions map[string]*shellSession
	factory  ShellFactory
	idle     time.Duration
	now      func() time.Time
}

type shellSession struct {
	shell    *shell.Shell
	lastSeen time.Time
}

// NewShellSessions creates a store whose sessions expire after idle.
func NewShellSessions(factory ShellFactory, idle time.Duration) *ShellSessions {
	return &ShellSessions{
		sessions: make(map[string]*shellSession),
		factory:  factory,
		idle:     idle,
		now:      time.Now,
	}
}

// Get returns the shell for id and refreshes its idle timer.
func (s *ShellSessions) Get(id string) (*shell.Shell, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.lastSeen) > s.idle {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess.shell, true
}

// Create starts a session with a fresh shell and returns its id.
func (s *ShellSessions) Create() (string, *shell.Shell, error) {
	sh, err := s.factory()
	if err != nil {
		return "", nil, fmt.Errorf("failed to create shell: %w", err)
	}
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &shellSession{shell: sh, lastSeen: s.now()}
	s.mu.Unlock()
	return id, sh, nil
}

// Resolve returns the shell for id, creating a session when id is unknown
// or expired. The returned id differs from the input when a session was created.
func (s *ShellSessions) Resolve(id string) (string, *shell.Shell, error) {
	if sh, ok := s.Get(id); ok {
		return id, sh, nil
	}
	return s.Create()
}

// CleanupIdle removes sessions idle for longer than the timeout.
func (s *ShellSessions) CleanupIdle() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.idle {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("[INFO] Cleaned up %d idle shell sessions", removed)
	}
	return removed
}

// Len returns the number of live sessions.
func (s *ShellSessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
