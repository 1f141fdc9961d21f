package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

type StoreConfig struct {
	CleanupInterval time.Duration // frequency of the idle-session sweep
	SessionTimeout  time.Duration // idle time before a session is dropped
}

// Store is the in-memory registry of live app sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	config   StoreConfig
	stop     chan struct{}
}

func NewStore(conf StoreConfig) *Store {
	if conf.CleanupInterval <= 0 {
		conf.CleanupInterval = time.Minute
	}
	if conf.SessionTimeout <= 0 {
		conf.SessionTimeout = 30 * time.Minute
	}
	s := &Store{
		sessions: make(map[string]*Session),
		config:   conf,
		stop:     make(chan struct{}),
	}

	go s.cleanupLoop()

	return s
}

// Create registers a fresh session and returns it.
func (s *Store) Create() *Session {
	sess := New(uuid.NewString())
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session outright.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) Close() {
	close(s.stop)
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			for id, sess := range s.sessions {
				if time.Since(sess.LastSeen()) > s.config.SessionTimeout {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
