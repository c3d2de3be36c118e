package editor

import (
	"context"
	"sync"
	"time"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/pkg/logger"
)

// Store keeps open sessions in memory. Idle sessions expire after ttl.
type Store struct {
	mu       sync.RWMutex
	sessions map[id.ID]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates an empty session store.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[id.ID]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (st *Store) put(s *Session) {
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
}

// acquire finds a session and returns it locked. The caller must unlock it.
func (st *Store) acquire(sessionID id.ID) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[sessionID]
	st.mu.RUnlock()
	if !ok {
		return nil, apperror.NewNotFound("edit session", sessionID.String())
	}

	s.mu.Lock()
	s.lastUsed = st.now()
	return s, nil
}

// remove drops a session from the store.
func (st *Store) remove(sessionID id.ID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[sessionID]; !ok {
		return false
	}
	delete(st.sessions, sessionID)
	return true
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// CloseSource closes every open session editing the given backend document.
// It returns how many sessions were closed.
func (st *Store) CloseSource(kind Kind, sourceID int64) int {
	st.mu.RLock()
	matches := make([]*Session, 0)
	for _, s := range st.sessions {
		if s.kind == kind && s.sourceID == sourceID && sourceID != 0 {
			matches = append(matches, s)
		}
	}
	st.mu.RUnlock()

	closed := 0
	for _, s := range matches {
		s.mu.Lock()
		if s.state == StateOpen {
			s.state = StateClosed
			closed++
		}
		s.mu.Unlock()
	}
	return closed
}

// Sweep removes sessions idle for longer than the ttl.
// A session busy with a command is skipped and checked again on the next sweep.
func (st *Store) Sweep() int {
	deadline := st.now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for key, s := range st.sessions {
		if !s.mu.TryLock() {
			continue
		}
		expired := s.lastUsed.Before(deadline)
		s.mu.Unlock()
		if expired {
			delete(st.sessions, key)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info(ctx, "session sweeper started", "ttl", st.ttl.String(), "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "session sweeper stopped")
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				logger.Info(ctx, "expired edit sessions removed", "count", n)
			}
		}
	}
}
