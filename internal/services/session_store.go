// internal/services/session_store.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/metrics"
)

type session struct {
	workspace *Workspace
	lastSeen  time.Time
}

// SessionStore hands every admin session its own Workspace and forgets
// sessions that stay idle longer than the configured TTL.
type SessionStore struct {
	client   crud.Collaborator
	idleTTL  time.Duration
	sessions map[string]*session
	mtx      sync.Mutex
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewSessionStore(client crud.Collaborator, idleTTL time.Duration) *SessionStore {
	s := &SessionStore{
		client:   client,
		idleTTL:  idleTTL,
		sessions: make(map[string]*session),
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	go s.cleanupSessions(sweepInterval(idleTTL))

	return s
}

func sweepInterval(idleTTL time.Duration) time.Duration {
	interval := idleTTL / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}

func (s *SessionStore) cleanupSessions(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logrus.WithField("evicted", n).Debug("Evicted idle admin sessions")
			}
		case <-s.stop:
			return
		}
	}
}

// Get returns the workspace for id. An empty or unknown id starts a new
// session under a freshly minted id, which is returned alongside it.
func (s *SessionStore) Get(id string) (string, *Workspace) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if sess, exists := s.sessions[id]; exists && id != "" {
		sess.lastSeen = s.now()
		return id, sess.workspace
	}

	id = uuid.NewString()
	sess := &session{
		workspace: NewWorkspace(s.client, logrus.WithField("session_id", id)),
		lastSeen:  s.now(),
	}
	s.sessions[id] = sess
	metrics.SetActiveSessions(len(s.sessions))

	return id, sess.workspace
}

// Sweep evicts idle sessions and reports how many were removed.
func (s *SessionStore) Sweep() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if s.now().Sub(sess.lastSeen) > s.idleTTL {
			delete(s.sessions, id)
			evicted++
		}
	}
	metrics.SetActiveSessions(len(s.sessions))
	return evicted
}

func (s *SessionStore) Len() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.sessions)
}

// Close stops the background sweeper. Sessions stay readable.
func (s *SessionStore) Close() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}
