package memory

import (
	"sync"

	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/bnema/voxel-schematics/internal/ports"
)

// Store keeps actor sessions for the lifetime of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[domain.ActorID]*domain.ActorSession
}

var _ ports.SessionStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{sessions: map[domain.ActorID]*domain.ActorSession{}}
}

func (s *Store) GetOrCreate(id domain.ActorID) *domain.ActorSession {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return session
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have created it between the two locks.
	if session, ok := s.sessions[id]; ok {
		return session
	}

	session = domain.NewActorSession(id)
	s.sessions[id] = session
	return session
}

// Restore replaces the stored sessions with the given snapshots.
func (s *Store) Restore(snapshots []domain.SessionSnapshot) {
	sessions := make(map[domain.ActorID]*domain.ActorSession, len(snapshots))
	for _, snapshot := range snapshots {
		sessions[snapshot.ID] = domain.RestoreActorSession(snapshot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = sessions
}

// Snapshot copies the session of id. An actor with no session yields an
// empty snapshot, and none is created.
func (s *Store) Snapshot(id domain.ActorID) domain.SessionSnapshot {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domain.SessionSnapshot{ID: id}
	}

	return session.Snapshot()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
