package ports

import (
	"context"

	"github.com/bnema/voxel-schematics/internal/domain"
)

// SessionStore hands out the live session for an actor, creating it on
// first use. It never fails.
type SessionStore interface {
	GetOrCreate(id domain.ActorID) *domain.ActorSession
}

// SessionRepository persists session snapshots between process runs.
// Several processes may share one repository, so writes touch a single
// actor's entry.
type SessionRepository interface {
	Load(ctx context.Context) ([]domain.SessionSnapshot, error)
	// SaveSession replaces the entry for snapshot.ID. An empty snapshot
	// removes it.
	SaveSession(ctx context.Context, snapshot domain.SessionSnapshot) error
}
