package application

import (
	"context"
	"fmt"

	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/bnema/voxel-schematics/internal/ports"
)

// SnapshotStore is a session store that can be refilled and read back one
// actor at a time.
type SnapshotStore interface {
	Restore(snapshots []domain.SessionSnapshot)
	Snapshot(id domain.ActorID) domain.SessionSnapshot
}

// RestoreSessions refills store from the sessions saved by a previous run.
func RestoreSessions(ctx context.Context, repo ports.SessionRepository, store SnapshotStore) error {
	snapshots, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore sessions: %w", err)
	}

	store.Restore(snapshots)
	return nil
}

// PersistSession saves the session of actor and nothing else, so processes
// sharing the repository never overwrite each other's actors. An empty
// session removes the saved entry.
func PersistSession(ctx context.Context, repo ports.SessionRepository, store SnapshotStore, actor domain.ActorID) error {
	if err := repo.SaveSession(ctx, store.Snapshot(actor)); err != nil {
		return fmt.Errorf("persist session %s: %w", actor, err)
	}

	return nil
}
