package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	tomlrepo "github.com/bnema/voxel-schematics/internal/adapters/repo/toml"
	"github.com/bnema/voxel-schematics/internal/adapters/session/memory"
	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/bnema/voxel-schematics/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestoreSessionsFillsStore(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	store := memory.NewStore()

	corner := domain.Vec3i{X: 3, Y: 4, Z: 5}
	repo.EXPECT().Load(mockAnyContext()).Return([]domain.SessionSnapshot{{ID: alice, FirstCorner: &corner}}, nil)

	require.NoError(t, RestoreSessions(context.Background(), repo, store))

	got, ok := store.GetOrCreate(alice).FirstCorner()
	require.True(t, ok)
	assert.Equal(t, corner, got)
}

func TestRestoreSessionsWrapsRepositoryError(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	loadErr := errors.New("disk gone")
	repo.EXPECT().Load(mockAnyContext()).Return(nil, loadErr)

	err := RestoreSessions(context.Background(), repo, memory.NewStore())
	require.ErrorIs(t, err, loadErr)
	assert.ErrorContains(t, err, "restore sessions")
}

func TestPersistSessionSavesOnlyThatActor(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	store := memory.NewStore()

	store.GetOrCreate(domain.ActorIDFromName("bob")).SetFirstCorner(domain.Vec3i{Y: 9})
	store.GetOrCreate(alice).SetSecondCorner(domain.Vec3i{X: 1})

	second := domain.Vec3i{X: 1}
	repo.EXPECT().SaveSession(mockAnyContext(), domain.SessionSnapshot{ID: alice, SecondCorner: &second}).Return(nil)

	require.NoError(t, PersistSession(context.Background(), repo, store, alice))
}

func TestPersistSessionSendsEmptySnapshotForUnknownActor(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	idle := domain.ActorIDFromName("idle")
	repo.EXPECT().SaveSession(mockAnyContext(), domain.SessionSnapshot{ID: idle}).Return(nil)

	require.NoError(t, PersistSession(context.Background(), repo, memory.NewStore(), idle))
}

func TestPersistSessionWrapsRepositoryError(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	saveErr := errors.New("read-only disk")
	repo.EXPECT().SaveSession(mockAnyContext(), mock.Anything).Return(saveErr)

	err := PersistSession(context.Background(), repo, memory.NewStore(), alice)
	require.ErrorIs(t, err, saveErr)
	assert.ErrorContains(t, err, "persist session")
}

// Two CLI runs restore the same file, each touches a different actor, then
// both persist. Neither may drop the other's state.
func TestPersistSessionKeepsActorsOfConcurrentRuns(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.toml")
	bob := domain.ActorIDFromName("bob")

	run := func() (*tomlrepo.SessionRepository, *memory.Store) {
		repo, err := tomlrepo.NewSessionRepository(path)
		require.NoError(t, err)
		store := memory.NewStore()
		require.NoError(t, RestoreSessions(ctx, repo, store))
		return repo, store
	}

	repoA, storeA := run()
	repoB, storeB := run()

	storeA.GetOrCreate(alice).SetFirstCorner(domain.Vec3i{X: 1, Y: 2, Z: 3})
	storeB.GetOrCreate(bob).SetFirstCorner(domain.Vec3i{X: -7, Y: 64, Z: 0})

	require.NoError(t, PersistSession(ctx, repoA, storeA, alice))
	require.NoError(t, PersistSession(ctx, repoB, storeB, bob))

	_, fresh := run()
	aliceCorner, ok := fresh.GetOrCreate(alice).FirstCorner()
	require.True(t, ok, "alice's corner was lost")
	assert.Equal(t, domain.Vec3i{X: 1, Y: 2, Z: 3}, aliceCorner)
	bobCorner, ok := fresh.GetOrCreate(bob).FirstCorner()
	require.True(t, ok, "bob's corner was lost")
	assert.Equal(t, domain.Vec3i{X: -7, Y: 64, Z: 0}, bobCorner)
}

func TestPersistSessionConcurrentActorsAllSurvive(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.toml")

	const actors = 12
	var wg sync.WaitGroup
	errs := make(chan error, actors)
	for i := 0; i < actors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			repo, err := tomlrepo.NewSessionRepository(path)
			if err != nil {
				errs <- err
				return
			}
			store := memory.NewStore()
			id := domain.ActorIDFromName(fmt.Sprintf("builder-%d", i))
			store.GetOrCreate(id).SetFirstCorner(domain.Vec3i{X: i})
			errs <- PersistSession(ctx, repo, store, id)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	repo, err := tomlrepo.NewSessionRepository(path)
	require.NoError(t, err)
	snapshots, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshots, actors)
}
