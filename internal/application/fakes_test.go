package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/voxel-schematics/internal/domain"
)

type placement struct {
	region domain.Region
	cause  domain.PlacementCause
}

// inMemoryWorld is a dense-enough world for exercising capture and paste.
type inMemoryWorld struct {
	mu         sync.Mutex
	blocks     map[domain.Vec3i]domain.BlockState
	entities   map[domain.Vec3i]domain.BlockEntity
	actors     map[domain.ActorID]domain.Actor
	placements []placement
}

func newInMemoryWorld() *inMemoryWorld {
	return &inMemoryWorld{
		blocks:   map[domain.Vec3i]domain.BlockState{},
		entities: map[domain.Vec3i]domain.BlockEntity{},
		actors:   map[domain.ActorID]domain.Actor{},
	}
}

func (w *inMemoryWorld) setBlock(p domain.Vec3i, state domain.BlockState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.blocks[p] = state
}

func (w *inMemoryWorld) block(p domain.Vec3i) domain.BlockState {
	w.mu.Lock()
	defer w.mu.Unlock()
	if state, ok := w.blocks[p]; ok {
		return state
	}
	return domain.BlockAir
}

func (w *inMemoryWorld) putActor(actor domain.Actor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.actors[actor.ID] = actor
}

func (w *inMemoryWorld) moveActor(id domain.ActorID, p domain.Vec3i) {
	w.mu.Lock()
	defer w.mu.Unlock()
	actor := w.actors[id]
	actor.Position = p
	w.actors[id] = actor
}

func (w *inMemoryWorld) ReadRegion(_ context.Context, box domain.Box) (domain.Region, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	size := box.Size()
	region := domain.Region{Box: box, Blocks: make([]domain.BlockState, box.Volume())}
	for i := range region.Blocks {
		p := box.Min.Add(domain.BlockPosition(size, i))
		state, ok := w.blocks[p]
		if !ok {
			state = domain.BlockAir
		}
		region.Blocks[i] = state
		if entity, ok := w.entities[p]; ok {
			region.BlockEntities = append(region.BlockEntities, entity)
		}
	}
	return region, nil
}

func (w *inMemoryWorld) WriteRegion(_ context.Context, region domain.Region, cause domain.PlacementCause) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	size := region.Box.Size()
	for i, state := range region.Blocks {
		w.blocks[region.Box.Min.Add(domain.BlockPosition(size, i))] = state
	}
	for _, entity := range region.BlockEntities {
		w.entities[entity.Pos] = entity
	}
	w.placements = append(w.placements, placement{region: region, cause: cause})
	return nil
}

func (w *inMemoryWorld) ActorPosition(_ context.Context, id domain.ActorID) (domain.Vec3i, error) {
	actor, err := w.actor(id)
	return actor.Position, err
}

func (w *inMemoryWorld) ActorHeldItem(_ context.Context, id domain.ActorID) (domain.ItemKind, error) {
	actor, err := w.actor(id)
	return actor.HeldItem, err
}

func (w *inMemoryWorld) ActorName(_ context.Context, id domain.ActorID) (string, error) {
	actor, err := w.actor(id)
	return actor.Name, err
}

func (w *inMemoryWorld) actor(id domain.ActorID) (domain.Actor, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	actor, ok := w.actors[id]
	if !ok {
		return domain.Actor{}, domain.ErrActorNotFound
	}
	return actor, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
