package application

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/voxel-schematics/internal/adapters/schematic/sponge"
	"github.com/bnema/voxel-schematics/internal/adapters/session/memory"
	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scenario struct {
	world    *inMemoryWorld
	sessions *memory.Store
	store    *sponge.Store
	service  *Service
}

func newScenario(t *testing.T) scenario {
	t.Helper()

	store, err := sponge.NewStore(filepath.Join(t.TempDir(), "schematics"))
	require.NoError(t, err)

	world := newInMemoryWorld()
	sessions := memory.NewStore()
	service := NewService(sessions, world, store, ServiceOptions{
		Clock: fixedClock{now: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)},
	})

	return scenario{world: world, sessions: sessions, store: store, service: service}
}

func buildFort(world *inMemoryWorld) {
	for x := 0; x <= 2; x++ {
		for y := 0; y <= 2; y++ {
			for z := 0; z <= 2; z++ {
				state := domain.BlockState("minecraft:stone")
				if y == 2 {
					state = "minecraft:oak_planks"
				}
				if x == 1 && y == 1 && z == 1 {
					state = domain.BlockAir
				}
				world.setBlock(domain.Vec3i{X: x, Y: y, Z: z}, state)
			}
		}
	}
}

func TestScenarioCopySaveLoadPaste(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	buildFort(s.world)
	s.world.putActor(domain.Actor{ID: alice, Name: "alice", Position: domain.Vec3i{X: 5, Y: 5, Z: 5}, HeldItem: domain.ItemWoodenAxe})

	// Copy.
	s.service.SetFirst(ctx, alice, domain.Vec3i{})
	s.service.SetSecond(ctx, alice, domain.Vec3i{X: 2, Y: 2, Z: 2})
	volume, err := s.service.Copy(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.Vec3i{X: 3, Y: 3, Z: 3}, volume.Size)
	assert.Equal(t, domain.Vec3i{X: -5, Y: -5, Z: -5}, volume.Offset)
	assert.Empty(t, s.world.placements)

	// Save twice.
	path, err := s.service.Save(ctx, alice, "fort")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.store.Root(), "fort.schem"), path)
	saved, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = s.service.Save(ctx, alice, "fort")
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, saved, after)

	// Load in a fresh session, then paste elsewhere.
	bob := domain.ActorIDFromName("bob")
	s.world.putActor(domain.Actor{ID: bob, Name: "bob", Position: domain.Vec3i{X: 10, Y: 0, Z: 10}})
	loaded, err := s.service.Load(ctx, bob, "fort")
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded.Metadata.Author)
	assert.Equal(t, "fort", loaded.Metadata.Name)
	assert.Equal(t, volume, loaded.Volume)

	box, err := s.service.Paste(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, domain.Box{Min: domain.Vec3i{X: 5, Y: -5, Z: 5}, Max: domain.Vec3i{X: 7, Y: -3, Z: 7}}, box)

	for x := 0; x <= 2; x++ {
		for y := 0; y <= 2; y++ {
			for z := 0; z <= 2; z++ {
				source := domain.Vec3i{X: x, Y: y, Z: z}
				target := source.Add(domain.Vec3i{X: 5, Y: -5, Z: 5})
				assert.Equal(t, s.world.block(source), s.world.block(target), "block at %s", target)
			}
		}
	}

	// The block alice stood on relative to the copy lands where bob stands.
	reference := domain.Vec3i{X: 5, Y: 5, Z: 5}.Add(box.Min)
	assert.Equal(t, domain.Vec3i{X: 10, Y: 0, Z: 10}, reference)

	require.Len(t, s.world.placements, 1)
	assert.Equal(t, PlacementSource, s.world.placements[0].cause.Source)
	assert.Equal(t, domain.SpawnTypePlacement, s.world.placements[0].cause.SpawnType)
}

func TestScenarioPasteOverwritesWithAir(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.world.setBlock(domain.Vec3i{}, "minecraft:stone")
	s.world.putActor(domain.Actor{ID: alice, Name: "alice"})

	s.service.SetFirst(ctx, alice, domain.Vec3i{})
	s.service.SetSecond(ctx, alice, domain.Vec3i{X: 1})
	_, err := s.service.Copy(ctx, alice)
	require.NoError(t, err)

	s.world.setBlock(domain.Vec3i{X: 20, Y: 0, Z: 0}, "minecraft:gold_block")
	s.world.setBlock(domain.Vec3i{X: 21, Y: 0, Z: 0}, "minecraft:gold_block")
	s.world.moveActor(alice, domain.Vec3i{X: 20})

	_, err = s.service.Paste(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.BlockState("minecraft:stone"), s.world.block(domain.Vec3i{X: 20}))
	assert.Equal(t, domain.BlockAir, s.world.block(domain.Vec3i{X: 21}))
}

func TestScenarioLoadMissingSchematic(t *testing.T) {
	s := newScenario(t)
	s.world.putActor(domain.Actor{ID: alice, Name: "alice"})

	_, err := s.service.Load(context.Background(), alice, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScenarioListSchematics(t *testing.T) {
	ctx := context.Background()
	s := newScenario(t)
	s.world.putActor(domain.Actor{ID: alice, Name: "alice"})
	s.world.setBlock(domain.Vec3i{}, "minecraft:stone")

	s.service.SetFirst(ctx, alice, domain.Vec3i{})
	s.service.SetSecond(ctx, alice, domain.Vec3i{})
	_, err := s.service.Copy(ctx, alice)
	require.NoError(t, err)

	for _, name := range []string{"tower", "bridge"} {
		_, err := s.service.Save(ctx, alice, name)
		require.NoError(t, err)
	}

	names, err := s.service.ListSchematics(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bridge", "tower"}, names)
}

func TestCapturePasteRoundTripProperty(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(7, 11))
	states := []domain.BlockState{domain.BlockAir, "minecraft:stone", "minecraft:dirt", "minecraft:glass", "minecraft:oak_log[axis=y]"}

	for i := 0; i < 50; i++ {
		world := newInMemoryWorld()
		a := domain.Vec3i{X: rng.IntN(20) - 10, Y: rng.IntN(20) - 10, Z: rng.IntN(20) - 10}
		b := domain.Vec3i{X: rng.IntN(20) - 10, Y: rng.IntN(20) - 10, Z: rng.IntN(20) - 10}
		box := domain.BoundingBox(a, b)
		size := box.Size()
		for j := 0; j < box.Volume(); j++ {
			world.setBlock(box.Min.Add(domain.BlockPosition(size, j)), states[rng.IntN(len(states))])
		}

		origin := domain.Vec3i{X: rng.IntN(40) - 20, Y: rng.IntN(40) - 20, Z: rng.IntN(40) - 20}
		volume, err := Capture(ctx, world, box, origin)
		require.NoError(t, err)
		require.NoError(t, volume.Validate())

		data, err := roundTripSchematic(volume)
		require.NoError(t, err)

		target := domain.Vec3i{X: rng.IntN(200) + 100, Y: rng.IntN(40), Z: rng.IntN(200) + 100}
		pasted, err := Paste(ctx, world, data, target, pasteCause())
		require.NoError(t, err)
		assert.Equal(t, size, pasted.Size())

		shift := pasted.Min.Sub(box.Min)
		assert.Equal(t, target.Sub(origin), shift)
		for j := 0; j < box.Volume(); j++ {
			p := box.Min.Add(domain.BlockPosition(size, j))
			require.Equal(t, world.block(p), world.block(p.Add(shift)))
		}
	}
}

func roundTripSchematic(volume domain.Volume) (domain.Volume, error) {
	doc, err := sponge.Encode(volume, domain.SchematicMetadata{Name: "property"})
	if err != nil {
		return domain.Volume{}, err
	}
	data, err := sponge.Marshal(doc)
	if err != nil {
		return domain.Volume{}, err
	}
	decodedDoc, err := sponge.Unmarshal(data)
	if err != nil {
		return domain.Volume{}, err
	}
	schematic, err := sponge.Decode(decodedDoc)
	if err != nil {
		return domain.Volume{}, err
	}
	return schematic.Volume, nil
}
