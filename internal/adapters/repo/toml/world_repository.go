package toml

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/bnema/voxel-schematics/internal/ports"
)

// WorldRepository is a sparse voxel world kept in a single TOML file.
// Positions without a block entry hold air.
type WorldRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.World = (*WorldRepository)(nil)

func NewWorldRepository(path string) (*WorldRepository, error) {
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &WorldRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *WorldRepository) Path() string {
	return r.path
}

func (r *WorldRepository) ReadRegion(ctx context.Context, box domain.Box) (domain.Region, error) {
	if err := ctx.Err(); err != nil {
		return domain.Region{}, err
	}

	file, err := r.load(ctx)
	if err != nil {
		return domain.Region{}, err
	}

	size := box.Size()
	region := domain.Region{Box: box, Blocks: make([]domain.BlockState, box.Volume())}
	for i := range region.Blocks {
		region.Blocks[i] = domain.BlockAir
	}

	for _, block := range file.Blocks {
		p := domain.Vec3i{X: block.X, Y: block.Y, Z: block.Z}
		if !box.Contains(p) {
			continue
		}
		region.Blocks[domain.BlockIndex(size, p.Sub(box.Min))] = domain.BlockState(block.State)
	}

	for _, entity := range file.BlockEntities {
		p := domain.Vec3i{X: entity.X, Y: entity.Y, Z: entity.Z}
		if !box.Contains(p) {
			continue
		}
		data, err := payloadFromText(entity.Data)
		if err != nil {
			return domain.Region{}, fmt.Errorf("decode block entity at %s: %w", p, err)
		}
		region.BlockEntities = append(region.BlockEntities, domain.BlockEntity{Pos: p, ID: entity.ID, Data: data})
	}

	for _, entity := range file.Entities {
		if !box.Contains(blockOf(entity.X, entity.Y, entity.Z)) {
			continue
		}
		data, err := payloadFromText(entity.Data)
		if err != nil {
			return domain.Region{}, fmt.Errorf("decode entity %q: %w", entity.ID, err)
		}
		region.Entities = append(region.Entities, domain.Entity{
			ID:   entity.ID,
			Pos:  domain.Position{X: entity.X, Y: entity.Y, Z: entity.Z},
			Data: data,
		})
	}

	return region, nil
}

// WriteRegion replaces every block and block entity inside region.Box,
// spawns the region's entities and appends a placement record carrying
// cause.
func (r *WorldRepository) WriteRegion(ctx context.Context, region domain.Region, cause domain.PlacementCause) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(region.Blocks) != region.Box.Volume() {
		return fmt.Errorf("write region: got %d blocks for a box of %d", len(region.Blocks), region.Box.Volume())
	}

	return r.update(ctx, func(file *worldFileSchema) error {
		writeRegion(file, region, cause)
		return nil
	})
}

func writeRegion(file *worldFileSchema, region domain.Region, cause domain.PlacementCause) {
	box := region.Box
	size := box.Size()

	blocks := file.Blocks[:0]
	for _, block := range file.Blocks {
		if !box.Contains(domain.Vec3i{X: block.X, Y: block.Y, Z: block.Z}) {
			blocks = append(blocks, block)
		}
	}
	for i, state := range region.Blocks {
		if state == domain.BlockAir || state == "" {
			continue
		}
		p := box.Min.Add(domain.BlockPosition(size, i))
		blocks = append(blocks, blockSchema{X: p.X, Y: p.Y, Z: p.Z, State: string(state)})
	}
	file.Blocks = blocks

	blockEntities := file.BlockEntities[:0]
	for _, entity := range file.BlockEntities {
		if !box.Contains(domain.Vec3i{X: entity.X, Y: entity.Y, Z: entity.Z}) {
			blockEntities = append(blockEntities, entity)
		}
	}
	for _, entity := range region.BlockEntities {
		blockEntities = append(blockEntities, blockEntitySchema{
			X:    entity.Pos.X,
			Y:    entity.Pos.Y,
			Z:    entity.Pos.Z,
			ID:   entity.ID,
			Data: payloadToText(entity.Data),
		})
	}
	file.BlockEntities = blockEntities

	for _, entity := range region.Entities {
		file.Entities = append(file.Entities, entitySchema{
			ID:   entity.ID,
			X:    entity.Pos.X,
			Y:    entity.Pos.Y,
			Z:    entity.Pos.Z,
			Data: payloadToText(entity.Data),
		})
	}

	file.Placements = append(file.Placements, placementSchema{
		Source:        cause.Source,
		SpawnType:     string(cause.SpawnType),
		Min:           vecToInts(box.Min),
		Max:           vecToInts(box.Max),
		Blocks:        len(region.Blocks),
		BlockEntities: len(region.BlockEntities),
		Entities:      len(region.Entities),
	})
}

func (r *WorldRepository) ActorPosition(ctx context.Context, id domain.ActorID) (domain.Vec3i, error) {
	actor, err := r.Actor(ctx, id)
	if err != nil {
		return domain.Vec3i{}, err
	}

	return actor.Position, nil
}

func (r *WorldRepository) ActorHeldItem(ctx context.Context, id domain.ActorID) (domain.ItemKind, error) {
	actor, err := r.Actor(ctx, id)
	if err != nil {
		return domain.ItemNone, err
	}

	return actor.HeldItem, nil
}

func (r *WorldRepository) ActorName(ctx context.Context, id domain.ActorID) (string, error) {
	actor, err := r.Actor(ctx, id)
	if err != nil {
		return "", err
	}

	return actor.Name, nil
}

func (r *WorldRepository) Actor(ctx context.Context, id domain.ActorID) (domain.Actor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Actor{}, err
	}

	file, err := r.load(ctx)
	if err != nil {
		return domain.Actor{}, err
	}

	for _, entry := range file.Actors {
		if entry.ID == id.String() {
			return fromActorSchema(entry)
		}
	}

	return domain.Actor{}, fmt.Errorf("%w: %s", domain.ErrActorNotFound, id)
}

// UpsertActor adds the actor or replaces the entry with the same id.
func (r *WorldRepository) UpsertActor(ctx context.Context, actor domain.Actor) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded := toActorSchema(actor)
	return r.update(ctx, func(file *worldFileSchema) error {
		for i := range file.Actors {
			if file.Actors[i].ID == encoded.ID {
				file.Actors[i] = encoded
				return nil
			}
		}
		file.Actors = append(file.Actors, encoded)
		return nil
	})
}

// SetBlock places a single block. Setting air removes the entry.
func (r *WorldRepository) SetBlock(ctx context.Context, p domain.Vec3i, state domain.BlockState) error {
	return r.WriteRegion(ctx, domain.Region{
		Box:    domain.Box{Min: p, Max: p},
		Blocks: []domain.BlockState{state},
	}, domain.PlacementCause{Source: "world", SpawnType: domain.SpawnTypeCustom})
}

func (r *WorldRepository) Block(ctx context.Context, p domain.Vec3i) (domain.BlockState, error) {
	region, err := r.ReadRegion(ctx, domain.Box{Min: p, Max: p})
	if err != nil {
		return "", err
	}

	return region.Blocks[0], nil
}

// Placements returns the change log in the order the writes happened.
func (r *WorldRepository) Placements(ctx context.Context) ([]domain.Placement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	placements := make([]domain.Placement, 0, len(file.Placements))
	for _, entry := range file.Placements {
		minCorner, err := vecFromInts(entry.Min)
		if err != nil {
			return nil, fmt.Errorf("decode placement: %w", err)
		}
		maxCorner, err := vecFromInts(entry.Max)
		if err != nil {
			return nil, fmt.Errorf("decode placement: %w", err)
		}
		placements = append(placements, domain.Placement{
			Cause: domain.PlacementCause{Source: entry.Source, SpawnType: domain.SpawnType(entry.SpawnType)},
			Box:   domain.Box{Min: minCorner, Max: maxCorner},
		})
	}

	return placements, nil
}

func (r *WorldRepository) load(ctx context.Context) (worldFileSchema, error) {
	var file worldFileSchema
	err := withFileLock(ctx, r.path, r.mu, false, func() error {
		var err error
		file, err = r.readSchema()
		return err
	})

	return file, err
}

// update applies mutate to the stored world and writes it back while every
// other writer, in this process or another, waits.
func (r *WorldRepository) update(ctx context.Context, mutate func(*worldFileSchema) error) error {
	return withFileLock(ctx, r.path, r.mu, true, func() error {
		file, err := r.readSchema()
		if err != nil {
			return err
		}
		if err := mutate(&file); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		return r.writeSchema(file)
	})
}

func (r *WorldRepository) readSchema() (worldFileSchema, error) {
	var file worldFileSchema
	if err := readTOML(r.path, "world", &file); err != nil {
		return worldFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return worldFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *WorldRepository) writeSchema(file worldFileSchema) error {
	file.applyDefaults()
	sort.SliceStable(file.Blocks, func(i, j int) bool {
		a, b := file.Blocks[i], file.Blocks[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})

	return writeTOML(r.path, "world", file)
}

func payloadToText(data domain.Payload) string {
	if len(data) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

func payloadFromText(text string) (domain.Payload, error) {
	if text == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	return data, nil
}

func toActorSchema(actor domain.Actor) actorSchema {
	return actorSchema{
		ID:       actor.ID.String(),
		Name:     actor.Name,
		X:        actor.Position.X,
		Y:        actor.Position.Y,
		Z:        actor.Position.Z,
		HeldItem: string(actor.HeldItem),
	}
}

func fromActorSchema(entry actorSchema) (domain.Actor, error) {
	id, err := domain.ParseActorID(entry.ID)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("decode actor %q: %w", entry.Name, err)
	}

	return domain.Actor{
		ID:       id,
		Name:     entry.Name,
		Position: domain.Vec3i{X: entry.X, Y: entry.Y, Z: entry.Z},
		HeldItem: domain.ItemKind(entry.HeldItem),
	}, nil
}

func blockOf(x, y, z float64) domain.Vec3i {
	return domain.Vec3i{X: int(math.Floor(x)), Y: int(math.Floor(y)), Z: int(math.Floor(z))}
}

func vecToInts(v domain.Vec3i) []int {
	return []int{v.X, v.Y, v.Z}
}

func vecFromInts(values []int) (domain.Vec3i, error) {
	if len(values) != 3 {
		return domain.Vec3i{}, fmt.Errorf("want 3 coordinates, got %d", len(values))
	}

	return domain.Vec3i{X: values[0], Y: values[1], Z: values[2]}, nil
}
