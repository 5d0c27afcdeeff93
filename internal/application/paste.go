package application

import (
	"context"
	"fmt"

	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/bnema/voxel-schematics/internal/ports"
)

// PlacementSource is the cause source attached to every paste.
const PlacementSource = "voxel-schematics"

// Paste writes volume into the world so that the origin it was captured
// around lands on target. The whole cuboid is replaced, air included. A
// failure part way through leaves the world as the collaborator left it.
func Paste(ctx context.Context, world ports.World, volume domain.Volume, target domain.Vec3i, cause domain.PlacementCause) (domain.Box, error) {
	minCorner := target.Add(volume.Offset)
	region := domain.Region{
		Box:    domain.BoxAt(minCorner, volume.Size),
		Blocks: append([]domain.BlockState(nil), volume.Blocks...),
	}

	for _, entity := range volume.BlockEntities {
		region.BlockEntities = append(region.BlockEntities, domain.BlockEntity{
			Pos:  entity.Pos.Add(minCorner),
			ID:   entity.ID,
			Data: entity.Data.Clone(),
		})
	}

	for _, entity := range volume.Entities {
		region.Entities = append(region.Entities, domain.Entity{
			ID:   entity.ID,
			Pos:  entity.Pos.Add(minCorner),
			Data: entity.Data.Clone(),
		})
	}

	if err := world.WriteRegion(ctx, region, cause); err != nil {
		return domain.Box{}, fmt.Errorf("%w: write region %s..%s: %w", domain.ErrIoFailure, region.Box.Min, region.Box.Max, err)
	}

	return region.Box, nil
}

func pasteCause() domain.PlacementCause {
	return domain.PlacementCause{Source: PlacementSource, SpawnType: domain.SpawnTypePlacement}
}
