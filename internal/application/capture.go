package application

import (
	"context"
	"fmt"

	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/bnema/voxel-schematics/internal/ports"
)

// Capture reads box from the world into a clipboard volume anchored at
// origin. The world is only read.
func Capture(ctx context.Context, world ports.World, box domain.Box, origin domain.Vec3i) (domain.Volume, error) {
	region, err := world.ReadRegion(ctx, box)
	if err != nil {
		return domain.Volume{}, fmt.Errorf("read region %s..%s: %w", box.Min, box.Max, err)
	}
	if len(region.Blocks) != box.Volume() {
		return domain.Volume{}, fmt.Errorf("read region %s..%s: world returned %d blocks, want %d", box.Min, box.Max, len(region.Blocks), box.Volume())
	}

	volume := domain.Volume{
		Size:   box.Size(),
		Offset: box.Min.Sub(origin),
		Blocks: append([]domain.BlockState(nil), region.Blocks...),
	}

	for _, entity := range region.BlockEntities {
		if !box.Contains(entity.Pos) {
			continue
		}
		volume.BlockEntities = append(volume.BlockEntities, domain.BlockEntity{
			Pos:  entity.Pos.Sub(box.Min),
			ID:   entity.ID,
			Data: entity.Data.Clone(),
		})
	}

	for _, entity := range region.Entities {
		volume.Entities = append(volume.Entities, domain.Entity{
			ID:   entity.ID,
			Pos:  entity.Pos.Sub(box.Min),
			Data: entity.Data.Clone(),
		})
	}

	return volume, nil
}
