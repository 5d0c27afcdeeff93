package ports

import (
	"context"

	"github.com/bnema/voxel-schematics/internal/domain"
)

// World is the voxel world this tool reads from and pastes into.
type World interface {
	ReadRegion(ctx context.Context, box domain.Box) (domain.Region, error)
	WriteRegion(ctx context.Context, region domain.Region, cause domain.PlacementCause) error
	ActorPosition(ctx context.Context, id domain.ActorID) (domain.Vec3i, error)
	ActorHeldItem(ctx context.Context, id domain.ActorID) (domain.ItemKind, error)
	ActorName(ctx context.Context, id domain.ActorID) (string, error)
}
