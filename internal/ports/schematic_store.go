package ports

import (
	"context"

	"github.com/bnema/voxel-schematics/internal/domain"
)

// SchematicStore keeps named schematics on stable storage.
type SchematicStore interface {
	// Save writes a new schematic and returns the path it was written to.
	// It never overwrites an existing schematic.
	Save(ctx context.Context, name string, schematic domain.Schematic) (string, error)
	Load(ctx context.Context, name string) (domain.Schematic, error)
	List(ctx context.Context) ([]string, error)
}
