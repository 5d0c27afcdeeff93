package application

import "github.com/bnema/voxel-schematics/internal/domain"

// Hand is the mouse button the actor clicked a block with.
type Hand string

const (
	HandPrimary   Hand = "primary"
	HandSecondary Hand = "secondary"
)

func (h Hand) Valid() bool {
	switch h {
	case HandPrimary, HandSecondary:
		return true
	default:
		return false
	}
}

type InteractCommand struct {
	Actor domain.ActorID
	Hand  Hand
	Block domain.Vec3i
}

// InteractResult reports whether the interaction was a selection-tool click
// and, if so, which corner (1 or 2) it set.
type InteractResult struct {
	Handled bool
	Corner  int
}
