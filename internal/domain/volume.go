package domain

import (
	"fmt"
	"slices"
)

// BlockState is a namespaced block state such as "minecraft:oak_stairs[facing=north]".
type BlockState string

const BlockAir BlockState = "minecraft:air"

// Payload is the serialized compound carried by a block entity or entity.
// It is opaque here: capture, save, load and paste move it untouched, so
// nested data such as container inventories survives. Nil means no data.
type Payload []byte

func (p Payload) Clone() Payload {
	return slices.Clone(p)
}

// BlockEntity is extra data attached to a single block (chests, signs, ...).
// Pos is absolute inside a Region and relative to the minimum corner inside a Volume.
type BlockEntity struct {
	Pos  Vec3i
	ID   string
	Data Payload
}

// Position is a continuous entity position.
type Position struct {
	X float64
	Y float64
	Z float64
}

func (p Position) Add(v Vec3i) Position {
	return Position{X: p.X + float64(v.X), Y: p.Y + float64(v.Y), Z: p.Z + float64(v.Z)}
}

func (p Position) Sub(v Vec3i) Position {
	return Position{X: p.X - float64(v.X), Y: p.Y - float64(v.Y), Z: p.Z - float64(v.Z)}
}

// Entity is a free-standing world object (armor stand, item frame, mob).
// Pos follows the same absolute/relative convention as BlockEntity.
type Entity struct {
	ID   string
	Pos  Position
	Data Payload
}

// Region is the raw world content of a cuboid with absolute coordinates.
// Blocks is dense in BlockIndex order.
type Region struct {
	Box           Box
	Blocks        []BlockState
	BlockEntities []BlockEntity
	Entities      []Entity
}

// Volume is a clipboard: a captured cuboid stored relative to its minimum
// corner. Offset is the minimum corner minus the origin it was captured
// around, so pasting at a target point puts the volume's minimum corner at
// target+Offset.
type Volume struct {
	Size          Vec3i
	Offset        Vec3i
	Blocks        []BlockState
	BlockEntities []BlockEntity
	Entities      []Entity
}

func (v Volume) BlockAt(rel Vec3i) BlockState {
	return v.Blocks[BlockIndex(v.Size, rel)]
}

// Validate reports shape errors that would make the volume unusable.
func (v Volume) Validate() error {
	if v.Size.X <= 0 || v.Size.Y <= 0 || v.Size.Z <= 0 {
		return fmt.Errorf("volume size %s must be positive on every axis", v.Size)
	}
	if want := v.Size.X * v.Size.Y * v.Size.Z; len(v.Blocks) != want {
		return fmt.Errorf("volume holds %d blocks, want %d", len(v.Blocks), want)
	}
	bounds := BoxAt(Vec3i{}, v.Size)
	for _, entity := range v.BlockEntities {
		if !bounds.Contains(entity.Pos) {
			return fmt.Errorf("block entity %q at %s lies outside volume %s", entity.ID, entity.Pos, v.Size)
		}
	}

	return nil
}
