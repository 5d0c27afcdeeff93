package sponge

import "github.com/Tnze/go-mc/nbt"

const (
	formatVersion = 2
	// dataVersion is the world data version stamped into new files (1.20.1).
	dataVersion  = 3465
	rootTagName  = "Schematic"
	maxDimension = 1<<16 - 1
)

// Document is the NBT tree of a Sponge schematic (format version 2).
// Width, Height and Length are unsigned shorts stored in int16 fields.
type Document struct {
	Version       int32            `nbt:"Version"`
	DataVersion   int32            `nbt:"DataVersion"`
	Metadata      MetadataTag      `nbt:"Metadata"`
	Width         int16            `nbt:"Width"`
	Height        int16            `nbt:"Height"`
	Length        int16            `nbt:"Length"`
	Offset        []int32          `nbt:"Offset"`
	PaletteMax    int32            `nbt:"PaletteMax"`
	Palette       map[string]int32 `nbt:"Palette"`
	BlockData     []byte           `nbt:"BlockData"`
	BlockEntities []BlockEntityTag `nbt:"BlockEntities"`
	Entities      []EntityTag      `nbt:"Entities"`
}

type MetadataTag struct {
	Name   string `nbt:"Name"`
	Author string `nbt:"Author"`
	// Date is milliseconds since the Unix epoch, 0 when unknown.
	Date int64 `nbt:"Date"`
}

// BlockEntityTag and EntityTag keep Data as the undecoded compound so any
// nesting (inventories, passengers) loads and saves byte for byte.
type BlockEntityTag struct {
	Pos  []int32        `nbt:"Pos"`
	ID   string         `nbt:"Id"`
	Data nbt.RawMessage `nbt:"Data"`
}

type EntityTag struct {
	Pos  []float64      `nbt:"Pos"`
	ID   string         `nbt:"Id"`
	Data nbt.RawMessage `nbt:"Data"`
}
