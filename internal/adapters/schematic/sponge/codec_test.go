package sponge

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/Tnze/go-mc/nbt"
	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = []domain.BlockState{
	domain.BlockAir,
	"minecraft:stone",
	"minecraft:oak_planks",
	"minecraft:glass",
	"minecraft:oak_stairs[facing=north,half=bottom]",
	"minecraft:chest[facing=east]",
}

type crateItem struct {
	Slot  int8   `nbt:"Slot"`
	ID    string `nbt:"id"`
	Count int8   `nbt:"Count"`
}

type crateData struct {
	CustomName string      `nbt:"CustomName"`
	Items      []crateItem `nbt:"Items"`
}

func cratePayload(t *testing.T, name string, slots int) domain.Payload {
	t.Helper()

	crate := crateData{CustomName: name, Items: make([]crateItem, slots)}
	for i := range crate.Items {
		crate.Items[i] = crateItem{Slot: int8(i), ID: "minecraft:bread", Count: int8(1 + i)}
	}

	data, err := EncodePayload(crate)
	require.NoError(t, err)
	return data
}

func randomVolume(t *testing.T, rng *rand.Rand) domain.Volume {
	t.Helper()

	size := domain.Vec3i{X: 1 + rng.IntN(5), Y: 1 + rng.IntN(5), Z: 1 + rng.IntN(5)}
	volume := domain.Volume{
		Size:   size,
		Offset: domain.Vec3i{X: rng.IntN(21) - 10, Y: rng.IntN(21) - 10, Z: rng.IntN(21) - 10},
		Blocks: make([]domain.BlockState, size.X*size.Y*size.Z),
	}
	for i := range volume.Blocks {
		volume.Blocks[i] = testPalette[rng.IntN(len(testPalette))]
	}
	for i := 0; i < rng.IntN(3); i++ {
		volume.BlockEntities = append(volume.BlockEntities, domain.BlockEntity{
			Pos:  domain.Vec3i{X: rng.IntN(size.X), Y: rng.IntN(size.Y), Z: rng.IntN(size.Z)},
			ID:   "minecraft:chest",
			Data: cratePayload(t, fmt.Sprintf("crate-%d", i), rng.IntN(4)),
		})
	}
	for i := 0; i < rng.IntN(3); i++ {
		entity := domain.Entity{
			ID:  "minecraft:armor_stand",
			Pos: domain.Position{X: rng.Float64() * float64(size.X), Y: 0.5, Z: rng.Float64() * float64(size.Z)},
		}
		if rng.IntN(2) == 0 {
			entity.Data = cratePayload(t, fmt.Sprintf("stand-%d", i), 1)
		}
		volume.Entities = append(volume.Entities, entity)
	}
	return volume
}

func TestEncodeDecodeRoundTripRandomVolumes(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 1337))
	meta := domain.SchematicMetadata{
		Name:   "fort",
		Author: "alice",
		Date:   time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
	}

	for i := 0; i < 100; i++ {
		volume := randomVolume(t, rng)

		doc, err := Encode(volume, meta)
		require.NoError(t, err)

		decoded, err := Decode(doc)
		require.NoError(t, err)
		assert.Equal(t, volume, decoded.Volume)
		assert.Equal(t, meta, decoded.Metadata)
	}
}

func TestEncodeBuildsDensePaletteInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	volume := domain.Volume{
		Size:   domain.Vec3i{X: 2, Y: 1, Z: 2},
		Blocks: []domain.BlockState{"minecraft:stone", domain.BlockAir, "minecraft:stone", "minecraft:glass"},
	}

	doc, err := Encode(volume, domain.SchematicMetadata{Name: "slab"})
	require.NoError(t, err)

	assert.Equal(t, int32(formatVersion), doc.Version)
	assert.Equal(t, map[string]int32{"minecraft:stone": 0, "minecraft:air": 1, "minecraft:glass": 2}, doc.Palette)
	assert.Equal(t, int32(3), doc.PaletteMax)
	assert.Equal(t, []byte{0, 1, 0, 2}, doc.BlockData)
	assert.Equal(t, int16(2), doc.Width)
	assert.Equal(t, int16(1), doc.Height)
	assert.Equal(t, int16(2), doc.Length)
	assert.Equal(t, int64(0), doc.Metadata.Date)
}

func TestEncodeDecodeLargePaletteUsesMultiByteVarints(t *testing.T) {
	t.Parallel()

	size := domain.Vec3i{X: 20, Y: 1, Z: 10}
	volume := domain.Volume{Size: size, Blocks: make([]domain.BlockState, 200)}
	for i := range volume.Blocks {
		volume.Blocks[i] = domain.BlockState(fmt.Sprintf("minecraft:wool_%03d", i))
	}

	doc, err := Encode(volume, domain.SchematicMetadata{})
	require.NoError(t, err)
	assert.Greater(t, len(doc.BlockData), 200)

	decoded, err := Decode(doc)
	require.NoError(t, err)
	assert.Equal(t, volume, decoded.Volume)
}

func TestEncodeRejectsInvalidVolume(t *testing.T) {
	t.Parallel()

	_, err := Encode(domain.Volume{Size: domain.Vec3i{X: 2, Y: 2, Z: 2}}, domain.SchematicMetadata{})
	assert.ErrorContains(t, err, "encode schematic volume")
}

func TestDecodeRejectsMalformedDocuments(t *testing.T) {
	t.Parallel()

	valid := func() Document {
		doc, err := Encode(domain.Volume{
			Size:   domain.Vec3i{X: 2, Y: 1, Z: 1},
			Blocks: []domain.BlockState{"minecraft:stone", domain.BlockAir},
		}, domain.SchematicMetadata{Name: "pair"})
		require.NoError(t, err)
		return doc
	}

	tests := []struct {
		name    string
		mutate  func(*Document)
		wantErr string
	}{
		{name: "zero width", mutate: func(d *Document) { d.Width = 0 }, wantErr: "dimensions"},
		{name: "missing offset", mutate: func(d *Document) { d.Offset = nil }, wantErr: "offset"},
		{name: "empty palette", mutate: func(d *Document) { d.Palette = nil }, wantErr: "palette is empty"},
		{name: "palette index out of range", mutate: func(d *Document) { d.Palette["minecraft:stone"] = 7 }, wantErr: "outside"},
		{name: "duplicate palette index", mutate: func(d *Document) { d.Palette["minecraft:air"] = 0 }, wantErr: "used twice"},
		{name: "short block data", mutate: func(d *Document) { d.BlockData = d.BlockData[:1] }, wantErr: "holds 1 blocks, want 2"},
		{name: "long block data", mutate: func(d *Document) { d.BlockData = append(d.BlockData, 0) }, wantErr: "more than 2 blocks"},
		{name: "block data index beyond palette", mutate: func(d *Document) { d.BlockData = []byte{0, 5} }, wantErr: "palette index 5"},
		{name: "truncated varint", mutate: func(d *Document) { d.BlockData = []byte{0, 0x80} }, wantErr: "malformed varint"},
		{
			name:    "block entity outside volume",
			mutate:  func(d *Document) { d.BlockEntities = []BlockEntityTag{{Pos: []int32{3, 0, 0}, ID: "minecraft:chest"}} },
			wantErr: "outside volume",
		},
		{
			name:    "block entity without id",
			mutate:  func(d *Document) { d.BlockEntities = []BlockEntityTag{{Pos: []int32{0, 0, 0}}} },
			wantErr: "no id",
		},
		{
			name:    "entity position of wrong shape",
			mutate:  func(d *Document) { d.Entities = []EntityTag{{Pos: []float64{1, 2}, ID: "minecraft:pig"}} },
			wantErr: "2 components",
		},
		{
			name: "block entity data that is not a compound",
			mutate: func(d *Document) {
				d.BlockEntities = []BlockEntityTag{{Pos: []int32{0, 0, 0}, ID: "minecraft:chest", Data: nbt.RawMessage{Type: nbt.TagString, Data: []byte{0, 1, 'x'}}}}
			},
			wantErr: "not a compound",
		},
		{name: "newer format version", mutate: func(d *Document) { d.Version = 3 }, wantErr: "unsupported schematic version"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := valid()
			tc.mutate(&doc)

			_, err := Decode(doc)
			require.ErrorIs(t, err, domain.ErrCorruptData)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDecodeKeepsNestedPayloadOpaque(t *testing.T) {
	t.Parallel()

	data := cratePayload(t, "loot", 3)
	doc, err := Encode(domain.Volume{
		Size:          domain.Vec3i{X: 1, Y: 1, Z: 1},
		Blocks:        []domain.BlockState{"minecraft:chest[facing=east]"},
		BlockEntities: []domain.BlockEntity{{ID: "minecraft:chest", Data: data}},
	}, domain.SchematicMetadata{Name: "loot"})
	require.NoError(t, err)

	decoded, err := Decode(doc)
	require.NoError(t, err)
	require.Len(t, decoded.Volume.BlockEntities, 1)
	assert.Equal(t, data, decoded.Volume.BlockEntities[0].Data)

	var crate crateData
	require.NoError(t, DecodePayload(decoded.Volume.BlockEntities[0].Data, &crate))
	assert.Equal(t, "loot", crate.CustomName)
	require.Len(t, crate.Items, 3)
	assert.Equal(t, int8(3), crate.Items[2].Count)
}

func TestEncodePayloadRejectsNonCompound(t *testing.T) {
	t.Parallel()

	_, err := EncodePayload("just a string")
	assert.ErrorIs(t, err, errPayloadNotCompound)
}

func TestEmptyPayloadDecodesAsEmptyCompound(t *testing.T) {
	t.Parallel()

	empty, err := EncodePayload(map[string]string{})
	require.NoError(t, err)
	assert.Nil(t, empty)

	var out map[string]string
	require.NoError(t, DecodePayload(nil, &out))
	assert.Empty(t, out)
}
