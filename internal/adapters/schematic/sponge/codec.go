package sponge

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/bnema/voxel-schematics/internal/domain"
)

// Encode wraps a clipboard volume and its metadata into a schematic document.
func Encode(volume domain.Volume, meta domain.SchematicMetadata) (Document, error) {
	if err := volume.Validate(); err != nil {
		return Document{}, fmt.Errorf("encode schematic volume: %w", err)
	}
	if volume.Size.X > maxDimension || volume.Size.Y > maxDimension || volume.Size.Z > maxDimension {
		return Document{}, fmt.Errorf("encode schematic volume: size %s exceeds %d on some axis", volume.Size, maxDimension)
	}

	palette := map[string]int32{}
	blockData := make([]byte, 0, len(volume.Blocks))
	for _, state := range volume.Blocks {
		id, ok := palette[string(state)]
		if !ok {
			id = int32(len(palette))
			palette[string(state)] = id
		}
		blockData = binary.AppendUvarint(blockData, uint64(id))
	}

	blockEntities := make([]BlockEntityTag, 0, len(volume.BlockEntities))
	for _, entity := range volume.BlockEntities {
		blockEntities = append(blockEntities, BlockEntityTag{
			Pos:  []int32{int32(entity.Pos.X), int32(entity.Pos.Y), int32(entity.Pos.Z)},
			ID:   entity.ID,
			Data: rawPayload(entity.Data),
		})
	}

	entities := make([]EntityTag, 0, len(volume.Entities))
	for _, entity := range volume.Entities {
		entities = append(entities, EntityTag{
			Pos:  []float64{entity.Pos.X, entity.Pos.Y, entity.Pos.Z},
			ID:   entity.ID,
			Data: rawPayload(entity.Data),
		})
	}

	return Document{
		Version:     formatVersion,
		DataVersion: dataVersion,
		Metadata: MetadataTag{
			Name:   meta.Name,
			Author: meta.Author,
			Date:   encodeDate(meta.Date),
		},
		Width:         int16(uint16(volume.Size.X)),
		Height:        int16(uint16(volume.Size.Y)),
		Length:        int16(uint16(volume.Size.Z)),
		Offset:        []int32{int32(volume.Offset.X), int32(volume.Offset.Y), int32(volume.Offset.Z)},
		PaletteMax:    int32(len(palette)),
		Palette:       palette,
		BlockData:     blockData,
		BlockEntities: blockEntities,
		Entities:      entities,
	}, nil
}

// Decode is the inverse of Encode. Any missing or malformed field yields
// domain.ErrCorruptData.
func Decode(doc Document) (domain.Schematic, error) {
	if doc.Version > formatVersion {
		return domain.Schematic{}, corruptf("unsupported schematic version %d (current %d)", doc.Version, formatVersion)
	}

	size := domain.Vec3i{
		X: int(uint16(doc.Width)),
		Y: int(uint16(doc.Height)),
		Z: int(uint16(doc.Length)),
	}
	if size.X == 0 || size.Y == 0 || size.Z == 0 {
		return domain.Schematic{}, corruptf("schematic dimensions %s must be positive", size)
	}

	offset, err := vecFromInts(doc.Offset)
	if err != nil {
		return domain.Schematic{}, corruptf("offset: %v", err)
	}

	states, err := paletteStates(doc.Palette)
	if err != nil {
		return domain.Schematic{}, err
	}

	blocks, err := decodeBlockData(doc.BlockData, states, size.X*size.Y*size.Z)
	if err != nil {
		return domain.Schematic{}, err
	}

	var blockEntities []domain.BlockEntity
	for i, tag := range doc.BlockEntities {
		pos, err := vecFromInts(tag.Pos)
		if err != nil {
			return domain.Schematic{}, corruptf("block entity %d position: %v", i, err)
		}
		if tag.ID == "" {
			return domain.Schematic{}, corruptf("block entity %d has no id", i)
		}
		data, err := payloadOf(tag.Data)
		if err != nil {
			return domain.Schematic{}, corruptf("block entity %d data: %v", i, err)
		}
		blockEntities = append(blockEntities, domain.BlockEntity{Pos: pos, ID: tag.ID, Data: data})
	}

	var entities []domain.Entity
	for i, tag := range doc.Entities {
		if len(tag.Pos) != 3 {
			return domain.Schematic{}, corruptf("entity %d position has %d components, want 3", i, len(tag.Pos))
		}
		if tag.ID == "" {
			return domain.Schematic{}, corruptf("entity %d has no id", i)
		}
		data, err := payloadOf(tag.Data)
		if err != nil {
			return domain.Schematic{}, corruptf("entity %d data: %v", i, err)
		}
		entities = append(entities, domain.Entity{
			ID:   tag.ID,
			Pos:  domain.Position{X: tag.Pos[0], Y: tag.Pos[1], Z: tag.Pos[2]},
			Data: data,
		})
	}

	volume := domain.Volume{
		Size:          size,
		Offset:        offset,
		Blocks:        blocks,
		BlockEntities: blockEntities,
		Entities:      entities,
	}
	if err := volume.Validate(); err != nil {
		return domain.Schematic{}, fmt.Errorf("%w: %w", domain.ErrCorruptData, err)
	}

	return domain.Schematic{
		Metadata: domain.SchematicMetadata{
			Name:   doc.Metadata.Name,
			Author: doc.Metadata.Author,
			Date:   decodeDate(doc.Metadata.Date),
		},
		Volume: volume,
	}, nil
}

func paletteStates(palette map[string]int32) ([]domain.BlockState, error) {
	if len(palette) == 0 {
		return nil, corruptf("palette is empty")
	}

	states := make([]domain.BlockState, len(palette))
	filled := make([]bool, len(palette))
	for name, id := range palette {
		if id < 0 || int(id) >= len(states) {
			return nil, corruptf("palette entry %q has index %d outside [0, %d)", name, id, len(states))
		}
		if filled[id] {
			return nil, corruptf("palette index %d is used twice", id)
		}
		states[id] = domain.BlockState(name)
		filled[id] = true
	}

	return states, nil
}

func decodeBlockData(data []byte, states []domain.BlockState, total int) ([]domain.BlockState, error) {
	blocks := make([]domain.BlockState, 0, total)
	for len(data) > 0 {
		id, n := binary.Uvarint(data)
		if n <= 0 {
			return nil, corruptf("block data has a malformed varint at block %d", len(blocks))
		}
		if id >= uint64(len(states)) {
			return nil, corruptf("block %d references palette index %d, palette has %d entries", len(blocks), id, len(states))
		}
		if len(blocks) == total {
			return nil, corruptf("block data holds more than %d blocks", total)
		}
		blocks = append(blocks, states[id])
		data = data[n:]
	}

	if len(blocks) != total {
		return nil, corruptf("block data holds %d blocks, want %d", len(blocks), total)
	}

	return blocks, nil
}

func vecFromInts(values []int32) (domain.Vec3i, error) {
	if len(values) != 3 {
		return domain.Vec3i{}, fmt.Errorf("got %d components, want 3", len(values))
	}

	return domain.Vec3i{X: int(values[0]), Y: int(values[1]), Z: int(values[2])}, nil
}

func encodeDate(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UnixMilli()
}

func decodeDate(millis int64) time.Time {
	if millis == 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis).UTC()
}

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrCorruptData, fmt.Sprintf(format, args...))
}
