package sponge

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Tnze/go-mc/nbt"
	"github.com/bnema/voxel-schematics/internal/domain"
)

var errPayloadNotCompound = errors.New("payload is not a compound tag")

// EncodePayload serializes v (a struct or map) into the compound body stored
// as block entity or entity data.
func EncodePayload(v any) (domain.Payload, error) {
	var buf bytes.Buffer
	if err := nbt.NewEncoder(&buf).Encode(v, ""); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	// Type byte, then a two byte name length of zero, then the body.
	raw := buf.Bytes()
	if len(raw) < 3 || raw[0] != nbt.TagCompound {
		return nil, fmt.Errorf("encode payload: %w", errPayloadNotCompound)
	}

	return payloadOf(nbt.RawMessage{Type: raw[0], Data: raw[3:]})
}

// DecodePayload is the inverse of EncodePayload. An empty payload decodes
// as an empty compound.
func DecodePayload(data domain.Payload, v any) error {
	if err := rawPayload(data).Unmarshal(v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

func rawPayload(data domain.Payload) nbt.RawMessage {
	if len(data) == 0 {
		return nbt.RawMessage{Type: nbt.TagCompound, Data: []byte{nbt.TagEnd}}
	}
	return nbt.RawMessage{Type: nbt.TagCompound, Data: data}
}

func payloadOf(msg nbt.RawMessage) (domain.Payload, error) {
	switch {
	case msg.Type == nbt.TagEnd:
		return nil, nil
	case msg.Type != nbt.TagCompound:
		return nil, errPayloadNotCompound
	case bytes.Equal(msg.Data, []byte{nbt.TagEnd}):
		return nil, nil
	}
	return bytes.Clone(msg.Data), nil
}
