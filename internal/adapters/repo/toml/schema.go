package toml

import "fmt"

const (
	currentWorldSchemaVersion   = 1
	currentSessionSchemaVersion = 1
)

type worldFileSchema struct {
	Version       int                 `toml:"version"`
	Blocks        []blockSchema       `toml:"blocks"`
	BlockEntities []blockEntitySchema `toml:"block_entities"`
	Entities      []entitySchema      `toml:"entities"`
	Actors        []actorSchema       `toml:"actors"`
	Placements    []placementSchema   `toml:"placements"`
}

func (s *worldFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentWorldSchemaVersion
	}
}

func (s worldFileSchema) validateVersion() error {
	if s.Version > currentWorldSchemaVersion {
		return fmt.Errorf("unsupported world schema version %d (current %d)", s.Version, currentWorldSchemaVersion)
	}

	return nil
}

type blockSchema struct {
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
	Z     int    `toml:"z"`
	State string `toml:"state"`
}

// blockEntitySchema and entitySchema keep Data as the base64 of the opaque
// payload.
type blockEntitySchema struct {
	X    int    `toml:"x"`
	Y    int    `toml:"y"`
	Z    int    `toml:"z"`
	ID   string `toml:"id"`
	Data string `toml:"data,omitempty"`
}

type entitySchema struct {
	ID   string  `toml:"id"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
	Z    float64 `toml:"z"`
	Data string  `toml:"data,omitempty"`
}

type actorSchema struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	X        int    `toml:"x"`
	Y        int    `toml:"y"`
	Z        int    `toml:"z"`
	HeldItem string `toml:"held_item,omitempty"`
}

type placementSchema struct {
	Source        string `toml:"source"`
	SpawnType     string `toml:"spawn_type"`
	Min           []int  `toml:"min"`
	Max           []int  `toml:"max"`
	Blocks        int    `toml:"blocks"`
	BlockEntities int    `toml:"block_entities"`
	Entities      int    `toml:"entities"`
}

type sessionFileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *sessionFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSessionSchemaVersion
	}
}

func (s sessionFileSchema) validateVersion() error {
	if s.Version > currentSessionSchemaVersion {
		return fmt.Errorf("unsupported sessions schema version %d (current %d)", s.Version, currentSessionSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ActorID      string `toml:"actor_id"`
	FirstCorner  []int  `toml:"first_corner,omitempty"`
	SecondCorner []int  `toml:"second_corner,omitempty"`
	Origin       []int  `toml:"origin,omitempty"`
	// Clipboard is the base64 of the gzip-compressed schematic bytes.
	Clipboard string `toml:"clipboard,omitempty"`
}
