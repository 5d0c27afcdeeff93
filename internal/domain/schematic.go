package domain

import "time"

type SchematicMetadata struct {
	Name   string
	Author string
	Date   time.Time
}

// Schematic is a clipboard volume plus the metadata written alongside it.
type Schematic struct {
	Metadata SchematicMetadata
	Volume   Volume
}

// SpawnType tags why blocks or entities appeared in the world.
type SpawnType string

const (
	SpawnTypePlacement SpawnType = "placement"
	SpawnTypeCustom    SpawnType = "custom"
)

// PlacementCause lets world-change listeners tell a schematic paste apart
// from organic placement.
type PlacementCause struct {
	Source    string
	SpawnType SpawnType
}

// Placement is one recorded world write.
type Placement struct {
	Cause PlacementCause
	Box   Box
}
