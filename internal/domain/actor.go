package domain

import (
	"strings"

	"github.com/google/uuid"
)

// ActorID identifies an actor for its whole lifetime.
type ActorID uuid.UUID

// actorNamespace seeds name-derived actor ids so the same name always maps
// to the same id across runs.
var actorNamespace = uuid.MustParse("5c7e3b2a-8f0d-4a51-9b6e-2d4f1c0a9e37")

func NewActorID() ActorID {
	return ActorID(uuid.New())
}

// ActorIDFromName derives a stable id from a case-insensitive actor name.
func ActorIDFromName(name string) ActorID {
	normalized := strings.ToLower(strings.TrimSpace(name))
	return ActorID(uuid.NewSHA1(actorNamespace, []byte(normalized)))
}

// ResolveActorID accepts either a literal UUID or an actor name.
func ResolveActorID(raw string) ActorID {
	if parsed, err := uuid.Parse(strings.TrimSpace(raw)); err == nil {
		return ActorID(parsed)
	}

	return ActorIDFromName(raw)
}

func ParseActorID(raw string) (ActorID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ActorID{}, err
	}

	return ActorID(parsed), nil
}

func (id ActorID) String() string {
	return uuid.UUID(id).String()
}

type ItemKind string

const (
	ItemNone      ItemKind = ""
	ItemWoodenAxe ItemKind = "minecraft:wooden_axe"
)

type Actor struct {
	ID       ActorID
	Name     string
	Position Vec3i
	HeldItem ItemKind
}
