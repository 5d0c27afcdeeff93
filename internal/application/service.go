package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/bnema/voxel-schematics/internal/ports"
)

var ErrUnsupportedHand = errors.New("unsupported hand")

type ServiceOptions struct {
	Clock  ports.Clock
	Logger *slog.Logger
	// ToolItem is the item that turns block clicks into corner selections.
	ToolItem domain.ItemKind
}

// Service runs the selection, clipboard and schematic commands for actors.
type Service struct {
	sessions   ports.SessionStore
	world      ports.World
	schematics ports.SchematicStore
	clock      ports.Clock
	logger     *slog.Logger
	toolItem   domain.ItemKind
}

func NewService(sessions ports.SessionStore, world ports.World, schematics ports.SchematicStore, opts ServiceOptions) *Service {
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.ToolItem == domain.ItemNone {
		opts.ToolItem = domain.ItemWoodenAxe
	}

	return &Service{
		sessions:   sessions,
		world:      world,
		schematics: schematics,
		clock:      opts.Clock,
		logger:     opts.Logger,
		toolItem:   opts.ToolItem,
	}
}

func (s *Service) SetFirst(ctx context.Context, actor domain.ActorID, point domain.Vec3i) {
	s.sessions.GetOrCreate(actor).SetFirstCorner(point)
	s.logger.DebugContext(ctx, "first position set", "actor", actor.String(), "point", point.String())
}

func (s *Service) SetSecond(ctx context.Context, actor domain.ActorID, point domain.Vec3i) {
	s.sessions.GetOrCreate(actor).SetSecondCorner(point)
	s.logger.DebugContext(ctx, "second position set", "actor", actor.String(), "point", point.String())
}

// SetFirstAtActor sets the first corner to the block the actor stands on.
func (s *Service) SetFirstAtActor(ctx context.Context, actor domain.ActorID) (domain.Vec3i, error) {
	position, err := s.world.ActorPosition(ctx, actor)
	if err != nil {
		return domain.Vec3i{}, fmt.Errorf("get actor position: %w", err)
	}

	s.SetFirst(ctx, actor, position)
	return position, nil
}

// SetSecondAtActor sets the second corner to the block the actor stands on.
func (s *Service) SetSecondAtActor(ctx context.Context, actor domain.ActorID) (domain.Vec3i, error) {
	position, err := s.world.ActorPosition(ctx, actor)
	if err != nil {
		return domain.Vec3i{}, fmt.Errorf("get actor position: %w", err)
	}

	s.SetSecond(ctx, actor, position)
	return position, nil
}

// Interact handles a block click. Only clicks made while holding the tool
// item select corners; anything else is left to the world.
func (s *Service) Interact(ctx context.Context, cmd InteractCommand) (InteractResult, error) {
	if !cmd.Hand.Valid() {
		return InteractResult{}, fmt.Errorf("%w: %q", ErrUnsupportedHand, cmd.Hand)
	}

	held, err := s.world.ActorHeldItem(ctx, cmd.Actor)
	if err != nil {
		return InteractResult{}, fmt.Errorf("get actor held item: %w", err)
	}
	if held != s.toolItem {
		return InteractResult{}, nil
	}

	switch cmd.Hand {
	case HandPrimary:
		s.SetFirst(ctx, cmd.Actor, cmd.Block)
		return InteractResult{Handled: true, Corner: 1}, nil
	default:
		s.SetSecond(ctx, cmd.Actor, cmd.Block)
		return InteractResult{Handled: true, Corner: 2}, nil
	}
}

// Copy captures the actor's selection into their clipboard, anchored at the
// actor's current position.
func (s *Service) Copy(ctx context.Context, actor domain.ActorID) (domain.Volume, error) {
	session := s.sessions.GetOrCreate(actor)

	box, err := session.Selection()
	if err != nil {
		return domain.Volume{}, fmt.Errorf("copy selection: %w", err)
	}

	origin, err := s.world.ActorPosition(ctx, actor)
	if err != nil {
		return domain.Volume{}, fmt.Errorf("get actor position: %w", err)
	}

	volume, err := Capture(ctx, s.world, box, origin)
	if err != nil {
		return domain.Volume{}, fmt.Errorf("capture selection: %w", err)
	}

	session.SetClipboard(volume, origin)
	s.logger.InfoContext(ctx, "clipboard captured",
		"actor", actor.String(),
		"min", box.Min.String(),
		"max", box.Max.String(),
		"origin", origin.String(),
	)

	return volume, nil
}

// Paste applies the actor's clipboard at the actor's current position and
// returns the box that was written.
func (s *Service) Paste(ctx context.Context, actor domain.ActorID) (domain.Box, error) {
	volume, ok := s.sessions.GetOrCreate(actor).Clipboard()
	if !ok {
		return domain.Box{}, fmt.Errorf("paste clipboard: %w", domain.ErrEmptyClipboard)
	}

	target, err := s.world.ActorPosition(ctx, actor)
	if err != nil {
		return domain.Box{}, fmt.Errorf("get actor position: %w", err)
	}

	box, err := Paste(ctx, s.world, volume, target, pasteCause())
	if err != nil {
		return domain.Box{}, fmt.Errorf("paste clipboard: %w", err)
	}

	s.logger.InfoContext(ctx, "clipboard pasted",
		"actor", actor.String(),
		"target", target.String(),
		"min", box.Min.String(),
		"max", box.Max.String(),
	)

	return box, nil
}

// Save writes the actor's clipboard as a new named schematic and returns
// the path it was written to. Surrounding whitespace is not part of a name.
func (s *Service) Save(ctx context.Context, actor domain.ActorID, name string) (string, error) {
	name = strings.TrimSpace(name)
	volume, ok := s.sessions.GetOrCreate(actor).Clipboard()
	if !ok {
		return "", fmt.Errorf("save schematic: %w", domain.ErrEmptyClipboard)
	}

	author, err := s.world.ActorName(ctx, actor)
	if err != nil {
		return "", fmt.Errorf("get actor name: %w", err)
	}

	path, err := s.schematics.Save(ctx, name, domain.Schematic{
		Metadata: domain.SchematicMetadata{
			Name:   name,
			Author: author,
			Date:   s.clock.Now(),
		},
		Volume: volume,
	})
	if err != nil {
		return "", fmt.Errorf("save schematic %q: %w", name, err)
	}

	s.logger.InfoContext(ctx, "schematic saved", "actor", actor.String(), "name", name, "path", path)
	return path, nil
}

// Load replaces the actor's clipboard with a stored schematic, anchored at
// the actor's current position rather than anything recorded in the file.
func (s *Service) Load(ctx context.Context, actor domain.ActorID, name string) (domain.Schematic, error) {
	name = strings.TrimSpace(name)
	schematic, err := s.schematics.Load(ctx, name)
	if err != nil {
		return domain.Schematic{}, fmt.Errorf("load schematic %q: %w", name, err)
	}

	origin, err := s.world.ActorPosition(ctx, actor)
	if err != nil {
		return domain.Schematic{}, fmt.Errorf("get actor position: %w", err)
	}

	s.sessions.GetOrCreate(actor).SetClipboard(schematic.Volume, origin)
	s.logger.InfoContext(ctx, "schematic loaded",
		"actor", actor.String(),
		"name", name,
		"author", schematic.Metadata.Author,
		"origin", origin.String(),
	)

	return schematic, nil
}

func (s *Service) ListSchematics(ctx context.Context) ([]string, error) {
	names, err := s.schematics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schematics: %w", err)
	}

	return names, nil
}

func (s *Service) Status(_ context.Context, actor domain.ActorID) SessionStatus {
	return statusFromSession(s.sessions.GetOrCreate(actor))
}
