package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	statusadapter "github.com/bnema/voxel-schematics/internal/adapters/render/status"
	tomlrepo "github.com/bnema/voxel-schematics/internal/adapters/repo/toml"
	"github.com/bnema/voxel-schematics/internal/adapters/schematic/sponge"
	"github.com/bnema/voxel-schematics/internal/adapters/session/memory"
	"github.com/bnema/voxel-schematics/internal/application"
	"github.com/bnema/voxel-schematics/internal/config"
	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/bnema/voxel-schematics/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg            config.Config
	service        *application.Service
	world          *tomlrepo.WorldRepository
	sessions       *memory.Store
	sessionRepo    ports.SessionRepository
	statusRenderer func(application.SessionStatus, statusadapter.RenderOptions) (string, error)
	logLevel       *slog.LevelVar
	logger         *slog.Logger
	flags          *globalFlags
}

type globalFlags struct {
	actor   string
	verbose bool
}

func wireApp(flags *globalFlags) (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logLevel := &slog.LevelVar{}
	logLevel.Set(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	schematics, err := sponge.NewStore(cfg.SchematicsDir)
	if err != nil {
		return nil, fmt.Errorf("wire schematic store: %w", err)
	}

	world, err := tomlrepo.NewWorldRepository(cfg.WorldPath)
	if err != nil {
		return nil, fmt.Errorf("wire world repository: %w", err)
	}

	sessionRepo, err := tomlrepo.NewSessionRepository(cfg.SessionsPath)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	sessions := memory.NewStore()
	if err := application.RestoreSessions(context.Background(), sessionRepo, sessions); err != nil {
		return nil, err
	}

	service := application.NewService(sessions, world, schematics, application.ServiceOptions{
		Clock:    ports.SystemClock{},
		Logger:   logger,
		ToolItem: cfg.ToolItem,
	})

	return &app{
		cfg:            cfg,
		service:        service,
		world:          world,
		sessions:       sessions,
		sessionRepo:    sessionRepo,
		statusRenderer: statusadapter.Render,
		logLevel:       logLevel,
		logger:         logger,
		flags:          flags,
	}, nil
}

// actor resolves --actor, falling back to the configured actor. Names map to
// stable ids; literal UUIDs are used as is.
func (a *app) actor() (domain.ActorID, string) {
	raw := strings.TrimSpace(a.flags.actor)
	if raw == "" {
		raw = a.cfg.Actor
	}

	return domain.ResolveActorID(raw), raw
}

// persistSession writes back the current actor's session. Other actors'
// saved sessions are left as they are on disk.
func (a *app) persistSession(ctx context.Context) error {
	id, name := a.actor()
	if err := application.PersistSession(ctx, a.sessionRepo, a.sessions, id); err != nil {
		return err
	}

	a.logger.DebugContext(ctx, "session persisted", "actor", name, "id", id.String())
	return nil
}
