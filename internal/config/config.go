package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".schematics"
	envPrefix  = "SCHEM"

	SchematicsDirKey = "schematics.dir"
	WorldPathKey     = "world.path"
	SessionsPathKey  = "sessions.path"
	ToolItemKey      = "tool.item"
	LogLevelKey      = "log.level"
	ActorKey         = "actor"
)

type Config struct {
	SchematicsDir string
	WorldPath     string
	SessionsPath  string
	ToolItem      domain.ItemKind
	LogLevel      slog.Level
	Actor         string
}

// Load reads config.toml from $HOME/.schematics, applies SCHEM_* environment
// overrides and fills in defaults. A missing config file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(baseDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(SchematicsDirKey, filepath.Join(baseDir, "schematics"))
	cfg.SetDefault(WorldPathKey, filepath.Join(baseDir, "world.toml"))
	cfg.SetDefault(SessionsPathKey, filepath.Join(baseDir, "sessions.toml"))
	cfg.SetDefault(ToolItemKey, string(domain.ItemWoodenAxe))
	cfg.SetDefault(LogLevelKey, "warn")
	cfg.SetDefault(ActorKey, "operator")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	level, err := parseLevel(cfg.GetString(LogLevelKey))
	if err != nil {
		return Config{}, err
	}

	loaded := Config{
		SchematicsDir: cfg.GetString(SchematicsDirKey),
		WorldPath:     cfg.GetString(WorldPathKey),
		SessionsPath:  cfg.GetString(SessionsPathKey),
		ToolItem:      domain.ItemKind(strings.TrimSpace(cfg.GetString(ToolItemKey))),
		LogLevel:      level,
		Actor:         strings.TrimSpace(cfg.GetString(ActorKey)),
	}

	for key, value := range map[string]string{
		SchematicsDirKey: loaded.SchematicsDir,
		WorldPathKey:     loaded.WorldPath,
		SessionsPathKey:  loaded.SessionsPath,
		ActorKey:         loaded.Actor,
	} {
		if strings.TrimSpace(value) == "" {
			return Config{}, fmt.Errorf("config %s is empty", key)
		}
	}

	return loaded, nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("config %s: %w", LogLevelKey, err)
	}

	return level, nil
}
