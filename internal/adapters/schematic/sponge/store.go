package sponge

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/bnema/voxel-schematics/internal/ports"
)

const (
	FileExtension    = ".schem"
	schematicDirMode = 0o755
)

// Store keeps schematics as <root>/<name>.schem files.
type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.SchematicStore = (*Store)(nil)

// NewStore creates the schematics directory if it does not exist yet.
func NewStore(root string) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, schematicDirMode); err != nil {
		return nil, fmt.Errorf("create schematics directory: %w", err)
	}

	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Save(ctx context.Context, name string, schematic domain.Schematic) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return "", err
	}

	doc, err := Encode(schematic.Volume, schematic.Metadata)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := WriteCompressed(doc, path); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return absPath, nil
}

func (s *Store) Load(ctx context.Context, name string) (domain.Schematic, error) {
	if err := ctx.Err(); err != nil {
		return domain.Schematic{}, err
	}

	path, err := s.pathForName(name)
	if err != nil {
		return domain.Schematic{}, err
	}

	s.mu.RLock()
	doc, err := ReadCompressed(path)
	s.mu.RUnlock()
	if err != nil {
		return domain.Schematic{}, err
	}

	schematic, err := Decode(doc)
	if err != nil {
		return domain.Schematic{}, fmt.Errorf("%s: %w", path, err)
	}

	return schematic, nil
}

// List returns the names of every stored schematic, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	entries, err := os.ReadDir(s.root)
	s.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: list %s: %w", domain.ErrIoFailure, s.root, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), FileExtension) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), FileExtension))
	}
	sort.Strings(names)

	return names, nil
}

func (s *Store) pathForName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name is empty", domain.ErrInvalidSchematicName)
	}
	if trimmed == "." || trimmed == ".." || strings.ContainsAny(trimmed, `/\`) || strings.ContainsRune(trimmed, 0) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSchematicName, name)
	}

	return filepath.Join(s.root, trimmed+FileExtension), nil
}
