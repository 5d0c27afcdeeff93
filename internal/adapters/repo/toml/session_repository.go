package toml

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/voxel-schematics/internal/adapters/schematic/sponge"
	"github.com/bnema/voxel-schematics/internal/domain"
	"github.com/bnema/voxel-schematics/internal/ports"
)

// SessionRepository keeps actor sessions between runs of the CLI.
type SessionRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(path string) (*SessionRepository, error) {
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *SessionRepository) Load(ctx context.Context) ([]domain.SessionSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var file sessionFileSchema
	err := withFileLock(ctx, r.path, r.mu, false, func() error {
		var err error
		file, err = r.readSchema()
		return err
	})
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.SessionSnapshot, 0, len(file.Sessions))
	for _, entry := range file.Sessions {
		snapshot, err := fromSessionSchema(entry)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

// SaveSession replaces the stored entry of snapshot.ID and leaves every
// other actor's entry as found on disk. An empty snapshot removes the entry.
func (r *SessionRepository) SaveSession(ctx context.Context, snapshot domain.SessionSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, err := toSessionSchema(snapshot)
	if err != nil {
		return err
	}

	return withFileLock(ctx, r.path, r.mu, true, func() error {
		file, err := r.readSchema()
		if err != nil {
			return err
		}

		sessions := file.Sessions[:0]
		for _, existing := range file.Sessions {
			if existing.ActorID != entry.ActorID {
				sessions = append(sessions, existing)
			}
		}
		if !snapshot.IsEmpty() {
			sessions = append(sessions, entry)
		}
		sort.Slice(sessions, func(i, j int) bool { return sessions[i].ActorID < sessions[j].ActorID })
		file.Sessions = sessions
		file.applyDefaults()

		if err := ctx.Err(); err != nil {
			return err
		}
		return writeTOML(r.path, "sessions", file)
	})
}

func (r *SessionRepository) readSchema() (sessionFileSchema, error) {
	var file sessionFileSchema
	if err := readTOML(r.path, "sessions", &file); err != nil {
		return sessionFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return sessionFileSchema{}, err
	}

	return file, nil
}

func toSessionSchema(snapshot domain.SessionSnapshot) (sessionSchema, error) {
	entry := sessionSchema{
		ActorID:      snapshot.ID.String(),
		FirstCorner:  optionalVecToInts(snapshot.FirstCorner),
		SecondCorner: optionalVecToInts(snapshot.SecondCorner),
		Origin:       optionalVecToInts(snapshot.Origin),
	}

	if snapshot.Clipboard != nil {
		doc, err := sponge.Encode(*snapshot.Clipboard, domain.SchematicMetadata{})
		if err != nil {
			return sessionSchema{}, fmt.Errorf("encode clipboard for %s: %w", entry.ActorID, err)
		}
		data, err := sponge.Marshal(doc)
		if err != nil {
			return sessionSchema{}, fmt.Errorf("encode clipboard for %s: %w", entry.ActorID, err)
		}
		entry.Clipboard = base64.StdEncoding.EncodeToString(data)
	}

	return entry, nil
}

func fromSessionSchema(entry sessionSchema) (domain.SessionSnapshot, error) {
	id, err := domain.ParseActorID(entry.ActorID)
	if err != nil {
		return domain.SessionSnapshot{}, fmt.Errorf("decode session %q: %w", entry.ActorID, err)
	}

	snapshot := domain.SessionSnapshot{ID: id}
	if snapshot.FirstCorner, err = optionalVecFromInts(entry.FirstCorner); err != nil {
		return domain.SessionSnapshot{}, fmt.Errorf("decode first corner of %s: %w", entry.ActorID, err)
	}
	if snapshot.SecondCorner, err = optionalVecFromInts(entry.SecondCorner); err != nil {
		return domain.SessionSnapshot{}, fmt.Errorf("decode second corner of %s: %w", entry.ActorID, err)
	}
	if snapshot.Origin, err = optionalVecFromInts(entry.Origin); err != nil {
		return domain.SessionSnapshot{}, fmt.Errorf("decode origin of %s: %w", entry.ActorID, err)
	}

	if entry.Clipboard != "" {
		data, err := base64.StdEncoding.DecodeString(entry.Clipboard)
		if err != nil {
			return domain.SessionSnapshot{}, fmt.Errorf("%w: clipboard of %s: %w", domain.ErrCorruptData, entry.ActorID, err)
		}
		doc, err := sponge.Unmarshal(data)
		if err != nil {
			return domain.SessionSnapshot{}, fmt.Errorf("clipboard of %s: %w", entry.ActorID, err)
		}
		schematic, err := sponge.Decode(doc)
		if err != nil {
			return domain.SessionSnapshot{}, fmt.Errorf("clipboard of %s: %w", entry.ActorID, err)
		}
		snapshot.Clipboard = &schematic.Volume
	}

	return snapshot, nil
}

func optionalVecToInts(v *domain.Vec3i) []int {
	if v == nil {
		return nil
	}

	return vecToInts(*v)
}

func optionalVecFromInts(values []int) (*domain.Vec3i, error) {
	if len(values) == 0 {
		return nil, nil
	}

	v, err := vecFromInts(values)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
