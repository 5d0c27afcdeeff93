package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	stateFileMode  = 0o600
	stateDirMode   = 0o700
	lockFileSuffix = ".lock"
	lockRetryDelay = 10 * time.Millisecond
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

func normalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New("state file path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state file path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

// lockForPath returns the lock shared by every repository opened on path
// inside this process.
func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// withFileLock runs fn holding mu and an advisory lock on path+".lock".
// The advisory lock orders read-modify-write cycles across processes, mu
// orders goroutines inside this one. Shared mode admits concurrent readers.
func withFileLock(ctx context.Context, path string, mu *sync.RWMutex, exclusive bool, fn func() error) error {
	if exclusive {
		mu.Lock()
		defer mu.Unlock()
	} else {
		mu.RLock()
		defer mu.RUnlock()
	}

	dir := filepath.Dir(path)
	if exclusive {
		if err := os.MkdirAll(dir, stateDirMode); err != nil {
			return fmt.Errorf("create state directory: %w", err)
		}
	} else if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		// Nothing written yet, so there is nothing to guard.
		return fn()
	}

	lock := flock.New(path+lockFileSuffix, flock.SetPermissions(stateFileMode))
	tryLock := lock.TryRLockContext
	if exclusive {
		tryLock = lock.TryLockContext
	}

	locked, err := tryLock(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return fmt.Errorf("lock %s: not acquired", lock.Path())
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}

// readTOML decodes path into out. A missing file leaves out untouched.
func readTOML(path, what string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s file: %w", what, err)
	}

	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s file: %w", what, err)
	}

	return nil
}

// writeTOML replaces path with the encoded value through a temp file and a
// rename, so readers never observe a half-written file.
func writeTOML(path, what string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), stateDirMode); err != nil {
		return fmt.Errorf("create %s directory: %w", what, err)
	}

	data, err := toml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s file: %w", what, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), "."+what+"-*.toml.tmp")
	if err != nil {
		return fmt.Errorf("create temp %s file: %w", what, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp %s file: %w", what, err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp %s file: %w", what, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp %s file: %w", what, err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace %s file: %w", what, err)
	}

	cleanup = false
	return nil
}
