// Package toml persists reservations in a TOML file. It is the cgo-free
// store driver, selected with store.driver = "toml".
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/mwern/courtctl/internal/domain"
	"github.com/mwern/courtctl/internal/ports"
)

const (
	storePathKey    = "store.path"
	storeFileMode   = 0o600
	storeDirMode    = 0o700
	configDirName   = ".courtctl"
	storeFileName   = "reservations.toml"
	tempFilePattern = ".reservations-*.toml.tmp"
)

type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ReservationRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(storePathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, configDirName, storeFileName)
	}

	path, err := normalizeStorePath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) LoadAll(ctx context.Context) ([]domain.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	reservations := make([]domain.Reservation, 0, len(file.Reservations))
	for _, entry := range file.Reservations {
		reservation, err := fromSchema(entry)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}

	// The file may have been edited by hand; restore start order.
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].Start.Before(reservations[j].Start)
	})

	return reservations, nil
}

func (r *Repository) Insert(ctx context.Context, reservation domain.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()
	file.Reservations = append(file.Reservations, toSchema(reservation))

	return r.writeSchema(file)
}

func (r *Repository) Delete(ctx context.Context, subject string, start time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	for i, entry := range file.Reservations {
		reservation, err := fromSchema(entry)
		if err != nil {
			return err
		}
		if reservation.Subject == subject && reservation.Start.Equal(start) {
			file.Reservations = append(file.Reservations[:i], file.Reservations[i+1:]...)
			return r.writeSchema(file)
		}
	}

	return domain.ErrReservationNotFound
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read reservations file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode reservations file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), storeDirMode); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode reservations file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp reservations file: %w", err)
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
		return fmt.Errorf("write temp reservations file: %w", err)
	}

	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp reservations file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp reservations file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace reservations file: %w", err)
	}

	cleanup = false

	return nil
}

func normalizeStorePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve store path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

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
