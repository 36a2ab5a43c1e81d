package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/config"
)

// Key is the single storage key holding the research note.
const Key = "researchNotes"

// ErrUnknownDriver is returned by Open for an unsupported STORAGE_DRIVER.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Store is an extension-scoped key-value store.
type Store interface {
	// Get returns the value for key. found is false when the key was never written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set overwrites the value for key.
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open creates the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "file":
		return NewFileStore(cfg.Path, cfg.Namespace)
	case "sqlite":
		return NewSQLiteStore(ctx, cfg.Path, cfg.Namespace)
	case "redis":
		return NewRedisStore(ctx, cfg.RedisURL, cfg.Namespace)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Notes reads and overwrites the single research note.
type Notes struct {
	store Store
}

// New binds a Notes facade to store.
func New(store Store) *Notes {
	return &Notes{store: store}
}

// Load returns the stored note, or "" when nothing has been saved yet.
func (n *Notes) Load(ctx context.Context) (string, error) {
	value, _, err := n.store.Get(ctx, Key)
	if err != nil {
		return "", fmt.Errorf("load notes: %w", err)
	}
	return value, nil
}

// Save overwrites the stored note. Saving "" clears it.
func (n *Notes) Save(ctx context.Context, text string) error {
	if err := n.store.Set(ctx, Key, text); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}
