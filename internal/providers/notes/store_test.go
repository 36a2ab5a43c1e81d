package notes

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/config"
)

type storeFactory func(t *testing.T) Store

func backends(t *testing.T) map[string]storeFactory {
	t.Helper()
	b := map[string]storeFactory{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"file": func(t *testing.T) Store {
			s, err := NewFileStore(t.TempDir(), "panel")
			require.NoError(t, err)
			return s
		},
		"sqlite": func(t *testing.T) Store {
			s, err := NewSQLiteStore(context.Background(), t.TempDir(), "panel")
			require.NoError(t, err)
			return s
		},
	}
	if url := os.Getenv("TEST_REDIS_URL"); url != "" {
		b["redis"] = func(t *testing.T) Store {
			s, err := NewRedisStore(context.Background(), url, "notes-test-"+t.Name())
			require.NoError(t, err)
			return s
		}
	}
	return b
}

func TestStoreContract(t *testing.T) {
	for name, factory := range backends(t) {
		factory := factory
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("missing key", func(t *testing.T) {
				s := factory(t)
				defer s.Close()

				value, found, err := s.Get(ctx, Key)
				require.NoError(t, err)
				assert.False(t, found)
				assert.Empty(t, value)
			})

			t.Run("round trip", func(t *testing.T) {
				s := factory(t)
				defer s.Close()

				text := "line one\nline two — with “quotes” and <tags>"
				require.NoError(t, s.Set(ctx, Key, text))

				value, found, err := s.Get(ctx, Key)
				require.NoError(t, err)
				assert.True(t, found)
				assert.Equal(t, text, value)
			})

			t.Run("overwrite", func(t *testing.T) {
				s := factory(t)
				defer s.Close()

				require.NoError(t, s.Set(ctx, Key, "first"))
				require.NoError(t, s.Set(ctx, Key, "second"))

				value, _, err := s.Get(ctx, Key)
				require.NoError(t, err)
				assert.Equal(t, "second", value)
			})

			t.Run("empty value is stored", func(t *testing.T) {
				s := factory(t)
				defer s.Close()

				require.NoError(t, s.Set(ctx, Key, "something"))
				require.NoError(t, s.Set(ctx, Key, ""))

				value, found, err := s.Get(ctx, Key)
				require.NoError(t, err)
				assert.True(t, found)
				assert.Empty(t, value)
			})

			t.Run("concurrent saves keep one value", func(t *testing.T) {
				s := factory(t)
				defer s.Close()

				values := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
				var wg sync.WaitGroup
				for _, v := range values {
					wg.Add(1)
					go func(v string) {
						defer wg.Done()
						assert.NoError(t, s.Set(ctx, Key, v))
					}(v)
				}
				wg.Wait()

				value, found, err := s.Get(ctx, Key)
				require.NoError(t, err)
				assert.True(t, found)
				assert.Contains(t, values, value)
			})
		})
	}
}

func TestNotesSaveThenReload(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	first, err := NewFileStore(root, "panel")
	require.NoError(t, err)
	require.NoError(t, New(first).Save(ctx, "Findings:\n- item"))

	// A new store over the same directory stands in for a fresh panel.
	second, err := NewFileStore(root, "panel")
	require.NoError(t, err)
	text, err := New(second).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Findings:\n- item", text)
}

func TestNotesOverwriteNotAccumulate(t *testing.T) {
	ctx := context.Background()
	n := New(NewMemoryStore())

	require.NoError(t, n.Save(ctx, "T1"))
	require.NoError(t, n.Save(ctx, "T2"))

	text, err := n.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", text)
}

func TestNotesLoadNothingSaved(t *testing.T) {
	text, err := New(NewMemoryStore()).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, text)
}

type brokenStore struct{ err error }

func (b brokenStore) Get(context.Context, string) (string, bool, error) { return "", false, b.err }
func (b brokenStore) Set(context.Context, string, string) error         { return b.err }
func (b brokenStore) Close() error                                      { return nil }

func TestNotesWrapsStoreErrors(t *testing.T) {
	diskFull := errors.New("disk full")
	n := New(brokenStore{err: diskFull})

	_, err := n.Load(context.Background())
	assert.ErrorIs(t, err, diskFull)

	err = n.Save(context.Background(), "x")
	assert.ErrorIs(t, err, diskFull)
	assert.Contains(t, err.Error(), "save notes")
}

func TestFileStoreLayout(t *testing.T) {
	root := t.TempDir()
	s, err := NewFileStore(root, "panel")
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), Key, "hello"))

	data, err := os.ReadFile(filepath.Join(root, "storage", "panel", "researchNotes.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `"hello"`, string(data))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileStoreCorruptDocument(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), Key+".json"), []byte("{not json"), 0o644))

	_, _, err = s.Get(context.Background(), Key)
	assert.Error(t, err)
}

func TestSQLiteNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	a, err := NewSQLiteStore(ctx, root, "a")
	require.NoError(t, err)
	defer a.Close()
	require.NoError(t, a.Set(ctx, Key, "from a"))

	b, err := NewSQLiteStore(ctx, root, "b")
	require.NoError(t, err)
	defer b.Close()

	_, found, err := b.Get(ctx, Key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		driver  string
		wantErr error
		want    interface{}
	}{
		{driver: "", want: &FileStore{}},
		{driver: "file", want: &FileStore{}},
		{driver: "SQLite", want: &SQLiteStore{}},
		{driver: "memory", want: &MemoryStore{}},
		{driver: "etcd", wantErr: ErrUnknownDriver},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			s, err := Open(ctx, config.StorageConfig{Driver: tt.driver, Path: t.TempDir(), Namespace: "panel"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer s.Close()
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestOpenRedisBadURL(t *testing.T) {
	_, err := Open(context.Background(), config.StorageConfig{Driver: "redis", RedisURL: "://nope"})
	assert.Error(t, err)
}
