package prefs

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playperu/scoreboard/internal/database"
	"github.com/playperu/scoreboard/internal/migrations"
)

type stubStore struct {
	score int
	err   error
	saved []int
}

func (s *stubStore) LoadFinishScore(context.Context) (int, error) { return s.score, s.err }

func (s *stubStore) SaveFinishScore(_ context.Context, score int) error {
	s.saved = append(s.saved, score)
	return s.err
}

func TestLoadFinishScore(t *testing.T) {
	tests := []struct {
		name  string
		store *stubStore
		want  int
	}{
		{"saved value", &stubStore{score: 21}, 21},
		{"nothing saved", &stubStore{err: ErrNotFound}, 15},
		{"store unreachable", &stubStore{err: errors.New("connection refused")}, 15},
		{"saved value too low", &stubStore{score: 1}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoadFinishScore(context.Background(), tt.store, slog.Default(), 15)
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("opening db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := migrations.Run(context.Background(), db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}
	return db
}

func TestSQLStore(t *testing.T) {
	ctx := context.Background()
	store := NewSQLStore(openDB(t))

	if _, err := store.LoadFinishScore(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty store: err = %v, want ErrNotFound", err)
	}

	if err := store.SaveFinishScore(ctx, 21); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveFinishScore(ctx, 25); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := store.LoadFinishScore(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != 25 {
		t.Errorf("got %d, want 25", got)
	}
}

func TestSQLStoreCorruptValueFallsBack(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	if _, err := db.ExecContext(ctx, `INSERT INTO preferences (key, value) VALUES ('finish_score', 'lots')`); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	store := NewSQLStore(db)
	if _, err := store.LoadFinishScore(ctx); err == nil {
		t.Fatal("expected a decode error")
	}
	if got := LoadFinishScore(ctx, store, slog.Default(), 15); got != 15 {
		t.Errorf("got %d, want fallback 15", got)
	}
}

func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         "localhost:1",
		DialTimeout:  10 * time.Millisecond,
		ReadTimeout:  10 * time.Millisecond,
		WriteTimeout: 10 * time.Millisecond,
		MaxRetries:   -1,
	})
}

func TestRedisStoreUnreachable(t *testing.T) {
	ctx := context.Background()
	rdb := deadRedis()
	defer rdb.Close()
	store := NewRedisStore(rdb, "test:")

	if _, err := store.LoadFinishScore(ctx); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("load err = %v, want a connection error", err)
	}
	if err := store.SaveFinishScore(ctx, 21); err == nil {
		t.Fatal("save: expected a connection error")
	}
	if got := LoadFinishScore(ctx, store, slog.Default(), 15); got != 15 {
		t.Errorf("got %d, want fallback 15", got)
	}
}

type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	items := memItems{}
	store := &FileStore{items: items}

	if _, err := store.LoadFinishScore(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty store: err = %v, want ErrNotFound", err)
	}

	if err := store.SaveFinishScore(ctx, 11); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := string(items[settingsItem]); got != `{"finishScore":11}` {
		t.Errorf("saved document = %s", got)
	}

	got, err := store.LoadFinishScore(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != 11 {
		t.Errorf("got %d, want 11", got)
	}
}

func TestFileStoreCorruptDocument(t *testing.T) {
	store := &FileStore{items: memItems{settingsItem: []byte("{not json")}}

	if _, err := store.LoadFinishScore(context.Background()); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want a parse error", err)
	}
}
