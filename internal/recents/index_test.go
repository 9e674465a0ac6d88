package recents

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"shrink/internal/services"
	"shrink/internal/store"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	base := t.TempDir()
	st, err := store.Open(filepath.Join(base, "shrink.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return NewIndex(st, filepath.Join(base, "shrink.lock"), nil)
}

func TestRecordIsIdempotent(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := idx.Record(ctx, "/videos/a"); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	dirs, err := idx.Directories(ctx)
	if err != nil {
		t.Fatalf("Directories: %v", err)
	}
	if !reflect.DeepEqual(dirs, []string{"/videos/a"}) {
		t.Fatalf("expected single occurrence, got %v", dirs)
	}
}

func TestRecordPreservesInsertionOrder(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	for _, dir := range []string{"/videos/c", "/videos/a", "/videos/b"} {
		if err := idx.Record(ctx, dir); err != nil {
			t.Fatalf("Record(%q): %v", dir, err)
		}
	}

	dirs, err := idx.Directories(ctx)
	if err != nil {
		t.Fatalf("Directories: %v", err)
	}
	if !reflect.DeepEqual(dirs, []string{"/videos/c", "/videos/a", "/videos/b"}) {
		t.Fatalf("insertion order lost: %v", dirs)
	}
}

func TestMembershipIsExactStringEquality(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	if err := idx.Record(ctx, "/videos/a"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	// Trailing slash is a distinct entry on purpose.
	if err := idx.Record(ctx, "/videos/a/"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	dirs, _ := idx.Directories(ctx)
	if len(dirs) != 2 {
		t.Fatalf("expected 2 entries without normalization, got %v", dirs)
	}
}

func TestEmptyIndexReadsAsEmpty(t *testing.T) {
	idx := newTestIndex(t)
	dirs, err := idx.Directories(context.Background())
	if err != nil {
		t.Fatalf("Directories: %v", err)
	}
	if len(dirs) != 0 {
		t.Fatalf("expected empty index, got %v", dirs)
	}
}

func TestClearEmptiesIndex(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	if err := idx.Record(ctx, "/videos/a"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := idx.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	dirs, err := idx.Directories(ctx)
	if err != nil {
		t.Fatalf("Directories: %v", err)
	}
	if len(dirs) != 0 {
		t.Fatalf("index not cleared: %v", dirs)
	}

	// Recording after a clear works again.
	if err := idx.Record(ctx, "/videos/b"); err != nil {
		t.Fatalf("Record after clear: %v", err)
	}
}

type failingSettings struct{ err error }

func (f failingSettings) Get(ctx context.Context, key string, out any) (bool, error) {
	return false, f.err
}

func (f failingSettings) Set(ctx context.Context, key string, value any) error {
	return f.err
}

func TestStoreFailureSurfacesAsStoreError(t *testing.T) {
	idx := NewIndex(failingSettings{err: errors.New("disk full")},
		filepath.Join(t.TempDir(), "shrink.lock"), nil)

	if err := idx.Record(context.Background(), "/videos/a"); !errors.Is(err, services.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
	if _, err := idx.Directories(context.Background()); !errors.Is(err, services.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
	if err := idx.Clear(context.Background()); !errors.Is(err, services.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}

func TestConcurrentRecordsKeepEveryDirectory(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	dirs := []string{"/videos/a", "/videos/b", "/videos/c", "/videos/d"}
	done := make(chan error, len(dirs))
	for _, dir := range dirs {
		go func(d string) { done <- idx.Record(ctx, d) }(dir)
	}
	for range dirs {
		if err := <-done; err != nil {
			t.Fatalf("concurrent Record: %v", err)
		}
	}

	got, err := idx.Directories(ctx)
	if err != nil {
		t.Fatalf("Directories: %v", err)
	}
	if len(got) != len(dirs) {
		t.Fatalf("lost update under concurrency: %v", got)
	}
	seen := map[string]bool{}
	for _, dir := range got {
		if seen[dir] {
			t.Fatalf("duplicate entry %q: %v", dir, got)
		}
		seen[dir] = true
	}
}
