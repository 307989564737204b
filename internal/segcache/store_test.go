package segcache

import (
	"context"
	"path/filepath"
	"testing"

	"captionseg/internal/captions"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "cache", "results.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return store
}

func TestStorePutGet(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want miss", ok, err)
	}

	if err := store.Put(ctx, "k", []byte("first")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	payload, ok, err := store.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get(k) = ok=%v err=%v, want hit", ok, err)
	}
	if string(payload) != "first" {
		t.Errorf("Get(k) = %q, want %q", payload, "first")
	}

	// Put replaces.
	if err := store.Put(ctx, "k", []byte("second")); err != nil {
		t.Fatalf("Put(replace) error = %v", err)
	}
	payload, _, err = store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get(k) error = %v", err)
	}
	if string(payload) != "second" {
		t.Errorf("Get(k) after replace = %q, want %q", payload, "second")
	}
}

func TestKey(t *testing.T) {
	raw := []byte(`{"segments":[]}`)
	limits := captions.DefaultLimits()

	base := Key(raw, "corrected", "en", limits)
	if again := Key(raw, "corrected", "en", limits); again != base {
		t.Error("identical inputs produced different keys")
	}

	variants := map[string]string{
		"transcript": Key([]byte(`{"segments":[{}]}`), "corrected", "en", limits),
		"corrected":  Key(raw, "other text", "en", limits),
		"language":   Key(raw, "corrected", "de", limits),
	}
	narrow := limits
	narrow.MaxCharsPerLine = 30
	variants["limits"] = Key(raw, "corrected", "en", narrow)

	for name, key := range variants {
		if key == base {
			t.Errorf("changing %s did not change the key", name)
		}
	}

	// Length prefixing keeps adjacent fields from bleeding into each other.
	if Key(raw, "ab", "c", limits) == Key(raw, "a", "bc", limits) {
		t.Error("field boundaries collided")
	}
}
