package blob

import (
	"context"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "dashboard", `{"prestations":[]}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get(ctx, "dashboard")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if value != `{"prestations":[]}` {
		t.Fatalf("unexpected value: %s", value)
	}

	// Overwrite is wholesale.
	if err := store.Set(ctx, "dashboard", "{}"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = store.Get(ctx, "dashboard")
	if value != "{}" {
		t.Fatalf("expected overwritten value, got %s", value)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if _, ok, _ := store.Get(ctx, "missing"); ok {
		t.Fatalf("expected absent key")
	}
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if value, ok, _ := store.Get(ctx, "k"); !ok || value != "v" {
		t.Fatalf("unexpected get result: %q ok=%v", value, ok)
	}
}
