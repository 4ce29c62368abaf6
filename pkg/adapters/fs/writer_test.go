package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestUpsertRetrieve_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	payload := []byte("the quick brown fox jumps over the lazy dog\n")
	p, err := store.Upsert(ctx, payload, "objects", "ab", "cdef0123")
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	// On disk the content is compressed, not plain.
	raw, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("file not on disk: %v", err)
	}
	if bytes.Equal(raw, payload) {
		t.Error("payload stored uncompressed")
	}
	if len(raw) < 2 || raw[0] != 0x78 {
		t.Errorf("missing zlib header, got % x", raw[:min(4, len(raw))])
	}

	got, err := store.Retrieve(ctx, "objects", "ab", "cdef0123")
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("round trip mismatch:\n got: %q\nwant: %q", got, payload)
	}
}

func TestUpsert_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	if _, err := store.Upsert(ctx, []byte("first"), "refs", "heads", "main"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Upsert(ctx, []byte("second"), "refs", "heads", "main"); err != nil {
		t.Fatal(err)
	}

	got, err := store.Retrieve(ctx, "refs", "heads", "main")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("expected last write to win, got %q", got)
	}
}

func TestUpsert_CreatesParents(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	p, err := store.Upsert(ctx, []byte("x"), "objects", "de", "adbeef")
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	want := filepath.Join(store.Handle().ControlRoot(), "objects", "de", "adbeef")
	if p != want {
		t.Errorf("unexpected path: got %s want %s", p, want)
	}
	if _, err := os.Stat(p); err != nil {
		t.Errorf("file missing: %v", err)
	}
}

func TestUpsert_EmptyPayload(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	if _, err := store.Upsert(ctx, nil, "objects", "empty"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	got, err := store.Retrieve(ctx, "objects", "empty")
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty payload, got %q", got)
	}
}

func TestRetrieve_Missing(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	_, err := store.Retrieve(ctx, "objects", "nope")
	if !os.IsNotExist(err) {
		t.Fatalf("expected IsNotExist, got %v", err)
	}
}

func TestRetrieve_CorruptContent(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	// Plant uncompressed bytes behind Upsert's back.
	p := store.path("objects", "bad")
	if err := os.WriteFile(p, []byte("not zlib"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Retrieve(ctx, "objects", "bad"); err == nil {
		t.Fatal("expected decode error for corrupt content")
	}
}

func TestUpsert_RecordsIntrospection(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	if _, err := store.Upsert(ctx, []byte("x"), "objects", "aa"); err != nil {
		t.Fatal(err)
	}

	state, ok := store.State().(StoreState)
	if !ok {
		t.Fatalf("unexpected state type %T", store.State())
	}
	if state.Upserts != 1 {
		t.Errorf("expected 1 upsert recorded, got %d", state.Upserts)
	}
	if state.LastUpsert == nil {
		t.Error("expected LastUpsert to be set")
	}
}
