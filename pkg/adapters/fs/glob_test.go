package fs

import (
	"context"
	"reflect"
	"testing"
)

func TestGlob(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	seed := [][]string{
		{"refs", "heads", "master"},
		{"refs", "heads", "dev"},
		{"refs", "tags", "v1"},
		{"objects", "ab", "cdef"},
	}
	for _, segments := range seed {
		if _, err := store.Upsert(ctx, []byte("x"), segments...); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"heads only", "refs/heads/*", []string{"refs/heads/dev", "refs/heads/master"}},
		{"all refs", "refs/**", []string{"refs/heads/dev", "refs/heads/master", "refs/tags/v1"}},
		{"single object", "objects/*/cdef", []string{"objects/ab/cdef"}},
		{"no match", "branches/*", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Glob(ctx, tt.pattern)
			if err != nil {
				t.Fatalf("Glob failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Glob(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestGlob_SeedsVisible(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	got, err := store.Glob(ctx, "*")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	want := []string{"HEAD", "config", "description"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("top-level entries = %v, want %v", got, want)
	}
}

func TestGlob_InvalidPattern(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	if _, err := store.Glob(ctx, "refs/[heads"); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}
