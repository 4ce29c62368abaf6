package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveWorktreePath(t *testing.T) {
	tempRoot := os.TempDir()

	tests := []struct {
		name      string
		userPath  string
		forceTemp bool
		want      string
	}{
		{
			name:      "No Force Keeps Path",
			userPath:  filepath.Join("data", "repo"),
			forceTemp: false,
			want:      filepath.Join("data", "repo"),
		},
		{
			name:      "No Force Empty Becomes Dot",
			userPath:  "",
			forceTemp: false,
			want:      ".",
		},
		{
			name:      "Force Re-Roots Outside Temp",
			userPath:  filepath.Join(string(os.PathSeparator), "data", "repo"),
			forceTemp: true,
			want:      filepath.Join(tempRoot, "gitrs-dev", "repo"),
		},
		{
			name:      "Force Trusts Paths Already in Temp",
			userPath:  filepath.Join(tempRoot, "already-safe"),
			forceTemp: true,
			want:      filepath.Join(tempRoot, "already-safe"),
		},
		{
			name:      "Force Empty Becomes Default",
			userPath:  "",
			forceTemp: true,
			want:      filepath.Join(tempRoot, "gitrs-dev", "default"),
		},
		{
			name:      "Force Dot Becomes Default",
			userPath:  ".",
			forceTemp: true,
			want:      filepath.Join(tempRoot, "gitrs-dev", "default"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWorktreePath(tt.userPath, tt.forceTemp)
			if got != tt.want {
				t.Errorf("ResolveWorktreePath(%q, %v) = %q, want %q", tt.userPath, tt.forceTemp, got, tt.want)
			}
		})
	}
}

func TestIsDevRun(t *testing.T) {
	// Test binaries carry the .test suffix (or live in the build temp dir),
	// so a test process always counts as a dev run.
	if !IsDevRun() {
		t.Error("expected IsDevRun to report true under go test")
	}
}
