package reactivity_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/gitrs"
	"github.com/aretw0/gitrs/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupWatchTest initializes a repository and opens a service bound to it.
// It returns the control root, the service, a context with a test timeout,
// and its cancel function.
func setupWatchTest(t *testing.T) (string, *core.Service, context.Context, context.CancelFunc) {
	t.Helper()
	tmp := t.TempDir()

	store, err := gitrs.Init(tmp)
	require.NoError(t, err)
	controlRoot := store.Handle().ControlRoot()

	svc, err := gitrs.Open(tmp)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

	return controlRoot, svc, ctx, cancel
}

// waitForPath consumes events until one matches the wanted path or the
// context expires. Unrelated events (editor temp files, directories) are
// tolerated.
func waitForPath(t *testing.T, ctx context.Context, events <-chan core.Event, want string) core.Event {
	t.Helper()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.Fatalf("Event channel closed before seeing %q", want)
			}
			if event.Path == want {
				return event
			}
		case <-ctx.Done():
			t.Fatalf("Timed out waiting for event on %q", want)
		}
	}
}

func TestWatch_ExternalModification(t *testing.T) {
	controlRoot, svc, ctx, cancel := setupWatchTest(t)
	defer cancel()

	events, err := svc.Watch(ctx, "**")
	require.NoError(t, err, "Watch should be supported")
	require.NotNil(t, events)

	// Give the watcher a moment to arm
	time.Sleep(100 * time.Millisecond)

	target := filepath.Join(controlRoot, "refs", "heads", "feature")
	require.NoError(t, os.WriteFile(target, []byte("0123abcd\n"), 0644))

	event := waitForPath(t, ctx, events, "refs/heads/feature")
	assert.Equal(t, core.EventCreate, event.Type, "Should be a CREATE event for a new file")
	assert.NotZero(t, event.Timestamp)
}

func TestWatch_PatternFiltering(t *testing.T) {
	controlRoot, svc, ctx, cancel := setupWatchTest(t)
	defer cancel()

	events, err := svc.Watch(ctx, "refs/**")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	// Outside the pattern: must stay silent.
	noise := filepath.Join(controlRoot, "objects", "noise")
	require.NoError(t, os.WriteFile(noise, []byte("x"), 0644))

	select {
	case event := <-events:
		t.Fatalf("Received event outside pattern: %v", event)
	case <-time.After(300 * time.Millisecond):
		// Silence is correct.
	}

	// Inside the pattern: must be reported.
	target := filepath.Join(controlRoot, "refs", "tags", "v1")
	require.NoError(t, os.WriteFile(target, []byte("y"), 0644))

	event := waitForPath(t, ctx, events, "refs/tags/v1")
	assert.Equal(t, core.EventCreate, event.Type)
}

// TestWatch_ExternalAtomicWrite ensures that temp+rename writes from external
// tools surface as an event for the final name.
func TestWatch_ExternalAtomicWrite(t *testing.T) {
	controlRoot, svc, ctx, cancel := setupWatchTest(t)
	defer cancel()

	events, err := svc.Watch(ctx, "**")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	f, err := os.CreateTemp(controlRoot, "editor-swap-*")
	require.NoError(t, err)
	tempName := f.Name()
	_, err = f.WriteString("ref: refs/heads/feature\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, os.Rename(tempName, filepath.Join(controlRoot, "HEAD")))

	waitForPath(t, ctx, events, "HEAD")
}

// TestWatch_OwnUpsertVisible checks that the store's own atomic writes emit
// exactly the final path; the temp-file prefix is filtered out.
func TestWatch_OwnUpsertVisible(t *testing.T) {
	_, svc, ctx, cancel := setupWatchTest(t)
	defer cancel()

	events, err := svc.Watch(ctx, "refs/**")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	_, err = svc.UpsertFile(ctx, []byte("abc123"), "refs", "heads", "master")
	require.NoError(t, err)

	event := waitForPath(t, ctx, events, "refs/heads/master")
	assert.Contains(t, []core.EventType{core.EventCreate, core.EventModify}, event.Type)
}

func TestWatch_BuffersWithoutConsumer(t *testing.T) {
	tmp := t.TempDir()

	store, err := gitrs.Init(tmp)
	require.NoError(t, err)
	controlRoot := store.Handle().ControlRoot()

	svc, err := gitrs.Open(tmp, gitrs.WithEventBuffer(8))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := svc.Watch(ctx, "refs/**")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	// Produce without consuming; the buffered channel must absorb the burst
	// so the watcher never stalls.
	for i := 0; i < 5; i++ {
		name := filepath.Join(controlRoot, "refs", "heads", "branch-"+string(rune('a'+i)))
		require.NoError(t, os.WriteFile(name, []byte("x"), 0644))
	}

	// Now drain; all five distinct paths must have been captured.
	seen := map[string]bool{}
	deadline := time.After(3 * time.Second)
	for len(seen) < 5 {
		select {
		case event := <-events:
			seen[event.Path] = true
		case <-deadline:
			t.Fatalf("Only saw %d/5 events: %v", len(seen), seen)
		}
	}
}

func TestWatch_ChannelClosesOnCancel(t *testing.T) {
	_, svc, ctx, cancel := setupWatchTest(t)
	defer cancel()

	watchCtx, stop := context.WithCancel(ctx)
	events, err := svc.Watch(watchCtx, "**")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	stop()

	// Drain; the channel must close once the watcher shuts down.
	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Event channel did not close after context cancellation")
		}
	}
}

// TestWatch_ErrorHandler verifies the error handler option is plumbed through
// without disturbing a healthy watch. Forcing a real fsnotify error is not
// portable, so only the happy path is asserted here.
func TestWatch_ErrorHandler(t *testing.T) {
	tmp := t.TempDir()
	errorChan := make(chan error, 1)

	_, err := gitrs.Init(tmp)
	require.NoError(t, err)

	svc, err := gitrs.Open(tmp, gitrs.WithWatcherErrorHandler(func(err error) {
		errorChan <- err
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := svc.Watch(ctx, "**")
	require.NoError(t, err)
	require.NotNil(t, events)

	_, err = svc.UpsertFile(ctx, []byte("x"), "refs", "heads", "wired")
	require.NoError(t, err)

	waitForPath(t, ctx, events, "refs/heads/wired")

	select {
	case err := <-errorChan:
		t.Fatalf("Unexpected watcher error: %v", err)
	default:
	}
}
