package status

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

// eventLog collects forwarded events for assertions.
type eventLog struct {
	mu    sync.Mutex
	names []string
}

func (l *eventLog) record(ev fsnotify.Event) {
	l.mu.Lock()
	l.names = append(l.names, ev.Name)
	l.mu.Unlock()
}

func (l *eventLog) saw(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}

func TestWatcher_ObservesNestedWrites(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	log := &eventLog{}
	w, err := newWatcher(root, log.record)
	require.NoError(t, err)
	defer w.Close()

	target := filepath.Join(nested, "file.txt")
	require.NoError(t, os.WriteFile(target, []byte("x\n"), 0o644))

	require.Eventually(t, func() bool { return log.saw(target) },
		2*time.Second, 10*time.Millisecond, "write in nested directory not observed")
}

func TestWatcher_CoversDirectoriesCreatedLater(t *testing.T) {
	root := t.TempDir()

	log := &eventLog{}
	w, err := newWatcher(root, log.record)
	require.NoError(t, err)
	defer w.Close()

	late := filepath.Join(root, "late")
	require.NoError(t, os.Mkdir(late, 0o755))
	require.Eventually(t, func() bool { return log.saw(late) },
		2*time.Second, 10*time.Millisecond, "directory creation not observed")

	// The subscription for the new directory races its creation event, so
	// keep rewriting until a write inside it is seen.
	target := filepath.Join(late, "inner.txt")
	require.Eventually(t, func() bool {
		require.NoError(t, os.WriteFile(target, []byte("x\n"), 0o644))
		return log.saw(target)
	}, 2*time.Second, 25*time.Millisecond, "write in late directory not observed")
}

func TestWatcher_CloseStopsForwarding(t *testing.T) {
	root := t.TempDir()

	log := &eventLog{}
	w, err := newWatcher(root, log.record)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	target := filepath.Join(root, "after.txt")
	require.NoError(t, os.WriteFile(target, []byte("x\n"), 0o644))

	time.Sleep(50 * time.Millisecond)
	require.False(t, log.saw(target), "event forwarded after Close")
}
