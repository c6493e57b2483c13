package watcher

import (
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// fileHash computes the xxhash of a file's content.
func fileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return h.Sum64(), nil
}

// contentTracker remembers the last seen content hash of a file.
type contentTracker struct {
	path  string
	mu    sync.Mutex
	last  uint64
	known bool
}

func newContentTracker(path string) *contentTracker {
	t := &contentTracker{path: path}
	t.last, t.known = hashOrZero(path)
	return t
}

// changed rehashes the file and reports whether its content differs from the
// last call. Unreadable files always count as changed.
func (t *contentTracker) changed() bool {
	sum, ok := hashOrZero(t.path)

	t.mu.Lock()
	defer t.mu.Unlock()

	same := ok && t.known && sum == t.last
	t.last, t.known = sum, ok
	return !same
}

func hashOrZero(path string) (uint64, bool) {
	sum, err := fileHash(path)
	return sum, err == nil
}
