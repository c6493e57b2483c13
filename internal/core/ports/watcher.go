package ports

import "context"

// Watcher observes a file for changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch calls onChange after the file at path changes, coalescing bursts of
	// events into one call. It blocks until ctx is done.
	Watch(ctx context.Context, path string, onChange func()) error
}
