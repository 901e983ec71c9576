package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// EventType represents the kind of change seen for a photo file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventRemove EventType = "REMOVE"
)

// Event represents a change to a photo file in one of the scanned
// directories. Consumers typically react by calling Scanner.Scan again.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}

// DefaultDebounce is the quiet period before an event is delivered.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to photo files in a Scanner's directories.
// Only directories that exist when Watch is called are observed.
type Watcher struct {
	scanner  *Scanner
	debounce time.Duration
	buffer   int
	logger   *slog.Logger
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the quiet period used to coalesce bursts of events.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithEventBuffer sets the capacity of the returned event channel.
func WithEventBuffer(size int) WatchOption {
	return func(w *Watcher) {
		if size >= 0 {
			w.buffer = size
		}
	}
}

// WithWatchLogger sets the logger for watcher diagnostics.
func WithWatchLogger(logger *slog.Logger) WatchOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher creates a Watcher over the directories of scanner.
func NewWatcher(scanner *Scanner, opts ...WatchOption) *Watcher {
	w := &Watcher{
		scanner:  scanner,
		debounce: DefaultDebounce,
		buffer:   16,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch starts observing and returns a channel of events. The channel is
// closed after ctx is canceled.
func (w *Watcher) Watch(ctx context.Context) (<-chan Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	watched := 0
	for _, dir := range w.scanner.Dirs() {
		if err := fsw.Add(dir); err != nil {
			if !os.IsNotExist(err) {
				w.logger.Debug("cannot watch directory", "dir", dir, "error", err)
			}
			continue
		}
		watched++
	}
	w.logger.Debug("watching photo directories", "count", watched)

	out := make(chan Event, w.buffer)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		return w.run(ctx, fsw, out)
	}, lifecycle.WithErrorHandler(func(err error) {
		w.logger.Error("photo watcher stopped", "error", err)
	}))

	return out, nil
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher, out chan Event) (err error) {
	deb := newDebouncer(w.debounce)

	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.logger.Enabled(ctx, slog.LevelDebug) {
				w.logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				w.logger.Error("watcher panic", "error", err)
			}
		}
		deb.stopAndWait(5 * time.Second)
		close(out)
	}()
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := w.translate(event)
			if !ok {
				continue
			}
			deb.add(e, func(e Event) {
				defer func() {
					// out may already be closed if shutdown timed out
					_ = recover()
				}()
				select {
				case out <- e:
				case <-ctx.Done():
				}
			})

		case wErr, ok := <-fsw.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn("fsnotify error", "error", wErr)
		}
	}
}

// translate maps a raw fsnotify event to a photo Event, filtering out
// non-photo names and directories.
func (w *Watcher) translate(event fsnotify.Event) (Event, bool) {
	if !w.scanner.Match(event.Name) {
		return Event{}, false
	}

	var t EventType
	switch {
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		t = EventRemove
	case event.Has(fsnotify.Create):
		t = EventCreate
	case event.Has(fsnotify.Write):
		t = EventModify
	default:
		return Event{}, false
	}

	if t != EventRemove {
		info, err := os.Stat(event.Name)
		if err != nil || !info.Mode().IsRegular() {
			return Event{}, false
		}
	}

	return Event{Type: t, Path: event.Name, Timestamp: time.Now().Unix()}, true
}
