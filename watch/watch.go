// Package watch drives live schema upgrades from a definitions file.
//
// A [Watcher] ties a registry to a document on disk: [Watcher.Reload] parses
// the file and upgrades the schema with its models, and [Watcher.Start]
// keeps doing that in the background whenever the file changes. Malformed
// documents never reach the registry; a reload either applies a whole
// upgrade or leaves the state untouched.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/syssam/morph"
	"github.com/syssam/morph/load"
)

// Watcher applies a definitions file to a schema, on demand or whenever the
// file changes.
//
// The watch loop is the only goroutine applying reloads, so reloads never
// race each other. Applications that also upgrade the same schema elsewhere
// must serialize those upgrades against the watcher themselves.
type Watcher struct {
	schema  *morph.Schema
	path    string
	logger  zerolog.Logger
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
}

// Option configures a watcher.
type Option func(*Watcher)

// WithLogger sets the logger used by the background watch loop, which has no
// caller to return errors to. The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// New returns a watcher that applies the definitions file at path to the
// schema. It resolves the path but does not read the file; call Reload for
// an immediate upgrade or Start to follow changes.
func New(schema *morph.Schema, path string, opts ...Option) (*Watcher, error) {
	if schema == nil {
		return nil, fmt.Errorf("watch: schema is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: absolute path: %w", err)
	}
	w := &Watcher{
		schema: schema,
		path:   abs,
		logger: zerolog.Nop(),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path of the definitions file.
func (w *Watcher) Path() string {
	return w.path
}

// Reload parses the definitions file and upgrades the schema with its
// models. Read, decode and validation failures leave the registry untouched;
// a listener failure during the upgrade is returned but, as with any
// upgrade, rolls nothing back.
func (w *Watcher) Reload(ctx context.Context) error {
	doc, err := load.ReadFile(w.path)
	if err != nil {
		return fmt.Errorf("reload definitions: %w", err)
	}
	if err := w.schema.Upgrade(ctx, doc.Models); err != nil {
		return fmt.Errorf("upgrade schema: %w", err)
	}
	w.logger.Info().
		Str("path", w.path).
		Int64("version", w.schema.Version()).
		Msg("definitions reloaded")
	return nil
}

// Start begins watching the definitions file. Write and create events on the
// file trigger a reload; reload failures are logged and the loop continues.
// Stop releases the watch.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	w.watcher = watcher

	// Watch the directory; editors and atomic writers replace the file
	// rather than writing it in place.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch directory: %w", err)
	}

	go w.watchLoop()

	w.logger.Info().Str("path", w.path).Msg("watching definitions file")
	return nil
}

// Stop stops the watch loop and releases the file watcher. A stopped watcher
// can still Reload on demand but cannot be restarted.
func (w *Watcher) Stop() {
	close(w.stopCh)
	if w.watcher != nil {
		w.watcher.Close()
	}
}

func (w *Watcher) watchLoop() {
	filename := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.logger.Debug().
					Str("event", event.Op.String()).
					Str("file", event.Name).
					Msg("definitions file changed")
				if err := w.Reload(context.Background()); err != nil {
					w.logger.Error().Err(err).Msg("reload failed")
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("file watcher error")

		case <-w.stopCh:
			return
		}
	}
}
