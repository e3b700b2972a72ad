// Package event fans schema upgrade notifications out to registered
// listeners.
//
// A [Bus] holds listeners for the lifetime of the registry that owns it.
// [Bus.Emit] runs every listener on its own goroutine, all started before
// any is awaited, and returns once the whole set has settled. A listener
// failure never cancels or delays its siblings; after all of them finish,
// the first failure comes back wrapped in a *[ListenerError].
package event

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Listener reacts to a schema upgrade. It receives the version the registry
// advanced to; the merged shape is already visible when it runs. The context
// is the one passed to the emitting upgrade.
type Listener func(ctx context.Context, version int64) error

// Bus is a fan-out list of upgrade listeners. Registration is safe for
// concurrent use; emission is driven by the registry, which serializes
// upgrades.
type Bus struct {
	mu        sync.Mutex
	listeners []Listener
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// On registers a listener. Listeners persist for the lifetime of the bus
// and cannot be removed; every subsequent Emit invokes all of them. The
// listener must be non-nil.
func (b *Bus) On(fn Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Emit notifies every registered listener of the given version and blocks
// until all of them settle. Listeners are started in registration order, one
// goroutine each, before any is awaited; completion order is unconstrained,
// and a failing listener does not stop the others. If any listeners failed,
// Emit returns the first failure wrapped in a *ListenerError carrying the
// listener's registration index. With no listeners registered it returns
// nil immediately.
func (b *Bus) Emit(ctx context.Context, version int64) error {
	b.mu.Lock()
	listeners := slices.Clone(b.listeners)
	b.mu.Unlock()

	var errg errgroup.Group
	for i, fn := range listeners {
		errg.Go(func() error {
			if err := fn(ctx, version); err != nil {
				return NewListenerError(i, version, err)
			}
			return nil
		})
	}
	return errg.Wait()
}
