// Package viewstate holds the per-resource fetch state containers behind the
// routed views: data, loading flag, user-facing error string and a refetch
// trigger. Mutators run the backend mutation first and then force a full
// refetch; there is no optimistic merging.
package viewstate

import (
	"context"
	"sync"
)

// Snapshot is a point-in-time copy of a resource's state. On failure Data
// keeps the previous successful result (stale-but-visible, never cleared).
type Snapshot[T any] struct {
	Data    T      `json:"data"`
	Loaded  bool   `json:"loaded"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Resource runs a fetch function and retains its latest relevant result.
//
// Every Refetch is tagged with a monotonically increasing sequence number;
// a result only commits if its tag still matches the latest issued fetch.
// When dependency values change twice in quick succession the displayed
// result therefore reflects the last issued request, never a superseded
// in-flight one, regardless of arrival order.
type Resource[T any] struct {
	mu      sync.Mutex
	seq     uint64
	fetch   func(context.Context) (T, error)
	data    T
	loaded  bool
	loading bool
	errMsg  string
}

// NewResource creates a Resource around the given fetch function. The fetch
// reads its dependency values at call time; superseded results are discarded
// at commit time, so racing dependency changes are safe.
func NewResource[T any](fetch func(context.Context) (T, error)) *Resource[T] {
	return &Resource[T]{fetch: fetch}
}

// Refetch issues a new fetch and commits its result unless a newer fetch was
// issued in the meantime. On failure the previous data stays in place and
// only the error string changes.
func (r *Resource[T]) Refetch(ctx context.Context) {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.loading = true
	r.errMsg = ""
	r.mu.Unlock()

	data, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if seq != r.seq {
		// Superseded by a later fetch; this result is not authoritative.
		return
	}
	r.loading = false
	if err != nil {
		r.errMsg = err.Error()
		return
	}
	r.data = data
	r.loaded = true
}

// Invalidate discards any in-flight fetch result without starting a new one.
// Views call it on unmount so responses targeting a gone view are dropped.
func (r *Resource[T]) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.loading = false
}

// Mutate runs a backend mutation and refetches on success. A failed mutation
// leaves the data untouched and surfaces the error string.
func (r *Resource[T]) Mutate(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		r.mu.Lock()
		r.errMsg = err.Error()
		r.mu.Unlock()
		return err
	}
	r.Refetch(ctx)
	return nil
}

// State returns a snapshot of the current resource state.
func (r *Resource[T]) State() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot[T]{
		Data:    r.data,
		Loaded:  r.loaded,
		Loading: r.loading,
		Error:   r.errMsg,
	}
}
