package viewstate

import (
	"context"
	"sync"

	"famgallery/internal"
	gl "famgallery/pkg/gallery"
)

// MediaView backs the all-media listing (upload page, add-media picker). Its
// fetch dependency is the type filter.
type MediaView struct {
	res   *Resource[[]gl.MediaItem]
	store internal.MediaStore

	mu     sync.Mutex
	filter gl.MediaFilter
}

func NewMediaView(store internal.MediaStore) *MediaView {
	v := &MediaView{store: store, filter: gl.FilterAll}
	v.res = NewResource(v.fetch)
	return v
}

func (v *MediaView) fetch(ctx context.Context) ([]gl.MediaItem, error) {
	v.mu.Lock()
	filter := v.filter
	v.mu.Unlock()
	return v.store.ListMedia(ctx, filter)
}

// SetFilter switches the type filter and refetches.
func (v *MediaView) SetFilter(ctx context.Context, filter gl.MediaFilter) {
	v.mu.Lock()
	if v.filter == filter {
		v.mu.Unlock()
		return
	}
	v.filter = filter
	v.mu.Unlock()
	v.res.Refetch(ctx)
}

func (v *MediaView) Refetch(ctx context.Context)     { v.res.Refetch(ctx) }
func (v *MediaView) Close()                          { v.res.Invalidate() }
func (v *MediaView) State() Snapshot[[]gl.MediaItem] { return v.res.State() }

// Delete removes a media item and refetches.
func (v *MediaView) Delete(ctx context.Context, id string) error {
	return v.res.Mutate(ctx, func(ctx context.Context) error {
		return v.store.DeleteMedia(ctx, id)
	})
}
