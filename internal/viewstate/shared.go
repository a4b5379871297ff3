package viewstate

import (
	"context"

	"famgallery/internal"
	gl "famgallery/pkg/gallery"
)

// SharedAlbumsView backs the "shared with me" listing.
type SharedAlbumsView struct {
	res   *Resource[[]gl.Album]
	store internal.AlbumStore
}

func NewSharedAlbumsView(store internal.AlbumStore) *SharedAlbumsView {
	v := &SharedAlbumsView{store: store}
	v.res = NewResource(func(ctx context.Context) ([]gl.Album, error) {
		return store.ListSharedAlbums(ctx)
	})
	return v
}

func (v *SharedAlbumsView) Refetch(ctx context.Context) { v.res.Refetch(ctx) }

func (v *SharedAlbumsView) Close() { v.res.Invalidate() }

func (v *SharedAlbumsView) State() Snapshot[[]gl.Album] { return v.res.State() }
