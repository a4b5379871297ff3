package viewstate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"famgallery/internal"
	gl "famgallery/pkg/gallery"
)

// AlbumDetail is the album detail composite: the album's metadata plus its
// media in the backend's authoritative order.
type AlbumDetail struct {
	Album gl.Album       `json:"album"`
	Media []gl.MediaItem `json:"media"`
}

// AlbumDetailView backs the album detail page (grid and book modes). The
// album id is fixed at construction; a new view is built per album.
type AlbumDetailView struct {
	res     *Resource[AlbumDetail]
	store   internal.AlbumStore
	albumID string
}

func NewAlbumDetailView(store internal.AlbumStore, albumID string) *AlbumDetailView {
	v := &AlbumDetailView{store: store, albumID: albumID}
	v.res = NewResource(v.fetch)
	return v
}

func (v *AlbumDetailView) fetch(ctx context.Context) (AlbumDetail, error) {
	var detail AlbumDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		media, err := v.store.ListAlbumMedia(gctx, v.albumID)
		if err != nil {
			return err
		}
		detail.Media = media
		return nil
	})
	g.Go(func() error {
		album, err := v.store.GetAlbum(gctx, v.albumID)
		if err != nil {
			return err
		}
		detail.Album = album
		return nil
	})
	if err := g.Wait(); err != nil {
		return AlbumDetail{}, err
	}
	return detail, nil
}

func (v *AlbumDetailView) AlbumID() string { return v.albumID }

func (v *AlbumDetailView) Refetch(ctx context.Context) { v.res.Refetch(ctx) }

func (v *AlbumDetailView) Close() { v.res.Invalidate() }

func (v *AlbumDetailView) State() Snapshot[AlbumDetail] { return v.res.State() }

// Update patches the album's metadata and refetches.
func (v *AlbumDetailView) Update(ctx context.Context, req gl.UpdateAlbumRequest) error {
	return v.res.Mutate(ctx, func(ctx context.Context) error {
		_, err := v.store.UpdateAlbum(ctx, v.albumID, req)
		return err
	})
}

// AddMedia attaches a batch of media ids to the album and refetches. The
// refreshed list's order is the backend's, typically append.
func (v *AlbumDetailView) AddMedia(ctx context.Context, mediaIDs []string) error {
	if len(mediaIDs) == 0 {
		return gl.ErrNoMediaSelected
	}
	return v.res.Mutate(ctx, func(ctx context.Context) error {
		return v.store.AddAlbumMedia(ctx, v.albumID, mediaIDs)
	})
}

// RemoveMedia detaches one media item from the album and refetches.
func (v *AlbumDetailView) RemoveMedia(ctx context.Context, mediaID string) error {
	return v.res.Mutate(ctx, func(ctx context.Context) error {
		return v.store.RemoveAlbumMedia(ctx, v.albumID, mediaID)
	})
}
