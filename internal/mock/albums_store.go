package mock

import (
	"context"

	gl "famgallery/pkg/gallery"
)

// AlbumStore is a mock implementation of the album store.
type AlbumStore struct {
	ListAlbumsFn       func(ctx context.Context, folderID string, sortBy gl.SortOption) ([]gl.Album, error)
	GetAlbumFn         func(ctx context.Context, id string) (gl.Album, error)
	CreateAlbumFn      func(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error)
	UpdateAlbumFn      func(ctx context.Context, id string, req gl.UpdateAlbumRequest) (gl.Album, error)
	DeleteAlbumFn      func(ctx context.Context, id string) error
	ListSharedAlbumsFn func(ctx context.Context) ([]gl.Album, error)
	ListAlbumMediaFn   func(ctx context.Context, albumID string) ([]gl.MediaItem, error)
	AddAlbumMediaFn    func(ctx context.Context, albumID string, mediaIDs []string) error
	RemoveAlbumMediaFn func(ctx context.Context, albumID, mediaID string) error
}

// ListAlbums proxies the request to the ListAlbumsFn that's injected when
// the mock store is created.
func (s *AlbumStore) ListAlbums(ctx context.Context, folderID string, sortBy gl.SortOption) ([]gl.Album, error) {
	return s.ListAlbumsFn(ctx, folderID, sortBy)
}

// GetAlbum proxies the request to the GetAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) GetAlbum(ctx context.Context, id string) (gl.Album, error) {
	return s.GetAlbumFn(ctx, id)
}

// CreateAlbum proxies the request to the CreateAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) CreateAlbum(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error) {
	return s.CreateAlbumFn(ctx, req)
}

// UpdateAlbum proxies the request to the UpdateAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) UpdateAlbum(ctx context.Context, id string, req gl.UpdateAlbumRequest) (gl.Album, error) {
	return s.UpdateAlbumFn(ctx, id, req)
}

// DeleteAlbum proxies the request to the DeleteAlbumFn that's injected when
// the mock store is created.
func (s *AlbumStore) DeleteAlbum(ctx context.Context, id string) error {
	return s.DeleteAlbumFn(ctx, id)
}

// ListSharedAlbums proxies the request to the ListSharedAlbumsFn that's
// injected when the mock store is created.
func (s *AlbumStore) ListSharedAlbums(ctx context.Context) ([]gl.Album, error) {
	return s.ListSharedAlbumsFn(ctx)
}

// ListAlbumMedia proxies the request to the ListAlbumMediaFn that's injected
// when the mock store is created.
func (s *AlbumStore) ListAlbumMedia(ctx context.Context, albumID string) ([]gl.MediaItem, error) {
	return s.ListAlbumMediaFn(ctx, albumID)
}

// AddAlbumMedia proxies the request to the AddAlbumMediaFn that's injected
// when the mock store is created.
func (s *AlbumStore) AddAlbumMedia(ctx context.Context, albumID string, mediaIDs []string) error {
	return s.AddAlbumMediaFn(ctx, albumID, mediaIDs)
}

// RemoveAlbumMedia proxies the request to the RemoveAlbumMediaFn that's
// injected when the mock store is created.
func (s *AlbumStore) RemoveAlbumMedia(ctx context.Context, albumID, mediaID string) error {
	return s.RemoveAlbumMediaFn(ctx, albumID, mediaID)
}
