package mock

import (
	"context"

	gl "famgallery/pkg/gallery"
)

// PublicStore is a mock implementation of the unauthenticated store.
type PublicStore struct {
	GetPublicAlbumFn         func(ctx context.Context, albumID string) (gl.Album, error)
	ListPublicAlbumMediaFn   func(ctx context.Context, albumID string) ([]gl.MediaItem, error)
	GetInvitePreviewFn       func(ctx context.Context, token string) (gl.InvitePreview, error)
	GetFamilyInvitePreviewFn func(ctx context.Context, token string) (gl.FamilyInvitePreview, error)
}

// GetPublicAlbum proxies the request to the GetPublicAlbumFn that's injected
// when the mock store is created.
func (s *PublicStore) GetPublicAlbum(ctx context.Context, albumID string) (gl.Album, error) {
	return s.GetPublicAlbumFn(ctx, albumID)
}

// ListPublicAlbumMedia proxies the request to the ListPublicAlbumMediaFn
// that's injected when the mock store is created.
func (s *PublicStore) ListPublicAlbumMedia(ctx context.Context, albumID string) ([]gl.MediaItem, error) {
	return s.ListPublicAlbumMediaFn(ctx, albumID)
}

// GetInvitePreview proxies the request to the GetInvitePreviewFn that's
// injected when the mock store is created.
func (s *PublicStore) GetInvitePreview(ctx context.Context, token string) (gl.InvitePreview, error) {
	return s.GetInvitePreviewFn(ctx, token)
}

// GetFamilyInvitePreview proxies the request to the GetFamilyInvitePreviewFn
// that's injected when the mock store is created.
func (s *PublicStore) GetFamilyInvitePreview(ctx context.Context, token string) (gl.FamilyInvitePreview, error) {
	return s.GetFamilyInvitePreviewFn(ctx, token)
}
