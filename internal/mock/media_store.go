package mock

import (
	"context"
	"io"

	gl "famgallery/pkg/gallery"
)

// MediaStore is a mock implementation of the media store.
type MediaStore struct {
	ListMediaFn     func(ctx context.Context, filter gl.MediaFilter) ([]gl.MediaItem, error)
	RegisterMediaFn func(ctx context.Context, req gl.RegisterMediaRequest) (gl.MediaItem, error)
	DeleteMediaFn   func(ctx context.Context, id string) error
	PresignUploadFn func(ctx context.Context, req gl.PresignRequest) (gl.PresignResponse, error)
}

// ListMedia proxies the request to the ListMediaFn that's injected when
// the mock store is created.
func (s *MediaStore) ListMedia(ctx context.Context, filter gl.MediaFilter) ([]gl.MediaItem, error) {
	return s.ListMediaFn(ctx, filter)
}

// RegisterMedia proxies the request to the RegisterMediaFn that's injected
// when the mock store is created.
func (s *MediaStore) RegisterMedia(ctx context.Context, req gl.RegisterMediaRequest) (gl.MediaItem, error) {
	return s.RegisterMediaFn(ctx, req)
}

// DeleteMedia proxies the request to the DeleteMediaFn that's injected when
// the mock store is created.
func (s *MediaStore) DeleteMedia(ctx context.Context, id string) error {
	return s.DeleteMediaFn(ctx, id)
}

// PresignUpload proxies the request to the PresignUploadFn that's injected
// when the mock store is created.
func (s *MediaStore) PresignUpload(ctx context.Context, req gl.PresignRequest) (gl.PresignResponse, error) {
	return s.PresignUploadFn(ctx, req)
}

// ObjectStore is a mock implementation of the raw object uploader.
type ObjectStore struct {
	PutObjectFn func(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error
}

// PutObject proxies the request to the PutObjectFn that's injected when
// the mock store is created.
func (s *ObjectStore) PutObject(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error {
	return s.PutObjectFn(ctx, uploadURL, contentType, body, size)
}
