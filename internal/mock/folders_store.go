package mock

import (
	"context"

	gl "famgallery/pkg/gallery"
)

// FolderStore is a mock implementation of the folder store.
type FolderStore struct {
	ListFoldersFn  func(ctx context.Context, parentFolderID string) ([]gl.Folder, error)
	CreateFolderFn func(ctx context.Context, req gl.CreateFolderRequest) (gl.Folder, error)
	DeleteFolderFn func(ctx context.Context, id string) error
}

// ListFolders proxies the request to the ListFoldersFn that's injected when
// the mock store is created.
func (s *FolderStore) ListFolders(ctx context.Context, parentFolderID string) ([]gl.Folder, error) {
	return s.ListFoldersFn(ctx, parentFolderID)
}

// CreateFolder proxies the request to the CreateFolderFn that's injected when
// the mock store is created.
func (s *FolderStore) CreateFolder(ctx context.Context, req gl.CreateFolderRequest) (gl.Folder, error) {
	return s.CreateFolderFn(ctx, req)
}

// DeleteFolder proxies the request to the DeleteFolderFn that's injected when
// the mock store is created.
func (s *FolderStore) DeleteFolder(ctx context.Context, id string) error {
	return s.DeleteFolderFn(ctx, id)
}
