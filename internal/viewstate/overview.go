package viewstate

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"famgallery/internal"
	gl "famgallery/pkg/gallery"
)

// Overview is the gallery overview composite: the albums in the current
// folder context plus that folder's immediate children.
type Overview struct {
	Albums  []gl.Album  `json:"albums"`
	Folders []gl.Folder `json:"folders"`
}

// OverviewView backs the album overview page. Its fetch dependencies are the
// current folder id and sort key; changing either reissues the joined fetch.
type OverviewView struct {
	res     *Resource[Overview]
	albums  internal.AlbumStore
	folders internal.FolderStore

	mu       sync.Mutex
	folderID string
	sortBy   gl.SortOption
}

// NewOverviewView creates the overview view rooted at the top-level folder,
// sorted by date.
func NewOverviewView(albums internal.AlbumStore, folders internal.FolderStore) *OverviewView {
	v := &OverviewView{
		albums:  albums,
		folders: folders,
		sortBy:  gl.SortByDate,
	}
	v.res = NewResource(v.fetch)
	return v
}

// Albums and folders are independent requests writing disjoint state, so they
// are issued concurrently and joined before the composite commits.
func (v *OverviewView) fetch(ctx context.Context) (Overview, error) {
	v.mu.Lock()
	folderID := v.folderID
	sortBy := v.sortBy
	v.mu.Unlock()

	var overview Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		albums, err := v.albums.ListAlbums(gctx, folderID, sortBy)
		if err != nil {
			return err
		}
		overview.Albums = albums
		return nil
	})
	g.Go(func() error {
		folders, err := v.folders.ListFolders(gctx, folderID)
		if err != nil {
			return err
		}
		overview.Folders = folders
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return overview, nil
}

// SetFolder switches the current folder context and refetches.
func (v *OverviewView) SetFolder(ctx context.Context, folderID string) {
	v.mu.Lock()
	if v.folderID == folderID {
		v.mu.Unlock()
		return
	}
	v.folderID = folderID
	v.mu.Unlock()
	v.res.Refetch(ctx)
}

// SetSort switches the sort key and refetches.
func (v *OverviewView) SetSort(ctx context.Context, sortBy gl.SortOption) {
	v.mu.Lock()
	if v.sortBy == sortBy {
		v.mu.Unlock()
		return
	}
	v.sortBy = sortBy
	v.mu.Unlock()
	v.res.Refetch(ctx)
}

func (v *OverviewView) Refetch(ctx context.Context) { v.res.Refetch(ctx) }
func (v *OverviewView) Close()                      { v.res.Invalidate() }
func (v *OverviewView) State() Snapshot[Overview]   { return v.res.State() }

// CreateAlbum creates an album in the current folder context and refetches.
func (v *OverviewView) CreateAlbum(ctx context.Context, req gl.CreateAlbumRequest) error {
	return v.res.Mutate(ctx, func(ctx context.Context) error {
		_, err := v.albums.CreateAlbum(ctx, req)
		return err
	})
}

// DeleteAlbum deletes an album and refetches.
func (v *OverviewView) DeleteAlbum(ctx context.Context, id string) error {
	return v.res.Mutate(ctx, func(ctx context.Context) error {
		return v.albums.DeleteAlbum(ctx, id)
	})
}

// CreateFolder creates a child folder and refetches.
func (v *OverviewView) CreateFolder(ctx context.Context, req gl.CreateFolderRequest) error {
	return v.res.Mutate(ctx, func(ctx context.Context) error {
		_, err := v.folders.CreateFolder(ctx, req)
		return err
	})
}

// DeleteFolder deletes a folder and refetches.
func (v *OverviewView) DeleteFolder(ctx context.Context, id string) error {
	return v.res.Mutate(ctx, func(ctx context.Context) error {
		return v.folders.DeleteFolder(ctx, id)
	})
}
