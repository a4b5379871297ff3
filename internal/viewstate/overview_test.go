package viewstate

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"famgallery/internal/mock"
	gl "famgallery/pkg/gallery"
)

func TestOverviewFetchJoinsAlbumsAndFolders(t *testing.T) {
	albums := []gl.Album{{ID: "album-1", Name: "Summer"}}
	folders := []gl.Folder{{ID: "folder-1", Name: "2025"}}

	albumStore := &mock.AlbumStore{
		ListAlbumsFn: func(ctx context.Context, folderID string, sortBy gl.SortOption) ([]gl.Album, error) {
			if folderID != "" {
				t.Errorf("expected root folder context, got %q", folderID)
			}
			if sortBy != gl.SortByDate {
				t.Errorf("expected default date sort, got %q", sortBy)
			}
			return albums, nil
		},
	}
	folderStore := &mock.FolderStore{
		ListFoldersFn: func(ctx context.Context, parentFolderID string) ([]gl.Folder, error) {
			return folders, nil
		},
	}

	v := NewOverviewView(albumStore, folderStore)
	v.Refetch(context.Background())

	st := v.State()
	if !st.Loaded || st.Error != "" {
		t.Fatalf("unexpected state: %+v", st)
	}
	want := Overview{Albums: albums, Folders: folders}
	if diff := cmp.Diff(want, st.Data); diff != "" {
		t.Errorf("overview mismatch (-want +got):\n%s", diff)
	}
}

func TestOverviewPartialFailureFailsWhole(t *testing.T) {
	albumStore := &mock.AlbumStore{
		ListAlbumsFn: func(ctx context.Context, folderID string, sortBy gl.SortOption) ([]gl.Album, error) {
			return []gl.Album{{ID: "album-1"}}, nil
		},
	}
	folderStore := &mock.FolderStore{
		ListFoldersFn: func(ctx context.Context, parentFolderID string) ([]gl.Folder, error) {
			return nil, errors.New("folders unavailable")
		},
	}

	v := NewOverviewView(albumStore, folderStore)
	v.Refetch(context.Background())

	st := v.State()
	if st.Loaded {
		t.Error("a half-failed join must not commit")
	}
	if st.Error != "folders unavailable" {
		t.Errorf("unexpected error: %q", st.Error)
	}
	if len(st.Data.Albums) != 0 {
		t.Errorf("partial data leaked: %+v", st.Data)
	}
}

func TestOverviewDependencyChanges(t *testing.T) {
	fetches := 0
	var lastFolder string
	var lastSort gl.SortOption
	albumStore := &mock.AlbumStore{
		ListAlbumsFn: func(ctx context.Context, folderID string, sortBy gl.SortOption) ([]gl.Album, error) {
			fetches++
			lastFolder = folderID
			lastSort = sortBy
			return nil, nil
		},
	}
	folderStore := &mock.FolderStore{
		ListFoldersFn: func(ctx context.Context, parentFolderID string) ([]gl.Folder, error) {
			return nil, nil
		},
	}
	v := NewOverviewView(albumStore, folderStore)

	v.SetFolder(context.Background(), "folder-1")
	if fetches != 1 || lastFolder != "folder-1" {
		t.Fatalf("fetches=%d folder=%q", fetches, lastFolder)
	}

	// Unchanged values do not reissue the fetch.
	v.SetFolder(context.Background(), "folder-1")
	v.SetSort(context.Background(), gl.SortByDate)
	if fetches != 1 {
		t.Errorf("no-op dependency change refetched: %d", fetches)
	}

	v.SetSort(context.Background(), gl.SortByName)
	if fetches != 2 || lastSort != gl.SortByName {
		t.Errorf("fetches=%d sort=%q", fetches, lastSort)
	}
}

func TestOverviewCreateAlbumRefetches(t *testing.T) {
	fetches := 0
	var created gl.CreateAlbumRequest
	albumStore := &mock.AlbumStore{
		ListAlbumsFn: func(ctx context.Context, folderID string, sortBy gl.SortOption) ([]gl.Album, error) {
			fetches++
			return []gl.Album{{ID: "album-new", Name: created.Name}}, nil
		},
		CreateAlbumFn: func(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error) {
			created = req
			return gl.Album{ID: "album-new", Name: req.Name}, nil
		},
	}
	folderStore := &mock.FolderStore{
		ListFoldersFn: func(ctx context.Context, parentFolderID string) ([]gl.Folder, error) {
			return nil, nil
		},
	}
	v := NewOverviewView(albumStore, folderStore)

	err := v.CreateAlbum(context.Background(), gl.CreateAlbumRequest{Name: "Winter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Winter" {
		t.Errorf("store received %+v", created)
	}
	if fetches != 1 {
		t.Errorf("expected refetch after create, got %d", fetches)
	}
	if st := v.State(); len(st.Data.Albums) != 1 || st.Data.Albums[0].ID != "album-new" {
		t.Errorf("unexpected state: %+v", st.Data)
	}
}

func TestOverviewDeleteAlbumFailureKeepsList(t *testing.T) {
	albumStore := &mock.AlbumStore{
		ListAlbumsFn: func(ctx context.Context, folderID string, sortBy gl.SortOption) ([]gl.Album, error) {
			return []gl.Album{{ID: "album-1"}}, nil
		},
		DeleteAlbumFn: func(ctx context.Context, id string) error {
			return errors.New("forbidden")
		},
	}
	folderStore := &mock.FolderStore{
		ListFoldersFn: func(ctx context.Context, parentFolderID string) ([]gl.Folder, error) {
			return nil, nil
		},
	}
	v := NewOverviewView(albumStore, folderStore)
	v.Refetch(context.Background())

	if err := v.DeleteAlbum(context.Background(), "album-1"); err == nil {
		t.Fatal("expected error")
	}
	st := v.State()
	if len(st.Data.Albums) != 1 {
		t.Errorf("album list changed on failed delete: %+v", st.Data)
	}
	if st.Error != "forbidden" {
		t.Errorf("unexpected error message: %q", st.Error)
	}
}
