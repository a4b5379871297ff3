package upload

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	tm "github.com/twitsprout/tools/mock"

	"famgallery/internal/mock"
	gl "famgallery/pkg/gallery"
)

func TestUploadBatch(t *testing.T) {
	var presigned []gl.PresignRequest
	var putURLs []string
	var registered []gl.RegisterMediaRequest

	media := &mock.MediaStore{
		PresignUploadFn: func(ctx context.Context, req gl.PresignRequest) (gl.PresignResponse, error) {
			presigned = append(presigned, req)
			return gl.PresignResponse{
				UploadURL: "https://storage.example.com/put/" + req.Filename,
				S3Key:     "uploads/" + req.Filename,
			}, nil
		},
		RegisterMediaFn: func(ctx context.Context, req gl.RegisterMediaRequest) (gl.MediaItem, error) {
			registered = append(registered, req)
			return gl.MediaItem{ID: "media-" + req.Filename, Type: req.Type}, nil
		},
	}
	objects := &mock.ObjectStore{
		PutObjectFn: func(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error {
			putURLs = append(putURLs, uploadURL)
			return nil
		},
	}

	u := New(media, objects, &mock.AlbumStore{}, tm.NopLogger)
	batch := u.Upload(context.Background(), []File{
		{Name: "beach.jpg", ContentType: "image/jpeg", Size: 1024, Body: strings.NewReader("jpg")},
		{Name: "clip.mp4", ContentType: "video/mp4", Size: 2048, Body: strings.NewReader("mp4")},
	}, "")

	if batch.ID == "" {
		t.Error("expected a batch id")
	}
	if len(batch.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(batch.Results))
	}
	for _, res := range batch.Results {
		if res.Err != "" {
			t.Errorf("unexpected per-file error for %s: %s", res.Name, res.Err)
		}
	}

	wantPresigned := []gl.PresignRequest{
		{Filename: "beach.jpg", ContentType: "image/jpeg", Type: gl.MediaImage},
		{Filename: "clip.mp4", ContentType: "video/mp4", Type: gl.MediaVideo},
	}
	if diff := cmp.Diff(wantPresigned, presigned); diff != "" {
		t.Errorf("presign requests mismatch (-want +got):\n%s", diff)
	}

	wantRegistered := []gl.RegisterMediaRequest{
		{S3Key: "uploads/beach.jpg", Type: gl.MediaImage, Filename: "beach.jpg", SizeBytes: 1024, ContentType: "image/jpeg"},
		{S3Key: "uploads/clip.mp4", Type: gl.MediaVideo, Filename: "clip.mp4", SizeBytes: 2048, ContentType: "video/mp4"},
	}
	if diff := cmp.Diff(wantRegistered, registered); diff != "" {
		t.Errorf("register requests mismatch (-want +got):\n%s", diff)
	}

	if len(putURLs) != 2 {
		t.Errorf("expected 2 object puts, got %d", len(putURLs))
	}
}

func TestUploadPerFileFailure(t *testing.T) {
	media := &mock.MediaStore{
		PresignUploadFn: func(ctx context.Context, req gl.PresignRequest) (gl.PresignResponse, error) {
			if req.Filename == "broken.jpg" {
				return gl.PresignResponse{}, errors.New("quota exceeded")
			}
			return gl.PresignResponse{UploadURL: "https://storage.example.com/put", S3Key: "uploads/" + req.Filename}, nil
		},
		RegisterMediaFn: func(ctx context.Context, req gl.RegisterMediaRequest) (gl.MediaItem, error) {
			return gl.MediaItem{ID: "media-" + req.Filename}, nil
		},
	}
	objects := &mock.ObjectStore{
		PutObjectFn: func(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error {
			return nil
		},
	}

	u := New(media, objects, &mock.AlbumStore{}, tm.NopLogger)
	batch := u.Upload(context.Background(), []File{
		{Name: "broken.jpg", ContentType: "image/jpeg"},
		{Name: "fine.jpg", ContentType: "image/jpeg"},
		{Name: "notes.txt", ContentType: "text/plain"},
	}, "")

	if len(batch.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(batch.Results))
	}
	if batch.Results[0].Err == "" || !strings.Contains(batch.Results[0].Err, "quota exceeded") {
		t.Errorf("unexpected error for broken.jpg: %q", batch.Results[0].Err)
	}
	if batch.Results[1].Err != "" {
		t.Errorf("fine.jpg should succeed: %q", batch.Results[1].Err)
	}
	if batch.Results[2].Err != gl.ErrUnsupportedMedia.Error() {
		t.Errorf("unexpected error for notes.txt: %q", batch.Results[2].Err)
	}
}

func TestUploadAttachesToAlbum(t *testing.T) {
	media := &mock.MediaStore{
		PresignUploadFn: func(ctx context.Context, req gl.PresignRequest) (gl.PresignResponse, error) {
			return gl.PresignResponse{UploadURL: "https://storage.example.com/put", S3Key: "uploads/" + req.Filename}, nil
		},
		RegisterMediaFn: func(ctx context.Context, req gl.RegisterMediaRequest) (gl.MediaItem, error) {
			return gl.MediaItem{ID: "media-" + req.Filename}, nil
		},
	}
	objects := &mock.ObjectStore{
		PutObjectFn: func(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error {
			return nil
		},
	}

	t.Run("successful items attach in one batch", func(t *testing.T) {
		var gotAlbum string
		var gotIDs []string
		albums := &mock.AlbumStore{
			AddAlbumMediaFn: func(ctx context.Context, albumID string, mediaIDs []string) error {
				gotAlbum = albumID
				gotIDs = mediaIDs
				return nil
			},
		}
		u := New(media, objects, albums, tm.NopLogger)
		u.Upload(context.Background(), []File{
			{Name: "a.jpg", ContentType: "image/jpeg"},
			{Name: "b.txt", ContentType: "text/plain"},
			{Name: "c.jpg", ContentType: "image/jpeg"},
		}, "album-1")

		if gotAlbum != "album-1" {
			t.Errorf("album id = %q", gotAlbum)
		}
		if diff := cmp.Diff([]string{"media-a.jpg", "media-c.jpg"}, gotIDs); diff != "" {
			t.Errorf("attached ids mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("attach failure marks uploaded files", func(t *testing.T) {
		albums := &mock.AlbumStore{
			AddAlbumMediaFn: func(ctx context.Context, albumID string, mediaIDs []string) error {
				return errors.New("album gone")
			},
		}
		u := New(media, objects, albums, tm.NopLogger)
		batch := u.Upload(context.Background(), []File{
			{Name: "a.jpg", ContentType: "image/jpeg"},
		}, "album-1")

		if batch.Results[0].Err == "" {
			t.Error("expected attach failure to be recorded on the result")
		}
		if batch.Results[0].Media.ID != "media-a.jpg" {
			t.Error("the upload itself succeeded and should keep its media item")
		}
	})

	t.Run("no attach without album", func(t *testing.T) {
		albums := &mock.AlbumStore{
			AddAlbumMediaFn: func(ctx context.Context, albumID string, mediaIDs []string) error {
				t.Fatal("AddAlbumMedia should not be called")
				return nil
			},
		}
		u := New(media, objects, albums, tm.NopLogger)
		u.Upload(context.Background(), []File{
			{Name: "a.jpg", ContentType: "image/jpeg"},
		}, "")
	})
}
