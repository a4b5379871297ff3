// Package upload implements the direct-to-storage upload pipeline: presign,
// raw PUT, then metadata registration, per file.
package upload

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools"

	"famgallery/internal"
	gl "famgallery/pkg/gallery"
)

// File is one selected file to upload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Result reports the outcome for one file. A batch never fails as a whole;
// each file succeeds or fails on its own.
type Result struct {
	Name  string       `json:"name"`
	Media gl.MediaItem `json:"media,omitempty"`
	Err   string       `json:"error,omitempty"`
}

// Batch is the outcome of one upload batch.
type Batch struct {
	ID      string   `json:"id"`
	Results []Result `json:"results"`
}

// Uploader runs the three-step upload flow against the backend and storage.
type Uploader struct {
	media   internal.MediaStore
	objects internal.ObjectStore
	albums  internal.AlbumStore
	logger  tools.Logger
}

// New creates an Uploader.
func New(media internal.MediaStore, objects internal.ObjectStore, albums internal.AlbumStore, logger tools.Logger) *Uploader {
	return &Uploader{
		media:   media,
		objects: objects,
		albums:  albums,
		logger:  logger,
	}
}

// Upload runs the batch. Files are processed in order; a failure is recorded
// in that file's Result and the batch moves on. When albumID is non-empty the
// successfully registered items are attached to that album in one call.
func (u *Uploader) Upload(ctx context.Context, files []File, albumID string) Batch {
	batch := Batch{
		ID:      uuid.NewString(),
		Results: make([]Result, 0, len(files)),
	}

	var added []string
	for _, f := range files {
		item, err := u.uploadOne(ctx, f)
		res := Result{Name: f.Name}
		if err != nil {
			res.Err = err.Error()
			u.logger.Warn("upload: file failed", "batch_id", batch.ID, "name", f.Name, "error", err.Error())
		} else {
			res.Media = item
			added = append(added, item.ID)
		}
		batch.Results = append(batch.Results, res)
	}

	if albumID != "" && len(added) > 0 {
		if err := u.albums.AddAlbumMedia(ctx, albumID, added); err != nil {
			// The uploads themselves succeeded; record the album failure on
			// each affected result so the UI can offer a retry.
			u.logger.Warn("upload: album attach failed", "batch_id", batch.ID, "album_id", albumID, "error", err.Error())
			for i := range batch.Results {
				if batch.Results[i].Err == "" {
					batch.Results[i].Err = "uploaded, but could not be added to the album"
				}
			}
		}
	}
	return batch
}

func (u *Uploader) uploadOne(ctx context.Context, f File) (gl.MediaItem, error) {
	mediaType, err := classify(f.ContentType)
	if err != nil {
		return gl.MediaItem{}, err
	}

	presigned, err := u.media.PresignUpload(ctx, gl.PresignRequest{
		Filename:    f.Name,
		ContentType: f.ContentType,
		Type:        mediaType,
	})
	if err != nil {
		return gl.MediaItem{}, errors.Wrap(err, "presigning upload")
	}

	if err := u.objects.PutObject(ctx, presigned.UploadURL, f.ContentType, f.Body, f.Size); err != nil {
		return gl.MediaItem{}, errors.Wrap(err, "uploading object")
	}

	item, err := u.media.RegisterMedia(ctx, gl.RegisterMediaRequest{
		S3Key:       presigned.S3Key,
		Type:        mediaType,
		Filename:    f.Name,
		SizeBytes:   f.Size,
		ContentType: f.ContentType,
	})
	if err != nil {
		return gl.MediaItem{}, errors.Wrap(err, "registering media")
	}
	return item, nil
}

// classify maps a MIME content type to the backend's media type.
func classify(contentType string) (gl.MediaType, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return gl.MediaImage, nil
	case strings.HasPrefix(contentType, "video/"):
		return gl.MediaVideo, nil
	default:
		return "", gl.ErrUnsupportedMedia
	}
}
