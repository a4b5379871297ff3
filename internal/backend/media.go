package backend

import (
	"context"
	"net/url"

	gl "famgallery/pkg/gallery"
)

// ListMedia returns the caller's media, optionally restricted to one type.
func (c *Client) ListMedia(ctx context.Context, filter gl.MediaFilter) ([]gl.MediaItem, error) {
	var query url.Values
	if filter != "" && filter != gl.FilterAll {
		query = url.Values{"type": {string(filter)}}
	}
	var media []gl.MediaItem
	if err := c.get(ctx, "/media", query, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// RegisterMedia records an uploaded object's metadata after the bytes have
// already been PUT to storage.
func (c *Client) RegisterMedia(ctx context.Context, req gl.RegisterMediaRequest) (gl.MediaItem, error) {
	var item gl.MediaItem
	if err := c.post(ctx, "/media", req, &item); err != nil {
		return gl.MediaItem{}, err
	}
	return item, nil
}

// DeleteMedia removes a media item everywhere it appears.
func (c *Client) DeleteMedia(ctx context.Context, id string) error {
	return c.delete(ctx, "/media/"+id)
}

// PresignUpload obtains a direct-to-storage upload destination.
func (c *Client) PresignUpload(ctx context.Context, req gl.PresignRequest) (gl.PresignResponse, error) {
	var res gl.PresignResponse
	if err := c.post(ctx, "/uploads/presign", req, &res); err != nil {
		return gl.PresignResponse{}, err
	}
	return res, nil
}
