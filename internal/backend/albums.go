package backend

import (
	"context"
	"net/url"

	gl "famgallery/pkg/gallery"
)

// ListAlbums returns the caller's albums in the given folder context, sorted
// by date or name. An empty folderID means the root level.
func (c *Client) ListAlbums(ctx context.Context, folderID string, sortBy gl.SortOption) ([]gl.Album, error) {
	if sortBy == "" {
		sortBy = gl.SortByDate
	}
	query := url.Values{"sort_by": {string(sortBy)}}
	if folderID != "" {
		query.Set("folder_id", folderID)
	}
	var albums []gl.Album
	if err := c.get(ctx, "/albums", query, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

func (c *Client) GetAlbum(ctx context.Context, id string) (gl.Album, error) {
	var album gl.Album
	if err := c.get(ctx, "/albums/"+id, nil, &album); err != nil {
		return gl.Album{}, err
	}
	return album, nil
}

func (c *Client) CreateAlbum(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error) {
	var album gl.Album
	if err := c.post(ctx, "/albums", req, &album); err != nil {
		return gl.Album{}, err
	}
	return album, nil
}

func (c *Client) UpdateAlbum(ctx context.Context, id string, req gl.UpdateAlbumRequest) (gl.Album, error) {
	var album gl.Album
	if err := c.patch(ctx, "/albums/"+id, req, &album); err != nil {
		return gl.Album{}, err
	}
	return album, nil
}

func (c *Client) DeleteAlbum(ctx context.Context, id string) error {
	return c.delete(ctx, "/albums/"+id)
}

// ListSharedAlbums returns albums shared with the caller by other users.
func (c *Client) ListSharedAlbums(ctx context.Context) ([]gl.Album, error) {
	var albums []gl.Album
	if err := c.get(ctx, "/albums/shared", nil, &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

// ListAlbumMedia returns the album's media in the backend's authoritative
// order.
func (c *Client) ListAlbumMedia(ctx context.Context, albumID string) ([]gl.MediaItem, error) {
	var media []gl.MediaItem
	if err := c.get(ctx, "/albums/"+albumID+"/media", nil, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// AddAlbumMedia attaches a batch of media ids to the album.
func (c *Client) AddAlbumMedia(ctx context.Context, albumID string, mediaIDs []string) error {
	body := struct {
		MediaIDs []string `json:"media_ids"`
	}{MediaIDs: mediaIDs}
	return c.post(ctx, "/albums/"+albumID+"/media", body, nil)
}

func (c *Client) RemoveAlbumMedia(ctx context.Context, albumID, mediaID string) error {
	return c.delete(ctx, "/albums/"+albumID+"/media/"+mediaID)
}
