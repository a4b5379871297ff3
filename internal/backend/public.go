package backend

import (
	"context"

	gl "famgallery/pkg/gallery"
)

// GetPublicAlbum fetches a publicly shared album without authentication. A
// private or missing album surfaces as a 404 (see IsNotFound).
func (c *Client) GetPublicAlbum(ctx context.Context, albumID string) (gl.Album, error) {
	var album gl.Album
	if err := c.getPublic(ctx, "/public/albums/"+albumID, &album); err != nil {
		return gl.Album{}, err
	}
	return album, nil
}

func (c *Client) ListPublicAlbumMedia(ctx context.Context, albumID string) ([]gl.MediaItem, error) {
	var media []gl.MediaItem
	if err := c.getPublic(ctx, "/public/albums/"+albumID+"/media", &media); err != nil {
		return nil, err
	}
	return media, nil
}

func (c *Client) GetInvitePreview(ctx context.Context, token string) (gl.InvitePreview, error) {
	var preview gl.InvitePreview
	if err := c.getPublic(ctx, "/public/invites/"+token, &preview); err != nil {
		return gl.InvitePreview{}, err
	}
	return preview, nil
}

func (c *Client) GetFamilyInvitePreview(ctx context.Context, token string) (gl.FamilyInvitePreview, error) {
	var preview gl.FamilyInvitePreview
	if err := c.getPublic(ctx, "/public/family-invites/"+token, &preview); err != nil {
		return gl.FamilyInvitePreview{}, err
	}
	return preview, nil
}
