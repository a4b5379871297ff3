package backend

import (
	"context"

	gl "famgallery/pkg/gallery"
)

// SetVisibility flips an album between private and public.
func (c *Client) SetVisibility(ctx context.Context, albumID string, v gl.Visibility) (gl.Album, error) {
	var album gl.Album
	if err := c.post(ctx, "/albums/"+albumID+"/share", gl.ShareRequest{Visibility: v}, &album); err != nil {
		return gl.Album{}, err
	}
	return album, nil
}

func (c *Client) ListCollaborators(ctx context.Context, albumID string) ([]gl.Collaborator, error) {
	var collaborators []gl.Collaborator
	if err := c.get(ctx, "/albums/"+albumID+"/collaborators", nil, &collaborators); err != nil {
		return nil, err
	}
	return collaborators, nil
}

func (c *Client) UpdateCollaboratorRole(ctx context.Context, albumID, userID string, role gl.Role) (gl.Collaborator, error) {
	body := struct {
		Role gl.Role `json:"role"`
	}{Role: role}
	var collaborator gl.Collaborator
	if err := c.patch(ctx, "/albums/"+albumID+"/collaborators/"+userID, body, &collaborator); err != nil {
		return gl.Collaborator{}, err
	}
	return collaborator, nil
}

func (c *Client) RemoveCollaborator(ctx context.Context, albumID, userID string) error {
	return c.delete(ctx, "/albums/"+albumID+"/collaborators/"+userID)
}

func (c *Client) ListInvites(ctx context.Context, albumID string) ([]gl.AlbumInvite, error) {
	var invites []gl.AlbumInvite
	if err := c.get(ctx, "/albums/"+albumID+"/invites", nil, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

func (c *Client) CreateInvite(ctx context.Context, albumID string, req gl.CreateInviteRequest) (gl.AlbumInvite, error) {
	var invite gl.AlbumInvite
	if err := c.post(ctx, "/albums/"+albumID+"/invites", req, &invite); err != nil {
		return gl.AlbumInvite{}, err
	}
	return invite, nil
}

func (c *Client) RevokeInvite(ctx context.Context, albumID, inviteID string) error {
	return c.post(ctx, "/albums/"+albumID+"/invites/"+inviteID+"/revoke", nil, nil)
}

// AcceptInvite redeems an album invite token for the signed-in user.
func (c *Client) AcceptInvite(ctx context.Context, token string) (gl.Collaborator, error) {
	var collaborator gl.Collaborator
	if err := c.post(ctx, "/invites/"+token+"/accept", nil, &collaborator); err != nil {
		return gl.Collaborator{}, err
	}
	return collaborator, nil
}
