package backend

import (
	"context"

	gl "famgallery/pkg/gallery"
)

func (c *Client) ListFamilyMembers(ctx context.Context) ([]gl.FamilyMember, error) {
	var members []gl.FamilyMember
	if err := c.get(ctx, "/family", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// InviteFamilyMember grants the invitee access to all of the caller's albums,
// current and future, once accepted.
func (c *Client) InviteFamilyMember(ctx context.Context, req gl.CreateInviteRequest) (gl.FamilyMember, error) {
	var member gl.FamilyMember
	if err := c.post(ctx, "/family", req, &member); err != nil {
		return gl.FamilyMember{}, err
	}
	return member, nil
}

func (c *Client) UpdateFamilyMemberRole(ctx context.Context, id string, role gl.Role) (gl.FamilyMember, error) {
	body := struct {
		Role gl.Role `json:"role"`
	}{Role: role}
	var member gl.FamilyMember
	if err := c.patch(ctx, "/family/"+id, body, &member); err != nil {
		return gl.FamilyMember{}, err
	}
	return member, nil
}

func (c *Client) RemoveFamilyMember(ctx context.Context, id string) error {
	return c.delete(ctx, "/family/"+id)
}

func (c *Client) AcceptFamilyInvite(ctx context.Context, token string) (gl.FamilyMember, error) {
	var member gl.FamilyMember
	if err := c.post(ctx, "/family/invites/"+token+"/accept", nil, &member); err != nil {
		return gl.FamilyMember{}, err
	}
	return member, nil
}
