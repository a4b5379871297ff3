package mock

import (
	"context"

	gl "famgallery/pkg/gallery"
)

// ShareStore is a mock implementation of the sharing store.
type ShareStore struct {
	SetVisibilityFn          func(ctx context.Context, albumID string, v gl.Visibility) (gl.Album, error)
	ListCollaboratorsFn      func(ctx context.Context, albumID string) ([]gl.Collaborator, error)
	UpdateCollaboratorRoleFn func(ctx context.Context, albumID, userID string, role gl.Role) (gl.Collaborator, error)
	RemoveCollaboratorFn     func(ctx context.Context, albumID, userID string) error
	ListInvitesFn            func(ctx context.Context, albumID string) ([]gl.AlbumInvite, error)
	CreateInviteFn           func(ctx context.Context, albumID string, req gl.CreateInviteRequest) (gl.AlbumInvite, error)
	RevokeInviteFn           func(ctx context.Context, albumID, inviteID string) error
	AcceptInviteFn           func(ctx context.Context, token string) (gl.Collaborator, error)
}

// SetVisibility proxies the request to the SetVisibilityFn that's injected
// when the mock store is created.
func (s *ShareStore) SetVisibility(ctx context.Context, albumID string, v gl.Visibility) (gl.Album, error) {
	return s.SetVisibilityFn(ctx, albumID, v)
}

// ListCollaborators proxies the request to the ListCollaboratorsFn that's
// injected when the mock store is created.
func (s *ShareStore) ListCollaborators(ctx context.Context, albumID string) ([]gl.Collaborator, error) {
	return s.ListCollaboratorsFn(ctx, albumID)
}

// UpdateCollaboratorRole proxies the request to the UpdateCollaboratorRoleFn
// that's injected when the mock store is created.
func (s *ShareStore) UpdateCollaboratorRole(ctx context.Context, albumID, userID string, role gl.Role) (gl.Collaborator, error) {
	return s.UpdateCollaboratorRoleFn(ctx, albumID, userID, role)
}

// RemoveCollaborator proxies the request to the RemoveCollaboratorFn that's
// injected when the mock store is created.
func (s *ShareStore) RemoveCollaborator(ctx context.Context, albumID, userID string) error {
	return s.RemoveCollaboratorFn(ctx, albumID, userID)
}

// ListInvites proxies the request to the ListInvitesFn that's injected when
// the mock store is created.
func (s *ShareStore) ListInvites(ctx context.Context, albumID string) ([]gl.AlbumInvite, error) {
	return s.ListInvitesFn(ctx, albumID)
}

// CreateInvite proxies the request to the CreateInviteFn that's injected when
// the mock store is created.
func (s *ShareStore) CreateInvite(ctx context.Context, albumID string, req gl.CreateInviteRequest) (gl.AlbumInvite, error) {
	return s.CreateInviteFn(ctx, albumID, req)
}

// RevokeInvite proxies the request to the RevokeInviteFn that's injected when
// the mock store is created.
func (s *ShareStore) RevokeInvite(ctx context.Context, albumID, inviteID string) error {
	return s.RevokeInviteFn(ctx, albumID, inviteID)
}

// AcceptInvite proxies the request to the AcceptInviteFn that's injected when
// the mock store is created.
func (s *ShareStore) AcceptInvite(ctx context.Context, token string) (gl.Collaborator, error) {
	return s.AcceptInviteFn(ctx, token)
}
