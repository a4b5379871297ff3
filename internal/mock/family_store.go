package mock

import (
	"context"

	gl "famgallery/pkg/gallery"
)

// FamilyStore is a mock implementation of the family circle store.
type FamilyStore struct {
	ListFamilyMembersFn      func(ctx context.Context) ([]gl.FamilyMember, error)
	InviteFamilyMemberFn     func(ctx context.Context, req gl.CreateInviteRequest) (gl.FamilyMember, error)
	UpdateFamilyMemberRoleFn func(ctx context.Context, id string, role gl.Role) (gl.FamilyMember, error)
	RemoveFamilyMemberFn     func(ctx context.Context, id string) error
	AcceptFamilyInviteFn     func(ctx context.Context, token string) (gl.FamilyMember, error)
}

// ListFamilyMembers proxies the request to the ListFamilyMembersFn that's
// injected when the mock store is created.
func (s *FamilyStore) ListFamilyMembers(ctx context.Context) ([]gl.FamilyMember, error) {
	return s.ListFamilyMembersFn(ctx)
}

// InviteFamilyMember proxies the request to the InviteFamilyMemberFn that's
// injected when the mock store is created.
func (s *FamilyStore) InviteFamilyMember(ctx context.Context, req gl.CreateInviteRequest) (gl.FamilyMember, error) {
	return s.InviteFamilyMemberFn(ctx, req)
}

// UpdateFamilyMemberRole proxies the request to the UpdateFamilyMemberRoleFn
// that's injected when the mock store is created.
func (s *FamilyStore) UpdateFamilyMemberRole(ctx context.Context, id string, role gl.Role) (gl.FamilyMember, error) {
	return s.UpdateFamilyMemberRoleFn(ctx, id, role)
}

// RemoveFamilyMember proxies the request to the RemoveFamilyMemberFn that's
// injected when the mock store is created.
func (s *FamilyStore) RemoveFamilyMember(ctx context.Context, id string) error {
	return s.RemoveFamilyMemberFn(ctx, id)
}

// AcceptFamilyInvite proxies the request to the AcceptFamilyInviteFn that's
// injected when the mock store is created.
func (s *FamilyStore) AcceptFamilyInvite(ctx context.Context, token string) (gl.FamilyMember, error) {
	return s.AcceptFamilyInviteFn(ctx, token)
}
