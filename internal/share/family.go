package share

import (
	"context"
	"strings"
	"sync"

	"famgallery/internal"
	gl "famgallery/pkg/gallery"
)

// FamilyController owns the account-wide family circle: accepted members and
// outstanding invites, split into two lists for display.
type FamilyController struct {
	mu       sync.Mutex
	accepted []gl.FamilyMember
	pending  []gl.FamilyMember
	errMsg   string

	store internal.FamilyStore
}

// NewFamily creates the family circle controller.
func NewFamily(store internal.FamilyStore) *FamilyController {
	return &FamilyController{store: store}
}

// Load fetches the member list and splits it by invite status.
func (f *FamilyController) Load(ctx context.Context) error {
	members, err := f.store.ListFamilyMembers(ctx)
	if err != nil {
		return f.fail(err)
	}
	var accepted, pending []gl.FamilyMember
	for _, m := range members {
		switch m.Status {
		case gl.InviteAccepted:
			accepted = append(accepted, m)
		case gl.InvitePending:
			pending = append(pending, m)
		}
	}
	f.mu.Lock()
	f.accepted = accepted
	f.pending = pending
	f.errMsg = ""
	f.mu.Unlock()
	return nil
}

// Invite adds someone to the family circle by email. The new member lands in
// the pending list until they accept.
func (f *FamilyController) Invite(ctx context.Context, email string, role gl.Role) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return f.fail(gl.ErrMissingEmail)
	}
	if role != gl.RoleViewer && role != gl.RoleContributor {
		return f.fail(gl.ErrInvalidRole)
	}

	member, err := f.store.InviteFamilyMember(ctx, gl.CreateInviteRequest{Email: email, Role: role})
	if err != nil {
		return f.fail(err)
	}
	f.mu.Lock()
	f.pending = append([]gl.FamilyMember{member}, f.pending...)
	f.errMsg = ""
	f.mu.Unlock()
	return nil
}

// ChangeRole updates a member's default role across shared albums.
func (f *FamilyController) ChangeRole(ctx context.Context, memberID string, role gl.Role) error {
	if role != gl.RoleViewer && role != gl.RoleContributor {
		return f.fail(gl.ErrInvalidRole)
	}
	updated, err := f.store.UpdateFamilyMemberRole(ctx, memberID, role)
	if err != nil {
		return f.fail(err)
	}
	f.mu.Lock()
	for i, m := range f.accepted {
		if m.ID == memberID {
			f.accepted[i] = updated
		}
	}
	for i, m := range f.pending {
		if m.ID == memberID {
			f.pending[i] = updated
		}
	}
	f.errMsg = ""
	f.mu.Unlock()
	return nil
}

// Remove takes a member out of the circle. Removing a pending invitee doubles
// as revoking the invite.
func (f *FamilyController) Remove(ctx context.Context, memberID string) error {
	if err := f.store.RemoveFamilyMember(ctx, memberID); err != nil {
		return f.fail(err)
	}
	f.mu.Lock()
	f.accepted = dropMember(f.accepted, memberID)
	f.pending = dropMember(f.pending, memberID)
	f.errMsg = ""
	f.mu.Unlock()
	return nil
}

// Accepted returns the accepted member list.
func (f *FamilyController) Accepted() []gl.FamilyMember {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gl.FamilyMember{}, f.accepted...)
}

// Pending returns members who have not accepted yet.
func (f *FamilyController) Pending() []gl.FamilyMember {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]gl.FamilyMember{}, f.pending...)
}

// Error returns the shared inline error message.
func (f *FamilyController) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *FamilyController) fail(err error) error {
	f.mu.Lock()
	f.errMsg = err.Error()
	f.mu.Unlock()
	return err
}

func dropMember(list []gl.FamilyMember, id string) []gl.FamilyMember {
	kept := list[:0]
	for _, m := range list {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return kept
}
