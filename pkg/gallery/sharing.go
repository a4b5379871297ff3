package gallery

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// Role is the level of access a collaborator, invite or family member holds.
type Role string

const (
	RoleOwner       Role = "owner"
	RoleViewer      Role = "viewer"
	RoleContributor Role = "contributor"
)

// InviteStatus tracks the backend-owned lifecycle of an invite. The client
// only observes transitions, it never drives them directly.
type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteRevoked  InviteStatus = "revoked"
	InviteExpired  InviteStatus = "expired"
)

// Collaborator is a user with standing access to a specific album.
type Collaborator struct {
	AlbumID   string      `json:"album_id"`
	UserID    string      `json:"user_id"`
	Email     null.String `json:"email"`
	Role      Role        `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// AlbumInvite is a pending per-album sharing relationship, addressed by email
// and redeemed via its token link.
type AlbumInvite struct {
	ID           string       `json:"id"`
	AlbumID      string       `json:"album_id"`
	InvitedEmail string       `json:"invited_email"`
	Role         Role         `json:"role"`
	Status       InviteStatus `json:"status"`
	Token        string       `json:"token"`
	InviteLink   string       `json:"invite_link"`
	ExpiresAt    null.Time    `json:"expires_at"`
	CreatedAt    time.Time    `json:"created_at"`
}

// FamilyMember grants access to all of the inviting user's albums, current
// and future. Same status/role shape as album invites.
type FamilyMember struct {
	ID         string       `json:"id"`
	OwnerID    string       `json:"owner_id"`
	MemberID   null.String  `json:"member_id"`
	Email      string       `json:"email"`
	Role       Role         `json:"role"`
	Status     InviteStatus `json:"status"`
	InviteLink null.String  `json:"invite_link"`
	CreatedAt  time.Time    `json:"created_at"`
}

// InvitePreview is the unauthenticated view of an album invite link.
type InvitePreview struct {
	AlbumName    string       `json:"album_name"`
	InviterEmail string       `json:"inviter_email"`
	Role         Role         `json:"role"`
	Status       InviteStatus `json:"status"`
}

// FamilyInvitePreview is the unauthenticated view of a family invite link.
type FamilyInvitePreview struct {
	InviterEmail string       `json:"inviter_email"`
	Role         Role         `json:"role"`
	Status       InviteStatus `json:"status"`
}

type CreateInviteRequest struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type ShareRequest struct {
	Visibility Visibility `json:"visibility"`
}
