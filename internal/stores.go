package internal

import (
	"context"
	"io"

	gl "famgallery/pkg/gallery"
)

// MediaStore is the media half of the backend API: listing, registering
// uploaded objects, deleting, and obtaining presigned upload destinations.
type MediaStore interface {
	ListMedia(ctx context.Context, filter gl.MediaFilter) ([]gl.MediaItem, error)
	RegisterMedia(ctx context.Context, req gl.RegisterMediaRequest) (gl.MediaItem, error)
	DeleteMedia(ctx context.Context, id string) error
	PresignUpload(ctx context.Context, req gl.PresignRequest) (gl.PresignResponse, error)
}

// ObjectStore uploads raw bytes directly to storage via a presigned URL.
type ObjectStore interface {
	PutObject(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error
}

// AlbumStore covers album CRUD and album-media membership.
type AlbumStore interface {
	ListAlbums(ctx context.Context, folderID string, sortBy gl.SortOption) ([]gl.Album, error)
	GetAlbum(ctx context.Context, id string) (gl.Album, error)
	CreateAlbum(ctx context.Context, req gl.CreateAlbumRequest) (gl.Album, error)
	UpdateAlbum(ctx context.Context, id string, req gl.UpdateAlbumRequest) (gl.Album, error)
	DeleteAlbum(ctx context.Context, id string) error
	ListSharedAlbums(ctx context.Context) ([]gl.Album, error)
	ListAlbumMedia(ctx context.Context, albumID string) ([]gl.MediaItem, error)
	AddAlbumMedia(ctx context.Context, albumID string, mediaIDs []string) error
	RemoveAlbumMedia(ctx context.Context, albumID, mediaID string) error
}

// FolderStore covers the folder tree. Listing is lazy, one level per parent.
type FolderStore interface {
	ListFolders(ctx context.Context, parentFolderID string) ([]gl.Folder, error)
	CreateFolder(ctx context.Context, req gl.CreateFolderRequest) (gl.Folder, error)
	DeleteFolder(ctx context.Context, id string) error
}

// ShareStore covers per-album sharing: visibility, collaborators and invites.
type ShareStore interface {
	SetVisibility(ctx context.Context, albumID string, v gl.Visibility) (gl.Album, error)
	ListCollaborators(ctx context.Context, albumID string) ([]gl.Collaborator, error)
	UpdateCollaboratorRole(ctx context.Context, albumID, userID string, role gl.Role) (gl.Collaborator, error)
	RemoveCollaborator(ctx context.Context, albumID, userID string) error
	ListInvites(ctx context.Context, albumID string) ([]gl.AlbumInvite, error)
	CreateInvite(ctx context.Context, albumID string, req gl.CreateInviteRequest) (gl.AlbumInvite, error)
	RevokeInvite(ctx context.Context, albumID, inviteID string) error
	AcceptInvite(ctx context.Context, token string) (gl.Collaborator, error)
}

// FamilyStore covers the account-wide family circle.
type FamilyStore interface {
	ListFamilyMembers(ctx context.Context) ([]gl.FamilyMember, error)
	InviteFamilyMember(ctx context.Context, req gl.CreateInviteRequest) (gl.FamilyMember, error)
	UpdateFamilyMemberRole(ctx context.Context, id string, role gl.Role) (gl.FamilyMember, error)
	RemoveFamilyMember(ctx context.Context, id string) error
	AcceptFamilyInvite(ctx context.Context, token string) (gl.FamilyMember, error)
}

// PublicStore covers the unauthenticated share-link and invite-preview
// endpoints.
type PublicStore interface {
	GetPublicAlbum(ctx context.Context, albumID string) (gl.Album, error)
	ListPublicAlbumMedia(ctx context.Context, albumID string) ([]gl.MediaItem, error)
	GetInvitePreview(ctx context.Context, token string) (gl.InvitePreview, error)
	GetFamilyInvitePreview(ctx context.Context, token string) (gl.FamilyInvitePreview, error)
}
