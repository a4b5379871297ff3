package gallery

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// Visibility gates unauthenticated access to an album via its share link.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// SortOption orders an album listing.
type SortOption string

const (
	SortByDate SortOption = "date"
	SortByName SortOption = "name"
)

// Album groups media items. Role is the caller's effective role and is only
// meaningful when the album was fetched by a non-owner.
type Album struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	FolderID    null.String `json:"folder_id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	CoverURL    null.String `json:"cover_url"`
	MediaCount  int         `json:"media_count"`
	Visibility  Visibility  `json:"visibility"`
	Role        Role        `json:"role,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Folder is a node in the folder tree. Only one level of children is fetched
// at a time, keyed by the parent folder id.
type Folder struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	Name           string      `json:"name"`
	ParentFolderID null.String `json:"parent_folder_id"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type CreateAlbumRequest struct {
	Name        string      `json:"name"`
	FolderID    null.String `json:"folder_id,omitempty"`
	Description null.String `json:"description,omitempty"`
}

type UpdateAlbumRequest struct {
	Name         null.String `json:"name,omitempty"`
	FolderID     null.String `json:"folder_id,omitempty"`
	Description  null.String `json:"description,omitempty"`
	CoverMediaID null.String `json:"cover_media_id,omitempty"`
}

type CreateFolderRequest struct {
	Name           string      `json:"name"`
	ParentFolderID null.String `json:"parent_folder_id,omitempty"`
}
