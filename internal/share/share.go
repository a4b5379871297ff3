// Package share implements the sharing surfaces: the per-album share modal
// and the account-wide family circle. Both are thin request/response
// controllers that mutate their local lists on success and surface a shared
// error string on failure, with no retries.
package share

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/twitsprout/tools/clock"

	"famgallery/internal"
	gl "famgallery/pkg/gallery"
)

// Clipboard delivers text to the user's clipboard. The UI shell implements it
// by pushing a command to the browser; tests fake it.
type Clipboard interface {
	WriteText(text string) error
}

// copiedWindow is how long the "copied" acknowledgment stays visible.
const copiedWindow = 2 * time.Second

// ModalController owns the share modal for one album: visibility, pending
// invites and active collaborators.
type ModalController struct {
	mu            sync.Mutex
	albumID       string
	albumName     string
	shareBaseURL  string
	visibility    gl.Visibility
	collaborators []gl.Collaborator
	invites       []gl.AlbumInvite
	errMsg        string

	copiedLinkUntil   time.Time
	copiedInviteID    string
	copiedInviteUntil time.Time

	store     internal.ShareStore
	clipboard Clipboard
	clock     clock.Clock
}

// ModalConfig wires a ModalController. ShareBaseURL is the public origin the
// share link is built from.
type ModalConfig struct {
	AlbumID      string
	AlbumName    string
	Visibility   gl.Visibility
	ShareBaseURL string
	Store        internal.ShareStore
	Clipboard    Clipboard
	Clock        clock.Clock
}

// NewModal creates the share modal controller for one album.
func NewModal(cfg ModalConfig) *ModalController {
	if cfg.Clock == nil {
		cfg.Clock = &clock.Default{}
	}
	return &ModalController{
		albumID:      cfg.AlbumID,
		albumName:    cfg.AlbumName,
		shareBaseURL: strings.TrimRight(cfg.ShareBaseURL, "/"),
		visibility:   cfg.Visibility,
		store:        cfg.Store,
		clipboard:    cfg.Clipboard,
		clock:        cfg.Clock,
	}
}

// Load fetches collaborators and pending invites. The two requests write
// disjoint state and are issued concurrently. On failure the lists stay
// empty and the inline error message is set.
func (m *ModalController) Load(ctx context.Context) error {
	var collaborators []gl.Collaborator
	var invites []gl.AlbumInvite

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		collaborators, err = m.store.ListCollaborators(gctx, m.albumID)
		return err
	})
	g.Go(func() error {
		all, err := m.store.ListInvites(gctx, m.albumID)
		if err != nil {
			return err
		}
		for _, inv := range all {
			if inv.Status == gl.InvitePending {
				invites = append(invites, inv)
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return m.fail(err)
	}

	m.mu.Lock()
	m.collaborators = collaborators
	m.invites = invites
	m.errMsg = ""
	m.mu.Unlock()
	return nil
}

// ShareURL is the album's public share link.
func (m *ModalController) ShareURL() string {
	return m.shareBaseURL + "/share/" + m.albumID
}

// SetVisibility flips the album between private and public.
func (m *ModalController) SetVisibility(ctx context.Context, v gl.Visibility) error {
	if v != gl.VisibilityPrivate && v != gl.VisibilityPublic {
		return m.fail(gl.ErrInvalidVisibility)
	}
	m.mu.Lock()
	current := m.visibility
	m.mu.Unlock()
	if v == current {
		return nil
	}

	if _, err := m.store.SetVisibility(ctx, m.albumID, v); err != nil {
		return m.fail(err)
	}
	m.mu.Lock()
	m.visibility = v
	m.errMsg = ""
	m.mu.Unlock()
	return nil
}

// Invite creates a pending invite and prepends it to the list.
func (m *ModalController) Invite(ctx context.Context, email string, role gl.Role) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return m.fail(gl.ErrMissingEmail)
	}
	if role != gl.RoleViewer && role != gl.RoleContributor {
		return m.fail(gl.ErrInvalidRole)
	}

	invite, err := m.store.CreateInvite(ctx, m.albumID, gl.CreateInviteRequest{Email: email, Role: role})
	if err != nil {
		return m.fail(err)
	}
	m.mu.Lock()
	m.invites = append([]gl.AlbumInvite{invite}, m.invites...)
	m.errMsg = ""
	m.mu.Unlock()
	return nil
}

// RevokeInvite revokes a pending invite and drops it from the list.
func (m *ModalController) RevokeInvite(ctx context.Context, inviteID string) error {
	if err := m.store.RevokeInvite(ctx, m.albumID, inviteID); err != nil {
		return m.fail(err)
	}
	m.mu.Lock()
	kept := m.invites[:0]
	for _, inv := range m.invites {
		if inv.ID != inviteID {
			kept = append(kept, inv)
		}
	}
	m.invites = kept
	m.errMsg = ""
	m.mu.Unlock()
	return nil
}

// ChangeRole updates a collaborator's role in place.
func (m *ModalController) ChangeRole(ctx context.Context, userID string, role gl.Role) error {
	if role != gl.RoleViewer && role != gl.RoleContributor {
		return m.fail(gl.ErrInvalidRole)
	}
	updated, err := m.store.UpdateCollaboratorRole(ctx, m.albumID, userID, role)
	if err != nil {
		return m.fail(err)
	}
	m.mu.Lock()
	for i, c := range m.collaborators {
		if c.UserID == userID {
			m.collaborators[i] = updated
		}
	}
	m.errMsg = ""
	m.mu.Unlock()
	return nil
}

// RemoveCollaborator revokes a collaborator's standing access.
func (m *ModalController) RemoveCollaborator(ctx context.Context, userID string) error {
	if err := m.store.RemoveCollaborator(ctx, m.albumID, userID); err != nil {
		return m.fail(err)
	}
	m.mu.Lock()
	kept := m.collaborators[:0]
	for _, c := range m.collaborators {
		if c.UserID != userID {
			kept = append(kept, c)
		}
	}
	m.collaborators = kept
	m.errMsg = ""
	m.mu.Unlock()
	return nil
}

// CopyLink puts the public share link on the clipboard and opens the
// 2-second copied acknowledgment window.
func (m *ModalController) CopyLink() error {
	if err := m.clipboard.WriteText(m.ShareURL()); err != nil {
		return err
	}
	m.mu.Lock()
	m.copiedLinkUntil = m.clock.Now().Add(copiedWindow)
	m.mu.Unlock()
	return nil
}

// CopyInviteLink puts one invite's link on the clipboard.
func (m *ModalController) CopyInviteLink(inviteID string) error {
	m.mu.Lock()
	var link string
	for _, inv := range m.invites {
		if inv.ID == inviteID {
			link = inv.InviteLink
		}
	}
	m.mu.Unlock()
	if link == "" {
		return gl.ErrNotFound
	}

	if err := m.clipboard.WriteText(link); err != nil {
		return err
	}
	m.mu.Lock()
	m.copiedInviteID = inviteID
	m.copiedInviteUntil = m.clock.Now().Add(copiedWindow)
	m.mu.Unlock()
	return nil
}

// LinkCopied reports whether the copied acknowledgment is still showing.
func (m *ModalController) LinkCopied() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clock.Now().Before(m.copiedLinkUntil)
}

// InviteCopied reports which invite's copied acknowledgment is showing, if
// any.
func (m *ModalController) InviteCopied() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.copiedInviteID == "" || !m.clock.Now().Before(m.copiedInviteUntil) {
		return "", false
	}
	return m.copiedInviteID, true
}

// Visibility returns the album's current visibility.
func (m *ModalController) Visibility() gl.Visibility {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visibility
}

// Collaborators returns the active collaborator list.
func (m *ModalController) Collaborators() []gl.Collaborator {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]gl.Collaborator{}, m.collaborators...)
}

// Invites returns the pending invite list.
func (m *ModalController) Invites() []gl.AlbumInvite {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]gl.AlbumInvite{}, m.invites...)
}

// Error returns the shared inline error message, empty when the last
// mutation succeeded.
func (m *ModalController) Error() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}

func (m *ModalController) fail(err error) error {
	m.mu.Lock()
	m.errMsg = err.Error()
	m.mu.Unlock()
	return err
}
