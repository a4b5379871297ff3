package share

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	tm "github.com/twitsprout/tools/mock"

	"famgallery/internal/mock"
	gl "famgallery/pkg/gallery"
)

type fakeClipboard struct {
	texts []string
	err   error
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.texts = append(c.texts, text)
	return nil
}

func newTestModal(store *mock.ShareStore, clip *fakeClipboard, now func() time.Time) *ModalController {
	if clip == nil {
		clip = &fakeClipboard{}
	}
	if now == nil {
		now = time.Now
	}
	return NewModal(ModalConfig{
		AlbumID:      "album-1",
		AlbumName:    "Summer 2025",
		Visibility:   gl.VisibilityPrivate,
		ShareBaseURL: "https://gallery.example.com/",
		Store:        store,
		Clipboard:    clip,
		Clock:        &tm.Clock{NowFn: now},
	})
}

func TestModalLoadFiltersPendingInvites(t *testing.T) {
	collaborators := []gl.Collaborator{
		{AlbumID: "album-1", UserID: "user-2", Role: gl.RoleViewer},
	}
	invites := []gl.AlbumInvite{
		{ID: "inv-1", Status: gl.InvitePending},
		{ID: "inv-2", Status: gl.InviteAccepted},
		{ID: "inv-3", Status: gl.InviteRevoked},
		{ID: "inv-4", Status: gl.InvitePending},
	}
	store := &mock.ShareStore{
		ListCollaboratorsFn: func(ctx context.Context, albumID string) ([]gl.Collaborator, error) {
			if albumID != "album-1" {
				t.Errorf("unexpected album id: %s", albumID)
			}
			return collaborators, nil
		},
		ListInvitesFn: func(ctx context.Context, albumID string) ([]gl.AlbumInvite, error) {
			return invites, nil
		},
	}

	m := newTestModal(store, nil, nil)
	m.Load(context.Background())

	if diff := cmp.Diff(collaborators, m.Collaborators()); diff != "" {
		t.Errorf("collaborators mismatch (-want +got):\n%s", diff)
	}
	got := m.Invites()
	want := []gl.AlbumInvite{invites[0], invites[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("invites mismatch (-want +got):\n%s", diff)
	}
}

func TestModalLoadErrorSurfacesAndKeepsListsEmpty(t *testing.T) {
	store := &mock.ShareStore{
		ListCollaboratorsFn: func(ctx context.Context, albumID string) ([]gl.Collaborator, error) {
			return nil, errors.New("collaborators unavailable")
		},
		ListInvitesFn: func(ctx context.Context, albumID string) ([]gl.AlbumInvite, error) {
			return []gl.AlbumInvite{{ID: "inv-1", Status: gl.InvitePending}}, nil
		},
	}

	m := newTestModal(store, nil, nil)
	if err := m.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if m.Error() != "collaborators unavailable" {
		t.Errorf("unexpected error message: %q", m.Error())
	}

	if got := m.Collaborators(); len(got) != 0 {
		t.Errorf("expected no collaborators, got %d", len(got))
	}
	if got := m.Invites(); len(got) != 0 {
		t.Errorf("expected no invites, got %d", len(got))
	}

	// A later successful load clears the message.
	store.ListCollaboratorsFn = func(ctx context.Context, albumID string) ([]gl.Collaborator, error) {
		return nil, nil
	}
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Error() != "" {
		t.Errorf("error message not cleared: %q", m.Error())
	}
}

func TestModalSetVisibility(t *testing.T) {
	t.Run("flips and records", func(t *testing.T) {
		var gotVis gl.Visibility
		store := &mock.ShareStore{
			SetVisibilityFn: func(ctx context.Context, albumID string, v gl.Visibility) (gl.Album, error) {
				gotVis = v
				return gl.Album{ID: albumID, Visibility: v}, nil
			},
		}
		m := newTestModal(store, nil, nil)

		if err := m.SetVisibility(context.Background(), gl.VisibilityPublic); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotVis != gl.VisibilityPublic {
			t.Errorf("store received %q, want public", gotVis)
		}
		if m.Visibility() != gl.VisibilityPublic {
			t.Errorf("visibility not updated: %q", m.Visibility())
		}
	})

	t.Run("same value is a no-op", func(t *testing.T) {
		store := &mock.ShareStore{
			SetVisibilityFn: func(ctx context.Context, albumID string, v gl.Visibility) (gl.Album, error) {
				t.Fatal("store should not be called")
				return gl.Album{}, nil
			},
		}
		m := newTestModal(store, nil, nil)
		if err := m.SetVisibility(context.Background(), gl.VisibilityPrivate); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store error keeps current value and sets message", func(t *testing.T) {
		store := &mock.ShareStore{
			SetVisibilityFn: func(ctx context.Context, albumID string, v gl.Visibility) (gl.Album, error) {
				return gl.Album{}, errors.New("visibility update failed")
			},
		}
		m := newTestModal(store, nil, nil)
		if err := m.SetVisibility(context.Background(), gl.VisibilityPublic); err == nil {
			t.Fatal("expected error")
		}
		if m.Visibility() != gl.VisibilityPrivate {
			t.Errorf("visibility changed on failure: %q", m.Visibility())
		}
		if m.Error() != "visibility update failed" {
			t.Errorf("unexpected error message: %q", m.Error())
		}
	})
}

func TestModalInvite(t *testing.T) {
	t.Run("prepends pending invite", func(t *testing.T) {
		store := &mock.ShareStore{
			ListCollaboratorsFn: func(ctx context.Context, albumID string) ([]gl.Collaborator, error) {
				return nil, nil
			},
			ListInvitesFn: func(ctx context.Context, albumID string) ([]gl.AlbumInvite, error) {
				return []gl.AlbumInvite{{ID: "inv-old", Status: gl.InvitePending}}, nil
			},
			CreateInviteFn: func(ctx context.Context, albumID string, req gl.CreateInviteRequest) (gl.AlbumInvite, error) {
				return gl.AlbumInvite{ID: "inv-new", InvitedEmail: req.Email, Role: req.Role, Status: gl.InvitePending}, nil
			},
		}
		m := newTestModal(store, nil, nil)
		m.Load(context.Background())

		if err := m.Invite(context.Background(), "  aunt@example.com ", gl.RoleContributor); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := m.Invites()
		if len(got) != 2 || got[0].ID != "inv-new" || got[1].ID != "inv-old" {
			t.Errorf("unexpected invite list: %+v", got)
		}
		if got[0].InvitedEmail != "aunt@example.com" {
			t.Errorf("email not trimmed: %q", got[0].InvitedEmail)
		}
	})

	t.Run("empty email", func(t *testing.T) {
		m := newTestModal(&mock.ShareStore{}, nil, nil)
		if err := m.Invite(context.Background(), "   ", gl.RoleViewer); err != gl.ErrMissingEmail {
			t.Fatalf("expected ErrMissingEmail, got %v", err)
		}
		if m.Error() == "" {
			t.Error("expected error message to be set")
		}
	})

	t.Run("owner role rejected", func(t *testing.T) {
		m := newTestModal(&mock.ShareStore{}, nil, nil)
		if err := m.Invite(context.Background(), "aunt@example.com", gl.RoleOwner); err != gl.ErrInvalidRole {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})
}

func TestModalRevokeInvite(t *testing.T) {
	store := &mock.ShareStore{
		ListCollaboratorsFn: func(ctx context.Context, albumID string) ([]gl.Collaborator, error) {
			return nil, nil
		},
		ListInvitesFn: func(ctx context.Context, albumID string) ([]gl.AlbumInvite, error) {
			return []gl.AlbumInvite{
				{ID: "inv-1", Status: gl.InvitePending},
				{ID: "inv-2", Status: gl.InvitePending},
			}, nil
		},
		RevokeInviteFn: func(ctx context.Context, albumID, inviteID string) error {
			if inviteID != "inv-1" {
				t.Errorf("unexpected invite id: %s", inviteID)
			}
			return nil
		},
	}
	m := newTestModal(store, nil, nil)
	m.Load(context.Background())

	if err := m.RevokeInvite(context.Background(), "inv-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := m.Invites()
	if len(got) != 1 || got[0].ID != "inv-2" {
		t.Errorf("unexpected invite list: %+v", got)
	}
}

func TestModalChangeRole(t *testing.T) {
	store := &mock.ShareStore{
		ListCollaboratorsFn: func(ctx context.Context, albumID string) ([]gl.Collaborator, error) {
			return []gl.Collaborator{
				{AlbumID: "album-1", UserID: "user-2", Role: gl.RoleViewer},
				{AlbumID: "album-1", UserID: "user-3", Role: gl.RoleViewer},
			}, nil
		},
		ListInvitesFn: func(ctx context.Context, albumID string) ([]gl.AlbumInvite, error) {
			return nil, nil
		},
		UpdateCollaboratorRoleFn: func(ctx context.Context, albumID, userID string, role gl.Role) (gl.Collaborator, error) {
			return gl.Collaborator{AlbumID: albumID, UserID: userID, Role: role}, nil
		},
	}
	m := newTestModal(store, nil, nil)
	m.Load(context.Background())

	if err := m.ChangeRole(context.Background(), "user-3", gl.RoleContributor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := m.Collaborators()
	if got[0].Role != gl.RoleViewer || got[1].Role != gl.RoleContributor {
		t.Errorf("unexpected roles: %+v", got)
	}
}

func TestModalRemoveCollaborator(t *testing.T) {
	store := &mock.ShareStore{
		ListCollaboratorsFn: func(ctx context.Context, albumID string) ([]gl.Collaborator, error) {
			return []gl.Collaborator{
				{AlbumID: "album-1", UserID: "user-2"},
				{AlbumID: "album-1", UserID: "user-3"},
			}, nil
		},
		ListInvitesFn: func(ctx context.Context, albumID string) ([]gl.AlbumInvite, error) {
			return nil, nil
		},
		RemoveCollaboratorFn: func(ctx context.Context, albumID, userID string) error {
			return nil
		},
	}
	m := newTestModal(store, nil, nil)
	m.Load(context.Background())

	if err := m.RemoveCollaborator(context.Background(), "user-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := m.Collaborators()
	if len(got) != 1 || got[0].UserID != "user-3" {
		t.Errorf("unexpected collaborator list: %+v", got)
	}
}

func TestModalCopyLink(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clip := &fakeClipboard{}
	m := newTestModal(&mock.ShareStore{}, clip, func() time.Time { return now })

	if err := m.CopyLink(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"https://gallery.example.com/share/album-1"}
	if diff := cmp.Diff(want, clip.texts); diff != "" {
		t.Errorf("clipboard mismatch (-want +got):\n%s", diff)
	}
	if !m.LinkCopied() {
		t.Error("expected copied acknowledgment to be visible")
	}

	// The acknowledgment expires after its window passes.
	now = now.Add(copiedWindow + time.Millisecond)
	if m.LinkCopied() {
		t.Error("expected copied acknowledgment to be gone")
	}
}

func TestModalCopyInviteLink(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clip := &fakeClipboard{}
	store := &mock.ShareStore{
		ListCollaboratorsFn: func(ctx context.Context, albumID string) ([]gl.Collaborator, error) {
			return nil, nil
		},
		ListInvitesFn: func(ctx context.Context, albumID string) ([]gl.AlbumInvite, error) {
			return []gl.AlbumInvite{
				{ID: "inv-1", Status: gl.InvitePending, InviteLink: "https://gallery.example.com/invite/tok-1"},
			}, nil
		},
	}
	m := newTestModal(store, clip, func() time.Time { return now })
	m.Load(context.Background())

	if err := m.CopyInviteLink("inv-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clip.texts) != 1 || clip.texts[0] != "https://gallery.example.com/invite/tok-1" {
		t.Errorf("unexpected clipboard contents: %v", clip.texts)
	}
	id, ok := m.InviteCopied()
	if !ok || id != "inv-1" {
		t.Errorf("unexpected copied state: %q %v", id, ok)
	}

	now = now.Add(copiedWindow + time.Millisecond)
	if _, ok := m.InviteCopied(); ok {
		t.Error("expected copied acknowledgment to be gone")
	}

	if err := m.CopyInviteLink("inv-missing"); err != gl.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
