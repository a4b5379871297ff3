package http

import (
	"context"
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
	"github.com/twitsprout/tools/requestid"

	"famgallery/internal/share"
	gl "famgallery/pkg/gallery"
)

// sharingResponse is the share modal payload.
type sharingResponse struct {
	ShareURL      string            `json:"share_url"`
	Visibility    gl.Visibility     `json:"visibility"`
	Collaborators []gl.Collaborator `json:"collaborators"`
	Invites       []gl.AlbumInvite  `json:"invites"`
	Error         string            `json:"error,omitempty"`
}

// shareModal returns the cached modal controller for an album, fetching the
// album once to seed its name and visibility.
func (h *Handler) shareModal(ctx context.Context, albumID string) (*share.ModalController, error) {
	h.mu.Lock()
	if m, ok := h.modals[albumID]; ok {
		h.mu.Unlock()
		return m, nil
	}
	h.mu.Unlock()

	album, err := h.AlbumStore.GetAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}

	// Resolve the clipboard buffer before re-taking h.mu; clipboardBuf locks
	// it too.
	clip := h.clipboardBuf()

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.modals == nil {
		h.modals = make(map[string]*share.ModalController)
	}
	if m, ok := h.modals[albumID]; ok {
		return m, nil
	}
	m := share.NewModal(share.ModalConfig{
		AlbumID:      albumID,
		AlbumName:    album.Name,
		Visibility:   album.Visibility,
		ShareBaseURL: h.ShareBaseURL,
		Store:        h.ShareStore,
		Clipboard:    clip,
	})
	h.modals[albumID] = m
	return m, nil
}

func sharingState(m *share.ModalController) sharingResponse {
	return sharingResponse{
		ShareURL:      m.ShareURL(),
		Visibility:    m.Visibility(),
		Collaborators: m.Collaborators(),
		Invites:       m.Invites(),
		Error:         m.Error(),
	}
}

// Sharing serves the share modal state for an album.
func (h *Handler) Sharing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	m, err := h.shareModal(ctx, pathVar(r, "id"))
	if err != nil {
		h.respondError(w, v, "Sharing", reqID, err)
		return
	}
	if err := m.Load(ctx); err != nil {
		h.respondError(w, v, "Sharing", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, sharingState(m), http.StatusOK)
}

type visibilityRequest struct {
	Visibility gl.Visibility `json:"visibility"`
}

// SetVisibility flips an album between private and public.
func (h *Handler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req visibilityRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.shareModal(ctx, pathVar(r, "id"))
	if err != nil {
		h.respondError(w, v, "SetVisibility", reqID, err)
		return
	}
	if err := m.SetVisibility(ctx, req.Visibility); err != nil {
		h.respondError(w, v, "SetVisibility", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, sharingState(m), http.StatusOK)
}

// CopyShareLink records the copy and returns the text for the browser's
// clipboard.
func (h *Handler) CopyShareLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	m, err := h.shareModal(ctx, pathVar(r, "id"))
	if err != nil {
		h.respondError(w, v, "CopyShareLink", reqID, err)
		return
	}
	if err := m.CopyLink(); err != nil {
		h.respondError(w, v, "CopyShareLink", reqID, err)
		return
	}
	res := struct {
		Text   string `json:"text"`
		Copied bool   `json:"copied"`
	}{Text: h.clipboardBuf().Text(), Copied: m.LinkCopied()}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// CreateInvite creates a pending invite for an album.
func (h *Handler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req gl.CreateInviteRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.shareModal(ctx, pathVar(r, "id"))
	if err != nil {
		h.respondError(w, v, "CreateInvite", reqID, err)
		return
	}
	if err := m.Invite(ctx, req.Email, req.Role); err != nil {
		h.respondError(w, v, "CreateInvite", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, sharingState(m), http.StatusCreated)
}

// RevokeInvite revokes a pending invite.
func (h *Handler) RevokeInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	m, err := h.shareModal(ctx, pathVar(r, "id"))
	if err != nil {
		h.respondError(w, v, "RevokeInvite", reqID, err)
		return
	}
	if err := m.RevokeInvite(ctx, pathVar(r, "inviteID")); err != nil {
		h.respondError(w, v, "RevokeInvite", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, sharingState(m), http.StatusOK)
}

// CopyInviteLink records the copy of one invite's link and returns the text.
func (h *Handler) CopyInviteLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	m, err := h.shareModal(ctx, pathVar(r, "id"))
	if err != nil {
		h.respondError(w, v, "CopyInviteLink", reqID, err)
		return
	}
	if err := m.CopyInviteLink(pathVar(r, "inviteID")); err != nil {
		h.respondError(w, v, "CopyInviteLink", reqID, err)
		return
	}
	inviteID, copied := m.InviteCopied()
	res := struct {
		Text     string `json:"text"`
		InviteID string `json:"invite_id"`
		Copied   bool   `json:"copied"`
	}{Text: h.clipboardBuf().Text(), InviteID: inviteID, Copied: copied}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

type roleRequest struct {
	Role gl.Role `json:"role"`
}

// UpdateCollaborator changes a collaborator's role.
func (h *Handler) UpdateCollaborator(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req roleRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.shareModal(ctx, pathVar(r, "id"))
	if err != nil {
		h.respondError(w, v, "UpdateCollaborator", reqID, err)
		return
	}
	if err := m.ChangeRole(ctx, pathVar(r, "userID"), req.Role); err != nil {
		h.respondError(w, v, "UpdateCollaborator", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, sharingState(m), http.StatusOK)
}

// RemoveCollaborator revokes a collaborator's access.
func (h *Handler) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	m, err := h.shareModal(ctx, pathVar(r, "id"))
	if err != nil {
		h.respondError(w, v, "RemoveCollaborator", reqID, err)
		return
	}
	if err := m.RemoveCollaborator(ctx, pathVar(r, "userID")); err != nil {
		h.respondError(w, v, "RemoveCollaborator", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, sharingState(m), http.StatusOK)
}

// AcceptInvite redeems an album invite token for the signed-in user.
func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	collaborator, err := h.ShareStore.AcceptInvite(ctx, pathVar(r, "token"))
	if err != nil {
		h.respondError(w, v, "AcceptInvite", reqID, err)
		return
	}
	// The shared-albums listing gains a row.
	h.sharedView().Refetch(ctx)
	_ = httputils.WriteJSON(w, v, collaborator, http.StatusOK)
}
