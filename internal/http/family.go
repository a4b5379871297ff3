package http

import (
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
	"github.com/twitsprout/tools/requestid"

	gl "famgallery/pkg/gallery"
)

// familyResponse splits the circle into accepted members and outstanding
// invites, the way the page displays them.
type familyResponse struct {
	Accepted []gl.FamilyMember `json:"accepted"`
	Pending  []gl.FamilyMember `json:"pending"`
	Error    string            `json:"error,omitempty"`
}

func (h *Handler) familyState() familyResponse {
	f := h.familyController()
	return familyResponse{
		Accepted: f.Accepted(),
		Pending:  f.Pending(),
		Error:    f.Error(),
	}
}

// Family serves the family circle.
func (h *Handler) Family(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	if err := h.familyController().Load(ctx); err != nil {
		h.respondError(w, v, "Family", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, h.familyState(), http.StatusOK)
}

// InviteFamily invites someone into the family circle.
func (h *Handler) InviteFamily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req gl.CreateInviteRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.familyController().Invite(ctx, req.Email, req.Role); err != nil {
		h.respondError(w, v, "InviteFamily", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, h.familyState(), http.StatusCreated)
}

// UpdateFamilyMember changes a member's default role.
func (h *Handler) UpdateFamilyMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req roleRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.familyController().ChangeRole(ctx, pathVar(r, "id"), req.Role); err != nil {
		h.respondError(w, v, "UpdateFamilyMember", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, h.familyState(), http.StatusOK)
}

// RemoveFamilyMember removes a member (or revokes a pending invite).
func (h *Handler) RemoveFamilyMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	if err := h.familyController().Remove(ctx, pathVar(r, "id")); err != nil {
		h.respondError(w, v, "RemoveFamilyMember", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, h.familyState(), http.StatusOK)
}

// AcceptFamilyInvite redeems a family invite token for the signed-in user.
func (h *Handler) AcceptFamilyInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	member, err := h.FamilyStore.AcceptFamilyInvite(ctx, pathVar(r, "token"))
	if err != nil {
		h.respondError(w, v, "AcceptFamilyInvite", reqID, err)
		return
	}
	// Albums shared through the circle become visible.
	h.sharedView().Refetch(ctx)
	_ = httputils.WriteJSON(w, v, member, http.StatusOK)
}
