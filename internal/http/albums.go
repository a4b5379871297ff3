package http

import (
	"net/http"
	"strings"

	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
	"github.com/twitsprout/tools/requestid"

	gl "famgallery/pkg/gallery"
)

// CreateAlbum creates an album in the current folder context and returns the
// refreshed overview.
func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req gl.CreateAlbumRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.respondError(w, v, "CreateAlbum", reqID, gl.ErrMissingName)
		return
	}

	ov := h.overviewView()
	if err := ov.CreateAlbum(ctx, req); err != nil {
		h.respondError(w, v, "CreateAlbum", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, ov.State(), http.StatusCreated)
}

// AlbumDetail serves one album's metadata and media.
func (h *Handler) AlbumDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	dv := h.detailView(pathVar(r, "id"))
	dv.Refetch(ctx)
	_ = httputils.WriteJSON(w, v, dv.State(), http.StatusOK)
}

// UpdateAlbum patches album metadata and returns the refreshed detail.
func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req gl.UpdateAlbumRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	dv := h.detailView(pathVar(r, "id"))
	if err := dv.Update(ctx, req); err != nil {
		h.respondError(w, v, "UpdateAlbum", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, dv.State(), http.StatusOK)
}

// DeleteAlbum deletes an album and drops its cached detail view.
func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id := pathVar(r, "id")
	ov := h.overviewView()
	if err := ov.DeleteAlbum(ctx, id); err != nil {
		h.respondError(w, v, "DeleteAlbum", reqID, err)
		return
	}
	h.dropDetailView(id)
	_ = httputils.WriteJSON(w, v, ov.State(), http.StatusOK)
}

type addMediaRequest struct {
	MediaIDs []string `json:"media_ids"`
}

// AddAlbumMedia attaches a batch of media to an album.
func (h *Handler) AddAlbumMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req addMediaRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}

	dv := h.detailView(pathVar(r, "id"))
	if err := dv.AddMedia(ctx, req.MediaIDs); err != nil {
		h.respondError(w, v, "AddAlbumMedia", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, dv.State(), http.StatusOK)
}

// RemoveAlbumMedia detaches one media item from an album. The item itself
// survives in the gallery.
func (h *Handler) RemoveAlbumMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	dv := h.detailView(pathVar(r, "id"))
	if err := dv.RemoveMedia(ctx, pathVar(r, "mediaID")); err != nil {
		h.respondError(w, v, "RemoveAlbumMedia", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, dv.State(), http.StatusOK)
}
