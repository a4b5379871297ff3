package http

import (
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"
	"golang.org/x/sync/errgroup"

	"famgallery/internal/backend"
	gl "famgallery/pkg/gallery"
)

// publicAlbumResponse is the unauthenticated share-link landing payload.
type publicAlbumResponse struct {
	Album gl.Album       `json:"album"`
	Media []gl.MediaItem `json:"media"`
}

// PublicAlbum serves a public album through its share link. Private or deleted
// albums get a dedicated not-found response rather than a generic error, so
// the landing page can say the link is dead.
func (h *Handler) PublicAlbum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)
	albumID := pathVar(r, "id")

	var res publicAlbumResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		album, err := h.PublicStore.GetPublicAlbum(gctx, albumID)
		if err != nil {
			return err
		}
		res.Album = album
		return nil
	})
	g.Go(func() error {
		media, err := h.PublicStore.ListPublicAlbumMedia(gctx, albumID)
		if err != nil {
			return err
		}
		res.Media = media
		return nil
	})
	if err := g.Wait(); err != nil {
		if backend.IsNotFound(err) {
			_ = httputils.WriteJSONError(w, v, "this album is not available", http.StatusNotFound)
			return
		}
		h.respondError(w, v, "PublicAlbum", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// InvitePreview serves the unauthenticated preview of an album invite link.
func (h *Handler) InvitePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	preview, err := h.PublicStore.GetInvitePreview(ctx, pathVar(r, "token"))
	if err != nil {
		if backend.IsNotFound(err) {
			_ = httputils.WriteJSONError(w, v, "this invite is not available", http.StatusNotFound)
			return
		}
		h.respondError(w, v, "InvitePreview", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, preview, http.StatusOK)
}

// FamilyInvitePreview serves the unauthenticated preview of a family invite
// link.
func (h *Handler) FamilyInvitePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	preview, err := h.PublicStore.GetFamilyInvitePreview(ctx, pathVar(r, "token"))
	if err != nil {
		if backend.IsNotFound(err) {
			_ = httputils.WriteJSONError(w, v, "this invite is not available", http.StatusNotFound)
			return
		}
		h.respondError(w, v, "FamilyInvitePreview", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, preview, http.StatusOK)
}
