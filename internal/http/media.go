package http

import (
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"

	gl "famgallery/pkg/gallery"
)

// ListMedia serves the full media listing, optionally restricted by type.
func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	filter, err := parseMediaFilter(v.Get("type"))
	if err != nil {
		h.respondError(w, v, "ListMedia", reqID, err)
		return
	}

	mv := h.mediaView()
	mv.SetFilter(ctx, filter)
	mv.Refetch(ctx)
	_ = httputils.WriteJSON(w, v, mv.State(), http.StatusOK)
}

// DeleteMedia deletes a media item everywhere it appears.
func (h *Handler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	mv := h.mediaView()
	if err := mv.Delete(ctx, pathVar(r, "id")); err != nil {
		h.respondError(w, v, "DeleteMedia", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, mv.State(), http.StatusOK)
}

func parseMediaFilter(raw string) (gl.MediaFilter, error) {
	switch gl.MediaFilter(raw) {
	case "", gl.FilterAll:
		return gl.FilterAll, nil
	case gl.FilterImage:
		return gl.FilterImage, nil
	case gl.FilterVideo:
		return gl.FilterVideo, nil
	default:
		return "", gl.ErrUnsupportedMedia
	}
}
