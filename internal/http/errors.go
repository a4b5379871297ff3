package http

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	httputils "github.com/twitsprout/tools/http"

	"famgallery/internal/backend"
	"famgallery/internal/session"
	gl "famgallery/pkg/gallery"
)

// respondError maps an error to a status code and writes it in the standard
// error envelope. Backend errors keep their original status and detail so the
// user sees the backend's own message.
func (h *Handler) respondError(w http.ResponseWriter, v url.Values, op, reqID string, err error) {
	status := http.StatusInternalServerError
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.StatusCode
	case errors.Is(err, gl.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrNotSignedIn):
		status = http.StatusUnauthorized
	case isValidationErr(err):
		status = http.StatusBadRequest
	}

	h.Logger.Error("["+op+"] request failed",
		"request_id", reqID,
		"details", err.Error(),
	)
	_ = httputils.WriteJSONError(w, v, err.Error(), status)
}

func isValidationErr(err error) bool {
	for _, sentinel := range []error{
		gl.ErrMissingName,
		gl.ErrMissingEmail,
		gl.ErrInvalidRole,
		gl.ErrInvalidVisibility,
		gl.ErrInvalidSortBy,
		gl.ErrNoMediaSelected,
		gl.ErrUnsupportedMedia,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
