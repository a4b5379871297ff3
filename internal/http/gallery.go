package http

import (
	"net/http"
	"strings"

	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
	"github.com/twitsprout/tools/requestid"

	gl "famgallery/pkg/gallery"
)

// galleryResponse is the overview page payload: the albums in the current
// folder context plus that folder's child folders.
type galleryResponse struct {
	Albums  []gl.Album  `json:"albums"`
	Folders []gl.Folder `json:"folders"`
	Loading bool        `json:"loading"`
	Error   string      `json:"error,omitempty"`
}

// Gallery serves the album overview for a folder context, optionally filtered
// by a search term.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	sortBy, err := parseSortBy(v.Get("sort_by"))
	if err != nil {
		h.respondError(w, v, "Gallery", reqID, err)
		return
	}
	folderID := v.Get("folder_id")

	ov := h.overviewView()
	ov.SetFolder(ctx, folderID)
	ov.SetSort(ctx, sortBy)
	ov.Refetch(ctx)

	st := ov.State()
	res := galleryResponse{
		Albums:  st.Data.Albums,
		Folders: st.Data.Folders,
		Loading: st.Loading,
		Error:   st.Error,
	}
	if q := strings.TrimSpace(v.Get("q")); q != "" {
		res.Albums = filterAlbums(res.Albums, q)
	}
	_ = httputils.WriteJSON(w, v, res, http.StatusOK)
}

// filterAlbums keeps albums whose name contains the term, case-insensitively.
// Filtering is display-only; the folder context and sort order are untouched.
func filterAlbums(albums []gl.Album, term string) []gl.Album {
	term = strings.ToLower(term)
	var out []gl.Album
	for _, a := range albums {
		if strings.Contains(strings.ToLower(a.Name), term) {
			out = append(out, a)
		}
	}
	return out
}

func parseSortBy(raw string) (gl.SortOption, error) {
	switch gl.SortOption(raw) {
	case "", gl.SortByDate:
		return gl.SortByDate, nil
	case gl.SortByName:
		return gl.SortByName, nil
	default:
		return "", gl.ErrInvalidSortBy
	}
}

// SharedAlbums serves the albums shared with the signed-in user.
func (h *Handler) SharedAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()

	sv := h.sharedView()
	sv.Refetch(ctx)
	_ = httputils.WriteJSON(w, v, sv.State(), http.StatusOK)
}

// CreateFolder creates a folder and returns the refreshed overview.
func (h *Handler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	var req gl.CreateFolderRequest
	if err := jsonutils.Decode(r.Body, &req); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.respondError(w, v, "CreateFolder", reqID, gl.ErrMissingName)
		return
	}

	ov := h.overviewView()
	if err := ov.CreateFolder(ctx, req); err != nil {
		h.respondError(w, v, "CreateFolder", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, ov.State(), http.StatusCreated)
}

// DeleteFolder deletes a folder and returns the refreshed overview.
func (h *Handler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	id := pathVar(r, "id")
	ov := h.overviewView()
	if err := ov.DeleteFolder(ctx, id); err != nil {
		h.respondError(w, v, "DeleteFolder", reqID, err)
		return
	}
	_ = httputils.WriteJSON(w, v, ov.State(), http.StatusOK)
}
