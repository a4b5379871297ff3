package http

import (
	"net/http"

	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/requestid"

	"famgallery/internal/upload"
)

// maxUploadMemory bounds the in-memory portion of a multipart parse; larger
// files spill to temp files.
const maxUploadMemory = 32 << 20

// Upload accepts a multipart batch of files, pushes each through the
// presign/put/register flow, and optionally attaches the results to an album.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := r.URL.Query()
	reqID := requestid.Get(ctx)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		_ = httputils.WriteJSONError(w, v, err.Error(), http.StatusBadRequest)
		return
	}
	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		_ = httputils.WriteJSONError(w, v, "no files provided", http.StatusBadRequest)
		return
	}

	files := make([]upload.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			h.respondError(w, v, "Upload", reqID, err)
			return
		}
		defer f.Close()
		files = append(files, upload.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
	}

	albumID := r.FormValue("album_id")
	batch := h.Uploader.Upload(ctx, files, albumID)

	// The media listing (and the album, if one was targeted) changed.
	h.mediaView().Refetch(ctx)
	if albumID != "" {
		h.detailView(albumID).Refetch(ctx)
	}
	_ = httputils.WriteJSON(w, v, batch, http.StatusOK)
}
