package http

import (
	"context"
	"sync"

	"github.com/gorilla/mux"
	"github.com/twitsprout/tools"

	"famgallery/internal"
	"famgallery/internal/session"
	"famgallery/internal/share"
	"famgallery/internal/upload"
	"famgallery/internal/viewstate"
)

// SessionManager is what the shell needs from the session layer.
// *session.Session implements it.
type SessionManager interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) error
	User() (session.User, bool)
	SignOut()
	OAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) error
}

// Handler is the UI shell's HTTP surface. It owns the long-lived view state
// behind each page and exposes it to the local web frontend as JSON, plus a
// websocket endpoint for the book presentation mode.
type Handler struct {
	AppName      string
	Version      string
	ShareBaseURL string
	Logger       tools.Logger

	Session SessionManager

	MediaStore  internal.MediaStore
	AlbumStore  internal.AlbumStore
	FolderStore internal.FolderStore
	ShareStore  internal.ShareStore
	FamilyStore internal.FamilyStore
	PublicStore internal.PublicStore

	Uploader *upload.Uploader

	router *mux.Router

	mu        sync.Mutex
	overview  *viewstate.OverviewView
	media     *viewstate.MediaView
	shared    *viewstate.SharedAlbumsView
	details   map[string]*viewstate.AlbumDetailView
	modals    map[string]*share.ModalController
	family    *share.FamilyController
	clipboard *clipboardBuffer
}

// clipboardBuffer implements share.Clipboard for the HTTP surface. The browser
// owns the real clipboard; the shell hands the text back in the copy response.
type clipboardBuffer struct {
	mu   sync.Mutex
	text string
}

func (c *clipboardBuffer) WriteText(text string) error {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
	return nil
}

func (c *clipboardBuffer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

func (h *Handler) overviewView() *viewstate.OverviewView {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.overview == nil {
		h.overview = viewstate.NewOverviewView(h.AlbumStore, h.FolderStore)
	}
	return h.overview
}

func (h *Handler) mediaView() *viewstate.MediaView {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.media == nil {
		h.media = viewstate.NewMediaView(h.MediaStore)
	}
	return h.media
}

func (h *Handler) sharedView() *viewstate.SharedAlbumsView {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.shared == nil {
		h.shared = viewstate.NewSharedAlbumsView(h.AlbumStore)
	}
	return h.shared
}

func (h *Handler) detailView(albumID string) *viewstate.AlbumDetailView {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.details == nil {
		h.details = make(map[string]*viewstate.AlbumDetailView)
	}
	v, ok := h.details[albumID]
	if !ok {
		v = viewstate.NewAlbumDetailView(h.AlbumStore, albumID)
		h.details[albumID] = v
	}
	return v
}

func (h *Handler) dropDetailView(albumID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if v, ok := h.details[albumID]; ok {
		v.Close()
		delete(h.details, albumID)
	}
	delete(h.modals, albumID)
}

func (h *Handler) familyController() *share.FamilyController {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.family == nil {
		h.family = share.NewFamily(h.FamilyStore)
	}
	return h.family
}

func (h *Handler) clipboardBuf() *clipboardBuffer {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clipboard == nil {
		h.clipboard = &clipboardBuffer{}
	}
	return h.clipboard
}

// ResetViews drops all cached view state. Main wires it to session changes so
// one account's data never leaks into the next session.
func (h *Handler) ResetViews() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.overview != nil {
		h.overview.Close()
	}
	if h.media != nil {
		h.media.Close()
	}
	if h.shared != nil {
		h.shared.Close()
	}
	for _, v := range h.details {
		v.Close()
	}
	h.overview = nil
	h.media = nil
	h.shared = nil
	h.details = nil
	h.modals = nil
	h.family = nil
}
