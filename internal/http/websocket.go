package http

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/twitsprout/tools/requestid"

	"famgallery/internal/book"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The shell serves its own frontend; same-host only.
		return true
	},
}

// bookCommand is one client-to-server message in a book session.
type bookCommand struct {
	Type     string   `json:"type"`
	Page     int      `json:"page"`
	Key      string   `json:"key"`
	Theme    string   `json:"theme"`
	From     int      `json:"from"`
	To       int      `json:"to"`
	MediaIDs []string `json:"media_ids"`
}

// bookEvent is one server-to-client message.
type bookEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// wsScrollLock forwards scroll lock transitions to the browser, which owns the
// actual page scrolling.
type wsScrollLock struct {
	conn *websocket.Conn
}

func (l *wsScrollLock) Acquire() {
	_ = l.conn.WriteJSON(bookEvent{Type: "scroll_lock", Payload: true})
}

func (l *wsScrollLock) Release() {
	_ = l.conn.WriteJSON(bookEvent{Type: "scroll_lock", Payload: false})
}

// BookSession runs one book presentation over a websocket. The controller
// lives exactly as long as the connection; closing either ends both.
func (h *Handler) BookSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := requestid.Get(ctx)
	albumID := pathVar(r, "id")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Error("[BookSession] websocket upgrade failed",
			"request_id", reqID,
			"details", err.Error(),
		)
		return
	}
	defer conn.Close()

	dv := h.detailView(albumID)
	dv.Refetch(ctx)
	st := dv.State()
	if !st.Loaded {
		_ = conn.WriteJSON(bookEvent{Type: "error", Payload: st.Error})
		return
	}

	var ctrl *book.Controller
	ctrl = book.New(book.Config{
		AlbumID:    albumID,
		Media:      st.Data.Media,
		Store:      h.AlbumStore,
		ScrollLock: &wsScrollLock{conn: conn},
		OnMediaChange: func(ctx context.Context) {
			dv.Refetch(ctx)
			ctrl.SyncMedia(dv.State().Data.Media)
		},
		OnExit: func() {
			_ = conn.WriteJSON(bookEvent{Type: "closed"})
		},
		Logger: h.Logger,
	})
	defer ctrl.Close()

	_ = conn.WriteJSON(bookEvent{Type: "state", Payload: ctrl.State()})

	for {
		var cmd bookCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}

		switch cmd.Type {
		case "goto_page":
			ctrl.GoToPage(cmd.Page)
		case "finish_transition":
			ctrl.FinishTransition()
		case "key":
			ctrl.HandleKey(book.Key(cmd.Key))
		case "toggle_edit":
			ctrl.ToggleEditMode()
		case "set_theme":
			ctrl.SetTheme(cmd.Theme)
		case "reorder":
			ctrl.Reorder(cmd.From, cmd.To)
		case "open_add_media":
			ctrl.OpenAddMedia()
		case "close_add_media":
			ctrl.CloseAddMedia()
		case "add_media":
			if err := ctrl.AddMedia(ctx, cmd.MediaIDs); err != nil {
				_ = conn.WriteJSON(bookEvent{Type: "error", Payload: err.Error()})
			}
		case "sync":
			dv.Refetch(ctx)
			ctrl.SyncMedia(dv.State().Data.Media)
		default:
			_ = conn.WriteJSON(bookEvent{Type: "error", Payload: "unknown command: " + cmd.Type})
			continue
		}

		state := ctrl.State()
		_ = conn.WriteJSON(bookEvent{Type: "state", Payload: state})
		if state.Closed {
			return
		}
	}
}
