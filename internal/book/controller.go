// Package book implements the full-screen book presentation mode: paginated
// spreads over an album's media, edit-mode drag reordering, and the add-media
// sub-flow.
package book

import (
	"context"
	"sync"

	"github.com/twitsprout/tools"

	"famgallery/internal"
	gl "famgallery/pkg/gallery"
)

// Key is a keyboard command reported by the renderer.
type Key string

const (
	KeyLeft   Key = "ArrowLeft"
	KeyRight  Key = "ArrowRight"
	KeyEscape Key = "Escape"
)

// ScrollLock pins the page behind the book overlay. Release must be safe to
// call more than once; the controller releases on every exit path.
type ScrollLock interface {
	Acquire()
	Release()
}

// NopScrollLock is a ScrollLock that does nothing.
type NopScrollLock struct{}

func (NopScrollLock) Acquire() {}
func (NopScrollLock) Release() {}

// State is a renderable snapshot of the book view.
type State struct {
	AlbumID       string      `json:"album_id"`
	Spreads       []gl.Spread `json:"spreads"`
	Page          int         `json:"page"`
	Transitioning bool        `json:"transitioning"`
	EditMode      bool        `json:"edit_mode"`
	Theme         string      `json:"theme"`
	AddMediaOpen  bool        `json:"add_media_open"`
	Closed        bool        `json:"closed"`
}

// DefaultTheme is the initial book background.
const DefaultTheme = "dark"

// Controller owns the book view's state machine. The working media ordering
// is client-side scratch state: it is rebuilt from the authoritative list on
// every SyncMedia and never persisted to the backend.
type Controller struct {
	mu            sync.Mutex
	albumID       string
	ordering      *gl.Ordering
	spreads       []gl.Spread
	page          int
	pendingPage   int
	transitioning bool
	editMode      bool
	theme         string
	addMediaOpen  bool
	closed        bool

	store         internal.AlbumStore
	scrollLock    ScrollLock
	onMediaChange func(ctx context.Context)
	onExit        func()
	logger        tools.Logger
}

// Config wires a Controller's collaborators. OnMediaChange is invoked after a
// successful add-media batch so the owner refetches the authoritative list
// and resyncs; OnExit fires once when the book closes.
type Config struct {
	AlbumID       string
	Media         []gl.MediaItem
	Store         internal.AlbumStore
	ScrollLock    ScrollLock
	OnMediaChange func(ctx context.Context)
	OnExit        func()
	Logger        tools.Logger
}

// New opens a book view and acquires the scroll lock.
func New(cfg Config) *Controller {
	if cfg.ScrollLock == nil {
		cfg.ScrollLock = NopScrollLock{}
	}
	if cfg.OnMediaChange == nil {
		cfg.OnMediaChange = func(context.Context) {}
	}
	if cfg.OnExit == nil {
		cfg.OnExit = func() {}
	}
	c := &Controller{
		albumID:       cfg.AlbumID,
		ordering:      gl.NewOrdering(cfg.Media),
		theme:         DefaultTheme,
		store:         cfg.Store,
		scrollLock:    cfg.ScrollLock,
		onMediaChange: cfg.OnMediaChange,
		onExit:        cfg.OnExit,
		logger:        cfg.Logger,
	}
	c.spreads = gl.Pack(c.ordering.Items())
	c.scrollLock.Acquire()
	return c
}

// State returns a renderable snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		AlbumID:       c.albumID,
		Spreads:       c.spreads,
		Page:          c.page,
		Transitioning: c.transitioning,
		EditMode:      c.editMode,
		Theme:         c.theme,
		AddMediaOpen:  c.addMediaOpen,
		Closed:        c.closed,
	}
}

// SyncMedia discards the working ordering and rebuilds it from the
// authoritative media list. Manual reordering does not survive this; the
// backend's returned order wins.
func (c *Controller) SyncMedia(media []gl.MediaItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ordering = gl.NewOrdering(media)
	c.repackLocked()
}

// GoToPage starts a transition to page n. Out-of-range targets and the
// current page are no-ops.
func (c *Controller) GoToPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || n < 0 || n >= len(c.spreads) || n == c.page {
		return
	}
	c.transitioning = true
	c.pendingPage = n
}

// FinishTransition commits the pending page. The renderer calls it when the
// cross-fade completes.
func (c *Controller) FinishTransition() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.transitioning {
		return
	}
	c.page = c.pendingPage
	c.transitioning = false
}

// HandleKey routes a keyboard command. While the add-media dialog is open it
// intercepts Escape and swallows paging; otherwise left/right page and Escape
// closes the book.
func (c *Controller) HandleKey(key Key) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.addMediaOpen {
		open := key != KeyEscape
		c.addMediaOpen = open
		c.mu.Unlock()
		return
	}
	page := c.page
	c.mu.Unlock()

	switch key {
	case KeyLeft:
		c.GoToPage(page - 1)
	case KeyRight:
		c.GoToPage(page + 1)
	case KeyEscape:
		c.Close()
	}
}

// ToggleEditMode flips the edit axis; it is independent of paging.
func (c *Controller) ToggleEditMode() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.editMode = !c.editMode
}

// SetTheme selects the background theme.
func (c *Controller) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.theme = theme
}

// Reorder moves a media slot within the currently displayed spread. The
// renderer reports indices local to that spread; they are translated to
// global ordering indices by summing the item counts of all spreads strictly
// before the current page, then applied as a remove-and-reinsert.
func (c *Controller) Reorder(fromLocal, toLocal int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.page >= len(c.spreads) {
		return
	}
	offset := 0
	for _, s := range c.spreads[:c.page] {
		offset += len(s.Media)
	}
	c.ordering.Move(offset+fromLocal, offset+toLocal)
	c.repackLocked()
}

// OpenAddMedia opens the add-media dialog, suspending keyboard paging and
// Escape-to-close.
func (c *Controller) OpenAddMedia() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.addMediaOpen = true
}

// CloseAddMedia dismisses the add-media dialog without adding anything.
func (c *Controller) CloseAddMedia() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addMediaOpen = false
}

// AddMedia submits the selected ids as one batch, then signals the owner to
// refresh the authoritative media list. The working ordering is resynced from
// that refresh, not preserved here.
func (c *Controller) AddMedia(ctx context.Context, mediaIDs []string) error {
	if len(mediaIDs) == 0 {
		return gl.ErrNoMediaSelected
	}
	c.mu.Lock()
	albumID := c.albumID
	c.mu.Unlock()

	if err := c.store.AddAlbumMedia(ctx, albumID, mediaIDs); err != nil {
		return err
	}

	c.mu.Lock()
	c.addMediaOpen = false
	c.mu.Unlock()
	c.onMediaChange(ctx)
	return nil
}

// Close exits the book view. The scroll lock is released unconditionally and
// exactly once across all exit paths.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.scrollLock.Release()
	c.onExit()
}

func (c *Controller) repackLocked() {
	c.spreads = gl.Pack(c.ordering.Items())
	if c.page >= len(c.spreads) {
		c.page = len(c.spreads) - 1
		if c.page < 0 {
			c.page = 0
		}
	}
}
