package shell

import (
	"time"

	"github.com/dshills/winshell/backend"
	"github.com/dshills/winshell/geom"
	"github.com/dshills/winshell/key"
	"github.com/dshills/winshell/mouse"
)

// windowRecord is the loop's per-window state. The loop threads the
// modifier and button state it accumulates here into every event it
// dispatches.
type windowRecord struct {
	id      backend.WindowID
	handle  *WindowHandle
	handler WinHandler

	mods     key.Modifiers
	buttons  mouse.Buttons
	hasFocus bool
	clicks   *mouse.ClickTracker

	fields  map[TextFieldToken]struct{}
	focused TextFieldToken
}

// WindowHandle is a window's control surface. Apart from IdleHandle,
// its methods must be called on the run loop goroutine.
type WindowHandle struct {
	app *Application
	id  backend.WindowID
}

// ID returns the backend window id.
func (h *WindowHandle) ID() backend.WindowID { return h.id }

// Show makes the window visible and gives it focus.
func (h *WindowHandle) Show() {
	h.app.backend.Show(h.id)
}

// Close destroys the window. The handler's Destroy callback runs once
// the backend confirms. Closing an already closed window is an error.
func (h *WindowHandle) Close() error {
	if err := h.app.backend.DestroyWindow(h.id); err != nil {
		return ErrWindowClosed
	}
	return nil
}

// BringToFront raises the window above its siblings.
func (h *WindowHandle) BringToFront() {
	h.app.backend.BringToFront(h.id)
}

// SetTitle changes the window's title.
func (h *WindowHandle) SetTitle(title string) {
	h.app.backend.SetTitle(h.id, title)
}

// SetPosition moves the window's origin in screen coordinates. The
// handler's WindowMoved callback reports the move.
func (h *WindowHandle) SetPosition(pos geom.Point) {
	h.app.backend.SetPosition(h.id, pos)
}

// Position returns the window's origin in screen coordinates.
func (h *WindowHandle) Position() geom.Point {
	return h.app.backend.Position(h.id)
}

// Size returns the content size in display points.
func (h *WindowHandle) Size() geom.Size {
	return h.app.backend.Size(h.id)
}

// SetSize requests a new content size in display points.
func (h *WindowHandle) SetSize(size geom.Size) {
	h.app.backend.SetSize(h.id, size)
}

// Scale returns the pixel density of the window's display.
func (h *WindowHandle) Scale() geom.Scale {
	return h.app.backend.Scale(h.id)
}

// SetWindowState changes the window presentation.
func (h *WindowHandle) SetWindowState(state backend.WindowState) {
	h.app.backend.SetState(h.id, state)
}

// WindowState returns the current window presentation.
func (h *WindowHandle) WindowState() backend.WindowState {
	return h.app.backend.State(h.id)
}

// SetCursor changes the pointer image shown over the window.
func (h *WindowHandle) SetCursor(c mouse.Cursor) {
	h.app.backend.SetCursor(h.id, c)
}

// Invalidate schedules a paint cycle. PreparePaint and Paint run on a
// later loop iteration, never reentrantly.
func (h *WindowHandle) Invalidate() {
	h.app.backend.Invalidate(h.id)
	h.app.schedulePaint(h.id)
}

// RequestTimer schedules a Timer callback after the given duration and
// returns its token. A zero or negative duration fires on the next
// loop iteration. Each request fires exactly once.
func (h *WindowHandle) RequestTimer(after time.Duration) TimerToken {
	token := NextTimerToken()
	deadline := time.Now().Add(after)

	h.app.mu.Lock()
	h.app.timers.add(h.id, token, deadline)
	h.app.mu.Unlock()
	h.app.poke()

	return token
}

// IdleHandle returns a handle for scheduling work from other
// goroutines. The handle stays safe to use after the window closes.
func (h *WindowHandle) IdleHandle() IdleHandle {
	return IdleHandle{
		window: h.id,
		posts:  h.app.idleQ,
		quit:   h.app.done,
	}
}

// AddTextField registers a text input field and returns its token.
func (h *WindowHandle) AddTextField() TextFieldToken {
	token := NextTextFieldToken()
	h.app.mu.Lock()
	defer h.app.mu.Unlock()
	if rec, ok := h.app.windows[h.id]; ok {
		rec.fields[token] = struct{}{}
	}
	return token
}

// RemoveTextField unregisters a text field. Removing the focused field
// clears focus.
func (h *WindowHandle) RemoveTextField(token TextFieldToken) {
	h.app.mu.Lock()
	defer h.app.mu.Unlock()
	rec, ok := h.app.windows[h.id]
	if !ok {
		return
	}
	delete(rec.fields, token)
	if rec.focused == token {
		rec.focused = TextFieldTokenInvalid
	}
}

// SetFocusedTextField gives a registered field keyboard focus, or
// clears focus when the token is TextFieldTokenInvalid. Unregistered
// tokens are ignored.
func (h *WindowHandle) SetFocusedTextField(token TextFieldToken) {
	h.app.mu.Lock()
	defer h.app.mu.Unlock()
	rec, ok := h.app.windows[h.id]
	if !ok {
		return
	}
	if token == TextFieldTokenInvalid {
		rec.focused = TextFieldTokenInvalid
		return
	}
	if _, registered := rec.fields[token]; registered {
		rec.focused = token
	}
}

// UpdateTextField tells the shell a field's text changed outside an
// input lock. Updating the focused field schedules a paint so the
// displayed composition state stays current; other tokens, including
// stale ones, are ignored.
func (h *WindowHandle) UpdateTextField(token TextFieldToken) {
	h.app.mu.Lock()
	rec, ok := h.app.windows[h.id]
	focused := ok && token != TextFieldTokenInvalid && rec.focused == token
	h.app.mu.Unlock()
	if focused {
		h.app.schedulePaint(h.id)
	}
}

// OpenFile presents an open-file dialog and returns its token. The
// handler's OpenFile callback delivers the result on a later loop
// iteration, with nil FileInfo on cancellation or when the backend has
// no dialogs.
func (h *WindowHandle) OpenFile() FileDialogToken {
	return h.fileDialog(false)
}

// SaveAs presents a save-file dialog and returns its token. Delivery
// matches OpenFile, through the handler's SaveAs callback.
func (h *WindowHandle) SaveAs() FileDialogToken {
	return h.fileDialog(true)
}

func (h *WindowHandle) fileDialog(save bool) FileDialogToken {
	token := NextFileDialogToken()

	var info *FileInfo
	if d, ok := h.app.backend.(backend.FileDialogs); ok {
		var path string
		var chosen bool
		if save {
			path, chosen = d.SaveFileDialog(h.id)
		} else {
			path, chosen = d.OpenFileDialog(h.id)
		}
		if chosen {
			info = &FileInfo{Path: path}
		}
	}

	h.IdleHandle().AddIdleCallback(func() {
		rec, ok := h.app.window(h.id)
		if !ok {
			return
		}
		if save {
			rec.handler.SaveAs(token, info)
		} else {
			rec.handler.OpenFile(token, info)
		}
	})
	return token
}

// FocusedTextField returns the focused field, or TextFieldTokenInvalid.
func (h *WindowHandle) FocusedTextField() TextFieldToken {
	h.app.mu.Lock()
	defer h.app.mu.Unlock()
	if rec, ok := h.app.windows[h.id]; ok {
		return rec.focused
	}
	return TextFieldTokenInvalid
}

// WindowBuilder assembles a window before creation.
type WindowBuilder struct {
	app     *Application
	opts    backend.WindowOptions
	handler WinHandler
}

// NewWindowBuilder starts building a window.
func (a *Application) NewWindowBuilder() *WindowBuilder {
	return &WindowBuilder{
		app: a,
		opts: backend.WindowOptions{
			Resizable: true,
			Titlebar:  true,
		},
	}
}

// SetHandler sets the window's event handler. Required.
func (b *WindowBuilder) SetHandler(h WinHandler) *WindowBuilder {
	b.handler = h
	return b
}

// SetTitle sets the initial window title.
func (b *WindowBuilder) SetTitle(title string) *WindowBuilder {
	b.opts.Title = title
	return b
}

// SetSize sets the initial content size in display points.
func (b *WindowBuilder) SetSize(size geom.Size) *WindowBuilder {
	b.opts.Size = size
	return b
}

// SetMinSize sets the minimum content size.
func (b *WindowBuilder) SetMinSize(size geom.Size) *WindowBuilder {
	b.opts.MinSize = size
	return b
}

// SetPosition sets the initial window position in display points.
func (b *WindowBuilder) SetPosition(pos geom.Point) *WindowBuilder {
	b.opts.Position = &pos
	return b
}

// SetResizable controls whether the user can resize the window.
func (b *WindowBuilder) SetResizable(resizable bool) *WindowBuilder {
	b.opts.Resizable = resizable
	return b
}

// SetTitlebar controls whether the window shows a titlebar.
func (b *WindowBuilder) SetTitlebar(titlebar bool) *WindowBuilder {
	b.opts.Titlebar = titlebar
	return b
}

// SetWindowState sets the initial window presentation.
func (b *WindowBuilder) SetWindowState(state backend.WindowState) *WindowBuilder {
	b.opts.State = state
	return b
}

// Build creates the window and connects the handler. The handler's
// Connect runs before Build returns; Scale and Size follow on the run
// loop.
func (b *WindowBuilder) Build() (*WindowHandle, error) {
	if b.handler == nil {
		return nil, ErrNoHandler
	}

	id, err := b.app.backend.NewWindow(b.opts)
	if err != nil {
		return nil, err
	}

	handle := &WindowHandle{app: b.app, id: id}
	rec := &windowRecord{
		id:      id,
		handle:  handle,
		handler: b.handler,
		clicks:  b.app.newClickTracker(),
		fields:  make(map[TextFieldToken]struct{}),
	}

	b.app.mu.Lock()
	b.app.windows[id] = rec
	b.app.mu.Unlock()

	b.app.dispatch("Connect", func() { b.handler.Connect(handle) })
	return handle, nil
}
