// Package headless provides an in-memory backend with no display.
// Tests drive it by injecting raw events and inspecting window state.
package headless

import (
	"fmt"
	"sync"

	"github.com/dshills/winshell/backend"
	"github.com/dshills/winshell/geom"
	"github.com/dshills/winshell/mouse"
)

// Window holds the observable state of a headless window.
type Window struct {
	Title       string
	Size        geom.Size
	MinSize     geom.Size
	Position    geom.Point
	State       backend.WindowState
	Cursor      mouse.Cursor
	Visible     bool
	Invalidated int
	Fronted     int
}

// Backend is an in-memory backend.Backend. All methods are safe for
// concurrent use.
type Backend struct {
	mu      sync.Mutex
	nextID  backend.WindowID
	windows map[backend.WindowID]*Window
	events  chan backend.Event
	scale   geom.Scale
	dialog  string
	closed  bool
}

// New creates a headless backend reporting the given display scale.
func New(scale geom.Scale) *Backend {
	return &Backend{
		nextID:  1,
		windows: make(map[backend.WindowID]*Window),
		events:  make(chan backend.Event, 128),
		scale:   scale,
	}
}

func (b *Backend) Init() error { return nil }

func (b *Backend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.events)
}

func (b *Backend) Events() <-chan backend.Event {
	return b.events
}

func (b *Backend) NewWindow(opts backend.WindowOptions) (backend.WindowID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0, fmt.Errorf("headless: backend is shut down")
	}

	id := b.nextID
	b.nextID++
	size := opts.Size
	if size.IsEmpty() {
		size = geom.Sz(640, 480)
	}
	w := &Window{
		Title:   opts.Title,
		Size:    size,
		MinSize: opts.MinSize,
		State:   opts.State,
	}
	if opts.Position != nil {
		w.Position = *opts.Position
	}
	b.windows[id] = w
	b.post(backend.Event{Type: backend.EventWindowCreated, Window: id, Size: size, Scale: b.scale})
	return id, nil
}

func (b *Backend) DestroyWindow(id backend.WindowID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.windows[id]; !ok {
		return fmt.Errorf("headless: no window %d", id)
	}
	delete(b.windows, id)
	b.post(backend.Event{Type: backend.EventWindowDestroyed, Window: id})
	return nil
}

func (b *Backend) Show(id backend.WindowID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[id]; ok {
		w.Visible = true
		b.post(backend.Event{Type: backend.EventFocus, Window: id, Focused: true})
	}
}

func (b *Backend) BringToFront(id backend.WindowID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[id]; ok && w.Visible {
		w.Fronted++
		b.post(backend.Event{Type: backend.EventFocus, Window: id, Focused: true})
	}
}

func (b *Backend) SetPosition(id backend.WindowID, pos geom.Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows[id]
	if !ok || w.Position == pos {
		return
	}
	w.Position = pos
	b.post(backend.Event{Type: backend.EventWindowMoved, Window: id, X: pos.X, Y: pos.Y})
}

func (b *Backend) Position(id backend.WindowID) geom.Point {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[id]; ok {
		return w.Position
	}
	return geom.Point{}
}

func (b *Backend) SetTitle(id backend.WindowID, title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[id]; ok {
		w.Title = title
	}
}

func (b *Backend) SetSize(id backend.WindowID, size geom.Size) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows[id]
	if !ok || w.Size == size {
		return
	}
	w.Size = size
	b.post(backend.Event{Type: backend.EventResize, Window: id, Size: size})
}

func (b *Backend) Size(id backend.WindowID) geom.Size {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[id]; ok {
		return w.Size
	}
	return geom.Size{}
}

func (b *Backend) SetState(id backend.WindowID, state backend.WindowState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[id]; ok {
		w.State = state
	}
}

func (b *Backend) State(id backend.WindowID) backend.WindowState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[id]; ok {
		return w.State
	}
	return backend.StateRestored
}

func (b *Backend) SetCursor(id backend.WindowID, c mouse.Cursor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[id]; ok {
		w.Cursor = c
	}
}

func (b *Backend) Invalidate(id backend.WindowID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[id]; ok {
		w.Invalidated++
	}
}

func (b *Backend) Scale(backend.WindowID) geom.Scale {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scale
}

// SetDialogResult sets the path the next file dialogs will answer
// with. An empty path makes dialogs report cancellation.
func (b *Backend) SetDialogResult(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dialog = path
}

func (b *Backend) OpenFileDialog(backend.WindowID) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dialog, b.dialog != ""
}

func (b *Backend) SaveFileDialog(backend.WindowID) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dialog, b.dialog != ""
}

// Inject posts a synthetic raw event, as if the platform produced it.
func (b *Backend) Inject(ev backend.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.post(ev)
}

// Lookup returns a snapshot of a window's state for assertions.
func (b *Backend) Lookup(id backend.WindowID) (Window, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows[id]
	if !ok {
		return Window{}, false
	}
	return *w, true
}

// WindowCount returns the number of live windows.
func (b *Backend) WindowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.windows)
}

// post delivers an event without blocking. Events are dropped if the
// queue is full or the backend is shut down; callers hold b.mu.
func (b *Backend) post(ev backend.Event) {
	if b.closed {
		return
	}
	select {
	case b.events <- ev:
	default:
	}
}
