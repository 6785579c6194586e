// Package terminal implements a backend on top of a terminal screen
// via tcell. The terminal acts as a single fullscreen window; key up
// events are synthesized, since terminals only report key presses.
package terminal

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/winshell/backend"
	"github.com/dshills/winshell/geom"
	"github.com/dshills/winshell/mouse"
)

// ErrSingleWindow is returned when a second window is requested. A
// terminal has exactly one drawing surface.
var ErrSingleWindow = errors.New("terminal: backend supports a single window")

const windowID backend.WindowID = 1

// zoomStep is the magnification increment per Ctrl+wheel notch.
const zoomStep = 0.1

// Terminal implements backend.Backend using tcell.
type Terminal struct {
	mu        sync.Mutex
	screen    tcell.Screen
	events    chan backend.Event
	created   bool
	destroyed bool
	lastMouse tcell.ButtonMask
	pasting   bool
	pasteBuf  []rune
	quit      chan struct{}
}

// New creates a terminal backend on the default screen.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{
		screen: screen,
		events: make(chan backend.Event, 64),
		quit:   make(chan struct{}),
	}, nil
}

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnablePaste()
	t.screen.EnableFocus()
	go t.pollLoop()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	select {
	case <-t.quit:
		return
	default:
	}
	close(t.quit)
	t.screen.Fini()
	close(t.events)
}

func (t *Terminal) Events() <-chan backend.Event {
	return t.events
}

func (t *Terminal) NewWindow(opts backend.WindowOptions) (backend.WindowID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.created {
		return 0, ErrSingleWindow
	}
	t.created = true
	if opts.Title != "" {
		t.screen.SetTitle(opts.Title)
	}
	w, h := t.screen.Size()
	t.post(backend.Event{
		Type:   backend.EventWindowCreated,
		Window: windowID,
		Size:   geom.Sz(float64(w), float64(h)),
		Scale:  geom.Identity,
	})
	return windowID, nil
}

func (t *Terminal) DestroyWindow(id backend.WindowID) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id != windowID || !t.created || t.destroyed {
		return errors.New("terminal: no such window")
	}
	t.destroyed = true
	t.post(backend.Event{Type: backend.EventWindowDestroyed, Window: windowID})
	return nil
}

func (t *Terminal) Show(id backend.WindowID) {
	if id != windowID {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.post(backend.Event{Type: backend.EventFocus, Window: windowID, Focused: true})
}

func (t *Terminal) SetTitle(id backend.WindowID, title string) {
	if id == windowID {
		t.screen.SetTitle(title)
	}
}

// BringToFront is a no-op: the single terminal window is always front.
func (t *Terminal) BringToFront(backend.WindowID) {}

// SetPosition is a no-op: the terminal window fills the screen.
func (t *Terminal) SetPosition(backend.WindowID, geom.Point) {}

func (t *Terminal) Position(backend.WindowID) geom.Point {
	return geom.Point{}
}

// SetSize is a no-op: the terminal decides its own dimensions.
func (t *Terminal) SetSize(backend.WindowID, geom.Size) {}

func (t *Terminal) Size(id backend.WindowID) geom.Size {
	if id != windowID {
		return geom.Size{}
	}
	w, h := t.screen.Size()
	return geom.Sz(float64(w), float64(h))
}

// SetState is a no-op: a terminal window is always restored.
func (t *Terminal) SetState(backend.WindowID, backend.WindowState) {}

func (t *Terminal) State(backend.WindowID) backend.WindowState {
	return backend.StateRestored
}

func (t *Terminal) SetCursor(id backend.WindowID, c mouse.Cursor) {
	if id != windowID {
		return
	}
	switch c {
	case mouse.CursorIBeam:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	default:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

func (t *Terminal) Invalidate(id backend.WindowID) {
	if id == windowID {
		t.screen.Show()
	}
}

func (t *Terminal) Scale(backend.WindowID) geom.Scale {
	return geom.Identity
}

// pollLoop drains tcell's event queue and converts each event.
func (t *Terminal) pollLoop() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-t.quit:
			return
		default:
		}
		t.mu.Lock()
		t.convert(ev)
		t.mu.Unlock()
	}
}

// convert translates one tcell event into raw events. Callers hold
// t.mu.
func (t *Terminal) convert(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if t.pasting {
			t.bufferPasted(e)
			return
		}
		k, code := convertKey(e)
		mod := convertMod(e.Modifiers())
		down := backend.Event{
			Type:   backend.EventKeyDown,
			Window: windowID,
			Key:    k,
			Code:   code,
			Mod:    mod,
		}
		t.post(down)
		// Terminals never report releases, so a matching up event
		// follows every press.
		up := down
		up.Type = backend.EventKeyUp
		t.post(up)

	case *tcell.EventMouse:
		t.convertMouse(e)

	case *tcell.EventResize:
		w, h := e.Size()
		t.post(backend.Event{
			Type:   backend.EventResize,
			Window: windowID,
			Size:   geom.Sz(float64(w), float64(h)),
		})

	case *tcell.EventFocus:
		t.post(backend.Event{
			Type:    backend.EventFocus,
			Window:  windowID,
			Focused: e.Focused,
		})

	case *tcell.EventPaste:
		// Pasted text arrives as the key events between the start and
		// end markers; buffer them and deliver one paste event.
		if e.Start() {
			t.pasting = true
			t.pasteBuf = t.pasteBuf[:0]
			return
		}
		t.pasting = false
		t.post(backend.Event{
			Type:      backend.EventPaste,
			Window:    windowID,
			PasteText: string(t.pasteBuf),
		})
	}
}

// bufferPasted collects one key event of an in-progress paste. Callers
// hold t.mu.
func (t *Terminal) bufferPasted(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyRune:
		t.pasteBuf = append(t.pasteBuf, e.Rune())
	case tcell.KeyEnter:
		t.pasteBuf = append(t.pasteBuf, '\n')
	case tcell.KeyTab:
		t.pasteBuf = append(t.pasteBuf, '\t')
	}
}

// convertMouse diffs the button mask against the previous state to
// derive presses, releases, wheel motion, and moves.
func (t *Terminal) convertMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	mod := convertMod(e.Modifiers())
	buttons := e.Buttons()

	base := backend.Event{
		Window: windowID,
		X:      float64(x),
		Y:      float64(y),
		WinX:   float64(x),
		WinY:   float64(y),
		Mod:    mod,
	}

	if dy, dx := wheelDelta(buttons); dx != 0 || dy != 0 {
		ev := base
		// Ctrl+wheel stands in for a pinch gesture.
		if mod.Has(backend.ModCtrl) {
			ev.Type = backend.EventZoom
			ev.Magnification = dy * zoomStep
			t.post(ev)
			return
		}
		ev.Type = backend.EventWheel
		ev.WheelX = dx
		ev.WheelY = dy
		t.post(ev)
		return
	}

	pressed := buttons &^ t.lastMouse
	released := t.lastMouse &^ buttons
	t.lastMouse = buttons

	for _, pair := range buttonMasks {
		if pressed&pair.mask != 0 {
			ev := base
			ev.Type = backend.EventMouseDown
			ev.Button = pair.button
			t.post(ev)
		}
		if released&pair.mask != 0 {
			ev := base
			ev.Type = backend.EventMouseUp
			ev.Button = pair.button
			t.post(ev)
		}
	}

	if pressed == 0 && released == 0 {
		ev := base
		ev.Type = backend.EventMouseMove
		t.post(ev)
	}
}

var buttonMasks = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.Button1, mouse.ButtonLeft},
	{tcell.Button2, mouse.ButtonMiddle},
	{tcell.Button3, mouse.ButtonRight},
	{tcell.Button4, mouse.ButtonX1},
	{tcell.Button5, mouse.ButtonX2},
}

func wheelDelta(b tcell.ButtonMask) (dy, dx float64) {
	if b&tcell.WheelUp != 0 {
		dy = 1
	}
	if b&tcell.WheelDown != 0 {
		dy = -1
	}
	if b&tcell.WheelLeft != 0 {
		dx = -1
	}
	if b&tcell.WheelRight != 0 {
		dx = 1
	}
	return dy, dx
}

// post delivers an event without blocking; events are dropped if the
// queue is full or the backend has shut down. Callers hold t.mu, so
// the quit check cannot race Shutdown's channel close.
func (t *Terminal) post(ev backend.Event) {
	select {
	case <-t.quit:
		return
	default:
	}
	select {
	case t.events <- ev:
	default:
	}
}
