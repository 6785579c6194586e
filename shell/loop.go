package shell

import (
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/winshell/backend"
	"github.com/dshills/winshell/geom"
	"github.com/dshills/winshell/key"
	"github.com/dshills/winshell/mouse"
	"github.com/dshills/winshell/vk"
)

// Application owns the run loop. All handler callbacks run on the
// goroutine that called Run; one event is dispatched per loop wake.
type Application struct {
	backend backend.Backend
	log     *Logger
	opts    Options

	mu      sync.Mutex
	windows map[backend.WindowID]*windowRecord
	timers  timerQueue
	paints  []backend.WindowID

	idleQ chan idleMsg
	wake  chan struct{}
	quit  chan struct{}
	done  chan struct{}

	running  atomic.Bool
	quitOnce sync.Once
}

// New creates an application on the given backend.
func New(b backend.Backend, opts Options) *Application {
	log := opts.Logger
	if log == nil {
		log = NewLogger(DefaultLoggerConfig())
	}
	if opts.IdleQueueSize <= 0 {
		opts.IdleQueueSize = DefaultOptions().IdleQueueSize
	}
	return &Application{
		backend: b,
		log:     log,
		opts:    opts,
		windows: make(map[backend.WindowID]*windowRecord),
		idleQ:   make(chan idleMsg, opts.IdleQueueSize),
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Logger returns the application's logger.
func (a *Application) Logger() *Logger { return a.log }

// Quit stops the run loop. Safe to call from any goroutine, more than
// once.
func (a *Application) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// IsRunning reports whether the run loop is active.
func (a *Application) IsRunning() bool { return a.running.Load() }

// Run initializes the backend and processes events until Quit, until
// the backend's event channel closes, or, with QuitOnLastClose, until
// the last window is destroyed.
func (a *Application) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	if err := a.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer a.backend.Shutdown()
	defer close(a.done)

	events := a.backend.Events()

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		var timerC <-chan time.Time
		a.mu.Lock()
		next, hasTimer := a.timers.next()
		a.mu.Unlock()
		if hasTimer {
			timer.Reset(time.Until(next))
			timerC = timer.C
		}

		quit := false
		select {
		case <-a.quit:
			quit = true

		case ev, ok := <-events:
			if !ok {
				quit = true
				break
			}
			a.handleBackendEvent(ev)

		case msg := <-a.idleQ:
			a.handleIdle(msg)

		case now := <-timerC:
			a.fireTimers(now)

		case <-a.wake:
		}

		if timerC != nil && !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}

		if quit {
			return nil
		}

		a.flushPaints()

		select {
		case <-a.quit:
			return nil
		default:
		}
	}
}

// handleBackendEvent routes one raw event to the owning window.
func (a *Application) handleBackendEvent(ev backend.Event) {
	rec, ok := a.window(ev.Window)
	if !ok {
		return
	}

	switch ev.Type {
	case backend.EventWindowCreated:
		a.dispatch("Scale", func() { rec.handler.Scale(ev.Scale) })
		a.dispatch("Size", func() { rec.handler.Size(ev.Size) })

	case backend.EventResize:
		a.dispatch("Size", func() { rec.handler.Size(ev.Size) })
		a.schedulePaint(ev.Window)

	case backend.EventScaleChanged:
		a.dispatch("Scale", func() { rec.handler.Scale(ev.Scale) })

	case backend.EventKeyDown:
		kev := a.keyEvent(key.StateDown, ev)
		a.setMods(rec, kev.Mods)
		a.dispatch("KeyDown", func() { rec.handler.KeyDown(kev) })

	case backend.EventKeyUp:
		kev := a.keyEvent(key.StateUp, ev)
		a.setMods(rec, kev.Mods)
		a.dispatch("KeyUp", func() { rec.handler.KeyUp(kev) })

	case backend.EventModifiers:
		a.setMods(rec, modsFromMask(ev.Mod))

	case backend.EventMouseMove:
		mev := a.mouseEvent(rec, ev)
		a.dispatch("MouseMove", func() { rec.handler.MouseMove(mev) })

	case backend.EventMouseDown:
		a.mu.Lock()
		rec.buttons.Insert(ev.Button)
		count := rec.clicks.RecordClick(ev.Button, geom.Pt(ev.X, ev.Y), time.Now())
		focusGiven := !rec.hasFocus
		rec.hasFocus = true
		a.mu.Unlock()
		mev := a.mouseEvent(rec, ev)
		mev.Button = ev.Button
		mev.Count = count
		mev.Focus = focusGiven
		a.dispatch("MouseDown", func() { rec.handler.MouseDown(mev) })

	case backend.EventMouseUp:
		a.mu.Lock()
		rec.buttons.Remove(ev.Button)
		a.mu.Unlock()
		mev := a.mouseEvent(rec, ev)
		mev.Button = ev.Button
		a.dispatch("MouseUp", func() { rec.handler.MouseUp(mev) })

	case backend.EventWheel:
		mev := a.mouseEvent(rec, ev)
		mev.WheelDelta = geom.Vec2{X: ev.WheelX, Y: ev.WheelY}
		a.dispatch("Wheel", func() { rec.handler.Wheel(mev) })

	case backend.EventMouseLeave:
		a.dispatch("MouseLeave", func() { rec.handler.MouseLeave() })

	case backend.EventFocus:
		a.mu.Lock()
		rec.hasFocus = ev.Focused
		a.mu.Unlock()
		if ev.Focused {
			a.dispatch("GotFocus", func() { rec.handler.GotFocus() })
		} else {
			a.dispatch("LostFocus", func() { rec.handler.LostFocus() })
		}

	case backend.EventCloseRequest:
		a.dispatch("RequestClose", func() { rec.handler.RequestClose() })

	case backend.EventWindowDestroyed:
		a.destroyWindow(rec)

	case backend.EventPaste:
		a.dispatch("Paste", func() { rec.handler.Paste(ev.PasteText) })

	case backend.EventWindowMoved:
		pos := geom.Pt(ev.X, ev.Y)
		a.dispatch("WindowMoved", func() { rec.handler.WindowMoved(pos) })

	case backend.EventZoom:
		a.dispatch("Zoom", func() { rec.handler.Zoom(ev.Magnification) })

	case backend.EventCommand:
		a.dispatch("Command", func() { rec.handler.Command(ev.CommandID) })
	}
}

// destroyWindow finishes a window's life: the handler's Destroy runs,
// its timers are dropped, and with QuitOnLastClose the loop stops once
// no windows remain.
func (a *Application) destroyWindow(rec *windowRecord) {
	a.dispatch("Destroy", func() { rec.handler.Destroy() })

	a.mu.Lock()
	delete(a.windows, rec.id)
	a.timers.dropWindow(rec.id)
	remaining := len(a.windows)
	a.mu.Unlock()

	a.log.WithWindow(uint64(rec.id)).Debug("window destroyed, %d remaining", remaining)

	if remaining == 0 && a.opts.QuitOnLastClose {
		a.Quit()
	}
}

// handleIdle runs one queued idle work item.
func (a *Application) handleIdle(msg idleMsg) {
	rec, ok := a.window(msg.window)
	if !ok {
		return
	}
	if msg.fn != nil {
		a.dispatch("IdleCallback", msg.fn)
		return
	}
	token := msg.token
	a.dispatch("Idle", func() { rec.handler.Idle(token) })
}

// fireTimers dispatches every due timer in deadline order.
func (a *Application) fireTimers(now time.Time) {
	a.mu.Lock()
	due := a.timers.popDue(now)
	a.mu.Unlock()

	for _, e := range due {
		rec, ok := a.window(e.window)
		if !ok {
			continue
		}
		token := e.token
		a.dispatch("Timer", func() { rec.handler.Timer(token) })
	}
}

// schedulePaint queues a paint cycle for the window.
func (a *Application) schedulePaint(id backend.WindowID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, w := range a.paints {
		if w == id {
			return
		}
	}
	a.paints = append(a.paints, id)
	a.poke()
}

// flushPaints runs the pending paint cycles.
func (a *Application) flushPaints() {
	a.mu.Lock()
	pending := a.paints
	a.paints = nil
	a.mu.Unlock()

	for _, id := range pending {
		if rec, ok := a.window(id); ok {
			a.paintWindow(rec)
		}
	}
}

func (a *Application) paintWindow(rec *windowRecord) {
	a.dispatch("PreparePaint", func() { rec.handler.PreparePaint() })
	a.dispatch("Paint", func() { rec.handler.Paint() })
}

// window looks up the record for a backend window.
func (a *Application) window(id backend.WindowID) (*windowRecord, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	rec, ok := a.windows[id]
	return rec, ok
}

func (a *Application) setMods(rec *windowRecord, mods key.Modifiers) {
	a.mu.Lock()
	rec.mods = mods
	a.mu.Unlock()
}

// keyEvent assembles a portable key event from a raw one. Backends
// reporting physical keys leave Key unset and the translation tables
// fill it in; translation never fails, degrading to Unidentified.
func (a *Application) keyEvent(state key.State, ev backend.Event) key.Event {
	k := ev.Key
	code := ev.Code
	if k == key.Unidentified && ev.VK != vk.Unknown {
		k = vk.KeyOf(ev.VK, ev.Mod.Has(backend.ModShift))
		code = vk.CodeOf(ev.VK)
	}
	return key.Event{
		State:       state,
		Key:         k,
		Code:        code,
		Location:    code.Location(),
		Mods:        modsFromMask(ev.Mod),
		Repeat:      ev.Repeat,
		IsComposing: ev.IsComposing,
	}
}

// mouseEvent assembles a pointer event carrying the window's current
// modifier and button state. Raw events with a modifier mask refresh
// the stored state; events without one (pure motion on some backends)
// thread the stored state instead.
func (a *Application) mouseEvent(rec *windowRecord, ev backend.Event) *mouse.Event {
	pos := geom.Pt(ev.X, ev.Y)

	a.mu.Lock()
	mods := rec.mods
	if ev.Mod != backend.ModNone {
		mods = modsFromMask(ev.Mod)
		rec.mods = mods
	}
	buttons := rec.buttons
	a.mu.Unlock()

	return &mouse.Event{
		Pos:       pos,
		WindowPos: geom.Pt(ev.WinX, ev.WinY),
		Buttons:   buttons,
		Mods:      mods,
	}
}

// modsFromMask maps the raw modifier mask one flag at a time.
func modsFromMask(m backend.ModMask) key.Modifiers {
	var mods key.Modifiers
	if m.Has(backend.ModShift) {
		mods.Set(key.ModShift, true)
	}
	if m.Has(backend.ModCtrl) {
		mods.Set(key.ModControl, true)
	}
	if m.Has(backend.ModAlt) {
		mods.Set(key.ModAlt, true)
	}
	if m.Has(backend.ModMeta) {
		mods.Set(key.ModMeta, true)
	}
	if m.Has(backend.ModCapsLock) {
		mods.Set(key.ModCapsLock, true)
	}
	if m.Has(backend.ModNumLock) {
		mods.Set(key.ModNumLock, true)
	}
	return mods
}

// dispatch runs a handler callback, converting panics into logged
// errors so one handler cannot take down the loop.
func (a *Application) dispatch(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			perr := &PanicError{Op: op, Value: r, Stack: string(debug.Stack())}
			a.log.Error("%v", perr)
		}
	}()
	fn()
}

// poke wakes the loop so it recomputes its timer deadline.
func (a *Application) poke() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// newClickTracker builds a tracker from the application options.
func (a *Application) newClickTracker() *mouse.ClickTracker {
	maxTime := a.opts.DoubleClickTime
	if maxTime <= 0 {
		maxTime = DefaultOptions().DoubleClickTime
	}
	dist := a.opts.DoubleClickDistance
	if dist <= 0 {
		dist = DefaultOptions().DoubleClickDistance
	}
	return mouse.NewClickTracker(maxTime, dist)
}
