package shell

import (
	"github.com/dshills/winshell/geom"
	"github.com/dshills/winshell/key"
	"github.com/dshills/winshell/mouse"
)

// WinHandler receives the events of one window. All methods are called
// on the run loop goroutine; implementations must not block.
//
// Connect is always the first call a handler receives, before any
// event. Destroy is the last.
type WinHandler interface {
	// Connect hands the handler its window handle. The handle stays
	// valid until Destroy.
	Connect(h *WindowHandle)

	// Size reports the window's content size in display points. Called
	// once after creation and again on every resize.
	Size(size geom.Size)

	// Scale reports the window's pixel density. Called once after
	// creation and again when the window changes displays.
	Scale(scale geom.Scale)

	// WindowMoved reports the window's new origin in screen
	// coordinates after the user or the program moves it.
	WindowMoved(pos geom.Point)

	// PreparePaint runs before Paint on each paint cycle.
	PreparePaint()

	// Paint asks the handler to redraw.
	Paint()

	// KeyDown handles a key press. The return value reports whether
	// the handler consumed the event.
	KeyDown(ev key.Event) bool

	// KeyUp handles a key release.
	KeyUp(ev key.Event)

	// MouseMove handles pointer motion.
	MouseMove(ev *mouse.Event)

	// MouseDown handles a button press. ev.Count carries the click
	// count and ev.Buttons includes the pressed button.
	MouseDown(ev *mouse.Event)

	// MouseUp handles a button release. ev.Buttons excludes the
	// released button.
	MouseUp(ev *mouse.Event)

	// MouseLeave is called when the pointer leaves the window.
	MouseLeave()

	// Wheel handles scroll wheel motion; ev.WheelDelta carries the
	// distance.
	Wheel(ev *mouse.Event)

	// Zoom handles a pinch gesture; delta is the zoom increment.
	Zoom(delta float64)

	// Timer fires a timer requested through the window handle.
	Timer(token TimerToken)

	// Idle runs an idle callback scheduled through an IdleHandle.
	Idle(token IdleToken)

	// GotFocus is called when the window gains keyboard focus.
	GotFocus()

	// LostFocus is called when the window loses keyboard focus.
	LostFocus()

	// Paste delivers pasted text.
	Paste(text string)

	// Command fires when a menu or system command is invoked.
	Command(id uint32)

	// OpenFile delivers the result of a WindowHandle.OpenFile dialog.
	// info is nil when the user cancelled.
	OpenFile(token FileDialogToken, info *FileInfo)

	// SaveAs delivers the result of a WindowHandle.SaveAs dialog.
	// info is nil when the user cancelled.
	SaveAs(token FileDialogToken, info *FileInfo)

	// RequestClose is called when the user asks to close the window.
	// The window only closes if the handler calls handle.Close().
	RequestClose()

	// Destroy is called once the window is gone. The handle must not
	// be used afterwards.
	Destroy()

	// AcquireInputLock locks a registered text field for reading, or
	// for editing when mutable is set. The lock is held until
	// ReleaseInputLock.
	AcquireInputLock(token TextFieldToken, mutable bool) InputHandler

	// ReleaseInputLock releases a lock taken by AcquireInputLock.
	ReleaseInputLock(token TextFieldToken)
}

// FileInfo describes the file a dialog resolved to.
type FileInfo struct {
	// Path is the chosen file's path.
	Path string
}

// Selection is a text selection as byte offsets into a field's text.
// Anchor is where the selection began; Active is the moving end and
// the caret position. Anchor may be after Active.
type Selection struct {
	Anchor int
	Active int
}

// Caret returns a collapsed selection at the given offset.
func Caret(offset int) Selection {
	return Selection{Anchor: offset, Active: offset}
}

// IsCaret reports whether the selection is collapsed.
func (s Selection) IsCaret() bool {
	return s.Anchor == s.Active
}

// Range returns the selection bounds in ascending order.
func (s Selection) Range() (start, end int) {
	if s.Anchor <= s.Active {
		return s.Anchor, s.Active
	}
	return s.Active, s.Anchor
}

// InputHandler is the editing surface of a locked text field. The
// platform's text input machinery drives it while the lock is held.
type InputHandler interface {
	// Text returns the field's current text.
	Text() string

	// Selection returns the current selection.
	Selection() Selection

	// SetSelection replaces the selection. Requires a mutable lock.
	SetSelection(sel Selection)

	// ComposingRange returns the active IME composition range, if any.
	ComposingRange() (start, end int, ok bool)

	// ReplaceRange replaces the text between start and end. Requires a
	// mutable lock.
	ReplaceRange(start, end int, text string)
}

// HandlerBase is a no-op WinHandler suitable for embedding. Handlers
// that register text fields must override the input lock methods; the
// defaults panic.
type HandlerBase struct{}

func (HandlerBase) Connect(*WindowHandle)     {}
func (HandlerBase) Size(geom.Size)            {}
func (HandlerBase) Scale(geom.Scale)          {}
func (HandlerBase) WindowMoved(geom.Point)    {}
func (HandlerBase) PreparePaint()             {}
func (HandlerBase) Paint()                    {}
func (HandlerBase) KeyDown(key.Event) bool    { return false }
func (HandlerBase) KeyUp(key.Event)           {}
func (HandlerBase) MouseMove(*mouse.Event)    {}
func (HandlerBase) MouseDown(*mouse.Event)    {}
func (HandlerBase) MouseUp(*mouse.Event)      {}
func (HandlerBase) MouseLeave()               {}
func (HandlerBase) Wheel(*mouse.Event)        {}
func (HandlerBase) Zoom(float64)              {}
func (HandlerBase) Timer(TimerToken)          {}
func (HandlerBase) Idle(IdleToken)            {}
func (HandlerBase) GotFocus()                 {}
func (HandlerBase) LostFocus()                {}
func (HandlerBase) Paste(string)              {}
func (HandlerBase) Command(uint32)            {}
func (HandlerBase) RequestClose()             {}
func (HandlerBase) Destroy()                  {}

func (HandlerBase) OpenFile(FileDialogToken, *FileInfo) {}
func (HandlerBase) SaveAs(FileDialogToken, *FileInfo)   {}

func (HandlerBase) AcquireInputLock(TextFieldToken, bool) InputHandler {
	panic("shell: AcquireInputLock called on a handler that does not support text input")
}

func (HandlerBase) ReleaseInputLock(TextFieldToken) {
	panic("shell: ReleaseInputLock called on a handler that does not support text input")
}
