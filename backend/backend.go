// Package backend provides the platform abstraction the shell runs on.
// A backend owns the native windows and delivers raw events on a
// channel; the shell translates them into the portable event model.
package backend

import (
	"github.com/dshills/winshell/geom"
	"github.com/dshills/winshell/key"
	"github.com/dshills/winshell/mouse"
	"github.com/dshills/winshell/vk"
)

// WindowID identifies a backend window. Zero is never a valid window.
type WindowID uint64

// EventType identifies the type of raw event.
type EventType int

const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
	EventModifiers
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventWheel
	EventMouseLeave
	EventResize
	EventScaleChanged
	EventFocus
	EventCloseRequest
	EventWindowCreated
	EventWindowDestroyed
	EventPaste
	EventWindowMoved
	EventZoom
	EventCommand
)

// Event represents a raw backend event. The shell's run loop is the
// only consumer; handlers never see this type.
type Event struct {
	Type   EventType
	Window WindowID

	// Key event fields. Backends that report physical keys set VK and
	// leave Key zero; the shell derives Key and Code from the
	// translation tables. Backends that only know logical keys (such
	// as terminals) set Key and Code directly.
	VK          vk.Key
	Key         key.Key
	Code        key.Code
	Mod         ModMask
	Repeat      bool
	IsComposing bool

	// Mouse event fields. Positions are in display points relative to
	// the window's content origin. Window-move events reuse X and Y for
	// the new origin in screen coordinates.
	X, Y           float64
	WinX, WinY     float64
	Button         mouse.Button
	WheelX, WheelY float64

	// Magnification is the pinch-zoom increment for zoom events.
	Magnification float64

	// CommandID identifies the menu or system command that fired.
	CommandID uint32

	// Resize and scale fields.
	Size  geom.Size
	Scale geom.Scale

	// Focus event fields.
	Focused bool

	// Paste event fields.
	PasteText string
}

// ModMask represents raw modifier key state as the backend reports it.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
	ModCapsLock
	ModNumLock
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// WindowState describes how a window is presented.
type WindowState int

const (
	StateRestored WindowState = iota
	StateMaximized
	StateMinimized
)

// WindowOptions configures a new backend window.
type WindowOptions struct {
	Title     string
	Size      geom.Size
	MinSize   geom.Size
	Position  *geom.Point
	State     WindowState
	Resizable bool
	Titlebar  bool
}

// Backend defines the interface for display backends. Implementations
// own the native event source and window lifetimes.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources. The events channel is
	// closed once no more events will be delivered.
	Shutdown()

	// Events returns the channel raw events arrive on. The channel is
	// owned by the backend and closed on Shutdown.
	Events() <-chan Event

	// NewWindow creates a native window and returns its id. The window
	// is created hidden; Show makes it visible.
	NewWindow(opts WindowOptions) (WindowID, error)

	// DestroyWindow closes a window. An EventWindowDestroyed event is
	// delivered once the window is gone. Destroying an unknown window
	// is an error.
	DestroyWindow(id WindowID) error

	// Show makes a window visible and gives it focus.
	Show(id WindowID)

	// BringToFront raises a visible window above its siblings.
	BringToFront(id WindowID)

	// SetPosition moves a window's origin in screen coordinates. An
	// EventWindowMoved event reports the new position. Backends without
	// movable windows ignore it.
	SetPosition(id WindowID, pos geom.Point)

	// Position returns the window's origin in screen coordinates.
	Position(id WindowID) geom.Point

	// SetTitle changes a window's title.
	SetTitle(id WindowID, title string)

	// SetSize requests a new content size in display points.
	SetSize(id WindowID, size geom.Size)

	// Size returns the current content size in display points.
	Size(id WindowID) geom.Size

	// SetState changes the window presentation (restored, maximized,
	// minimized).
	SetState(id WindowID, state WindowState)

	// State returns the current window presentation.
	State(id WindowID) WindowState

	// SetCursor changes the pointer image shown over the window.
	SetCursor(id WindowID, c mouse.Cursor)

	// Invalidate marks the window as needing paint.
	Invalidate(id WindowID)

	// Scale returns the pixel density of the window's display.
	Scale(id WindowID) geom.Scale
}

// FileDialogs is an optional capability for backends able to present
// native open and save dialogs. The second return is false when the
// user cancels or the backend has no dialog to show.
type FileDialogs interface {
	OpenFileDialog(id WindowID) (path string, ok bool)
	SaveFileDialog(id WindowID) (path string, ok bool)
}
