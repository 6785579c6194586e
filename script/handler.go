package script

import (
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/winshell/geom"
	"github.com/dshills/winshell/key"
	"github.com/dshills/winshell/mouse"
	"github.com/dshills/winshell/shell"
)

// Handler adapts a Host into a shell window handler. Each event maps
// onto a Lua callback of the same shape:
//
//	function on_key_down(ev)  -- return true to consume
//	function on_mouse_down(ev)
//	function on_timer(token)
//	function on_paint()
//
// Missing callbacks are simply skipped.
type Handler struct {
	shell.HandlerBase

	host   *Host
	handle *shell.WindowHandle
}

// NewHandler wraps a host as a window handler.
func NewHandler(host *Host) *Handler {
	return &Handler{host: host}
}

// Handle returns the connected window handle, or nil before Connect.
func (h *Handler) Handle() *shell.WindowHandle { return h.handle }

// Connect stores the handle and exposes the window module to the
// script before running on_connect.
func (h *Handler) Connect(handle *shell.WindowHandle) {
	h.handle = handle
	h.host.register("window", map[string]lua.LGFunction{
		"set_title": func(L *lua.LState) int {
			h.handle.SetTitle(L.CheckString(1))
			return 0
		},
		"close": func(L *lua.LState) int {
			h.handle.Close()
			return 0
		},
		"invalidate": func(L *lua.LState) int {
			h.handle.Invalidate()
			return 0
		},
		"request_timer": func(L *lua.LState) int {
			ms := L.CheckInt(1)
			tok := h.handle.RequestTimer(time.Duration(ms) * time.Millisecond)
			L.Push(lua.LNumber(tok.Raw()))
			return 1
		},
		"set_cursor": func(L *lua.LState) int {
			h.handle.SetCursor(cursorByName(L.CheckString(1)))
			return 0
		},
	})
	h.host.call("on_connect")
}

// Size reports a resize to the script.
func (h *Handler) Size(size geom.Size) {
	tbl := h.host.state.NewTable()
	tbl.RawSetString("width", lua.LNumber(size.Width))
	tbl.RawSetString("height", lua.LNumber(size.Height))
	h.host.call("on_size", tbl)
}

// Scale reports a scale change to the script.
func (h *Handler) Scale(scale geom.Scale) {
	tbl := h.host.state.NewTable()
	tbl.RawSetString("x", lua.LNumber(scale.X))
	tbl.RawSetString("y", lua.LNumber(scale.Y))
	h.host.call("on_scale", tbl)
}

// WindowMoved reports the window's new origin to the script.
func (h *Handler) WindowMoved(pos geom.Point) {
	tbl := h.host.state.NewTable()
	tbl.RawSetString("x", lua.LNumber(pos.X))
	tbl.RawSetString("y", lua.LNumber(pos.Y))
	h.host.call("on_window_moved", tbl)
}

// Zoom forwards a pinch-zoom increment.
func (h *Handler) Zoom(delta float64) {
	h.host.call("on_zoom", lua.LNumber(delta))
}

// Command forwards a fired command id.
func (h *Handler) Command(id uint32) {
	h.host.call("on_command", lua.LNumber(id))
}

// Paint runs the on_paint callback.
func (h *Handler) Paint() {
	h.host.call("on_paint")
}

// KeyDown forwards a key press. The event is consumed when the script
// callback returns true.
func (h *Handler) KeyDown(ev key.Event) bool {
	ret, err := h.host.call("on_key_down", h.keyTable(ev))
	if err != nil {
		return false
	}
	return lua.LVAsBool(ret)
}

// KeyUp forwards a key release.
func (h *Handler) KeyUp(ev key.Event) {
	h.host.call("on_key_up", h.keyTable(ev))
}

// MouseMove forwards pointer motion.
func (h *Handler) MouseMove(ev *mouse.Event) {
	h.host.call("on_mouse_move", h.mouseTable(ev))
}

// MouseDown forwards a button press.
func (h *Handler) MouseDown(ev *mouse.Event) {
	h.host.call("on_mouse_down", h.mouseTable(ev))
}

// MouseUp forwards a button release.
func (h *Handler) MouseUp(ev *mouse.Event) {
	h.host.call("on_mouse_up", h.mouseTable(ev))
}

// MouseLeave tells the script the pointer left the window.
func (h *Handler) MouseLeave() {
	h.host.call("on_mouse_leave")
}

// Wheel forwards a scroll event.
func (h *Handler) Wheel(ev *mouse.Event) {
	h.host.call("on_wheel", h.mouseTable(ev))
}

// Timer forwards a fired timer token.
func (h *Handler) Timer(tok shell.TimerToken) {
	h.host.call("on_timer", lua.LNumber(tok.Raw()))
}

// Idle forwards an idle token.
func (h *Handler) Idle(tok shell.IdleToken) {
	h.host.call("on_idle", lua.LNumber(tok.Raw()))
}

// GotFocus runs on_got_focus.
func (h *Handler) GotFocus() {
	h.host.call("on_got_focus")
}

// LostFocus runs on_lost_focus.
func (h *Handler) LostFocus() {
	h.host.call("on_lost_focus")
}

// Paste forwards pasted text.
func (h *Handler) Paste(text string) {
	h.host.call("on_paste", lua.LString(text))
}

// RequestClose runs on_request_close. Scripts without one get the
// default behavior of closing the window.
func (h *Handler) RequestClose() {
	if !h.host.hasCallback("on_request_close") {
		if h.handle != nil {
			h.handle.Close()
		}
		return
	}
	h.host.call("on_request_close")
}

// Destroy runs on_destroy.
func (h *Handler) Destroy() {
	h.host.call("on_destroy")
}

// keyTable builds the Lua view of a key event.
func (h *Handler) keyTable(ev key.Event) *lua.LTable {
	tbl := h.host.state.NewTable()
	tbl.RawSetString("key", lua.LString(ev.Key.String()))
	tbl.RawSetString("code", lua.LString(ev.Code.String()))
	// "repeat" is a Lua keyword, so the flag gets a prefixed name.
	tbl.RawSetString("is_repeat", lua.LBool(ev.Repeat))
	if ev.Key.IsCharacter() {
		tbl.RawSetString("text", lua.LString(ev.Key.Character()))
	}
	tbl.RawSetString("mods", h.modsTable(ev.Mods))
	return tbl
}

// mouseTable builds the Lua view of a mouse event.
func (h *Handler) mouseTable(ev *mouse.Event) *lua.LTable {
	tbl := h.host.state.NewTable()
	tbl.RawSetString("x", lua.LNumber(ev.Pos.X))
	tbl.RawSetString("y", lua.LNumber(ev.Pos.Y))
	tbl.RawSetString("button", lua.LString(ev.Button.String()))
	tbl.RawSetString("count", lua.LNumber(ev.Count))
	tbl.RawSetString("wheel_x", lua.LNumber(ev.WheelDelta.X))
	tbl.RawSetString("wheel_y", lua.LNumber(ev.WheelDelta.Y))
	tbl.RawSetString("mods", h.modsTable(ev.Mods))
	return tbl
}

// modsTable builds the Lua view of a modifier set.
func (h *Handler) modsTable(mods key.Modifiers) *lua.LTable {
	tbl := h.host.state.NewTable()
	tbl.RawSetString("shift", lua.LBool(mods.Shift()))
	tbl.RawSetString("ctrl", lua.LBool(mods.Ctrl()))
	tbl.RawSetString("alt", lua.LBool(mods.Alt()))
	tbl.RawSetString("meta", lua.LBool(mods.Meta()))
	return tbl
}

// cursorByName maps a script cursor name onto a cursor value.
func cursorByName(name string) mouse.Cursor {
	switch name {
	case "ibeam":
		return mouse.CursorIBeam
	case "pointer":
		return mouse.CursorPointer
	case "crosshair":
		return mouse.CursorCrosshair
	case "not_allowed":
		return mouse.CursorNotAllowed
	case "resize_left_right":
		return mouse.CursorResizeLeftRight
	case "resize_up_down":
		return mouse.CursorResizeUpDown
	default:
		return mouse.CursorArrow
	}
}
