package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/winshell/geom"
	"github.com/dshills/winshell/key"
	"github.com/dshills/winshell/mouse"
	"github.com/dshills/winshell/shell"
)

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "handler.lua")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func newTestHost(t *testing.T, body string) *Host {
	t.Helper()
	path := writeScript(t, t.TempDir(), body)
	host, err := NewHost(path, shell.NullLogger)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	t.Cleanup(host.Close)
	return host
}

func TestHostIDIsUUID(t *testing.T) {
	host := newTestHost(t, `seen_id = host_id`)
	if _, err := uuid.Parse(host.ID()); err != nil {
		t.Fatalf("host id %q is not a uuid: %v", host.ID(), err)
	}
	got := host.state.GetGlobal("seen_id")
	if got.String() != host.ID() {
		t.Errorf("script saw host_id %q, want %q", got.String(), host.ID())
	}
}

func TestNewHostLoadFailure(t *testing.T) {
	path := writeScript(t, t.TempDir(), `this is not lua`)
	_, err := NewHost(path, shell.NullLogger)
	if err == nil {
		t.Fatal("expected load error")
	}
	var serr *ScriptError
	if !errors.As(err, &serr) {
		t.Fatalf("error %v is not a ScriptError", err)
	}
	if serr.Fn != "load" {
		t.Errorf("Fn = %q, want load", serr.Fn)
	}
}

func TestNewHostMissingFile(t *testing.T) {
	_, err := NewHost(filepath.Join(t.TempDir(), "nope.lua"), shell.NullLogger)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestUnsafeLibrariesClosed(t *testing.T) {
	host := newTestHost(t, `has_io = io ~= nil; has_os = os ~= nil; has_math = math ~= nil`)
	if lua.LVAsBool(host.state.GetGlobal("has_io")) {
		t.Error("io library should not be open")
	}
	if lua.LVAsBool(host.state.GetGlobal("has_os")) {
		t.Error("os library should not be open")
	}
	if !lua.LVAsBool(host.state.GetGlobal("has_math")) {
		t.Error("math library should be open")
	}
}

func TestHandlerKeyDownConsumes(t *testing.T) {
	host := newTestHost(t, `
		function on_key_down(ev)
			return ev.key == "a"
		end
	`)
	h := NewHandler(host)

	if !h.KeyDown(key.Event{State: key.StateDown, Key: key.Character("a")}) {
		t.Error("expected 'a' to be consumed")
	}
	if h.KeyDown(key.Event{State: key.StateDown, Key: key.Character("b")}) {
		t.Error("expected 'b' to pass through")
	}
}

func TestHandlerKeyEventFields(t *testing.T) {
	host := newTestHost(t, `
		function on_key_down(ev)
			last = ev
			return false
		end
	`)
	h := NewHandler(host)

	h.KeyDown(key.Event{
		State:  key.StateDown,
		Key:    key.Character("x"),
		Code:   key.CodeKeyX,
		Mods:   key.ModControl,
		Repeat: true,
	})

	last, ok := host.state.GetGlobal("last").(*lua.LTable)
	if !ok {
		t.Fatal("script did not record the event")
	}
	if got := last.RawGetString("key").String(); got != "x" {
		t.Errorf("key = %q, want x", got)
	}
	if got := last.RawGetString("code").String(); got != key.CodeKeyX.String() {
		t.Errorf("code = %q, want %q", got, key.CodeKeyX.String())
	}
	if !lua.LVAsBool(last.RawGetString("is_repeat")) {
		t.Error("repeat flag not delivered")
	}
	mods, ok := last.RawGetString("mods").(*lua.LTable)
	if !ok {
		t.Fatal("mods table missing")
	}
	if !lua.LVAsBool(mods.RawGetString("ctrl")) {
		t.Error("ctrl modifier not delivered")
	}
	if lua.LVAsBool(mods.RawGetString("shift")) {
		t.Error("shift modifier should be false")
	}
}

func TestHandlerMissingCallback(t *testing.T) {
	host := newTestHost(t, `-- no callbacks defined`)
	h := NewHandler(host)

	// None of these may panic or error when the script defines nothing.
	h.KeyUp(key.Event{State: key.StateUp, Key: key.Character("q")})
	h.MouseMove(&mouse.Event{})
	h.Paint()
	h.GotFocus()
	h.LostFocus()
	h.Destroy()
	if h.KeyDown(key.Event{State: key.StateDown, Key: key.Character("q")}) {
		t.Error("missing on_key_down must not consume")
	}
}

func TestHandlerMouseEvent(t *testing.T) {
	host := newTestHost(t, `
		function on_mouse_down(ev)
			clicked_button = ev.button
			clicked_count = ev.count
		end
	`)
	h := NewHandler(host)

	h.MouseDown(&mouse.Event{Button: mouse.ButtonLeft, Count: 2})

	if got := host.state.GetGlobal("clicked_button").String(); got != mouse.ButtonLeft.String() {
		t.Errorf("button = %q, want %q", got, mouse.ButtonLeft.String())
	}
	if got := lua.LVAsNumber(host.state.GetGlobal("clicked_count")); got != 2 {
		t.Errorf("count = %v, want 2", got)
	}
}

func TestHandlerTimerAndPaste(t *testing.T) {
	host := newTestHost(t, `
		function on_timer(tok) fired = tok end
		function on_paste(text) pasted = text end
	`)
	h := NewHandler(host)

	tok := shell.NextTimerToken()
	h.Timer(tok)
	if got := lua.LVAsNumber(host.state.GetGlobal("fired")); uint64(got) != tok.Raw() {
		t.Errorf("timer token = %v, want %d", got, tok.Raw())
	}

	h.Paste("hello")
	if got := host.state.GetGlobal("pasted").String(); got != "hello" {
		t.Errorf("pasted = %q, want hello", got)
	}
}

func TestHandlerZoomCommandAndMove(t *testing.T) {
	host := newTestHost(t, `
		function on_zoom(delta) zoomed = delta end
		function on_command(id) commanded = id end
		function on_window_moved(pos) moved_x = pos.x; moved_y = pos.y end
	`)
	h := NewHandler(host)

	h.Zoom(0.5)
	if got := lua.LVAsNumber(host.state.GetGlobal("zoomed")); got != 0.5 {
		t.Errorf("zoom delta = %v, want 0.5", got)
	}

	h.Command(7)
	if got := lua.LVAsNumber(host.state.GetGlobal("commanded")); got != 7 {
		t.Errorf("command id = %v, want 7", got)
	}

	h.WindowMoved(geom.Pt(30, 40))
	if x := lua.LVAsNumber(host.state.GetGlobal("moved_x")); x != 30 {
		t.Errorf("moved x = %v, want 30", x)
	}
	if y := lua.LVAsNumber(host.state.GetGlobal("moved_y")); y != 40 {
		t.Errorf("moved y = %v, want 40", y)
	}
}

func TestCallbackErrorDoesNotConsume(t *testing.T) {
	host := newTestHost(t, `
		function on_key_down(ev)
			error("boom")
		end
	`)
	h := NewHandler(host)

	if h.KeyDown(key.Event{State: key.StateDown, Key: key.Character("a")}) {
		t.Error("a failing callback must not consume the key")
	}
}

func TestCallScriptError(t *testing.T) {
	host := newTestHost(t, `function bad() error("boom") end`)
	_, err := host.call("bad")
	var serr *ScriptError
	if !errors.As(err, &serr) {
		t.Fatalf("error %v is not a ScriptError", err)
	}
	if serr.Fn != "bad" {
		t.Errorf("Fn = %q, want bad", serr.Fn)
	}
}

func TestReloadChangesBehavior(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, `function version() return 1 end`)
	host, err := NewHost(path, shell.NullLogger)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	defer host.Close()

	v, err := host.call("version")
	if err != nil || lua.LVAsNumber(v) != 1 {
		t.Fatalf("version = %v (%v), want 1", v, err)
	}

	writeScript(t, dir, `function version() return 2 end`)
	if err := host.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	v, err = host.call("version")
	if err != nil || lua.LVAsNumber(v) != 2 {
		t.Fatalf("version after reload = %v (%v), want 2", v, err)
	}
}

func TestReloadFailureKeepsOldState(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, `function version() return 1 end`)
	host, err := NewHost(path, shell.NullLogger)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	defer host.Close()

	writeScript(t, dir, `not lua at all`)
	if err := host.Reload(); err == nil {
		t.Fatal("expected reload error")
	}

	v, err := host.call("version")
	if err != nil || lua.LVAsNumber(v) != 1 {
		t.Fatalf("version after failed reload = %v (%v), want 1", v, err)
	}
}

func TestHostClosed(t *testing.T) {
	host := newTestHost(t, `function f() return 1 end`)
	host.Close()

	if _, err := host.call("f"); !errors.Is(err, ErrHostClosed) {
		t.Errorf("call on closed host: %v, want ErrHostClosed", err)
	}
	if err := host.Reload(); !errors.Is(err, ErrHostClosed) {
		t.Errorf("reload on closed host: %v, want ErrHostClosed", err)
	}
	host.Close() // idempotent
}

func TestWatchScriptReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, `function version() return 1 end`)
	host, err := NewHost(path, shell.NullLogger)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	defer host.Close()

	r, err := WatchScript(host, nil, shell.NullLogger)
	if err != nil {
		t.Fatalf("WatchScript: %v", err)
	}
	defer r.Close()

	writeScript(t, dir, `function version() return 2 end`)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		v, err := host.call("version")
		if err == nil && lua.LVAsNumber(v) == 2 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("script was not reloaded after file change")
}

func TestWatchScriptIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeScript(t, dir, `function version() return 1 end`)
	host, err := NewHost(path, shell.NullLogger)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	defer host.Close()

	r, err := WatchScript(host, nil, shell.NullLogger)
	if err != nil {
		t.Fatalf("WatchScript: %v", err)
	}
	defer r.Close()

	other := filepath.Join(dir, "other.lua")
	if err := os.WriteFile(other, []byte(`function version() return 9 end`), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	v, err := host.call("version")
	if err != nil || lua.LVAsNumber(v) != 1 {
		t.Fatalf("version = %v (%v), want untouched 1", v, err)
	}
}
