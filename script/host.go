// Package script hosts window handlers written in Lua. A script
// defines global callback functions (on_key_down, on_timer, ...) and
// the host bridges shell events into them.
package script

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/winshell/shell"
)

// Sentinel errors for the script host.
var (
	// ErrHostClosed is returned when operations run on a closed host.
	ErrHostClosed = errors.New("script host is closed")
)

// ScriptError wraps a failure inside a handler script.
type ScriptError struct {
	// Path is the script file.
	Path string

	// Fn is the callback that failed, or "load" for load failures.
	Fn string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %s: %v", e.Path, e.Fn, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Host owns the Lua state of one handler script.
//
// gopher-lua states are not goroutine safe; all calls into a host must
// come from the run loop goroutine. The mutex only guards the
// closed flag and reloads.
type Host struct {
	mu      sync.Mutex
	id      string
	path    string
	log     *shell.Logger
	state   *lua.LState
	modules map[string]map[string]lua.LGFunction
	closed  bool
}

// NewHost loads a handler script. Each host carries a unique instance
// id that scripts can read through the host_id global.
func NewHost(path string, log *shell.Logger) (*Host, error) {
	if log == nil {
		log = shell.NullLogger
	}
	h := &Host{
		id:      uuid.New().String(),
		path:    path,
		log:     log.WithField("script", path),
		modules: make(map[string]map[string]lua.LGFunction),
	}
	if err := h.load(); err != nil {
		return nil, err
	}
	h.log.Info("script host %s loaded", h.id)
	return h, nil
}

// ID returns the host's unique instance id.
func (h *Host) ID() string { return h.id }

// Path returns the script file path.
func (h *Host) Path() string { return h.path }

// load builds a fresh state and runs the script.
func (h *Host) load() error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	L.SetGlobal("host_id", lua.LString(h.id))
	for name, funcs := range h.modules {
		L.SetGlobal(name, L.SetFuncs(L.NewTable(), funcs))
	}

	if err := L.DoFile(h.path); err != nil {
		L.Close()
		return &ScriptError{Path: h.path, Fn: "load", Err: err}
	}

	if h.state != nil {
		h.state.Close()
	}
	h.state = L
	return nil
}

// openSafeLibraries opens only safe Lua standard libraries. io, os,
// debug, and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// Reload discards the state and re-runs the script. A load failure
// keeps the previous state running.
func (h *Host) Reload() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHostClosed
	}
	if err := h.load(); err != nil {
		h.log.Error("reload failed: %v", err)
		return err
	}
	h.log.Info("script reloaded")
	return nil
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	if h.state != nil {
		h.state.Close()
	}
}

// register installs a module of Go functions under the given global.
// Modules survive reloads.
func (h *Host) register(name string, funcs map[string]lua.LGFunction) {
	h.mu.Lock()
	h.modules[name] = funcs
	mod := h.state.SetFuncs(h.state.NewTable(), funcs)
	h.state.SetGlobal(name, mod)
	h.mu.Unlock()
}

// hasCallback reports whether the script defines a global function.
func (h *Host) hasCallback(fn string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	return h.state.GetGlobal(fn).Type() == lua.LTFunction
}

// call invokes a global script function if the script defines it.
// Missing callbacks are not an error. Returns the first result.
func (h *Host) call(fn string, args ...lua.LValue) (lua.LValue, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return lua.LNil, ErrHostClosed
	}
	L := h.state

	fnVal := L.GetGlobal(fn)
	if fnVal.Type() != lua.LTFunction {
		return lua.LNil, nil
	}

	top := L.GetTop()
	L.Push(fnVal)
	for _, arg := range args {
		L.Push(arg)
	}
	if err := L.PCall(len(args), 1, nil); err != nil {
		L.SetTop(top)
		h.log.Error("callback %s failed: %v", fn, err)
		return lua.LNil, &ScriptError{Path: h.path, Fn: fn, Err: err}
	}

	ret := L.Get(-1)
	L.SetTop(top)
	return ret, nil
}
