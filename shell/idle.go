package shell

import "github.com/dshills/winshell/backend"

// idleMsg is a queued idle work item for one window. Either fn or
// token is set, never both.
type idleMsg struct {
	window backend.WindowID
	token  IdleToken
	fn     func()
}

// IdleHandle schedules work on the run loop goroutine. Unlike
// WindowHandle it may be used from any goroutine, and it stays safe to
// use after the window closes; late work is silently discarded. Copies
// of a handle share the same queue.
type IdleHandle struct {
	window backend.WindowID
	posts  chan<- idleMsg
	quit   <-chan struct{}
}

// AddIdleCallback queues fn to run on the loop goroutine. Callbacks
// and idle tokens for the same window run in the order they were
// queued.
func (h IdleHandle) AddIdleCallback(fn func()) {
	if fn == nil {
		return
	}
	h.post(idleMsg{window: h.window, fn: fn})
}

// ScheduleIdle queues an Idle callback on the window's handler,
// carrying the given token.
func (h IdleHandle) ScheduleIdle(token IdleToken) {
	h.post(idleMsg{window: h.window, token: token})
}

// post delivers the message unless the loop has shut down. It blocks
// while the idle queue is full so ordering is preserved.
func (h IdleHandle) post(msg idleMsg) {
	select {
	case h.posts <- msg:
	case <-h.quit:
	}
}
