package shell

import "time"

// Options configures the application run loop.
type Options struct {
	// QuitOnLastClose stops the run loop once the last window is
	// destroyed.
	QuitOnLastClose bool

	// Logger receives the shell's diagnostics. Defaults to a stderr
	// logger at info level.
	Logger *Logger

	// IdleQueueSize bounds the number of idle work items waiting for
	// the loop. Producers block once the queue is full.
	IdleQueueSize int

	// DoubleClickTime and DoubleClickDistance tune click sequence
	// detection for backends that do not report click counts.
	DoubleClickTime     time.Duration
	DoubleClickDistance float64
}

// DefaultOptions returns the default run loop configuration.
func DefaultOptions() Options {
	return Options{
		QuitOnLastClose:     true,
		IdleQueueSize:       128,
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 4,
	}
}
