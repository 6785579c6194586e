// Package config loads shell configuration from TOML files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/winshell/shell"
)

// Config is the application configuration.
type Config struct {
	// Backend selects the display backend: "terminal" or "headless".
	Backend string `toml:"backend"`

	Log    LogConfig    `toml:"log"`
	Loop   LoopConfig   `toml:"loop"`
	Window WindowConfig `toml:"window"`
	Script ScriptConfig `toml:"script"`
}

// LogConfig configures shell logging.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string `toml:"level"`
}

// LoopConfig configures the run loop.
type LoopConfig struct {
	// QuitOnLastClose stops the loop when the last window closes.
	QuitOnLastClose bool `toml:"quit_on_last_close"`

	// IdleQueueSize bounds queued idle work items.
	IdleQueueSize int `toml:"idle_queue_size"`

	// DoubleClickTimeMS is the click sequence window in milliseconds.
	DoubleClickTimeMS int `toml:"double_click_time_ms"`

	// DoubleClickDistance is the click sequence distance in points.
	DoubleClickDistance float64 `toml:"double_click_distance"`
}

// WindowConfig sets defaults for the initial window.
type WindowConfig struct {
	Title     string  `toml:"title"`
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Resizable bool    `toml:"resizable"`
	Titlebar  bool    `toml:"titlebar"`
}

// ScriptConfig configures the Lua handler host.
type ScriptConfig struct {
	// Path is the handler script. Empty disables scripting.
	Path string `toml:"path"`

	// LiveReload reloads the script when the file changes on disk.
	LiveReload bool `toml:"live_reload"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Backend: "terminal",
		Log: LogConfig{
			Level: "info",
		},
		Loop: LoopConfig{
			QuitOnLastClose:     true,
			IdleQueueSize:       128,
			DoubleClickTimeMS:   400,
			DoubleClickDistance: 4,
		},
		Window: WindowConfig{
			Title:     "winshell",
			Width:     800,
			Height:    600,
			Resizable: true,
			Titlebar:  true,
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is
// not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse reads a TOML config from raw bytes over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: "<data>", Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	switch c.Backend {
	case "terminal", "headless":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Loop.IdleQueueSize <= 0 {
		return fmt.Errorf("idle_queue_size must be positive, got %d", c.Loop.IdleQueueSize)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %gx%g", c.Window.Width, c.Window.Height)
	}
	return nil
}

// ShellOptions converts the loop section into run loop options.
func (c Config) ShellOptions(log *shell.Logger) shell.Options {
	return shell.Options{
		QuitOnLastClose:     c.Loop.QuitOnLastClose,
		Logger:              log,
		IdleQueueSize:       c.Loop.IdleQueueSize,
		DoubleClickTime:     time.Duration(c.Loop.DoubleClickTimeMS) * time.Millisecond,
		DoubleClickDistance: c.Loop.DoubleClickDistance,
	}
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
