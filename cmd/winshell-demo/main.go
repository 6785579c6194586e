// Package main is the entry point for the winshell demo shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/winshell/backend"
	"github.com/dshills/winshell/backend/headless"
	"github.com/dshills/winshell/backend/terminal"
	"github.com/dshills/winshell/config"
	"github.com/dshills/winshell/geom"
	"github.com/dshills/winshell/key"
	"github.com/dshills/winshell/script"
	"github.com/dshills/winshell/shell"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	backendName string
	logLevel    string
	scriptPath  string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	// Flags override the config file.
	if opts.backendName != "" {
		cfg.Backend = opts.backendName
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.scriptPath != "" {
		cfg.Script.Path = opts.scriptPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		return 1
	}

	log := shell.NewLogger(shell.LoggerConfig{
		Level:  shell.ParseLogLevel(cfg.Log.Level),
		Prefix: "winshell",
	})

	be, err := newBackend(cfg.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create backend: %v\n", err)
		return 1
	}

	application := shell.New(be, cfg.ShellOptions(log))

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Quit()
	}()

	var host *script.Host
	var handler shell.WinHandler
	if cfg.Script.Path != "" {
		host, err = script.NewHost(cfg.Script.Path, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load script: %v\n", err)
			return 1
		}
		defer host.Close()
		handler = script.NewHandler(host)
	} else {
		handler = &echoHandler{log: log}
	}

	handle, err := application.NewWindowBuilder().
		SetHandler(handler).
		SetTitle(cfg.Window.Title).
		SetSize(geom.Sz(cfg.Window.Width, cfg.Window.Height)).
		SetResizable(cfg.Window.Resizable).
		SetTitlebar(cfg.Window.Titlebar).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create window: %v\n", err)
		return 1
	}
	handle.Show()

	if host != nil && cfg.Script.LiveReload {
		idle := handle.IdleHandle()
		reloader, err := script.WatchScript(host, idle.AddIdleCallback, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch script: %v\n", err)
			return 1
		}
		defer reloader.Close()
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newBackend(name string) (backend.Backend, error) {
	switch name {
	case "terminal":
		return terminal.New()
	case "headless":
		return headless.New(geom.Identity), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

// echoHandler is the built-in handler used when no script is given.
// It logs events and closes on Escape.
type echoHandler struct {
	shell.HandlerBase

	log    *shell.Logger
	handle *shell.WindowHandle
}

func (h *echoHandler) Connect(handle *shell.WindowHandle) {
	h.handle = handle
	h.log.Info("window %d connected", handle.ID())
}

func (h *echoHandler) Size(size geom.Size) {
	h.log.Debug("resized to %.0fx%.0f", size.Width, size.Height)
}

func (h *echoHandler) KeyDown(ev key.Event) bool {
	h.log.Info("key down: %s", ev)
	if ev.Key == key.Escape {
		h.handle.Close()
		return true
	}
	return false
}

func (h *echoHandler) RequestClose() {
	h.handle.Close()
}

func (h *echoHandler) Destroy() {
	h.log.Info("window destroyed")
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.backendName, "backend", "", "Backend to use (terminal, headless)")
	flag.StringVar(&opts.backendName, "b", "", "Backend to use (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua handler script")
	flag.StringVar(&opts.scriptPath, "s", "", "Lua handler script (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "winshell-demo - windowing shell demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: winshell-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  winshell-demo                     Run with the built-in handler\n")
		fmt.Fprintf(os.Stderr, "  winshell-demo -s handler.lua      Run a Lua handler\n")
		fmt.Fprintf(os.Stderr, "  winshell-demo -c winshell.toml    Run with a config file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("winshell-demo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		switch opts.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
			os.Exit(1)
		}
	}

	return opts
}
