package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/paneldock/internal/app"
	"github.com/atomicstack/paneldock/internal/config"
	"github.com/atomicstack/paneldock/internal/logging"
	"github.com/atomicstack/paneldock/internal/logging/events"
	"github.com/atomicstack/paneldock/internal/window"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
	if err := logging.SetLevel(runtimeCfg.Logging.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	tty := probeTerminal()
	runtimeCfg.App.Workspace.Screen = screenFor(runtimeCfg.App, tty)
	events.App.Start(startupTracePayload(runtimeCfg, tty))

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// screenFor picks the size floating defaults must fit in. Explicit
// --width/--height win over whatever the terminal reports.
func screenFor(cfg app.Config, info terminalInfo) window.Rect {
	screen := window.Rect{W: cfg.Width, H: cfg.Height}
	if info.Size != nil {
		if screen.W <= 0 {
			screen.W = info.Size.Width
		}
		if screen.H <= 0 {
			screen.H = info.Size.Height
		}
	}
	return screen
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, info terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+3)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	flags["logLevel"] = cfg.Logging.Level
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"layout":   cfg.App.Workspace.Layout,
		"screen":   cfg.App.Workspace.Screen.String(),
		"terminal": info,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalInfo struct {
	Size   *terminalSize   `json:"size,omitempty"`
	Probes []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name  string `json:"name"`
	TTY   bool   `json:"tty"`
	Error string `json:"error,omitempty"`
}

// probeTerminal checks stdout, stderr and stdin in that order. The first
// descriptor that reports a size decides the screen.
func probeTerminal() terminalInfo {
	descriptors := []struct {
		name string
		file *os.File
	}{
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
		{"stdin", os.Stdin},
	}
	var info terminalInfo
	for _, d := range descriptors {
		probe := terminalProbe{Name: d.name}
		fd := int(d.file.Fd())
		if term.IsTerminal(fd) {
			probe.TTY = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				probe.Error = err.Error()
			case info.Size == nil:
				info.Size = &terminalSize{Source: d.name, Width: width, Height: height}
			}
		}
		info.Probes = append(info.Probes, probe)
	}
	return info
}
