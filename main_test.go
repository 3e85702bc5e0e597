package main

import (
	"testing"

	"github.com/atomicstack/paneldock/internal/app"
	"github.com/atomicstack/paneldock/internal/config"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/tiles"
	"github.com/atomicstack/paneldock/internal/window"
	"github.com/atomicstack/paneldock/internal/workspace"
)

func TestProbeTerminalChecksStandardDescriptors(t *testing.T) {
	info := probeTerminal()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdout", "stderr", "stdin"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
	if info.Size != nil && !info.Probes[0].TTY && !info.Probes[1].TTY && !info.Probes[2].TTY {
		t.Fatalf("expected a size only from a terminal, got %+v", info)
	}
}

func TestScreenForPrefersExplicitSize(t *testing.T) {
	detected := terminalInfo{Size: &terminalSize{Source: "stdout", Width: 200, Height: 50}}
	cases := []struct {
		name string
		cfg  app.Config
		info terminalInfo
		want window.Rect
	}{
		{"detected", app.Config{}, detected, window.Rect{W: 200, H: 50}},
		{"explicit width", app.Config{Width: 90}, detected, window.Rect{W: 90, H: 50}},
		{"explicit both", app.Config{Width: 90, Height: 30}, detected, window.Rect{W: 90, H: 30}},
		{"no terminal", app.Config{}, terminalInfo{}, window.Rect{}},
	}
	for _, tc := range cases {
		if got := screenFor(tc.cfg, tc.info); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Verbose:    true,
			Workspace: workspace.Config{
				Layout:    workspace.LayoutEmpty,
				Order:     tiles.BreadthFirst,
				Permanent: []panel.ID{panel.Scene},
				Screen:    window.Rect{W: 80, H: 24},
			},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Level:    "info",
			Trace:    true,
		},
		Flags: map[string]string{
			"layout":      "empty",
			"targetOrder": "breadth-first",
			"width":       "80",
			"footer":      "true",
		},
		Args: []string{"--layout", "empty"},
	}

	payload := startupTracePayload(cfg, terminalInfo{})

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	for k, want := range map[string]interface{}{
		"layout":      "empty",
		"targetOrder": "breadth-first",
		"width":       "80",
		"footer":      "true",
		"trace":       true,
		"logFile":     "trace.log",
		"logLevel":    "info",
	} {
		if flagsValue[k] != want {
			t.Fatalf("expected flag %s=%v, got %v", k, want, flagsValue[k])
		}
	}
	if payload["layout"] != workspace.LayoutEmpty {
		t.Fatalf("expected layout %q, got %v", workspace.LayoutEmpty, payload["layout"])
	}
	if payload["screen"] != "80x24@0,0" {
		t.Fatalf("expected screen 80x24@0,0, got %v", payload["screen"])
	}
	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal details in payload")
	}
}
