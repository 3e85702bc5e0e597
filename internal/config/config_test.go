package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/tiles"
	"github.com/atomicstack/paneldock/internal/window"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ws := cfg.App.Workspace
	if ws.Layout != "default" || ws.Order != tiles.Preorder || ws.CollapseSingle {
		t.Fatalf("unexpected workspace defaults %#v", ws)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Trace {
		t.Fatalf("unexpected logging defaults %#v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"PANELDOCK_LAYOUT=empty",
		"PANELDOCK_TARGET_ORDER=breadth-first",
		"PANELDOCK_WIDTH=100",
		"PANELDOCK_TRACE=true",
		"PANELDOCK_PERMANENT=scene",
	}
	cfg, err := LoadArgs([]string{"--width", "80", "--layout", "default", "--footer"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag width 80, got %d", cfg.App.Width)
	}
	if cfg.App.Workspace.Layout != "default" {
		t.Fatalf("expected flag layout, got %q", cfg.App.Workspace.Layout)
	}
	if cfg.App.Workspace.Order != tiles.BreadthFirst {
		t.Fatalf("expected env traversal order, got %s", cfg.App.Workspace.Order)
	}
	if !cfg.Logging.Trace || !cfg.App.ShowFooter {
		t.Fatalf("expected trace and footer enabled")
	}
	if !reflect.DeepEqual(cfg.App.Workspace.Permanent, []panel.ID{panel.Scene}) {
		t.Fatalf("expected Scene permanent, got %v", cfg.App.Workspace.Permanent)
	}
	if cfg.Flags["width"] != "80" || cfg.Flags["targetOrder"] != "breadth-first" {
		t.Fatalf("unexpected flags map %#v", cfg.Flags)
	}
}

func TestLoadArgsRejectsBadValues(t *testing.T) {
	cases := [][]string{
		{"--width", "-1"},
		{"--height", "-5"},
		{"--target-order", "random"},
		{"--permanent", "Properties"},
		{"--unknown"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestLoadArgsReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paneldock.yaml")
	data := []byte(`layout: empty
target_order: breadth-first
collapse_single: true
permanent: [Scene, stats]
geometry:
  Settings: {x: 70, y: 3, w: 28, h: 10}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadArgs([]string{"--config", path, "--target-order", "preorder"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ws := cfg.App.Workspace
	if ws.Layout != "empty" || !ws.CollapseSingle {
		t.Fatalf("expected file layout and collapse, got %#v", ws)
	}
	if ws.Order != tiles.Preorder {
		t.Fatalf("expected flag to win over file order, got %s", ws.Order)
	}
	if !reflect.DeepEqual(ws.Permanent, []panel.ID{panel.Scene, panel.Stats}) {
		t.Fatalf("expected permanent from file, got %v", ws.Permanent)
	}
	want := window.Rect{X: 70, Y: 3, W: 28, H: 10}
	if ws.Geometry[panel.Settings] != want {
		t.Fatalf("expected Settings geometry %v, got %v", want, ws.Geometry[panel.Settings])
	}
}

func TestLoadArgsFileErrors(t *testing.T) {
	if _, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	_ = os.WriteFile(path, []byte("geometry:\n  Properties: {x: 1, y: 1, w: 1, h: 1}\n"), 0o644)
	if _, err := LoadArgs([]string{"--config", path}, nil); err == nil {
		t.Fatalf("expected error for unknown panel in geometry")
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadArgs(nil, nil)
	cfg.App.Workspace.Layout = "grid"
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected unknown layout error")
	}
	cfg.App.Workspace.Layout = "empty"
	cfg.App.Workspace.Geometry = map[panel.ID]window.Rect{panel.Stats: {X: 1, Y: 1}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected zero-size geometry error")
	}
}
