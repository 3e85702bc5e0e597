package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "paneldock.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
		_ = SetLevel("warn")
	})
	return path
}

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	Trace("ignored", nil)
	SetTraceEnabled(true)
	Trace("placement.undock", map[string]interface{}{"panel": "Scene"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 trace line, got %d: %q", len(lines), data)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry.Event != "placement.undock" || entry.Payload["panel"] != "Scene" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestErrorRespectsLevel(t *testing.T) {
	path := useTempLog(t)
	Info("startup", "layout", "default")
	Error(errors.New("boom"))
	Error(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "startup") {
		t.Fatalf("expected info to be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Fatalf("expected error in log, got %q", out)
	}

	if err := SetLevel("info"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	Info("startup", "layout", "default")
	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), "layout=default") {
		t.Fatalf("expected info line with key/value, got %q", data)
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if err := SetLevel(""); err != nil {
		t.Fatalf("expected empty level to be ignored, got %v", err)
	}
}

func TestLoggerIsReusedAcrossWrites(t *testing.T) {
	path := useTempLog(t)
	Error(errors.New("first"))
	mu.Lock()
	built := logger
	mu.Unlock()
	if built == nil {
		t.Fatalf("expected logger after first write")
	}
	Warn("second", "panel", "Stats")
	if err := SetLevel("debug"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	Info("third")
	mu.Lock()
	same := logger == built
	mu.Unlock()
	if !same {
		t.Fatalf("expected one logger for every write")
	}
	data, _ := os.ReadFile(path)
	for _, want := range []string{"first", "second", "panel=Stats", "third"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected %q in log, got %q", want, data)
		}
	}
}

func TestConfigureMovesToNewFile(t *testing.T) {
	first := useTempLog(t)
	Error(errors.New("before"))
	second := filepath.Join(t.TempDir(), "other.log")
	Configure(second)
	Error(errors.New("after"))

	old, _ := os.ReadFile(first)
	if strings.Contains(string(old), "after") {
		t.Fatalf("expected the old file to stop receiving lines, got %q", old)
	}
	data, err := os.ReadFile(second)
	if err != nil || !strings.Contains(string(data), "after") {
		t.Fatalf("expected the new file to receive lines, got %q (%v)", data, err)
	}
}
