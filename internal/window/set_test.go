package window

import (
	"errors"
	"reflect"
	"testing"

	"github.com/atomicstack/paneldock/internal/panel"
)

func TestOpenCloseRoundTrip(t *testing.T) {
	s := NewSet()
	rect := Rect{X: 4, Y: 2, W: 30, H: 10}
	if err := s.Open(panel.Scene, rect); err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	if !s.IsOpen(panel.Scene) {
		t.Fatalf("expected Scene to be open")
	}
	if err := s.Open(panel.Scene, rect); !errors.Is(err, ErrAlreadyOpen) {
		t.Fatalf("expected ErrAlreadyOpen, got %v", err)
	}
	got, err := s.Close(panel.Scene)
	if err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if got != rect {
		t.Fatalf("expected %v, got %v", rect, got)
	}
	if _, err := s.Close(panel.Scene); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
}

func TestOpenRejectsEmptyGeometry(t *testing.T) {
	s := NewSet()
	if err := s.Open(panel.Stats, Rect{}); !errors.Is(err, ErrBadGeometry) {
		t.Fatalf("expected ErrBadGeometry, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected no windows, got %d", s.Len())
	}
}

func TestMoveResizeClampAndTrack(t *testing.T) {
	s := NewSet()
	_ = s.Open(panel.Stats, Rect{X: 1, Y: 1, W: 5, H: 5})
	if !s.Move(panel.Stats, -3, 2) {
		t.Fatalf("expected move to succeed")
	}
	if !s.Resize(panel.Stats, -10, 1) {
		t.Fatalf("expected resize to succeed")
	}
	got, _ := s.Geometry(panel.Stats)
	want := Rect{X: 0, Y: 3, W: 1, H: 6}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if s.Move(panel.Scene, 1, 1) {
		t.Fatalf("expected move of closed window to fail")
	}
}

func TestRaiseReordersStack(t *testing.T) {
	s := NewSet()
	_ = s.Open(panel.Scene, Rect{W: 1, H: 1})
	_ = s.Open(panel.Stats, Rect{W: 1, H: 1})
	_ = s.Open(panel.Dataset, Rect{W: 1, H: 1})
	s.Raise(panel.Scene)
	want := []panel.ID{panel.Stats, panel.Dataset, panel.Scene}
	if got := s.Stack(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	_, _ = s.Close(panel.Dataset)
	want = []panel.ID{panel.Stats, panel.Scene}
	if got := s.Stack(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
