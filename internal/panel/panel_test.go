package panel

import "testing"

func TestParseIDCaseInsensitive(t *testing.T) {
	id, err := ParseID("  settings ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != Settings {
		t.Fatalf("expected Settings, got %v", id)
	}
	if _, err := ParseID("Properties"); err == nil {
		t.Fatalf("expected error for unknown panel")
	}
}

func TestRegistryContentIsStable(t *testing.T) {
	reg := NewRegistry()
	first := reg.ContentOf(Scene)
	if first == nil {
		t.Fatalf("expected content for Scene")
	}
	first.Touch("moved camera")
	second := reg.ContentOf(Scene)
	if first != second {
		t.Fatalf("expected the same content handle on every lookup")
	}
	if second.Revision != 1 || len(second.Notes) != 1 {
		t.Fatalf("expected touched state to persist, got %#v", second)
	}
	if reg.ContentOf(ID(99)) != nil {
		t.Fatalf("expected nil content for unknown id")
	}
}

func TestRegistryPermanentOption(t *testing.T) {
	reg := NewRegistry(WithPermanent(Scene))
	if !reg.ContentOf(Scene).Permanent {
		t.Fatalf("expected Scene to be permanent")
	}
	if reg.ContentOf(Stats).Permanent {
		t.Fatalf("expected Stats to stay closable")
	}
	if got := len(reg.IDs()); got != len(All()) {
		t.Fatalf("expected %d ids, got %d", len(All()), got)
	}
}
