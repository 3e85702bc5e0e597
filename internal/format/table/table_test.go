package table

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"Scene", "docked", "3"},
		{"Settings", "floating", "12"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"Scene     docked     3",
		"Settings  floating  12",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatIgnoresStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("Stats")
	got := Format([][]string{{styled, "a"}, {"Dataset", "b"}}, nil)
	if len(got) != 2 {
		t.Fatalf("expected two rows, got %d", len(got))
	}
	if got[1] != "Dataset  b" {
		t.Fatalf("unexpected plain row %q", got[1])
	}
	if want := styled + "    a"; got[0] != want {
		t.Fatalf("expected styled cell padded by width, got %q", got[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
