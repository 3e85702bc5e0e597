package panel

import (
	"fmt"
	"strings"
)

// ID identifies one of the fixed panels known to the application.
type ID int

const (
	Scene ID = iota + 1
	Settings
	Presets
	Stats
	Dataset
)

var names = map[ID]string{
	Scene:    "Scene",
	Settings: "Settings",
	Presets:  "Presets",
	Stats:    "Stats",
	Dataset:  "Dataset",
}

// All returns every panel identity in canonical order.
func All() []ID {
	return []ID{Scene, Settings, Presets, Stats, Dataset}
}

// Valid reports whether id is one of the known panels.
func (id ID) Valid() bool {
	_, ok := names[id]
	return ok
}

func (id ID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("panel(%d)", int(id))
}

// ParseID resolves a configuration name to a panel identity. Matching is
// case-insensitive; only used at the configuration boundary.
func ParseID(name string) (ID, error) {
	trimmed := strings.TrimSpace(name)
	for _, id := range All() {
		if strings.EqualFold(names[id], trimmed) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown panel %q", name)
}

// Content is the per-panel state owned by the registry. It is handed out by
// pointer and never copied when the panel changes placement.
type Content struct {
	ID        ID
	Title     string
	Permanent bool

	Revision int
	Notes    []string
}

// Touch bumps the revision counter and records a note.
func (c *Content) Touch(note string) {
	if c == nil {
		return
	}
	c.Revision++
	if note = strings.TrimSpace(note); note != "" {
		c.Notes = append(c.Notes, note)
	}
}

// Summary renders a short description of the content state.
func (c *Content) Summary() string {
	if c == nil {
		return ""
	}
	if len(c.Notes) == 0 {
		return fmt.Sprintf("%s rev %d", c.Title, c.Revision)
	}
	return fmt.Sprintf("%s rev %d (%s)", c.Title, c.Revision, c.Notes[len(c.Notes)-1])
}
