package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/paneldock/internal/frame"
	"github.com/atomicstack/paneldock/internal/ui"
	"github.com/atomicstack/paneldock/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is how often the workspace is driven without input.
const FrameInterval = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Workspace  workspace.Config
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ws, err := workspace.New(cfg.Workspace)
	if err != nil {
		return fmt.Errorf("build workspace: %w", err)
	}
	clock := frame.NewClock(FrameInterval)
	defer clock.Stop()
	model := ui.NewModel(ws, clock, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
