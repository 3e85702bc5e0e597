package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/paneldock/internal/dock"
	"github.com/atomicstack/paneldock/internal/frame"
	"github.com/atomicstack/paneldock/internal/menu"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/theme"
	"github.com/atomicstack/paneldock/internal/ui/command"
	uistate "github.com/atomicstack/paneldock/internal/ui/state"
	"github.com/atomicstack/paneldock/internal/workspace"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

type Mode int

const (
	ModeBoard Mode = iota
	ModePalette
)

func (m Mode) String() string {
	if m == ModePalette {
		return "palette"
	}
	return "board"
}

const (
	paletteHeaderSeparator = "→"
	paletteRootTitle       = "palette"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item, node *menu.Node) *level {
	return uistate.NewLevel(id, title, items, node)
}

// Options carries display settings for the model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Model implements the Bubble Tea model for the panel workspace.
type Model struct {
	ws    *workspace.Workspace
	clock *frame.Clock
	focus panel.ID
	mode  Mode

	keys     keyMap
	help     help.Model
	showHelp bool

	stack        []*level
	paletteCtx   menu.Context
	pendingPanel panel.ID
	loading      bool
	pendingID    string
	pendingLabel string

	filterCursor      cursor.Model
	filterCursorDirty bool
	cursorFocused     bool

	lastDiags  []dock.Diagnostic
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	handlers map[reflect.Type]msgHandler
	registry *menu.Registry
	bus      *command.Bus
}

// NewModel wires the model to a workspace. clock may be nil, in which case
// the workspace is only driven in response to messages.
func NewModel(ws *workspace.Workspace, clock *frame.Clock, opts Options) *Model {
	m := &Model{
		ws:         ws,
		clock:      clock,
		focus:      panel.All()[0],
		mode:       ModeBoard,
		keys:       defaultKeyMap(),
		help:       help.New(),
		registry:   menu.BuildRegistry(),
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.clock != nil {
		cmds = append(cmds, waitForTick(m.clock))
	}
	m.cursorFocused = true
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages. Every update ends one frame: the
// queued requests are drained before the view is rendered.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if m.mode == ModePalette {
		if cmd := m.updateFilterCursorModel(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(categoryLoadedMsg{}): m.handleCategoryLoadedMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(menu.TargetPrompt{}): m.handleTargetPromptMsg,
		reflect.TypeOf(frameTickMsg{}):      m.handleFrameTickMsg,
		reflect.TypeOf(frameDoneMsg{}):      m.handleFrameDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.ws != nil {
		m.noteDiagnostics(m.ws.Drive())
	}
	if m.filterCursorDirty && m.cursorFocused {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Focus returns the panel keyboard commands apply to.
func (m *Model) Focus() panel.ID {
	return m.focus
}

// Mode reports whether the board or the palette has the keyboard.
func (m *Model) Mode() Mode {
	return m.mode
}

// Diagnostics returns what the most recent frame reported.
func (m *Model) Diagnostics() []dock.Diagnostic {
	return m.lastDiags
}
