package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/paneldock/internal/dock"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/state"
	"github.com/atomicstack/paneldock/internal/tiles"
	"github.com/atomicstack/paneldock/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a selectable palette entry.
type Item struct {
	ID    string
	Label string
}

// Group is a tab group offered as an explicit docking target.
type Group struct {
	Ref   tiles.Ref
	Label string
}

// Context is a snapshot of the workspace taken when the palette loads. Leaf
// references in it may be stale by the time an action runs; the engine
// reports those instead of acting on them.
type Context struct {
	Entries   []state.Entry
	Groups    []Group
	Active    map[panel.ID]bool
	Permanent map[panel.ID]bool
	Pending   panel.ID
}

// Loader populates a palette level on demand.
type Loader func(Context) ([]Item, error)

type Action func(Context, Item) tea.Cmd

// ActionResult carries the requests an action wants submitted. The model
// owns the queue; actions never touch the workspace directly.
type ActionResult struct {
	Requests []dock.Request
	Info     string
	Err      error
}

// TargetPrompt asks the model to list tab groups for an explicit dock.
type TargetPrompt struct {
	Context Context
	Panel   panel.ID
}

// Snapshot captures the palette context from a workspace.
func Snapshot(ws *workspace.Workspace) Context {
	ctx := Context{
		Active:    map[panel.ID]bool{},
		Permanent: map[panel.ID]bool{},
	}
	if ws == nil {
		return ctx
	}
	ctx.Entries = ws.Ledger.Entries()
	for _, entry := range ctx.Entries {
		if c := ws.Registry.ContentOf(entry.Panel); c != nil && c.Permanent {
			ctx.Permanent[entry.Panel] = true
		}
		if d, ok := entry.Placement.(state.Docked); ok {
			if parent, ok := ws.Tree.ParentOf(d.Leaf); ok && ws.Tree.Active(parent) == d.Leaf {
				ctx.Active[entry.Panel] = true
			}
		}
	}
	for _, ref := range ws.Tree.Containers(tiles.KindTabs, ws.Order) {
		ctx.Groups = append(ctx.Groups, Group{Ref: ref, Label: groupLabel(ws.Tree, ref)})
	}
	return ctx
}

func groupLabel(tree *tiles.Tree, ref tiles.Ref) string {
	var titles []string
	for _, child := range tree.Children(ref) {
		if c := tree.Content(child); c != nil {
			titles = append(titles, c.Title)
		}
	}
	if len(titles) == 0 {
		return ref.String() + " (empty)"
	}
	return ref.String() + " " + strings.Join(titles, ", ")
}

// RootItems returns the top-level palette entries.
func RootItems() []Item {
	return menuItemsFromIDs([]string{"undock", "dock", "dock-to", "close", "reopen", "activate"})
}

// CategoryLoaders lists panel loaders keyed by root item ID.
func CategoryLoaders() map[string]Loader {
	return map[string]Loader{
		"undock":   loadUndockMenu,
		"dock":     loadDockMenu,
		"dock-to":  loadDockMenu,
		"close":    loadCloseMenu,
		"reopen":   loadReopenMenu,
		"activate": loadActivateMenu,
	}
}

// ActionHandlers maps palette levels to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		"undock":         UndockAction,
		"dock":           DockAction,
		"dock-to":        DockToAction,
		"dock-to:target": DockToTargetAction,
		"close":          CloseAction,
		"reopen":         ReopenAction,
		"activate":       ActivateAction,
	}
}

func loadUndockMenu(ctx Context) ([]Item, error) {
	return panelItems(ctx, func(e state.Entry) bool {
		_, docked := e.Placement.(state.Docked)
		return docked && !ctx.Permanent[e.Panel]
	}), nil
}

func loadDockMenu(ctx Context) ([]Item, error) {
	return panelItems(ctx, func(e state.Entry) bool {
		_, docked := e.Placement.(state.Docked)
		return !docked
	}), nil
}

func loadCloseMenu(ctx Context) ([]Item, error) {
	return panelItems(ctx, func(e state.Entry) bool {
		_, closed := e.Placement.(state.Closed)
		return !closed && !ctx.Permanent[e.Panel]
	}), nil
}

func loadReopenMenu(ctx Context) ([]Item, error) {
	return panelItems(ctx, func(e state.Entry) bool {
		_, closed := e.Placement.(state.Closed)
		return closed
	}), nil
}

func loadActivateMenu(ctx Context) ([]Item, error) {
	return panelItems(ctx, func(e state.Entry) bool {
		_, docked := e.Placement.(state.Docked)
		return docked && !ctx.Active[e.Panel]
	}), nil
}

// GroupItems lists the tab groups in the snapshot.
func GroupItems(ctx Context) []Item {
	items := make([]Item, 0, len(ctx.Groups))
	for _, g := range ctx.Groups {
		items = append(items, Item{ID: strconv.FormatUint(uint64(g.Ref), 10), Label: g.Label})
	}
	return items
}

func panelItems(ctx Context, keep func(state.Entry) bool) []Item {
	items := make([]Item, 0, len(ctx.Entries))
	for _, entry := range ctx.Entries {
		if !keep(entry) {
			continue
		}
		items = append(items, Item{
			ID:    entry.Panel.String(),
			Label: fmt.Sprintf("%-9s %s", entry.Panel, entry.Placement),
		})
	}
	return items
}

func UndockAction(ctx Context, item Item) tea.Cmd {
	return panelAction(ctx, item, "Undocking", func(id panel.ID, p state.Placement) dock.Request {
		return dock.Undock(id, leafOf(p))
	})
}

func DockAction(ctx Context, item Item) tea.Cmd {
	return panelAction(ctx, item, "Docking", func(id panel.ID, _ state.Placement) dock.Request {
		return dock.Dock(id)
	})
}

func CloseAction(ctx Context, item Item) tea.Cmd {
	return panelAction(ctx, item, "Closing", func(id panel.ID, p state.Placement) dock.Request {
		return dock.Close(id, leafOf(p))
	})
}

func ReopenAction(ctx Context, item Item) tea.Cmd {
	return panelAction(ctx, item, "Reopening", func(id panel.ID, _ state.Placement) dock.Request {
		return dock.Reopen(id)
	})
}

func ActivateAction(ctx Context, item Item) tea.Cmd {
	return panelAction(ctx, item, "Activating", func(id panel.ID, p state.Placement) dock.Request {
		return dock.Activate(id, leafOf(p))
	})
}

// DockToAction asks for a target before docking.
func DockToAction(ctx Context, item Item) tea.Cmd {
	id, err := panel.ParseID(item.ID)
	if err != nil {
		return errorResult(err)
	}
	return func() tea.Msg {
		return TargetPrompt{Context: ctx, Panel: id}
	}
}

// DockToTargetAction docks ctx.Pending into the group named by item.
func DockToTargetAction(ctx Context, item Item) tea.Cmd {
	if !ctx.Pending.Valid() {
		return errorResult(fmt.Errorf("no panel chosen for dock-to"))
	}
	ref, err := strconv.ParseUint(item.ID, 10, 64)
	if err != nil {
		return errorResult(fmt.Errorf("invalid tab group %q", item.ID))
	}
	id := ctx.Pending
	return func() tea.Msg {
		return ActionResult{
			Requests: []dock.Request{dock.DockTo(id, tiles.Ref(ref))},
			Info:     fmt.Sprintf("Docking %s into %s", id, tiles.Ref(ref)),
		}
	}
}

func panelAction(ctx Context, item Item, verb string, build func(panel.ID, state.Placement) dock.Request) tea.Cmd {
	id, err := panel.ParseID(item.ID)
	if err != nil {
		return errorResult(err)
	}
	var current state.Placement
	for _, entry := range ctx.Entries {
		if entry.Panel == id {
			current = entry.Placement
			break
		}
	}
	req := build(id, current)
	return func() tea.Msg {
		return ActionResult{
			Requests: []dock.Request{req},
			Info:     fmt.Sprintf("%s %s", verb, id),
		}
	}
}

func leafOf(p state.Placement) tiles.Ref {
	if d, ok := p.(state.Docked); ok {
		return d.Leaf
	}
	return 0
}

func errorResult(err error) tea.Cmd {
	return func() tea.Msg {
		return ActionResult{Err: err}
	}
}

func menuItemsFromIDs(ids []string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: id, Label: prettyLabel(id)})
	}
	return items
}

func prettyLabel(id string) string {
	return strings.ReplaceAll(id, "-", " ")
}
