package dock_test

import (
	"testing"

	"github.com/atomicstack/paneldock/internal/dock"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/state"
	"github.com/atomicstack/paneldock/internal/tiles"
	"github.com/atomicstack/paneldock/internal/window"
)

type fixture struct {
	reg     *panel.Registry
	tree    *tiles.Tree
	windows *window.Set
	ledger  state.Ledger
	queue   *dock.Queue
	engine  *dock.Engine
	leaves  map[panel.ID]tiles.Ref
}

// newFixture docks each group of panels into its own tab group under a
// horizontal root. A single group becomes a lone tab group root. Panels not
// listed start closed without a hint.
func newFixture(t *testing.T, groups ...[]panel.ID) *fixture {
	t.Helper()
	return newFixtureWith(t, nil, dock.Options{Simplify: tiles.DefaultSimplify}, groups...)
}

func newFixtureWith(t *testing.T, wrap func(*tiles.Tree) dock.TileTree, opts dock.Options, groups ...[]panel.ID) *fixture {
	t.Helper()
	f := &fixture{
		reg:     panel.NewRegistry(),
		tree:    tiles.NewTree(),
		windows: window.NewSet(),
		queue:   dock.NewQueue(),
		leaves:  map[panel.ID]tiles.Ref{},
	}
	initial := map[panel.ID]state.Placement{}
	parent := tiles.Ref(0)
	if len(groups) > 1 {
		root, err := f.tree.AddContainer(0, tiles.KindHorizontal)
		if err != nil {
			t.Fatalf("root: %v", err)
		}
		parent = root
	}
	for _, group := range groups {
		tabs, err := f.tree.AddContainer(parent, tiles.KindTabs)
		if err != nil {
			t.Fatalf("tabs: %v", err)
		}
		for _, id := range group {
			leaf, err := f.tree.InsertLeaf(tabs, f.reg.ContentOf(id))
			if err != nil {
				t.Fatalf("insert %s: %v", id, err)
			}
			f.leaves[id] = leaf
			initial[id] = state.Docked{Leaf: leaf}
		}
	}
	f.ledger = state.NewLedger(f.reg.IDs(), initial)
	var tree dock.TileTree = f.tree
	if wrap != nil {
		tree = wrap(f.tree)
	}
	f.engine = dock.New(f.reg, tree, f.windows, f.ledger, opts)
	return f
}

func (f *fixture) drive(t *testing.T, reqs ...dock.Request) []dock.Diagnostic {
	t.Helper()
	for _, r := range reqs {
		f.queue.Submit(r)
	}
	diags := f.engine.Drive(f.queue)
	if f.queue.Len() != 0 {
		t.Fatalf("expected queue drained, %d left", f.queue.Len())
	}
	return diags
}

// placement reads the ledger row for id. A nil t skips the missing-row check.
func (f *fixture) placement(t *testing.T, id panel.ID) state.Placement {
	p, ok := f.ledger.Get(id)
	if !ok && t != nil {
		t.Helper()
		t.Fatalf("expected ledger row for %s", id)
	}
	return p
}

func (f *fixture) mustVerify(t *testing.T) {
	t.Helper()
	if diags := f.engine.Verify(); len(diags) != 0 {
		t.Fatalf("expected consistent placements, got %v\n%s", diags, f.tree.Dump())
	}
}

func expectNoDiagnostics(t *testing.T, diags []dock.Diagnostic) {
	t.Helper()
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
}

func expectKinds(t *testing.T, diags []dock.Diagnostic, kinds ...dock.Kind) {
	t.Helper()
	if len(diags) != len(kinds) {
		t.Fatalf("expected %v, got %v", kinds, diags)
	}
	for i, kind := range kinds {
		if diags[i].Kind != kind {
			t.Fatalf("expected diagnostic %d to be %s, got %v", i, kind, diags[i])
		}
	}
}

// rejectingTree simulates a destination that turns invalid between
// selection and insertion.
type rejectingTree struct {
	*tiles.Tree
}

func (rejectingTree) InsertLeaf(container tiles.Ref, _ *panel.Content) (tiles.Ref, error) {
	return 0, tiles.ErrRejected
}
