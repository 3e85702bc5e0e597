package dock_test

import (
	"testing"

	"github.com/atomicstack/paneldock/internal/dock"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/tiles"
)

func TestQueuePreservesSubmissionOrder(t *testing.T) {
	q := dock.NewQueue()
	first := q.SubmitUndock(panel.Scene, tiles.Ref(3))
	second := q.SubmitDock(panel.Scene)
	third := q.SubmitClose(panel.Stats, 0)
	q.SubmitReopen(panel.Stats)
	q.SubmitDockTo(panel.Presets, tiles.Ref(2))
	q.SubmitActivate(panel.Presets, 0)

	if q.Len() != 6 {
		t.Fatalf("expected 6 pending, got %d", q.Len())
	}
	if first == second || second == third {
		t.Fatalf("expected distinct request ids")
	}
	reqs := q.Drain()
	wantOps := []dock.Op{dock.OpUndock, dock.OpDock, dock.OpClose, dock.OpReopen, dock.OpDockTo, dock.OpActivate}
	for i, op := range wantOps {
		if reqs[i].Op != op {
			t.Fatalf("expected op %d to be %s, got %s", i, op, reqs[i].Op)
		}
	}
	if reqs[0].ID != first || reqs[0].Leaf != tiles.Ref(3) {
		t.Fatalf("expected first request to keep id and leaf, got %#v", reqs[0])
	}
	if reqs[4].Target != tiles.Ref(2) {
		t.Fatalf("expected dock-to target to be kept, got %s", reqs[4].Target)
	}
	if q.Len() != 0 || len(q.Drain()) != 0 {
		t.Fatalf("expected drain to empty the queue")
	}
}

func TestQueueKeepsCallerIDs(t *testing.T) {
	q := dock.NewQueue()
	id := q.SubmitDock(panel.Scene)
	req := dock.Reopen(panel.Scene)
	req.ID = id
	if got := q.Submit(req); got != id {
		t.Fatalf("expected caller id %s, got %s", id, got)
	}
}

func TestSubmitDoesNotTouchPlacements(t *testing.T) {
	f := newFixture(t, []panel.ID{panel.Scene, panel.Stats})
	before := f.tree.Dump()
	f.queue.SubmitUndock(panel.Scene, 0)
	f.queue.SubmitClose(panel.Stats, 0)
	if f.tree.Dump() != before || f.windows.Len() != 0 {
		t.Fatalf("expected no mutation before drive")
	}
	f.mustVerify(t)
}
