package dock

import (
	"github.com/oklog/ulid/v2"

	"github.com/atomicstack/paneldock/internal/logging/events"
	"github.com/atomicstack/paneldock/internal/panel"
	"github.com/atomicstack/paneldock/internal/tiles"
)

// Op names a placement transition.
type Op int

const (
	OpDock Op = iota + 1
	OpDockTo
	OpUndock
	OpClose
	OpReopen
	OpActivate
)

func (o Op) String() string {
	switch o {
	case OpDock:
		return "dock"
	case OpDockTo:
		return "dock-to"
	case OpUndock:
		return "undock"
	case OpClose:
		return "close"
	case OpReopen:
		return "reopen"
	case OpActivate:
		return "activate"
	default:
		return "unknown"
	}
}

// Request asks for one transition of one panel. Leaf is the leaf the caller
// saw when it submitted an undock, close or activate; zero means whatever
// leaf the ledger holds when the request is applied. Target is the
// destination container of a DockTo.
type Request struct {
	ID     ulid.ULID
	Op     Op
	Panel  panel.ID
	Leaf   tiles.Ref
	Target tiles.Ref
}

// Dock requests docking wherever the target selector decides.
func Dock(id panel.ID) Request { return Request{Op: OpDock, Panel: id} }

// DockTo requests docking into a specific tab group.
func DockTo(id panel.ID, container tiles.Ref) Request {
	return Request{Op: OpDockTo, Panel: id, Target: container}
}

// Undock requests moving the docked leaf into its own window.
func Undock(id panel.ID, leaf tiles.Ref) Request {
	return Request{Op: OpUndock, Panel: id, Leaf: leaf}
}

// Close requests hiding the panel wherever it is.
func Close(id panel.ID, leaf tiles.Ref) Request {
	return Request{Op: OpClose, Panel: id, Leaf: leaf}
}

// Reopen requests restoring a closed panel.
func Reopen(id panel.ID) Request { return Request{Op: OpReopen, Panel: id} }

// Activate requests making the docked leaf the visible tab.
func Activate(id panel.ID, leaf tiles.Ref) Request {
	return Request{Op: OpActivate, Panel: id, Leaf: leaf}
}

// Submitter is the only handle UI code gets on the queue.
type Submitter interface {
	Submit(Request) ulid.ULID
}

// Source yields the requests buffered for one frame.
type Source interface {
	Drain() []Request
}

// Queue buffers requests until the engine drains them.
type Queue struct {
	pending []Request
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Submit appends r and returns its id. Requests without an id get one.
func (q *Queue) Submit(r Request) ulid.ULID {
	if r.ID == (ulid.ULID{}) {
		r.ID = ulid.Make()
	}
	q.pending = append(q.pending, r)
	events.Queue.Submit(r.ID.String(), r.Op.String(), r.Panel.String(), len(q.pending))
	return r.ID
}

func (q *Queue) SubmitDock(id panel.ID) ulid.ULID { return q.Submit(Dock(id)) }

func (q *Queue) SubmitDockTo(id panel.ID, container tiles.Ref) ulid.ULID {
	return q.Submit(DockTo(id, container))
}

func (q *Queue) SubmitUndock(id panel.ID, leaf tiles.Ref) ulid.ULID {
	return q.Submit(Undock(id, leaf))
}

func (q *Queue) SubmitClose(id panel.ID, leaf tiles.Ref) ulid.ULID {
	return q.Submit(Close(id, leaf))
}

func (q *Queue) SubmitReopen(id panel.ID) ulid.ULID { return q.Submit(Reopen(id)) }

func (q *Queue) SubmitActivate(id panel.ID, leaf tiles.Ref) ulid.ULID {
	return q.Submit(Activate(id, leaf))
}

// Drain hands back every pending request in submission order and empties
// the buffer.
func (q *Queue) Drain() []Request {
	out := q.pending
	q.pending = nil
	return out
}

// Len reports how many requests are waiting.
func (q *Queue) Len() int {
	return len(q.pending)
}
