package events

import "github.com/atomicstack/paneldock/internal/logging"

type QueueTracer struct{}

var Queue = QueueTracer{}

func (QueueTracer) Submit(request, op, panel string, pending int) {
	logging.Trace("queue.submit", map[string]interface{}{
		"request": request,
		"op":      op,
		"panel":   panel,
		"pending": pending,
	})
}

func (QueueTracer) Drain(count int) {
	if count == 0 {
		return
	}
	logging.Trace("queue.drain", map[string]interface{}{"count": count})
}
