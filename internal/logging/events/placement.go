package events

import "github.com/atomicstack/paneldock/internal/logging"

type PlacementTracer struct{}

var Placement = PlacementTracer{}

func (PlacementTracer) Transition(request, op, panel, from, to string) {
	logging.Trace("placement.transition", map[string]interface{}{
		"request": request,
		"op":      op,
		"panel":   panel,
		"from":    from,
		"to":      to,
	})
}

func (PlacementTracer) Target(panel, tier, container string) {
	logging.Trace("placement.target", map[string]interface{}{"panel": panel, "tier": tier, "container": container})
}

func (PlacementTracer) Rollback(request, panel, step string, err error) {
	payload := map[string]interface{}{"request": request, "panel": panel, "step": step}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("placement.rollback", payload)
}

func (PlacementTracer) Diagnostic(code, severity, panel, op, detail string) {
	logging.Trace("placement.diagnostic", map[string]interface{}{
		"code":     code,
		"severity": severity,
		"panel":    panel,
		"op":       op,
		"detail":   detail,
	})
}

func (PlacementTracer) Refresh(panel, geometry string) {
	logging.Trace("placement.refresh", map[string]interface{}{"panel": panel, "geometry": geometry})
}

func (PlacementTracer) Verify(violations int, tree string) {
	logging.Trace("placement.verify", map[string]interface{}{"violations": violations, "tree": tree})
}
