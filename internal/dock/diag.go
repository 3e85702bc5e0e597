package dock

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/atomicstack/paneldock/internal/panel"
)

// Kind is a machine-readable diagnostic code.
type Kind string

const (
	// KindStaleReference: the request points at a leaf or container that
	// no longer matches the tree or the ledger. Nothing changed.
	KindStaleReference Kind = "STALE_REFERENCE"
	// KindDockingFailed: inserting into the chosen container failed and the
	// panel was restored to its prior placement.
	KindDockingFailed Kind = "DOCKING_FAILED"
	// KindAlreadyInRequestedState: the panel is already where the request
	// wants it. Informational.
	KindAlreadyInRequestedState Kind = "ALREADY_IN_REQUESTED_STATE"
	// KindInvariantViolation: the tree or window set disagrees with the
	// ledger about where a panel is.
	KindInvariantViolation Kind = "INVARIANT_VIOLATION"
	// KindRefused: policy or a collaborator declined the transition.
	KindRefused Kind = "REFUSED"
	// KindUnknownPanel: the request names a panel the registry does not hold.
	KindUnknownPanel Kind = "UNKNOWN_PANEL"
)

// Severity ranks diagnostics for display.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

func (k Kind) severity() Severity {
	switch k {
	case KindAlreadyInRequestedState:
		return SeverityInfo
	case KindStaleReference, KindRefused:
		return SeverityWarn
	default:
		return SeverityError
	}
}

// Diagnostic reports a request that did not apply cleanly.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Panel    panel.ID
	Op       Op
	Request  ulid.ULID
	Detail   string
}

func newDiagnostic(kind Kind, req Request, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Kind:     kind,
		Severity: kind.severity(),
		Panel:    req.Panel,
		Op:       req.Op,
		Request:  req.ID,
		Detail:   fmt.Sprintf(format, args...),
	}
}

func (d Diagnostic) String() string {
	if d.Detail == "" {
		return fmt.Sprintf("%s %s %s", d.Kind, d.Op, d.Panel)
	}
	return fmt.Sprintf("%s %s %s: %s", d.Kind, d.Op, d.Panel, d.Detail)
}

// Error lets a diagnostic be handed to error sinks such as logging.Error.
func (d Diagnostic) Error() string {
	return d.String()
}

// Has reports whether diags contains a diagnostic of kind.
func Has(diags []Diagnostic, kind Kind) bool {
	for _, d := range diags {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
