package formz

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on propagation and notification.
type MetricsProvider interface {
	// OnPropagate is called each time a change crosses a parent/child edge.
	OnPropagate(dir Direction, ch Channel)

	// OnNotify is called once per field-scoped fan-out. The any fan-out
	// reports an empty field.
	OnNotify(field string, bulk bool)

	// OnShortCircuit is called when a scalar write is skipped because the
	// value did not change.
	OnShortCircuit(field string)

	// OnValidate is called after the validator ran with the time it took and
	// the number of top-level fields that carry findings.
	OnValidate(duration time.Duration, fields int)

	// OnDiagnostic is called for every misuse diagnostic.
	OnDiagnostic(err error)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnPropagate(_ Direction, _ Channel) {}
func (NoOpMetricsProvider) OnNotify(_ string, _ bool)          {}
func (NoOpMetricsProvider) OnShortCircuit(_ string)            {}
func (NoOpMetricsProvider) OnValidate(_ time.Duration, _ int)  {}
func (NoOpMetricsProvider) OnDiagnostic(_ error)               {}
