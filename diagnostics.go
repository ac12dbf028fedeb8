package formz

// diagnostic is one recorded misuse, tagged with the node it happened on.
type diagnostic struct {
	node uint64
	err  error
}

// diagnosticLog keeps the most recent diagnostics up to a fixed limit,
// dropping the oldest first. A nil log records nothing.
type diagnosticLog struct {
	limit   int
	entries []diagnostic
}

func newDiagnosticLog(limit int) *diagnosticLog {
	if limit <= 0 {
		return nil
	}
	return &diagnosticLog{limit: limit, entries: make([]diagnostic, 0, limit)}
}

func (l *diagnosticLog) record(node uint64, err error) {
	if l == nil {
		return
	}
	if len(l.entries) == l.limit {
		l.entries = append(l.entries[:0], l.entries[1:]...)
	}
	l.entries = append(l.entries, diagnostic{node: node, err: err})
}

func (l *diagnosticLog) reset() {
	if l == nil {
		return
	}
	clear(l.entries)
	l.entries = l.entries[:0]
}

// errors returns the retained diagnostics oldest first. keep, when non-nil,
// selects entries by node id.
func (l *diagnosticLog) errors(keep func(node uint64) bool) []error {
	if l == nil {
		return nil
	}
	var out []error
	for _, d := range l.entries {
		if keep == nil || keep(d.node) {
			out = append(out, d.err)
		}
	}
	return out
}
