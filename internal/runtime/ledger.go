package runtime

// ledger is the set of names that have been active at least once, kept in
// first-activation order so disposal is deterministic.
type ledger struct {
	order []string
	seen  map[string]struct{}
}

func newLedger() *ledger {
	return &ledger{seen: make(map[string]struct{})}
}

func (l *ledger) has(name string) bool {
	_, ok := l.seen[name]
	return ok
}

func (l *ledger) add(name string) {
	if l.has(name) {
		return
	}
	l.seen[name] = struct{}{}
	l.order = append(l.order, name)
}

func (l *ledger) names() []string {
	return append([]string(nil), l.order...)
}
