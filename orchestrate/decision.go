package orchestrate

// Decision values match the plain-text decision log format: -99 for a
// skipped node, -1 for "evaluated, nothing chosen", 0/1/3 for the
// winning transform. The source this is modeled on logs resub under
// two different values (1 or 2) depending on which code path fired;
// this implementation always logs resub as 1, the consolidation the
// format description itself sanctions ("spec consolidates to 1").
type Decision int

const (
	DecisionSkipped  Decision = -99
	DecisionNone     Decision = -1
	DecisionRewrite  Decision = 0
	DecisionResub    Decision = 1
	DecisionRefactor Decision = 3
)

func decisionFor(t Transform) Decision {
	switch t {
	case Rewrite:
		return DecisionRewrite
	case Resub:
		return DecisionResub
	case Refactor:
		return DecisionRefactor
	default:
		return DecisionNone
	}
}

// Log records one Decision per node id touched during a pass, indexed
// by the node's id at pass start ("original order" per the external
// format). It is built fresh by Run and can be written out verbatim.
type Log struct {
	order []uint32
	byID  map[uint32]Decision
}

func newLog() *Log {
	return &Log{byID: make(map[uint32]Decision)}
}

func (l *Log) record(id uint32, d Decision) {
	if _, ok := l.byID[id]; !ok {
		l.order = append(l.order, id)
	}
	l.byID[id] = d
}

// Get returns the recorded decision for id, or DecisionNone if id was
// never visited this pass.
func (l *Log) Get(id uint32) Decision {
	if d, ok := l.byID[id]; ok {
		return d
	}
	return DecisionNone
}

// Order returns the node ids in the order they were first recorded —
// the "original order" the decisionlog package's file writer iterates.
func (l *Log) Order() []uint32 { return append([]uint32(nil), l.order...) }
