package deinflect

// A TraceFrame records one rule application: which transform fired, the
// index of the rule within it, and the text the rule was applied to.
type TraceFrame struct {
	Transform string // transform identifier
	RuleIndex int
	Text      string // text before the rule was applied
}

// A Trace is the chain of rule applications explaining a candidate,
// ordered newest-first: Trace[0] is the most recent deinflection step,
// Trace[len-1] the first one (the one applied to the original input).
type Trace []TraceFrame

// Prepend returns a fresh trace with frame pushed in front. The receiver
// is never mutated; traces are shared between search nodes.
func (t Trace) Prepend(frame TraceFrame) Trace {
	nt := make(Trace, 0, len(t)+1)
	nt = append(nt, frame)
	nt = append(nt, t...)
	return nt
}

// Contains reports whether an identical frame is already part of the
// trace. The transformer uses this as its cycle guard.
func (t Trace) Contains(frame TraceFrame) bool {
	for _, f := range t {
		if f == frame {
			return true
		}
	}
	return false
}

// TransformedText is one node of the deinflection search: a candidate
// string, the condition mask imposed on it so far (0 while unconstrained)
// and the trace that derived it from the original input.
type TransformedText struct {
	Text       string
	Conditions uint32
	Trace      Trace
}

// InflectionRule is the user-facing display record for one transform in a
// trace.
type InflectionRule struct {
	Name        string
	Description string
}
