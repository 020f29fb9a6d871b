package automata

// Fragment is one token definition's compiled pattern, ready to be
// merged into a single labeled automaton.
type Fragment struct {
	Label string
	NFA   *NFA
}

// MarkAccepting flags n's distinguished accept state as accepting with
// the given label and priority. It must only be called on a complete,
// top-level fragment (the final result of Build, not one of its
// sub-expressions): Thompson construction relies on an accept state
// having no outgoing edges and no Accepting flag of its own while it is
// still being spliced into a larger fragment by Concat/Union/Kleene.
func MarkAccepting(n *NFA, label string, priority int) *NFA {
	accept := n.States[n.Accept]
	accept.Accepting = true
	accept.Label = label
	accept.Priority = priority
	return n
}

// ComposeLabeled merges a list of per-token NFA fragments into a single
// NFA with a fresh shared start state epsilon-connected to every
// fragment's start. Each fragment's own accept state is marked
// Accepting with its Label and a Priority equal to its index in
// fragments, so that Subset's earliest-declared-wins tie-break has
// something to compare. Unlike Union, no shared final state is
// introduced: every fragment keeps its own distinguishable accept state
// so the resulting DFA's accepting states can report which token
// matched.
func ComposeLabeled(fragments []Fragment) *NFA {
	result := newArena()
	start := result.addState()
	result.Start = start

	for priority, f := range fragments {
		MarkAccepting(f.NFA, f.Label, priority)
		fStart, _ := result.merge(f.NFA)
		result.addEpsilon(start, fStart)
	}

	return result
}
