package automata

// DFA is a deterministic automaton whose states are named by the
// canonical string form of the NFA state set they were built from (see
// stateSetName) until Minimize renames them q0, q1, .... An empty Label means the state is unlabeled,
// whether or not it is Accepting (a bare regex DFA has no labels at
// all).
type DFA struct {
	Start  string
	States map[string]*DFAState
}

// DFAState is one deterministic state.
type DFAState struct {
	Name        string
	Transitions map[rune]string
	Accepting   bool
	Label       string
}

// Step returns the next state name for input, or "" if there is none
// (rejection).
func (d *DFA) Step(state string, input rune) string {
	s, ok := d.States[state]
	if !ok {
		return ""
	}
	return s.Transitions[input]
}

// IsAccepting reports whether state is an accepting state of d.
func (d *DFA) IsAccepting(state string) bool {
	s, ok := d.States[state]
	return ok && s.Accepting
}

// Accepts runs the whole word against d from its start state and
// reports whether it lands on an accepting state with no input left
// over.
func (d *DFA) Accepts(word string) bool {
	current := d.Start
	for _, r := range word {
		current = d.Step(current, r)
		if current == "" {
			return false
		}
	}
	return d.IsAccepting(current)
}
