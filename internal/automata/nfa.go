// Package automata builds NFAs from a regex.Node via Thompson
// construction, determinizes them by subset construction, minimizes the
// result, and composes per-token NFA fragments into the single labeled
// automaton that, once determinized, a tokenizer walks.
package automata

// NFA is an arena of states addressed by synthetic integer IDs rather
// than pointers, so fragments can be cloned and merged without chasing
// cycles.
type NFA struct {
	Start  int
	Accept int
	States map[int]*NFAState
	// nextID is the next unallocated state ID. It only ever increases,
	// independent of len(States): concat deletes a spliced-away initial
	// state from the arena, which would otherwise leave a hole that a
	// len(States)-based allocator could hand out again and collide with
	// a still-live state.
	nextID int
}

// NFAState is one state in the arena. Accepting and Label are unused
// during Thompson construction (Start/Accept on the fragment itself
// track the distinguished states); they are set once, after the fact,
// when composing a labeled lexer automaton out of several token
// fragments (see ComposeLabeled).
type NFAState struct {
	ID          int
	Transitions map[rune]map[int]bool
	Epsilon     map[int]bool
	Accepting   bool
	Label       string
	// Priority orders competing accepting labels reached by the same
	// input word; lower wins. Only meaningful when Accepting is true.
	Priority int
}

func newArena() *NFA {
	return &NFA{States: make(map[int]*NFAState)}
}

func (n *NFA) addState() int {
	id := n.nextID
	n.nextID++
	n.States[id] = &NFAState{
		ID:          id,
		Transitions: make(map[rune]map[int]bool),
		Epsilon:     make(map[int]bool),
	}
	return id
}

func (n *NFA) addTransition(from int, input rune, to int) {
	if n.States[from].Transitions[input] == nil {
		n.States[from].Transitions[input] = make(map[int]bool)
	}
	n.States[from].Transitions[input][to] = true
}

func (n *NFA) addEpsilon(from, to int) {
	n.States[from].Epsilon[to] = true
}

// merge copies every state of other into n under fresh IDs, preserving
// its internal transition structure, and returns the remapped start and
// accept state IDs.
func (n *NFA) merge(other *NFA) (newStart, newAccept int) {
	offset := n.nextID
	mapping := make(map[int]int, len(other.States))
	for oldID := range other.States {
		mapping[oldID] = oldID + offset
	}
	n.nextID = offset + other.nextID

	for oldID, state := range other.States {
		newID := mapping[oldID]
		newState := &NFAState{
			ID:          newID,
			Transitions: make(map[rune]map[int]bool),
			Epsilon:     make(map[int]bool),
			Accepting:   state.Accepting,
			Label:       state.Label,
			Priority:    state.Priority,
		}
		for r, targets := range state.Transitions {
			newState.Transitions[r] = make(map[int]bool, len(targets))
			for target := range targets {
				newState.Transitions[r][mapping[target]] = true
			}
		}
		for target := range state.Epsilon {
			newState.Epsilon[mapping[target]] = true
		}
		n.States[newID] = newState
	}

	return mapping[other.Start], mapping[other.Accept]
}

// StateCount reports the number of states currently in the arena, used
// for debug logging of build phases.
func (n *NFA) StateCount() int { return len(n.States) }
