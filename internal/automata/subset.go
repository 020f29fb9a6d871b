package automata

import (
	"fmt"
	"sort"
	"strings"
)

// Subset performs subset construction (NFA -> DFA) by epsilon-closure
// worklist, applying an "earliest declared wins" policy for labels:
// among the NFA states in a given closure that are Accepting, the one
// with the lowest Priority (its index in the tokens list) supplies the
// DFA state's label.
func Subset(nfa *NFA) *DFA {
	startClosure := epsilonClosure(nfa, map[int]bool{nfa.Start: true})

	dfa := &DFA{
		Start:  stateSetName(startClosure),
		States: make(map[string]*DFAState),
	}

	queue := []map[int]bool{startClosure}
	processed := make(map[string]bool)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		name := stateSetName(current)
		if processed[name] {
			continue
		}
		processed[name] = true

		accepting := false
		bestPriority := int(^uint(0) >> 1)
		label := ""
		for id := range current {
			st := nfa.States[id]
			if st.Accepting && st.Priority < bestPriority {
				accepting = true
				bestPriority = st.Priority
				label = st.Label
			}
		}

		symbolTargets := make(map[rune]map[int]bool)
		for id := range current {
			for r, targets := range nfa.States[id].Transitions {
				if symbolTargets[r] == nil {
					symbolTargets[r] = make(map[int]bool)
				}
				for t := range targets {
					symbolTargets[r][t] = true
				}
			}
		}

		transitions := make(map[rune]string)
		symbols := make([]rune, 0, len(symbolTargets))
		for r := range symbolTargets {
			symbols = append(symbols, r)
		}
		sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

		for _, r := range symbols {
			closure := epsilonClosure(nfa, symbolTargets[r])
			if len(closure) == 0 {
				continue
			}
			nextName := stateSetName(closure)
			transitions[r] = nextName
			if !processed[nextName] {
				queue = append(queue, closure)
			}
		}

		dfa.States[name] = &DFAState{
			Name:        name,
			Transitions: transitions,
			Accepting:   accepting,
			Label:       label,
		}
	}

	return dfa
}

func epsilonClosure(nfa *NFA, states map[int]bool) map[int]bool {
	closure := make(map[int]bool, len(states))
	stack := make([]int, 0, len(states))
	for s := range states {
		closure[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for target := range nfa.States[current].Epsilon {
			if !closure[target] {
				closure[target] = true
				stack = append(stack, target)
			}
		}
	}
	return closure
}

func stateSetName(states map[int]bool) string {
	if len(states) == 0 {
		return "∅"
	}
	ids := make([]int, 0, len(states))
	for id := range states {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
