// Package persist implements a JSON persisted-automaton wire format: a
// DFA serialized with an opaque uid per state, freshly generated on every
// Save, alongside the state's name. Transitions and the start state refer
// to states by name.
package persist

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"

	"github.com/Leviosar/autome/internal/automata"
	"github.com/Leviosar/autome/internal/diagnostics"
)

type wireTransition struct {
	Symbol string `json:"symbol"`
	To     string `json:"to"`
}

type wireState struct {
	UID         string           `json:"uid"`
	Name        string           `json:"name"`
	Accepting   bool             `json:"accepting"`
	Label       string           `json:"label,omitempty"`
	Transitions []wireTransition `json:"transitions"`
}

type wireAutomaton struct {
	Start  string      `json:"start"`
	States []wireState `json:"states"`
}

// Save writes d to path using the persisted-automaton JSON format,
// assigning every state a fresh uuid as its uid field.
func Save(path string, d *automata.DFA) error {
	out := wireAutomaton{Start: d.Start}
	for name, st := range d.States {
		w := wireState{
			UID:       uuid.NewString(),
			Name:      name,
			Accepting: st.Accepting,
			Label:     st.Label,
		}
		for r, target := range st.Transitions {
			w.Transitions = append(w.Transitions, wireTransition{Symbol: string(r), To: target})
		}
		out.States = append(out.States, w)
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return &diagnostics.SpecLoadError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return &diagnostics.SpecLoadError{Path: path, Err: err}
	}
	return nil
}

// Load reads a persisted automaton back into a *automata.DFA. The uid
// field is not needed to reconstruct automaton semantics (Name alone
// keys transitions) but every state is still expected to carry one, so
// a spec written by a different tool is rejected early if it omits
// them.
func Load(path string) (*automata.DFA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &diagnostics.SpecLoadError{Path: path, Err: err}
	}

	var w wireAutomaton
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &diagnostics.SpecLoadError{Path: path, Err: err}
	}

	d := &automata.DFA{Start: w.Start, States: make(map[string]*automata.DFAState, len(w.States))}
	for _, ws := range w.States {
		if ws.UID == "" {
			return nil, &diagnostics.SpecLoadError{Path: path, Err: errMissingUID(ws.Name)}
		}
		st := &automata.DFAState{
			Name:        ws.Name,
			Accepting:   ws.Accepting,
			Label:       ws.Label,
			Transitions: make(map[rune]string, len(ws.Transitions)),
		}
		for _, t := range ws.Transitions {
			r := []rune(t.Symbol)
			if len(r) != 1 {
				continue
			}
			st.Transitions[r[0]] = t.To
		}
		d.States[ws.Name] = st
	}

	return d, nil
}

type errMissingUID string

func (e errMissingUID) Error() string {
	return "persisted state " + string(e) + " is missing its uid"
}
