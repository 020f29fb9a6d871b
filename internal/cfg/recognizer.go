package cfg

import "strings"

// Recognizer drives a stack-based LL(1) recognition loop against a
// precomputed table: push EndOfInput and the initial symbol, then
// repeatedly either consume a terminal match on top of the stack, or
// replace a non-terminal on top with the table's chosen alternative.
type Recognizer struct {
	grammar *Grammar
	table   Table
}

// NewRecognizer builds a Recognizer for g using a precomputed table.
func NewRecognizer(g *Grammar, table Table) *Recognizer {
	return &Recognizer{grammar: g, table: table}
}

// Accept tokenizes sentence on whitespace and reports whether the
// resulting word is in the grammar's language.
func (r *Recognizer) Accept(sentence string) bool {
	words := strings.Fields(sentence)
	symbols := make([]Symbol, len(words))
	for i, w := range words {
		symbols[i] = Symbol(w)
	}
	return r.AcceptSymbols(symbols)
}

// AcceptSymbols runs the recognizer over an already-tokenized sentence.
func (r *Recognizer) AcceptSymbols(sentence []Symbol) bool {
	input := append(append([]Symbol{}, sentence...), EndOfInput)

	stack := []Symbol{EndOfInput, r.grammar.Initial}
	pos := 0

	for len(stack) != 1 || stack[0] != EndOfInput {
		top := stack[len(stack)-1]

		if r.grammar.IsTerminal(top) {
			if pos >= len(input) || input[pos] != top {
				return false
			}
			stack = stack[:len(stack)-1]
			pos++
			continue
		}

		if pos >= len(input) {
			return false
		}
		lookahead := input[pos]

		alt, ok := r.table[top][lookahead]
		if !ok {
			return false
		}

		stack = stack[:len(stack)-1]
		if len(alt) == 1 && alt[0] == Epsilon {
			continue
		}
		for i := len(alt) - 1; i >= 0; i-- {
			stack = append(stack, alt[i])
		}
	}

	return len(stack) == 1 && stack[0] == EndOfInput && pos < len(input) && input[pos] == EndOfInput
}
