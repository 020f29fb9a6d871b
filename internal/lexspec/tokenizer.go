package lexspec

import (
	"strings"

	"github.com/Leviosar/autome/internal/automata"
	"github.com/Leviosar/autome/internal/diagnostics"
)

// Token is one recognized word, typed by the label of the DFA state it
// landed on (or "keyword" if it matched a reserved word ahead of the
// DFA). Line and Column are 1-based, Offset is the 0-based rune offset
// of the word's first character in the source.
type Token struct {
	Type   string
	Value  string
	Line   int
	Column int
	Offset int
}

// Tokenizer walks pre-split words of source text against a compiled
// labeled DFA. Unlike a maximal-munch scanner, it never looks inside a
// word for a shorter match: the word is split on whitespace first, then
// matched against the DFA as a whole. This means an input like "1+2" is
// one un-splittable word, not three tokens; the lexical spec is
// expected to define words accordingly (or source to include the
// necessary spacing).
type Tokenizer struct {
	dfa      *automata.DFA
	reserved map[string]bool
}

// NewTokenizer builds a Tokenizer from a compiled DFA and the spec's
// reserved-keyword list.
func NewTokenizer(dfa *automata.DFA, reserved []string) *Tokenizer {
	set := make(map[string]bool, len(reserved))
	for _, kw := range reserved {
		set[kw] = true
	}
	return &Tokenizer{dfa: dfa, reserved: set}
}

// Tokenize splits source on runs of whitespace and matches each word
// against the DFA, preferring a reserved-keyword match over the DFA's
// own label. It returns a LexicalError on the first word that matches
// neither.
func (t *Tokenizer) Tokenize(source string) ([]Token, error) {
	var tokens []Token

	line, column, offset := 1, 1, 0
	runes := []rune(source)

	var word strings.Builder
	wordLine, wordColumn, wordOffset := line, column, offset

	flush := func() error {
		if word.Len() == 0 {
			return nil
		}
		w := word.String()
		word.Reset()

		if t.reserved[w] {
			tokens = append(tokens, Token{Type: "keyword", Value: w, Line: wordLine, Column: wordColumn, Offset: wordOffset})
			return nil
		}

		current := t.dfa.Start
		ok := true
		for _, r := range w {
			current = t.dfa.Step(current, r)
			if current == "" {
				ok = false
				break
			}
		}
		if ok && t.dfa.IsAccepting(current) {
			tokens = append(tokens, Token{Type: t.dfa.States[current].Label, Value: w, Line: wordLine, Column: wordColumn, Offset: wordOffset})
			return nil
		}

		return &diagnostics.LexicalError{Word: w, Line: wordLine, Column: wordColumn}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if err := flush(); err != nil {
				return nil, err
			}
			if r == '\n' {
				line++
				column = 1
			} else {
				column++
			}
			offset++
			wordLine, wordColumn, wordOffset = line, column, offset
			continue
		}
		if word.Len() == 0 {
			wordLine, wordColumn, wordOffset = line, column, offset
		}
		word.WriteRune(r)
		column++
		offset++
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return tokens, nil
}
