package cfg

import "github.com/emirpasic/gods/sets/linkedhashset"

// FirstSets maps every terminal and non-terminal to its FIRST set, kept
// as an insertion-ordered linkedhashset so diagnostics and table
// construction iterate in a stable, reproducible order.
type FirstSets map[Symbol]*linkedhashset.Set

func newSymbolSet(syms ...Symbol) *linkedhashset.Set {
	s := linkedhashset.New()
	for _, sym := range syms {
		s.Add(sym)
	}
	return s
}

func has(s *linkedhashset.Set, sym Symbol) bool { return s.Contains(sym) }

func addAllExceptEpsilon(dst, src *linkedhashset.Set) bool {
	changed := false
	for _, v := range src.Values() {
		sym := v.(Symbol)
		if sym == Epsilon {
			continue
		}
		if !dst.Contains(sym) {
			dst.Add(sym)
			changed = true
		}
	}
	return changed
}

// ComputeFirst computes FIRST(X) for every terminal and non-terminal in
// g by fixed-point iteration: seed every terminal with itself, then for
// each X ::= Y1 Y2 ... Yn repeatedly add FIRST(Yi) minus epsilon for
// Y1, Y2, ... up to the first non-nullable Yi, and epsilon when every Yi
// is nullable, until a whole pass makes no change.
func ComputeFirst(g *Grammar) FirstSets {
	first := make(FirstSets, len(g.Terminals)+len(g.Nonterminals))

	for _, t := range g.Terminals {
		first[t] = newSymbolSet(t)
	}
	first[Epsilon] = newSymbolSet(Epsilon)

	for _, nt := range g.Nonterminals {
		first[nt] = linkedhashset.New()
	}

	changed := true
	for changed {
		changed = false
		for _, nt := range g.Nonterminals {
			for _, alt := range g.Productions[nt] {
				for i, sym := range alt {
					symFirst, ok := first[sym]
					if !ok {
						symFirst = linkedhashset.New()
						first[sym] = symFirst
					}
					if addAllExceptEpsilon(first[nt], symFirst) {
						changed = true
					}
					if !has(symFirst, Epsilon) {
						break
					}
					if i == len(alt)-1 {
						if !first[nt].Contains(Epsilon) {
							first[nt].Add(Epsilon)
							changed = true
						}
					}
				}
			}
		}
	}

	return first
}

// FirstOfSequence computes FIRST of a whole sequence of symbols,
// accumulating FIRST of each symbol in turn and stopping as soon as one
// symbol's FIRST set lacks epsilon; if every symbol in the sequence is
// nullable, epsilon is included in the result.
func FirstOfSequence(first FirstSets, seq Sequence) *linkedhashset.Set {
	result := linkedhashset.New()
	if len(seq) == 0 {
		result.Add(Epsilon)
		return result
	}

	for i, sym := range seq {
		symFirst, ok := first[sym]
		if !ok {
			symFirst = linkedhashset.New()
		}
		addAllExceptEpsilon(result, symFirst)

		if !has(symFirst, Epsilon) {
			return result
		}
		if i == len(seq)-1 {
			result.Add(Epsilon)
		}
	}

	return result
}

// SymbolList converts a linkedhashset of Symbols back to a slice in
// insertion order.
func SymbolList(s *linkedhashset.Set) []Symbol {
	vals := s.Values()
	out := make([]Symbol, len(vals))
	for i, v := range vals {
		out[i] = v.(Symbol)
	}
	return out
}
