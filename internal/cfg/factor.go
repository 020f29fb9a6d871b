package cfg

import (
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// FactorConfig configures left factoring's indirect-non-determinism
// removal loop.
type FactorConfig struct {
	// MaxIterations bounds the number of times indirect non-determinism
	// removal runs before giving up.
	MaxIterations int
}

// DefaultFactorConfig returns the default iteration cap.
func DefaultFactorConfig() FactorConfig { return FactorConfig{MaxIterations: 10} }

// LeftFactor returns a new grammar with direct and indirect
// non-determinism removed: one direct pass, then alternating
// indirect/direct passes until a pass makes no change or the iteration
// cap is reached.
func LeftFactor(g *Grammar, cfg FactorConfig) (*Grammar, bool) {
	out := g.Clone()
	removeDirectNonDeterminism(out)

	converged := false
	for i := 0; i < cfg.MaxIterations; i++ {
		changed := removeIndirectNonDeterminism(out)
		removeDirectNonDeterminism(out)
		if !changed {
			converged = true
			break
		}
	}

	return out, converged
}

// removeDirectNonDeterminism factors every non-terminal's alternatives
// by shared prefixes, recursively, so "S -> aB | aC" becomes
// "S -> a S'" with "S' -> B | C".
func removeDirectNonDeterminism(g *Grammar) {
	snapshot := append([]Symbol{}, g.Nonterminals...)
	counters := make(map[Symbol]int, len(snapshot))
	for _, nt := range snapshot {
		factorNonterminal(g, nt, counters)
	}
}

func factorNonterminal(g *Grammar, nt Symbol, counters map[Symbol]int) {
	alts := g.Productions[nt]

	groups := make(map[Symbol][]Sequence)
	var order []Symbol
	var bare []Sequence

	for _, alt := range alts {
		if len(alt) == 0 {
			bare = append(bare, alt)
			continue
		}
		head := alt[0]
		if _, ok := groups[head]; !ok {
			order = append(order, head)
		}
		groups[head] = append(groups[head], alt)
	}

	var result []Sequence
	for _, head := range order {
		group := groups[head]
		if len(group) == 1 {
			result = append(result, group[0])
			continue
		}

		prefixLen := longestCommonPrefixLen(group)
		prefix := append(Sequence{}, group[0][:prefixLen]...)

		counters[nt]++
		newSym := Symbol(string(nt) + strings.Repeat("'", counters[nt]))
		for g.IsNonterminal(newSym) {
			counters[nt]++
			newSym = Symbol(string(nt) + strings.Repeat("'", counters[nt]))
		}
		g.addNonterminal(newSym)

		result = append(result, append(append(Sequence{}, prefix...), newSym))

		var tails []Sequence
		for _, alt := range group {
			tail := append(Sequence{}, alt[prefixLen:]...)
			if len(tail) == 0 {
				tail = Sequence{Epsilon}
			}
			tails = append(tails, tail)
		}
		g.Productions[newSym] = tails
		factorNonterminal(g, newSym, counters)
	}

	result = append(result, bare...)
	g.Productions[nt] = result
}

func longestCommonPrefixLen(group []Sequence) int {
	length := len(group[0])
	for _, alt := range group[1:] {
		if len(alt) < length {
			length = len(alt)
		}
	}
	for i := 0; i < length; i++ {
		for _, alt := range group[1:] {
			if alt[i] != group[0][i] {
				return i
			}
		}
	}
	return length
}

// removeIndirectNonDeterminism identifies alternatives whose FIRST sets
// collide, either against a sibling alternative or, for a nullable
// non-terminal at any position but the last, against the symbol that
// follows it, removes them, and replaces each with the alternatives
// produced by expanding its leading non-terminal one step. It reports
// whether any such alternative was found, even when the expansion leaves
// the productions as they were.
func removeIndirectNonDeterminism(g *Grammar) bool {
	first := ComputeFirst(g)
	changed := false

	snapshot := append([]Symbol{}, g.Nonterminals...)
	for _, nt := range snapshot {
		alts := g.Productions[nt]
		worrisome := make(map[string]Sequence)

		type seenAlt struct {
			alt    Sequence
			firsts *linkedhashset.Set
		}
		var seen []seenAlt

		for _, alt := range alts {
			firsts := firstOfChain(g, first, alt)
			for _, prior := range seen {
				if intersects(firsts, prior.firsts) {
					worrisome[prior.alt.String()] = prior.alt
					worrisome[alt.String()] = alt
					changed = true
				}
			}

			for i := 0; i < len(alt)-1; i++ {
				sym := alt[i]
				if !g.IsNonterminal(sym) {
					continue
				}
				symFirst, ok := first[sym]
				if !ok || !has(symFirst, Epsilon) {
					continue
				}
				rest := firstOfChain(g, first, alt[i+1:])
				if intersects(symFirst, rest) {
					worrisome[alt.String()] = alt
					changed = true
				}
			}

			seen = append(seen, seenAlt{alt: alt, firsts: firsts})
		}

		if len(worrisome) == 0 {
			continue
		}

		var kept []Sequence
		for _, alt := range alts {
			if _, bad := worrisome[alt.String()]; !bad {
				kept = append(kept, alt)
			}
		}
		for _, alt := range worrisome {
			for _, derived := range deriveOneStep(g, alt) {
				if !containsSequence(kept, derived) {
					kept = append(kept, derived)
				}
			}
		}
		g.Productions[nt] = kept
	}

	return changed
}

// firstOfChain returns the FIRST set of just the leading symbol of
// chain (not the nullability-aware FIRST of the whole sequence), or
// {Epsilon} if chain is empty or starts with epsilon.
func firstOfChain(g *Grammar, first FirstSets, chain Sequence) *linkedhashset.Set {
	if len(chain) == 0 || chain[0] == Epsilon {
		return newSymbolSet(Epsilon)
	}
	if f, ok := first[chain[0]]; ok {
		return f
	}
	return linkedhashset.New()
}

// deriveOneStep expands the leading non-terminal of alt by each of its
// own alternatives, one level deep. If alt is empty or does not begin
// with a non-terminal, alt is returned unchanged. This stops after one
// level rather than recursively expanding every non-terminal in the
// remainder of the chain.
func deriveOneStep(g *Grammar, alt Sequence) []Sequence {
	if len(alt) == 0 || !g.IsNonterminal(alt[0]) {
		return []Sequence{alt}
	}

	tail := alt[1:]
	var out []Sequence
	for _, p := range g.Productions[alt[0]] {
		var replacement Sequence
		if p.equal(Sequence{Epsilon}) {
			replacement = append(Sequence{}, tail...)
			if len(replacement) == 0 {
				replacement = Sequence{Epsilon}
			}
		} else {
			replacement = append(append(Sequence{}, p...), tail...)
		}
		out = append(out, replacement)
	}
	return out
}

func intersects(a, b *linkedhashset.Set) bool {
	for _, v := range a.Values() {
		if b.Contains(v) {
			return true
		}
	}
	return false
}

func containsSequence(list []Sequence, s Sequence) bool {
	for _, existing := range list {
		if existing.equal(s) {
			return true
		}
	}
	return false
}
