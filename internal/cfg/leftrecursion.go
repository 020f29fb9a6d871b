package cfg

// EliminateLeftRecursion returns a new grammar equivalent to g with all
// direct and indirect left recursion removed. Non-terminals are
// processed in their declared order; for each pair (i, j) with j < i,
// any alternative of nonterminals[i] that starts with nonterminals[j] is
// replaced by substituting nonterminals[j]'s alternatives in its place,
// and then direct left recursion on nonterminals[i] itself is eliminated.
//
// Substitution is flattened here (append(prefixAlt, tail...)) rather
// than nesting tail as a single element: the grammar-theory
// substitution step concatenates the two sequences, and a nested
// sub-sequence could never be consumed by FIRST/FOLLOW or the
// recognizer, both of which expect a flat Sequence of Symbols.
func EliminateLeftRecursion(g *Grammar) *Grammar {
	out := g.Clone()

	order := append([]Symbol{}, out.Nonterminals...)

	for i, ni := range order {
		for j := 0; j < i; j++ {
			nj := order[j]
			substituteLeadingNonterminal(out, ni, nj)
		}
		eliminateDirectLeftRecursion(out, ni)
	}

	return out
}

// substituteLeadingNonterminal replaces every alternative of ni that
// begins with nj by nj's own alternatives, each followed by the rest of
// the original alternative.
func substituteLeadingNonterminal(g *Grammar, ni, nj Symbol) {
	alts := g.Productions[ni]
	var rewritten []Sequence

	for _, alt := range alts {
		if len(alt) == 0 || alt[0] != nj {
			rewritten = append(rewritten, alt)
			continue
		}
		tail := alt[1:]
		for _, njAlt := range g.Productions[nj] {
			var replacement Sequence
			if njAlt.equal(Sequence{Epsilon}) {
				replacement = append(Sequence{}, tail...)
				if len(replacement) == 0 {
					replacement = Sequence{Epsilon}
				}
			} else {
				replacement = append(append(Sequence{}, njAlt...), tail...)
			}
			rewritten = append(rewritten, replacement)
		}
	}

	g.Productions[ni] = rewritten
}

// eliminateDirectLeftRecursion removes direct left recursion on symbol:
// every alternative symbol -> symbol alpha becomes part of a new
// symbol' -> alpha symbol' | &, and every other alternative
// symbol -> beta becomes symbol -> beta symbol'.
func eliminateDirectLeftRecursion(g *Grammar, symbol Symbol) {
	var alphas, betas []Sequence
	newSymbol := Symbol(string(symbol) + "'")

	for _, alt := range g.Productions[symbol] {
		switch {
		case len(alt) > 0 && alt[0] == symbol:
			alpha := append(Sequence{}, alt[1:]...)
			alpha = append(alpha, newSymbol)
			alphas = append(alphas, alpha)
		case alt.equal(Sequence{Epsilon}):
			betas = append(betas, Sequence{Epsilon})
		default:
			beta := append(append(Sequence{}, alt...), newSymbol)
			betas = append(betas, beta)
		}
	}

	if len(alphas) == 0 {
		return
	}

	alphas = append(alphas, Sequence{Epsilon})
	g.Productions[newSymbol] = alphas
	g.addNonterminal(newSymbol)
	g.Productions[symbol] = betas
}
