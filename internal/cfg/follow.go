package cfg

import "github.com/emirpasic/gods/sets/linkedhashset"

// FollowSets maps every non-terminal to its FOLLOW set.
type FollowSets map[Symbol]*linkedhashset.Set

// ComputeFollow computes FOLLOW(X) for every non-terminal in g by
// fixed-point iteration: FOLLOW(initial) seeded with EndOfInput, then
// for every occurrence of a non-terminal in a production, FIRST of what
// follows it (minus epsilon) is added to its FOLLOW set, and if that
// remainder is nullable, FOLLOW(head) is added too.
func ComputeFollow(g *Grammar, first FirstSets) FollowSets {
	follow := make(FollowSets, len(g.Nonterminals))
	for _, nt := range g.Nonterminals {
		follow[nt] = linkedhashset.New()
	}
	follow[g.Initial].Add(EndOfInput)

	changed := true
	for changed {
		changed = false
		for head, alts := range g.Productions {
			for _, alt := range alts {
				for i, sym := range alt {
					if !g.IsNonterminal(sym) {
						continue
					}
					rest := alt[i+1:]
					if len(rest) == 0 {
						if addAll(follow[sym], follow[head]) {
							changed = true
						}
						continue
					}
					firsts := FirstOfSequence(first, rest)
					if addAllExceptEpsilon(follow[sym], firsts) {
						changed = true
					}
					if has(firsts, Epsilon) {
						if addAll(follow[sym], follow[head]) {
							changed = true
						}
					}
				}
			}
		}
	}

	return follow
}

func addAll(dst, src *linkedhashset.Set) bool {
	changed := false
	for _, v := range src.Values() {
		sym := v.(Symbol)
		if !dst.Contains(sym) {
			dst.Add(sym)
			changed = true
		}
	}
	return changed
}
