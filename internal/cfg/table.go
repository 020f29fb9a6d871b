package cfg

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Conflict records that two alternatives of the same non-terminal both
// claim the same lookahead terminal while building the LL(1) table.
type Conflict struct {
	Head      Symbol
	Lookahead Symbol
	First     Sequence
	Second    Sequence
}

func (c Conflict) Error() string {
	return fmt.Sprintf("LL(1) conflict on %s with lookahead %s: %q vs %q",
		c.Head, c.Lookahead, c.First, c.Second)
}

// Table is the LL(1) parse table: for a non-terminal and a lookahead
// terminal (or EndOfInput), it names the alternative to expand.
type Table map[Symbol]map[Symbol]Sequence

// BuildTable constructs the LL(1) table for g: for each alternative
// alpha of a non-terminal, every terminal in
// FIRST(alpha) (and, if alpha is nullable, every terminal in
// FOLLOW(head)) is mapped to alpha. A second alternative attempting to
// claim an already-mapped cell is reported as a Conflict instead of
// silently overwriting it.
func BuildTable(g *Grammar, first FirstSets, follow FollowSets) (Table, []Conflict) {
	table := make(Table, len(g.Nonterminals))
	var conflicts []Conflict

	for head, alts := range g.Productions {
		table[head] = make(map[Symbol]Sequence)

		for _, alt := range alts {
			lookaheads := tableEntries(first, follow, head, alt)
			for _, la := range lookaheads {
				if existing, ok := table[head][la]; ok {
					conflicts = append(conflicts, Conflict{Head: head, Lookahead: la, First: existing, Second: alt})
					continue
				}
				table[head][la] = alt
			}
		}
	}

	return table, conflicts
}

func tableEntries(first FirstSets, follow FollowSets, head Symbol, alt Sequence) []Symbol {
	result := linkedhashset.New()

	if len(alt) > 0 && alt[0] == Epsilon {
		addAll(result, follow[head])
		return SymbolList(result)
	}

	for i, sym := range alt {
		symFirst, ok := first[sym]
		if !ok {
			break
		}
		addAllExceptEpsilon(result, symFirst)
		if !has(symFirst, Epsilon) {
			break
		}
		if i == len(alt)-1 {
			addAll(result, follow[head])
		}
	}

	return SymbolList(result)
}
