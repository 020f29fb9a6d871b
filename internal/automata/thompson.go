package automata

import "github.com/Leviosar/autome/internal/regex"

// Build performs Thompson construction over a regex AST, returning a
// fresh NFA fragment for the whole expression.
func Build(node *regex.Node) *NFA {
	switch node.Kind {
	case regex.KindLiteral:
		return literal(node.Char)
	case regex.KindEpsilon:
		return epsilon()
	case regex.KindConcat:
		return concat(Build(node.Left), Build(node.Right))
	case regex.KindUnion:
		return union(Build(node.Left), Build(node.Right))
	case regex.KindStar:
		return kleeneStar(Build(node.Left))
	case regex.KindPlus:
		return positiveClosure(Build(node.Left))
	default:
		panic("automata: unhandled regex node kind")
	}
}

func literal(c rune) *NFA {
	n := newArena()
	start := n.addState()
	accept := n.addState()
	n.addTransition(start, c, accept)
	n.Start, n.Accept = start, accept
	return n
}

func epsilon() *NFA {
	n := newArena()
	start := n.addState()
	accept := n.addState()
	n.addEpsilon(start, accept)
	n.Start, n.Accept = start, accept
	return n
}

// concat splices b after a by rewiring every transition that originates
// from b's initial state so that it instead originates from a's
// accepting state. A self-loop on b's initial state is remapped to a's
// accepting state rather than left dangling. b's initial state is then
// discarded, and a's accepting state stops being distinguished (it is
// just an ordinary state now that b's outgoing edges live on it).
//
// This rewiring keeps the state count tight compared to the simpler
// epsilon-splice that just adds a new edge a.Accept -> b.Start; the two
// are language equivalent, but this one avoids growing the automaton by
// one state per concatenation.
func concat(a, b *NFA) *NFA {
	result := newArena()
	aStart, aAccept := result.merge(a)
	bStart, bAccept := result.merge(b)

	bInit := result.States[bStart]
	for r, targets := range bInit.Transitions {
		for target := range targets {
			dest := target
			if dest == bStart {
				dest = aAccept
			}
			result.addTransition(aAccept, r, dest)
		}
	}
	for target := range bInit.Epsilon {
		dest := target
		if dest == bStart {
			dest = aAccept
		}
		result.addEpsilon(aAccept, dest)
	}

	delete(result.States, bStart)

	result.Start = aStart
	result.Accept = bAccept
	return result
}

func union(a, b *NFA) *NFA {
	result := newArena()
	aStart, aAccept := result.merge(a)
	bStart, bAccept := result.merge(b)

	newStart := result.addState()
	newAccept := result.addState()
	result.addEpsilon(newStart, aStart)
	result.addEpsilon(newStart, bStart)
	result.addEpsilon(aAccept, newAccept)
	result.addEpsilon(bAccept, newAccept)

	result.Start, result.Accept = newStart, newAccept
	return result
}

func kleeneStar(a *NFA) *NFA {
	result := newArena()
	aStart, aAccept := result.merge(a)

	newStart := result.addState()
	newAccept := result.addState()
	result.addEpsilon(newStart, aStart)
	result.addEpsilon(newStart, newAccept)
	result.addEpsilon(aAccept, aStart)
	result.addEpsilon(aAccept, newAccept)

	result.Start, result.Accept = newStart, newAccept
	return result
}

func positiveClosure(a *NFA) *NFA {
	result := newArena()
	aStart, aAccept := result.merge(a)

	newStart := result.addState()
	newAccept := result.addState()
	result.addEpsilon(newStart, aStart)
	result.addEpsilon(aAccept, aStart)
	result.addEpsilon(aAccept, newAccept)

	result.Start, result.Accept = newStart, newAccept
	return result
}
