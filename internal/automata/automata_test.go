package automata

import (
	"testing"

	"github.com/Leviosar/autome/internal/regex"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, pattern string) *DFA {
	t.Helper()
	node, err := regex.Parse(pattern)
	require.NoError(t, err)
	nfa := Build(node)
	MarkAccepting(nfa, "MATCH", 0)
	return Minimize(Subset(nfa))
}

func TestLiteralAccepts(t *testing.T) {
	d := build(t, "a")
	require.True(t, d.Accepts("a"))
	require.False(t, d.Accepts("b"))
	require.False(t, d.Accepts(""))
	require.False(t, d.Accepts("aa"))
}

func TestConcatAccepts(t *testing.T) {
	d := build(t, "ab")
	require.True(t, d.Accepts("ab"))
	require.False(t, d.Accepts("a"))
	require.False(t, d.Accepts("b"))
	require.False(t, d.Accepts("ba"))
}

func TestUnionAccepts(t *testing.T) {
	d := build(t, "a|b")
	require.True(t, d.Accepts("a"))
	require.True(t, d.Accepts("b"))
	require.False(t, d.Accepts("c"))
	require.False(t, d.Accepts("ab"))
}

func TestKleeneStarAcceptsEmpty(t *testing.T) {
	d := build(t, "a*")
	require.True(t, d.Accepts(""))
	require.True(t, d.Accepts("a"))
	require.True(t, d.Accepts("aaaa"))
	require.False(t, d.Accepts("b"))
}

func TestPositiveClosureRejectsEmpty(t *testing.T) {
	d := build(t, "a+")
	require.False(t, d.Accepts(""))
	require.True(t, d.Accepts("a"))
	require.True(t, d.Accepts("aaa"))
}

func TestEpsilonAcceptsOnlyEmpty(t *testing.T) {
	d := build(t, "&")
	require.True(t, d.Accepts(""))
	require.False(t, d.Accepts("a"))
}

func TestComplexExpression(t *testing.T) {
	d := build(t, "(a|b)*c")
	require.True(t, d.Accepts("c"))
	require.True(t, d.Accepts("abababc"))
	require.False(t, d.Accepts("ab"))
	require.False(t, d.Accepts(""))
}

func TestConcatSplicesAcceptingStateOfA(t *testing.T) {
	// Concat of two literals should produce a 3-state minimal DFA:
	// start -a-> mid -b-> accept. This checks the size of the result of
	// concat() after subset construction and minimization, not just its
	// language.
	node, err := regex.Parse("ab")
	require.NoError(t, err)
	nfa := Build(node)
	MarkAccepting(nfa, "MATCH", 0)
	d := Minimize(Subset(nfa))
	require.Len(t, d.States, 3)
}

func TestConcatOperandReusedUnderFurtherOperators(t *testing.T) {
	// A Concat fragment nested as the operand of a further Kleene/Concat
	// exercises the arena allocator across two deletes in the same NFA:
	// concat() deletes one state per call, and without a monotonic ID
	// counter a subsequent addState() could hand out a deleted ID again.
	star := build(t, "(ab)*")
	require.True(t, star.Accepts(""))
	require.True(t, star.Accepts("ab"))
	require.True(t, star.Accepts("abab"))
	require.False(t, star.Accepts("a"))
	require.False(t, star.Accepts("aba"))

	seq := build(t, "(ab)c")
	require.True(t, seq.Accepts("abc"))
	require.False(t, seq.Accepts("ab"))
	require.False(t, seq.Accepts("abcc"))
}

func TestMinimizeDropsUnreachableAndDeadStates(t *testing.T) {
	raw := &DFA{
		Start: "s0",
		States: map[string]*DFAState{
			"s0":      {Name: "s0", Transitions: map[rune]string{'a': "s1"}},
			"s1":      {Name: "s1", Accepting: true, Label: "A"},
			"unreach": {Name: "unreach", Accepting: true},
			"dead":    {Name: "dead"},
		},
	}
	raw.States["s0"].Transitions['b'] = "dead"

	min := Minimize(raw)
	require.Len(t, min.States, 2)
	for _, st := range min.States {
		for _, target := range st.Transitions {
			_, ok := min.States[target]
			require.True(t, ok)
		}
	}
}

func TestComposeLabeledEarliestDeclaredWins(t *testing.T) {
	// Two fragments that both accept the literal word "if": the
	// earlier-declared one in the fragments slice must win the label.
	ifNode, err := regex.Parse("if")
	require.NoError(t, err)
	keyword := Build(ifNode)

	ident, err := regex.Parse("if")
	require.NoError(t, err)
	identNFA := Build(ident)

	composed := ComposeLabeled([]Fragment{
		{Label: "KEYWORD_IF", NFA: keyword},
		{Label: "IDENT", NFA: identNFA},
	})
	dfa := Minimize(Subset(composed))
	require.True(t, dfa.Accepts("if"))

	current := dfa.Start
	for _, r := range "if" {
		current = dfa.Step(current, r)
	}
	require.Equal(t, "KEYWORD_IF", dfa.States[current].Label)
}
