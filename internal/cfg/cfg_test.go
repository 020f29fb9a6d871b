package cfg

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// expressionGrammar builds the classic left-recursive arithmetic
// expression grammar:
//
//	E  -> E + T | T
//	T  -> T * F | F
//	F  -> ( E ) | id
func expressionGrammar() *Grammar {
	return &Grammar{
		Nonterminals: []Symbol{"E", "T", "F"},
		Terminals:    []Symbol{"+", "*", "(", ")", "id"},
		Initial:      "E",
		Productions: map[Symbol][]Sequence{
			"E": {{"E", "+", "T"}, {"T"}},
			"T": {{"T", "*", "F"}, {"F"}},
			"F": {{"(", "E", ")"}, {"id"}},
		},
	}
}

func TestEliminateLeftRecursionRemovesDirectRecursion(t *testing.T) {
	g := expressionGrammar()
	out := EliminateLeftRecursion(g)

	for _, nt := range []Symbol{"E", "T"} {
		for _, alt := range out.Productions[nt] {
			require.NotEqual(t, nt, alt[0], "non-terminal %s still left-recursive", nt)
		}
	}
	require.Contains(t, out.Nonterminals, Symbol("E'"))
	require.Contains(t, out.Nonterminals, Symbol("T'"))
}

func TestEliminateLeftRecursionPreservesLanguageViaTable(t *testing.T) {
	g := expressionGrammar()
	out := EliminateLeftRecursion(g)

	first := ComputeFirst(out)
	follow := ComputeFollow(out, first)
	table, conflicts := BuildTable(out, first, follow)
	require.Empty(t, conflicts)

	rec := NewRecognizer(out, table)
	require.True(t, rec.Accept("id + id * id"))
	require.True(t, rec.Accept("( id + id ) * id"))
	require.False(t, rec.Accept("id +"))
	require.False(t, rec.Accept("+ id"))
}

func directFactorGrammar() *Grammar {
	return &Grammar{
		Nonterminals: []Symbol{"S"},
		Terminals:    []Symbol{"a", "b", "c"},
		Initial:      "S",
		Productions: map[Symbol][]Sequence{
			"S": {{"a", "b"}, {"a", "c"}},
		},
	}
}

func TestLeftFactorDirectCommonPrefix(t *testing.T) {
	g := directFactorGrammar()
	out, converged := LeftFactor(g, DefaultFactorConfig())
	require.True(t, converged)

	sAlts := out.Productions["S"]
	require.Len(t, sAlts, 1)
	require.Equal(t, Symbol("a"), sAlts[0][0])

	factored := sAlts[0][1]
	require.Contains(t, out.Productions, factored)
	require.ElementsMatch(t, []Sequence{{"b"}, {"c"}}, out.Productions[factored])
}

func TestLeftFactorDirectFactorGrammarStillAccepts(t *testing.T) {
	g := directFactorGrammar()
	out, _ := LeftFactor(g, DefaultFactorConfig())

	first := ComputeFirst(out)
	follow := ComputeFollow(out, first)
	table, conflicts := BuildTable(out, first, follow)
	require.Empty(t, conflicts)

	rec := NewRecognizer(out, table)
	require.True(t, rec.Accept("a b"))
	require.True(t, rec.Accept("a c"))
	require.False(t, rec.Accept("a"))
	require.False(t, rec.Accept("b"))
}

func TestComputeFirstOnExpressionGrammar(t *testing.T) {
	g := expressionGrammar()
	first := ComputeFirst(g)
	for _, nt := range []Symbol{"E", "T", "F"} {
		firsts := SymbolList(first[nt])
		require.Contains(t, firsts, Symbol("("))
		require.Contains(t, firsts, Symbol("id"))
	}
}

func TestComputeFollowOnExpressionGrammar(t *testing.T) {
	g := expressionGrammar()
	first := ComputeFirst(g)
	follow := ComputeFollow(g, first)

	eFollow := SymbolList(follow["E"])
	require.Contains(t, eFollow, EndOfInput)
	require.Contains(t, eFollow, Symbol(")"))
	require.Contains(t, eFollow, Symbol("+"))
}

func TestBuildTableDetectsConflict(t *testing.T) {
	g := &Grammar{
		Nonterminals: []Symbol{"S"},
		Terminals:    []Symbol{"a"},
		Initial:      "S",
		Productions: map[Symbol][]Sequence{
			"S": {{"a"}, {"a"}},
		},
	}
	first := ComputeFirst(g)
	follow := ComputeFollow(g, first)
	_, conflicts := BuildTable(g, first, follow)
	require.NotEmpty(t, conflicts)
}

func TestLoadGrammarFromJSON(t *testing.T) {
	path := writeTempGrammar(t, `{
		"grammar": {
			"nonterminals": ["S"],
			"terminals": ["a", "b"],
			"initial": "S",
			"productions": [
				{"head": "S", "body": "a S|b"}
			]
		}
	}`)

	g, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Symbol("S"), g.Initial)
	require.Len(t, g.Productions["S"], 2)
}

func writeTempGrammar(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := dir + "/grammar.json"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
