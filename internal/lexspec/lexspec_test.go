package lexspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func exampleSpec() *Spec {
	return &Spec{
		Reserved: []string{"if", "else"},
		Definitions: []Definition{
			{Name: "digit", Expression: "0|1|2|3|4|5|6|7|8|9"},
		},
		Tokens: []Definition{
			{Name: "NUMBER", Expression: "digit+"},
			{Name: "IDENT", Expression: "(a|b|c)+"},
		},
	}
}

func TestExpandedTokensSubstitutesDefinitions(t *testing.T) {
	s := exampleSpec()
	expanded := s.ExpandedTokens()
	require.Len(t, expanded, 2)
	require.Equal(t, "NUMBER", expanded[0].Name)
	require.Contains(t, expanded[0].Expression, "(0|1|2|3|4|5|6|7|8|9)")
}

func TestExpandedTokensCanReferenceEarlierTokens(t *testing.T) {
	s := &Spec{
		Tokens: []Definition{
			{Name: "DIGIT", Expression: "0|1"},
			{Name: "PAIR", Expression: "DIGIT DIGIT"},
		},
	}
	expanded := s.ExpandedTokens()
	require.Contains(t, expanded[1].Expression, "(0|1)")
}

func TestCompileAndTokenize(t *testing.T) {
	s := exampleSpec()
	dfa, err := Compile(s, nil)
	require.NoError(t, err)

	tok := NewTokenizer(dfa, s.Reserved)
	tokens, err := tok.Tokenize("if abc 123")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.Equal(t, "keyword", tokens[0].Type)
	require.Equal(t, "if", tokens[0].Value)
	require.Equal(t, "IDENT", tokens[1].Type)
	require.Equal(t, "NUMBER", tokens[2].Type)
}

func TestTokenizeReportsLexicalError(t *testing.T) {
	s := exampleSpec()
	dfa, err := Compile(s, nil)
	require.NoError(t, err)

	tok := NewTokenizer(dfa, s.Reserved)
	_, err = tok.Tokenize("abc $$$")
	require.Error(t, err)
}

func TestTokenizeTracksLineAndColumn(t *testing.T) {
	s := exampleSpec()
	dfa, err := Compile(s, nil)
	require.NoError(t, err)

	tok := NewTokenizer(dfa, s.Reserved)
	tokens, err := tok.Tokenize("abc\n123")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	require.Equal(t, 1, tokens[0].Line)
	require.Equal(t, 2, tokens[1].Line)
	require.Equal(t, 1, tokens[1].Column)
}
