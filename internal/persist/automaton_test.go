package persist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Leviosar/autome/internal/automata"
	"github.com/Leviosar/autome/internal/regex"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	node, err := regex.Parse("(a|b)*c")
	require.NoError(t, err)
	nfa := automata.Build(node)
	automata.MarkAccepting(nfa, "MATCH", 0)
	dfa := automata.Minimize(automata.Subset(nfa))

	path := filepath.Join(t.TempDir(), "automaton.json")
	require.NoError(t, Save(path, dfa))

	loaded, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, len(dfa.States), len(loaded.States))
	for word, want := range map[string]bool{
		"c":       true,
		"abababc": true,
		"ab":      false,
		"":        false,
	} {
		require.Equal(t, want, loaded.Accepts(word), "word %q", word)
	}
}
