package lexspec

import (
	"go.uber.org/zap"

	"github.com/Leviosar/autome/internal/automata"
	"github.com/Leviosar/autome/internal/diagnostics"
	"github.com/Leviosar/autome/internal/regex"
)

// Compile builds the single labeled DFA for s: each token's expression,
// after definition substitution, is parsed and Thompson-constructed,
// then every fragment is composed with ComposeLabeled (earliest declared
// wins) and reduced by subset construction and minimization.
func Compile(s *Spec, logger *zap.SugaredLogger) (*automata.DFA, error) {
	expanded := s.ExpandedTokens()
	fragments := make([]automata.Fragment, 0, len(expanded))

	var errs []error
	for _, tok := range expanded {
		node, err := regex.Parse(tok.Expression)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fragments = append(fragments, automata.Fragment{Label: tok.Name, NFA: automata.Build(node)})
	}
	if len(errs) > 0 {
		return nil, diagnostics.NewBuildFailure("lexical spec compilation", errs...)
	}

	composed := automata.ComposeLabeled(fragments)
	if logger != nil {
		logger.Debugw("composed token NFA", "states", composed.StateCount())
	}

	dfa := automata.Minimize(automata.Subset(composed))
	if logger != nil {
		logger.Debugw("minimized labeled DFA", "states", len(dfa.States))
	}

	return dfa, nil
}
