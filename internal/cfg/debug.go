package cfg

import "go.uber.org/zap"

// LogFirstSets writes FIRST(X) for every non-terminal at Debug level.
func LogFirstSets(logger *zap.SugaredLogger, g *Grammar, first FirstSets) {
	for _, nt := range g.Nonterminals {
		logger.Debugw("first set", "nonterminal", string(nt), "first", SymbolList(first[nt]))
	}
}

// LogFollowSets writes FOLLOW(X) for every non-terminal at Debug level.
func LogFollowSets(logger *zap.SugaredLogger, g *Grammar, follow FollowSets) {
	for _, nt := range g.Nonterminals {
		logger.Debugw("follow set", "nonterminal", string(nt), "follow", SymbolList(follow[nt]))
	}
}

// LogTable writes every table cell at Debug level.
func LogTable(logger *zap.SugaredLogger, table Table) {
	for head, row := range table {
		for lookahead, alt := range row {
			logger.Debugw("table entry", "head", string(head), "lookahead", string(lookahead), "production", alt.String())
		}
	}
}

// LogGrammar writes every production at Debug level.
func LogGrammar(logger *zap.SugaredLogger, g *Grammar) {
	for _, nt := range g.Nonterminals {
		for _, alt := range g.Productions[nt] {
			logger.Debugw("production", "head", string(nt), "body", alt.String())
		}
	}
}
