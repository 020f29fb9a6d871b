package lexspec

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/Leviosar/autome/internal/diagnostics"
)

type wireDefinition struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
}

type wireSpec struct {
	ReservedKeywords []string         `json:"reserved-keywords"`
	Definitions      []wireDefinition `json:"definitions"`
	Tokens           []wireDefinition `json:"tokens"`
}

// Load reads and parses a lexical spec JSON file at path with the shape
// {"reserved-keywords": [...], "definitions": [...], "tokens": [...]}.
func Load(path string) (*Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &diagnostics.SpecLoadError{Path: path, Err: err}
	}

	var w wireSpec
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &diagnostics.SpecLoadError{Path: path, Err: err}
	}

	spec := &Spec{Reserved: w.ReservedKeywords}
	for _, d := range w.Definitions {
		spec.Definitions = append(spec.Definitions, Definition{Name: d.Name, Expression: d.Expression})
	}
	for _, t := range w.Tokens {
		spec.Tokens = append(spec.Tokens, Definition{Name: t.Name, Expression: t.Expression})
	}

	return spec, nil
}

// ExpandedTokens returns the spec's token definitions with every
// occurrence of a regular-definition name, and every preceding token's
// name, substituted by its own expression wrapped in parentheses. Tokens
// are expanded in declaration order so a later token may reference an
// earlier one.
func (s *Spec) ExpandedTokens() []Definition {
	expanded := make([]Definition, 0, len(s.Tokens))
	resolved := append([]Definition{}, s.Definitions...)

	for _, tok := range s.Tokens {
		expr := tok.Expression
		for _, def := range resolved {
			expr = substituteWholeWord(expr, def.Name, "("+def.Expression+")")
		}
		expanded = append(expanded, Definition{Name: tok.Name, Expression: expr})
		resolved = append(resolved, Definition{Name: tok.Name, Expression: expr})
	}

	return expanded
}

// substituteWholeWord replaces occurrences of name in expr, guarding
// against replacing a name that is itself a substring of a longer
// identifier already present in expr.
func substituteWholeWord(expr, name, replacement string) string {
	if !strings.Contains(expr, name) {
		return expr
	}
	var b strings.Builder
	for i := 0; i < len(expr); {
		if strings.HasPrefix(expr[i:], name) &&
			(i == 0 || !isIdentRune(rune(expr[i-1]))) &&
			(i+len(name) == len(expr) || !isIdentRune(rune(expr[i+len(name)]))) {
			b.WriteString(replacement)
			i += len(name)
			continue
		}
		b.WriteByte(expr[i])
		i++
	}
	return b.String()
}

func isIdentRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
