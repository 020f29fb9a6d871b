// Command lexico compiles a lexical specification into a labeled DFA and
// tokenizes a source file against it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Leviosar/autome/internal/diagnostics"
	"github.com/Leviosar/autome/internal/lexspec"
	"github.com/Leviosar/autome/internal/persist"
)

func main() {
	var debug bool
	var output string

	cmd := &cobra.Command{
		Use:   "lexico <spec-file> <source-file>",
		Short: "Compile a lexical spec and tokenize a source file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(debug)
			defer logger.Sync()

			spec, err := lexspec.Load(args[0])
			if err != nil {
				return err
			}

			dfa, err := lexspec.Compile(spec, logger)
			if err != nil {
				return err
			}

			source, err := os.ReadFile(args[1])
			if err != nil {
				return &diagnostics.SpecLoadError{Path: args[1], Err: err}
			}

			tokenizer := lexspec.NewTokenizer(dfa, spec.Reserved)
			tokens, err := tokenizer.Tokenize(string(source))
			if err != nil {
				return err
			}

			for _, tok := range tokens {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n", tok.Type, tok.Value)
			}

			if output != "" {
				if err := persist.Save(output, dfa); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "raise logging to debug level")
	cmd.Flags().StringVar(&output, "output", "", "persist the compiled DFA to this path")

	if err := cmd.Execute(); err != nil {
		diagnostics.Render(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(debug bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}
