// Command sin loads a context-free grammar, normalizes it into LL(1)
// form, and reports whether a sentence read from stdin is accepted.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Leviosar/autome/internal/cfg"
	"github.com/Leviosar/autome/internal/diagnostics"
)

func main() {
	var debug bool

	cmd := &cobra.Command{
		Use:   "sin <grammar-file>",
		Short: "Build an LL(1) table and recognize a sentence from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(debug)
			defer logger.Sync()

			grammar, err := cfg.Load(args[0])
			if err != nil {
				return err
			}

			normalized := cfg.EliminateLeftRecursion(grammar)
			factorConfig := cfg.DefaultFactorConfig()
			factored, converged := cfg.LeftFactor(normalized, factorConfig)
			if !converged {
				return diagnostics.NewBuildFailure("left factoring",
					fmt.Errorf("no fixed point within %d iterations", factorConfig.MaxIterations))
			}

			first := cfg.ComputeFirst(factored)
			follow := cfg.ComputeFollow(factored, first)
			cfg.LogFirstSets(logger, factored, first)
			cfg.LogFollowSets(logger, factored, follow)

			table, conflicts := cfg.BuildTable(factored, first, follow)
			if len(conflicts) > 0 {
				causes := make([]error, len(conflicts))
				for i, c := range conflicts {
					causes[i] = c
				}
				return diagnostics.NewBuildFailure("LL(1) table construction", causes...)
			}
			cfg.LogTable(logger, table)

			reader := bufio.NewReader(cmd.InOrStdin())
			sentence, _ := reader.ReadString('\n')

			recognizer := cfg.NewRecognizer(factored, table)
			if recognizer.Accept(sentence) {
				fmt.Fprintln(cmd.OutOrStdout(), "accept")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "reject")
			return diagnostics.NewSyntaxError("sentence rejected by the LL(1) recognizer")
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "raise logging to debug level")

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
