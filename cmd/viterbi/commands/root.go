package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/viterbi/hmm"
	"github.com/katalvlaran/viterbi/modelfile"
)

const appName = "viterbi"

// globalOptions carries the persistent flags and the logger shared by all
// subcommands of one root command.
type globalOptions struct {
	modelPath  string
	outputJSON bool
	verbose    bool

	logger *zap.Logger
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return newRootCmd(nil).Execute()
}

// newRootCmd builds a fresh command tree. A nil logger means one is built
// from the --verbose flag when a command runs.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	g := &globalOptions{logger: logger}

	root := &cobra.Command{
		Use:   appName,
		Short: "Most probable hidden state sequence for an HMM",
		Long: `viterbi - decode observation sequences with a first-order Hidden Markov Model.

The model (states, initial, transition and emission weights) is read from a
YAML or JSON file. Weights are plain scores and are multiplied as given.

Examples:
  # Tag a sentence
  viterbi -m testdata/tagger.yaml decode iron shaped cloth

  # Fail instead of treating unknown words as weight 0
  viterbi -m testdata/tagger.yaml decode --strict iron shaped cloth

  # Dump the full lattice for debugging
  viterbi -m testdata/tagger.yaml decode --lattice iron shaped cloth

  # Check a model file
  viterbi -m testdata/tagger.yaml validate
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.logger != nil {
				return nil
			}
			l, err := newLogger(g.verbose)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			g.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.logger != nil {
				_ = g.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&g.modelPath, "model", "m", "", "model file (YAML or JSON)")
	root.PersistentFlags().BoolVar(&g.outputJSON, "json", false, "output as JSON (for piping)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log every lattice layer")

	root.AddCommand(newDecodeCmd(g))
	root.AddCommand(newValidateCmd(g))

	return root
}

// newLogger returns a console logger on stderr: debug level when verbose,
// warnings and above otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true

	return cfg.Build()
}

// loadModel reads the --model file.
func (g *globalOptions) loadModel() (*hmm.Model, error) {
	if g.modelPath == "" {
		return nil, fmt.Errorf("model file is required, use -m flag")
	}
	m, err := modelfile.Load(g.modelPath)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("model loaded",
		zap.String("path", g.modelPath),
		zap.Int("states", len(m.States)),
		zap.Int("vocabulary", len(m.Emission)),
	)

	return m, nil
}
