package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/viterbi/hmm"
	"github.com/katalvlaran/viterbi/viterbi"
)

type decodeOptions struct {
	strict  bool
	workers int
	lattice bool
}

// decodeOutput is the --json form of a decode.
type decodeOutput struct {
	Observations []hmm.Observation `json:"observations"`
	Path         []hmm.State       `json:"path"`
	Score        float64           `json:"score"`
	Lattice      *viterbi.Lattice  `json:"lattice,omitempty"`
}

func newDecodeCmd(g *globalOptions) *cobra.Command {
	o := &decodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode [observation...]",
		Short: "Decode the most probable state sequence",
		Long: `Decode the most probable state sequence for the given observations.

Observations are taken from the arguments, or read from stdin (separated by
whitespace) when no argument is given. Each output line pairs an observation
with its decoded state; the last line holds the path score.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, g, o, args)
		},
	}

	cmd.Flags().BoolVar(&o.strict, "strict", false, "fail on missing model entries instead of using weight 0")
	cmd.Flags().IntVarP(&o.workers, "workers", "w", 1, "nodes computed concurrently per lattice layer")
	cmd.Flags().BoolVar(&o.lattice, "lattice", false, "also print the full lattice")

	return cmd
}

func runDecode(cmd *cobra.Command, g *globalOptions, o *decodeOptions, args []string) error {
	m, err := g.loadModel()
	if err != nil {
		return err
	}

	obs, err := readObservations(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	opts := []viterbi.Option{viterbi.WithWorkers(o.workers)}
	if o.strict {
		opts = append(opts, viterbi.WithStrict())
	}
	if o.lattice {
		opts = append(opts, viterbi.WithLattice())
	}
	if g.logger.Core().Enabled(zapcore.DebugLevel) {
		opts = append(opts, viterbi.WithOnLayer(layerLogger(g.logger)))
	}

	start := time.Now()
	res, err := viterbi.DecodeModel(m, obs, opts...)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	g.logger.Debug("decoded",
		zap.Int("observations", len(obs)),
		zap.Float64("score", res.Score),
		zap.Duration("elapsed", time.Since(start)),
	)
	if len(obs) > 0 && res.Score == 0 {
		g.logger.Warn("every path scores 0; the result is the first state in each tie",
			zap.Int("observations", len(obs)))
	}

	out := cmd.OutOrStdout()
	if g.outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(decodeOutput{
			Observations: obs,
			Path:         res.Path,
			Score:        res.Score,
			Lattice:      res.Lattice,
		})
	}

	for i, s := range res.Path {
		fmt.Fprintf(out, "%s\t%s\n", obs[i], s)
	}
	fmt.Fprintf(out, "score\t%g\n", res.Score)
	if res.Lattice != nil {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(res.Lattice); err != nil {
			return fmt.Errorf("failed to write lattice: %w", err)
		}
		return enc.Close()
	}

	return nil
}

// readObservations returns args, or the whitespace-separated words of r
// when args is empty.
func readObservations(r io.Reader, args []string) ([]hmm.Observation, error) {
	obs := make([]hmm.Observation, 0, len(args))
	if len(args) > 0 {
		for _, a := range args {
			obs = append(obs, hmm.Observation(a))
		}
		return obs, nil
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		obs = append(obs, hmm.Observation(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read observations: %w", err)
	}

	return obs, nil
}

// layerLogger logs each completed layer at debug level.
func layerLogger(logger *zap.Logger) func(pos int, layer []viterbi.Node) {
	return func(pos int, layer []viterbi.Node) {
		scores := make([]float64, len(layer))
		best := 0
		for j, n := range layer {
			scores[j] = n.Score
			if n.Score > layer[best].Score {
				best = j
			}
		}
		logger.Debug("layer",
			zap.Int("pos", pos),
			zap.String("observation", string(layer[best].Observation)),
			zap.Float64s("scores", scores),
			zap.String("leader", string(layer[best].State)),
		)
	}
}
