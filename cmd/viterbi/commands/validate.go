package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

func newValidateCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a model file",
		Long: `Load the model given with -m and report every defect at once:
duplicate or unknown states, empty labels, negative or non-finite weights.

With --json a document is printed either way:
  {"valid": true, "states": N, "observations": M}
  {"valid": false, "errors": ["...", ...]}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			m, err := g.loadModel()
			if err != nil {
				if g.outputJSON {
					if jerr := writeInvalid(out, err); jerr != nil {
						return multierror.Append(err, jerr)
					}
				}
				return err
			}

			if g.outputJSON {
				return json.NewEncoder(out).Encode(map[string]any{
					"valid":        true,
					"states":       len(m.States),
					"observations": len(m.Emission),
				})
			}
			fmt.Fprintf(out, "ok\tstates=%d\tobservations=%d\n", len(m.States), len(m.Emission))

			return nil
		},
	}
}

// writeInvalid prints the failure document, one entry per aggregated defect.
func writeInvalid(w io.Writer, err error) error {
	msgs := []string{err.Error()}
	var merr *multierror.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		msgs = make([]string, len(merr.Errors))
		for i, e := range merr.Errors {
			msgs[i] = e.Error()
		}
	}

	return json.NewEncoder(w).Encode(map[string]any{
		"valid":  false,
		"errors": msgs,
	})
}
