// Package main provides the viterbi CLI.
//
// Usage:
//
//	viterbi [flags] <command> [args]
//
// Commands:
//
//	decode   - tag an observation sequence with the most probable states
//	validate - check a model file and report every defect
//
// Models are YAML or JSON files, see package modelfile.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/viterbi/cmd/viterbi/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
