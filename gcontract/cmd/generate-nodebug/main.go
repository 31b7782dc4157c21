// Command generate-nodebug writes the release-build twin of a debug-only Go file.
//
// It is meant to be run from go:generate:
//
//	//go:generate go run github.com/gordian-engine/gdbc/gcontract/cmd/generate-nodebug contract_debug.go
//
// which writes contract_nodebug.go next to contract_debug.go.
// See package github.com/gordian-engine/gdbc/internal/gnodebug for the rewriting rules.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gordian-engine/gdbc/internal/gnodebug"
	"github.com/spf13/cobra"
)

func main() {
	if err := mainE(); err != nil {
		os.Exit(1)
	}
}

func mainE() error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := newRootCmd(log).Execute(); err != nil {
		log.Info("Failure", "err", err)
		return err
	}
	return nil
}

func newRootCmd(log *slog.Logger) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use: "generate-nodebug DEBUG_FILE.go",

		Short: "Write the non-debug twin of a debug-only Go file",

		Long: `generate-nodebug reads a Go file guarded by a build constraint,
and writes a file guarded by the negated constraint,
in which every top-level function keeps its signature but has an empty body.

By default, x_debug.go is written to x_nodebug.go and x_on.go to x_off.go.
`,

		Args: cobra.ExactArgs(1),

		SilenceUsage: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			if out == "" {
				out = gnodebug.OutputName(in)
			}

			src, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			res, err := gnodebug.Generate(in, src)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, res, 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			log.Debug("Wrote twin", "in", in, "out", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default derived from the input name)")

	return cmd
}
