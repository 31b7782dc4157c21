package main

import (
	"fmt"
	"os"

	"github.com/gordian-engine/gdbc/gcontract"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var probes []string

	cmd := &cobra.Command{
		Use: "rules FILE [--probe SCOPE]...",

		Short: "Validate a scope rules file",

		Long: `rules parses FILE as one scope rule per line,
ignoring blank lines and lines starting with "#".

Rules match dot-separated scopes:
  *          enables every scope
  a.b.*      enables every scope below a.b
  !a.b.c     excludes a.b.c from a wildcard
  a.b.c      enables exactly a.b.c

Each --probe SCOPE is reported as enabled or disabled under the rules.
`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open rules file: %w", err)
			}
			defer f.Close()

			rs, err := gcontract.ReadRules(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if rs.Empty() {
				fmt.Fprintf(out, "%s: valid, enables nothing\n", args[0])
			} else {
				fmt.Fprintf(out, "%s: valid\n", args[0])
			}

			for _, p := range probes {
				state := "disabled"
				if rs.Enabled(p) {
					state = "enabled"
				}
				fmt.Fprintf(out, "%s: %s\n", p, state)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&probes, "probe", nil, "scope to evaluate against the rules (repeatable)")

	return cmd
}
