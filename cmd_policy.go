package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gordian-engine/gdbc/gcontract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPolicyCmd(v *viper.Viper) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use: "policy [--all]",

		Short: "Print the build flags and the operations they enable",

		Long: `policy prints the build tags this binary was compiled with
(debug, messaging, notrap) and the facility operations they enable.

With --all, every combination of tags is listed, and the current one is highlighted.
`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			cur := gcontract.CurrentFlags()
			out := cmd.OutOrStdout()

			if !all {
				fmt.Fprintf(out, "flags: %s\n", cur)
				fmt.Fprintf(out, "operations: %s\n", cur.Operations())
				return nil
			}

			hl := color.New(color.FgGreen, color.Bold)
			if v.GetBool(flagColor) {
				hl.EnableColor()
			} else {
				hl.DisableColor()
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "\tDEBUG\tMESSAGING\tNOTRAP\tOPERATIONS")
			for _, f := range gcontract.AllFlags() {
				marker, ops := "", f.Operations().String()
				if f == cur {
					// Only the last cell is coloured, so escapes do not skew the column widths.
					marker, ops = "*", hl.Sprint(ops)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", marker, yesNo(f.Debug), yesNo(f.Messaging), yesNo(f.NoTrap), ops)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every combination of build flags")

	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
