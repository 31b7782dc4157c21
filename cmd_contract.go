package main

import (
	"fmt"

	"github.com/gordian-engine/gdbc/gcontract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newContractCmd(v *viper.Viper) *cobra.Command {
	var (
		kind      string
		threshold int
		cond      bool
		message   string
	)

	cmd := &cobra.Command{
		Use: "contract --condition=BOOL [--kind KIND] [--threshold N] [--message TEXT]",

		Short: "Evaluate one contract through a configured environment",

		Long: `contract builds an environment from the configuration
and evaluates a single contract check in it.

The check is skipped when the configured intensity is below --threshold.
A failing check is logged and terminates the process
with exit code 2, after trapping according to the trap policy.

The environment is always available,
so this command works whether or not the binary was built with the debug tag.
`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := gcontract.ParseKind(kind)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			opts, err := cfg.Options(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			env, err := gcontract.NewEnvironment(opts...)
			if err != nil {
				return err
			}

			t := gcontract.Intensity(threshold)
			out := cmd.OutOrStdout()
			if !env.Active(t) {
				fmt.Fprintf(out, "gated out: intensity %d is below threshold %d\n", env.Intensity(), t)
				return nil
			}

			c := gcontract.CallerAt(0)
			env.Contract(k, t, cond, fmt.Sprintf("condition=%t", cond), message, c.File, c.Line)

			fmt.Fprintf(out, "held: %s at intensity %d\n", k.Label(), env.Intensity())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&kind, "kind", "require", "contract kind (require|check|ensure|assertion)")
	f.IntVar(&threshold, "threshold", 0, "intensity the contract is declared at")
	f.BoolVar(&cond, "condition", true, "value of the contract's condition")
	f.StringVar(&message, "message", "", "message replacing the condition in the diagnostic")

	return cmd
}
