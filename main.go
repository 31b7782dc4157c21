// Command gdbc inspects and exercises the contract facility
// as it was compiled into this binary.
//
// Build with "-tags debug" to see the facility enabled,
// or with "-tags messaging" to see Break alone.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gordian-engine/gdbc/internal/gcfg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	if err := mainE(); err != nil {
		os.Exit(1)
	}
}

func mainE() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := NewRootCmd(logger)
	if err := root.ExecuteContext(ctx); err != nil {
		logger.Info("Failure", "err", err)
		os.Stderr.Sync()
		return err
	}

	return nil
}

// Flag names, also used as viper keys.
const (
	flagConfig    = "config"
	flagIntensity = "intensity"
	flagTrap      = "trap"
	flagRules     = "rules"
	flagLogFormat = "log-format"
	flagLogLevel  = "log-level"
	flagColor     = "color"
)

func NewRootCmd(log *slog.Logger) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use: "gdbc SUBCOMMAND",

		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},

		SilenceUsage: true,

		Long: `gdbc reports how the Design-by-Contract facility was compiled into this binary,
queries debugger attachment, validates scope rule files,
and evaluates single contracts through a configured environment.

Settings are read from a YAML file (--config), then GDBC_* environment variables,
then command line flags, with later sources taking precedence.
For example, GDBC_INTENSITY=2 is equivalent to --intensity=2.
`,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	registerConfigFlags(rootCmd.PersistentFlags())

	v.SetEnvPrefix("GDBC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newPolicyCmd(v),
		newDetectCmd(log),
		newRulesCmd(),
		newContractCmd(v),
	)

	return rootCmd
}

// registerConfigFlags adds the flags that override the configuration file.
// Every flag is also readable from the environment as GDBC_<FLAG>.
func registerConfigFlags(pf *pflag.FlagSet) {
	pf.String(flagConfig, "", "path to YAML configuration file")
	pf.Int(flagIntensity, 0, "contract intensity of the configured environment")
	pf.String(flagTrap, "if-debugged", "trap policy for violations (if-debugged|always|never)")
	pf.String(flagRules, "", "comma-separated scope rules")
	pf.String(flagLogFormat, gcfg.FormatText, "diagnostic format (text|json|console|plain)")
	pf.String(flagLogLevel, "info", "minimum diagnostic level (debug|info|warn|error)")
	pf.Bool(flagColor, false, "colour terminal output")
}

// loadConfig layers the config file, environment, and flags.
func loadConfig(v *viper.Viper) (gcfg.Config, error) {
	cfg := gcfg.Default()
	if path := v.GetString(flagConfig); path != "" {
		var err error
		cfg, err = gcfg.LoadFile(path)
		if err != nil {
			return gcfg.Config{}, err
		}
	}

	if v.IsSet(flagIntensity) {
		cfg.Intensity = v.GetInt(flagIntensity)
	}
	if v.IsSet(flagTrap) {
		cfg.Trap = v.GetString(flagTrap)
	}
	if v.IsSet(flagRules) {
		cfg.Rules = nil
		for _, r := range strings.Split(v.GetString(flagRules), ",") {
			if r = strings.TrimSpace(r); r != "" {
				cfg.Rules = append(cfg.Rules, r)
			}
		}
	}
	if v.IsSet(flagLogFormat) {
		cfg.Log.Format = v.GetString(flagLogFormat)
	}
	if v.IsSet(flagLogLevel) {
		cfg.Log.Level = v.GetString(flagLogLevel)
	}
	if v.IsSet(flagColor) {
		cfg.Log.Color = v.GetBool(flagColor)
	}

	if err := cfg.Validate(); err != nil {
		return gcfg.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
