package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gordian-engine/gdbc/gdebug"
	"github.com/spf13/cobra"
)

func newDetectCmd(log *slog.Logger) *cobra.Command {
	var watch time.Duration

	cmd := &cobra.Command{
		Use: "detect [--watch DURATION]",

		Short: "Report whether a debugger is attached to this process",

		Long: `detect queries the operating system for a debugger tracing this process.

With --watch, detect polls at the given interval until interrupted,
printing a line each time the attachment state changes.
Attach a debugger to the running process to see the change.
`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if watch <= 0 {
				attached, err := gdebug.Attached()
				if err != nil {
					fmt.Fprintf(out, "attached: unknown (%v)\n", err)
					return nil
				}
				printChange(out, gdebug.Change{Attached: attached})
				return nil
			}

			ctx := cmd.Context()
			changes := make(chan gdebug.Change)
			errCh := make(chan error, 1)
			go func() {
				errCh <- gdebug.Watch(ctx, log, watch, changes)
			}()

			for {
				select {
				case c := <-changes:
					printChange(out, c)
				case err := <-errCh:
					if errors.Is(err, context.Canceled) {
						return nil
					}
					return err
				}
			}
		},
	}

	cmd.Flags().DurationVar(&watch, "watch", 0, "poll at this interval until interrupted")

	return cmd
}

func printChange(w io.Writer, c gdebug.Change) {
	if !c.At.IsZero() {
		fmt.Fprintf(w, "%s ", c.At.Format(time.TimeOnly))
	}
	fmt.Fprintf(w, "attached: %t\n", c.Attached)
}
