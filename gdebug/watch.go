package gdebug

import (
	"context"
	"log/slog"
	"time"

	"github.com/gordian-engine/gdbc/internal/gchan"
)

// Change is a debugger attachment state observed by [Watch].
type Change struct {
	Attached bool
	At       time.Time
}

// Watch polls [Attached] every interval and sends on out
// the initial state and then every change to it.
//
// Watch blocks until ctx is done, and then returns the context's cause.
// If detection is unavailable, Watch returns the error from the first query.
// Later query errors are logged and the previous state is kept.
func Watch(ctx context.Context, log *slog.Logger, interval time.Duration, out chan<- Change) error {
	return watch(ctx, log, interval, attached, out)
}

func watch(
	ctx context.Context, log *slog.Logger,
	interval time.Duration,
	query func() (bool, error),
	out chan<- Change,
) error {
	cur, err := query()
	if err != nil {
		return err
	}
	if !gchan.SendC(ctx, log, out, Change{Attached: cur, At: time.Now()}, "sending initial attachment state") {
		return context.Cause(ctx)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)

		case <-ticker.C:
			now, err := query()
			if err != nil {
				log.Warn("Failed to query debugger attachment", "err", err)
				continue
			}
			if now == cur {
				continue
			}

			cur = now
			if !gchan.SendC(ctx, log, out, Change{Attached: cur, At: time.Now()}, "sending attachment change") {
				return context.Cause(ctx)
			}
		}
	}
}
