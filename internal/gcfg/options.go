package gcfg

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gordian-engine/gdbc/gcontract"
	"github.com/gordian-engine/gdbc/gcontract/gcontractlog"
	"github.com/rs/zerolog"
)

// Options converts c into environment options,
// with diagnostics written to w.
func (c Config) Options(w io.Writer) ([]gcontract.Opt, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Both already validated.
	policy, _ := gcontract.ParseTrapPolicy(c.Trap)
	rs, _ := c.RuleSet()

	sink, err := c.Log.Sink(w)
	if err != nil {
		return nil, err
	}

	return []gcontract.Opt{
		gcontract.WithIntensity(gcontract.Intensity(c.Intensity)),
		gcontract.WithTrapPolicy(policy),
		gcontract.WithRules(rs),
		gcontract.WithSink(sink),
	}, nil
}

// Sink returns the sink selected by l, writing to w.
func (l LogConfig) Sink(w io.Writer) (gcontract.Sink, error) {
	lvl, err := l.SlogLevel()
	if err != nil {
		return nil, FieldError{Field: "log.level", Value: l.Level, Reason: err.Error()}
	}

	switch l.Format {
	case FormatText:
		return gcontract.NewSlogSink(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))), nil

	case FormatJSON:
		return gcontract.NewSlogSink(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))), nil

	case FormatConsole:
		zl := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !l.Color}).Level(gcontractlog.ZerologLevel(lvl))
		return gcontractlog.NewZerologSink(zl), nil

	case FormatPlain:
		s := gcontractlog.NewWriterSink(w, l.Color)
		return gcontract.SinkFunc(func(e gcontract.Entry) {
			if e.Level >= lvl {
				s.Emit(e)
			}
		}), nil

	default:
		return nil, fmt.Errorf("unknown log format %q", l.Format)
	}
}
