package gcontractlog

import (
	"log/slog"

	"github.com/gordian-engine/gdbc/gcontract"
	"github.com/gordian-engine/gdbc/internal/glog"
	"github.com/rs/zerolog"
)

// NewZerologSink returns a sink writing each entry as one zerolog event,
// with the same "func" and "at" fields as the slog sink.
func NewZerologSink(log zerolog.Logger) gcontract.Sink {
	return zerologSink{log: log}
}

type zerologSink struct {
	log zerolog.Logger
}

func (s zerologSink) Emit(e gcontract.Entry) {
	ev := s.log.WithLevel(ZerologLevel(e.Level)).
		Str("func", e.Caller.Function).
		Str("at", location(e.Caller))

	if v := e.Violation; v != nil {
		ev = ev.Str("kind", v.Kind.Label()).Int("intensity", int(v.Intensity))
		if v.Condition != "" {
			ev = ev.Str("condition", v.Condition)
		}
	}

	ev.Msg(e.Message)
}

// ZerologLevel maps a slog level to the nearest zerolog level at or below it.
func ZerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l >= slog.LevelError:
		return zerolog.ErrorLevel
	case l >= slog.LevelWarn:
		return zerolog.WarnLevel
	case l >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

func location(c gcontract.Caller) string {
	return glog.Location{File: c.File, Line: c.Line}.LogValue().String()
}
