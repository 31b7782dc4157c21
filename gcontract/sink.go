package gcontract

import (
	"context"
	"log/slog"

	"github.com/gordian-engine/gdbc/internal/glog"
)

// Entry is one diagnostic forwarded to a [Sink].
type Entry struct {
	Level   slog.Level
	Message string
	Caller  Caller

	// Violation is set only for entries emitted on the failure path.
	Violation *Violation
}

// Sink receives formatted diagnostics from an [Environment].
//
// Emission is best-effort.
// A Sink must not block indefinitely,
// and any panic raised by Emit is dropped by the environment.
type Sink interface {
	Emit(Entry)
}

// SinkFunc adapts a plain function to the [Sink] interface.
type SinkFunc func(Entry)

func (f SinkFunc) Emit(e Entry) { f(e) }

// MultiSink returns a Sink that emits every entry to each of sinks, in order.
func MultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Emit(e Entry) {
	for _, s := range m {
		s.Emit(e)
	}
}

// NewSlogSink returns a Sink that writes entries to log,
// with the call site attached as "func" and "at" attributes.
func NewSlogSink(log *slog.Logger) Sink {
	return slogSink{log: log}
}

type slogSink struct {
	log *slog.Logger
}

func (s slogSink) Emit(e Entry) {
	attrs := glog.CallerAttrs(e.Caller.Function, e.Caller.File, e.Caller.Line)
	if v := e.Violation; v != nil {
		attrs = append(attrs,
			slog.String("kind", v.Kind.Label()),
			slog.Int("intensity", int(v.Intensity)),
		)
		if v.Condition != "" {
			attrs = append(attrs, slog.String("condition", v.Condition))
		}
	}
	s.log.LogAttrs(context.Background(), e.Level, e.Message, attrs...)
}
