package gcontractlog

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
	"github.com/gordian-engine/gdbc/gcontract"
)

// NewWriterSink returns a sink writing one plain line per entry to w:
//
//	ERROR [store.(*DB).Get db.go:42] REQUIRE failed: n > 0 (db.go:42 in store.(*DB).Get)
//
// If colour is true, the level is coloured with ANSI escapes
// regardless of whether w is a terminal.
// Write errors are ignored.
func NewWriterSink(w io.Writer, colour bool) gcontract.Sink {
	s := &writerSink{
		w: w,

		errorC: color.New(color.FgRed, color.Bold),
		warnC:  color.New(color.FgYellow),
		infoC:  color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{s.errorC, s.warnC, s.infoC} {
		if colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

type writerSink struct {
	mu sync.Mutex
	w  io.Writer

	errorC, warnC, infoC *color.Color
}

func (s *writerSink) Emit(e gcontract.Entry) {
	label := s.label(e.Level)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.Caller.Function == "" {
		_, _ = fmt.Fprintf(s.w, "%s [%s] %s\n", label, location(e.Caller), e.Message)
		return
	}
	_, _ = fmt.Fprintf(s.w, "%s [%s %s] %s\n", label, e.Caller.Function, location(e.Caller), e.Message)
}

func (s *writerSink) label(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return s.errorC.Sprint("ERROR")
	case l >= slog.LevelWarn:
		return s.warnC.Sprint("WARN")
	case l >= slog.LevelInfo:
		return s.infoC.Sprint("INFO")
	default:
		return "DEBUG"
	}
}
