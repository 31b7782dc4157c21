package gcontractlog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gordian-engine/gdbc/gcontract"
	"github.com/gordian-engine/gdbc/gcontract/gcontractlog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var testViolation = gcontract.Violation{
	Kind:      gcontract.KindRequire,
	Intensity: 2,
	Condition: "n > 0",
	Caller:    gcontract.Caller{Function: "store.Get", File: "/src/store/get.go", Line: 42},
}

func TestZerologSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := gcontractlog.NewZerologSink(zerolog.New(&buf))

	v := testViolation
	s.Emit(gcontract.Entry{Level: slog.LevelError, Message: v.Error(), Caller: v.Caller, Violation: &v})

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "error", got["level"])
	require.Equal(t, "store.Get", got["func"])
	require.Equal(t, "get.go:42", got["at"])
	require.Equal(t, "REQUIRE", got["kind"])
	require.Equal(t, float64(2), got["intensity"])
	require.Equal(t, "n > 0", got["condition"])
	require.Equal(t, v.Error(), got["message"])
}

func TestZerologSink_levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := gcontractlog.NewZerologSink(zerolog.New(&buf).Level(zerolog.WarnLevel))

	s.Emit(gcontract.Entry{Level: slog.LevelInfo, Message: "filtered"})
	require.Zero(t, buf.Len())

	s.Emit(gcontract.Entry{Level: slog.LevelWarn, Message: "break"})
	require.Contains(t, buf.String(), `"level":"warn"`)
	require.NotContains(t, buf.String(), "kind")
}

func TestWriterSink_plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := gcontractlog.NewWriterSink(&buf, false)

	s.Emit(gcontract.Entry{
		Level:   slog.LevelInfo,
		Message: "cache warmed",
		Caller:  gcontract.Caller{Function: "cache.Warm", File: "warm.go", Line: 3},
	})
	s.Emit(gcontract.Entry{Level: slog.LevelWarn, Message: "no caller"})

	require.Equal(t, "INFO [cache.Warm warm.go:3] cache warmed\nWARN [?:0] no caller\n", buf.String())
}

func TestWriterSink_colour(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := gcontractlog.NewWriterSink(&buf, true)

	v := testViolation
	s.Emit(gcontract.Entry{Level: slog.LevelError, Message: v.Error(), Caller: v.Caller, Violation: &v})

	out := buf.String()
	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "ERROR")
	require.Contains(t, out, "[store.Get get.go:42] REQUIRE(2) failed: n > 0")
}
