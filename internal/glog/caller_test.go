package glog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/gordian-engine/gdbc/internal/glog"
	"github.com/stretchr/testify/require"
)

func TestCallerAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	log.LogAttrs(context.Background(), slog.LevelInfo, "hello", glog.CallerAttrs("pkg.Fn", "/src/pkg/fn.go", 12)...)

	out := buf.String()
	require.Contains(t, out, "func=pkg.Fn")
	require.Contains(t, out, "at=fn.go:12")
}

func TestLocation_unknownFile(t *testing.T) {
	t.Parallel()

	require.Equal(t, "?:7", glog.Location{Line: 7}.LogValue().String())
}
