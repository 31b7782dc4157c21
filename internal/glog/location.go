package glog

import (
	"log/slog"
	"path/filepath"
	"strconv"
)

// Location wraps a file and line so it serializes as "file.go:42".
// Without this, it gets rendered as a group with two separate keys.
type Location struct {
	File string
	Line int
}

func (l Location) LogValue() slog.Value {
	if l.File == "" {
		return slog.StringValue("?:" + strconv.Itoa(l.Line))
	}
	return slog.StringValue(filepath.Base(l.File) + ":" + strconv.Itoa(l.Line))
}
