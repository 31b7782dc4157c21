// Package glog holds small log/slog helpers shared across gdbc packages.
package glog

import "log/slog"

// CallerAttrs returns the attributes identifying a call site:
// "func" with the function name and "at" with the file and line.
//
// The attributes are returned as a slice so that sinks can append
// their own attributes before a single LogAttrs call.
func CallerAttrs(function, file string, line int) []slog.Attr {
	return []slog.Attr{
		slog.String("func", function),
		slog.Any("at", Location{File: file, Line: line}),
	}
}
