package gcontract

import (
	"path"
	"runtime"
)

// Caller is the calling context attached to every diagnostic.
type Caller struct {
	// Function is the package-qualified function name,
	// without the leading import path, e.g. "gserver.(*Component).Start".
	Function string

	File string
	Line int
}

// CallerAt reports the Caller skip frames above the function calling CallerAt.
// CallerAt(0) describes the caller of CallerAt.
//
// If the stack is not deep enough, the zero Caller is returned.
func CallerAt(skip int) Caller {
	var pcs [1]uintptr
	// +2 skips runtime.Callers and CallerAt itself.
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Caller{}
	}

	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return Caller{
		Function: path.Base(frame.Function),
		File:     frame.File,
		Line:     frame.Line,
	}
}
