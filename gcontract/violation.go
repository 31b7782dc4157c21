package gcontract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Violation describes a failed contract check.
// It is only constructed on the failure path
// and is handed straight to the environment's sink and failure handler.
type Violation struct {
	Kind Kind

	// Intensity is the threshold the check was declared with.
	Intensity Intensity

	// Condition is the source text of the failed condition, when known.
	Condition string

	// Message is the caller-supplied message, possibly empty.
	Message string

	Caller Caller
}

// Text returns the message if one was supplied, otherwise the condition text.
func (v Violation) Text() string {
	if v.Message != "" {
		return v.Message
	}
	if v.Condition != "" {
		return v.Condition
	}
	return "false"
}

// Error returns the single diagnostic line for v,
// e.g. "REQUIRE failed: n > 0 (store.go:42 in store.(*DB).Get)".
func (v Violation) Error() string {
	var b strings.Builder
	b.WriteString(v.Kind.Label())
	if v.Intensity != DefaultIntensity {
		fmt.Fprintf(&b, "(%d)", v.Intensity)
	}
	b.WriteString(" failed: ")
	b.WriteString(v.Text())

	if v.Caller.File != "" {
		fmt.Fprintf(&b, " (%s:%d", filepath.Base(v.Caller.File), v.Caller.Line)
		if v.Caller.Function != "" {
			b.WriteString(" in ")
			b.WriteString(v.Caller.Function)
		}
		b.WriteByte(')')
	}

	return b.String()
}
