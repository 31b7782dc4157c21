package gcontract

import (
	"os"
	"runtime/debug"
)

// ExitCodeViolation is the process exit code used by [Abort].
const ExitCodeViolation = 2

// FailureHandler terminates the current execution path after a contract violation.
//
// A FailureHandler must not return.
// If it does anyway, the environment falls back to [Abort].
type FailureHandler func(Violation)

// Abort writes the current goroutine's stack to stderr,
// then exits the process with [ExitCodeViolation].
// The violation itself has already gone to the environment's sink,
// so it is not repeated.
//
// Abort is the default FailureHandler.
func Abort(_ Violation) {
	os.Stderr.Write(debug.Stack())
	os.Exit(ExitCodeViolation)
}

// Panic panics with v.
//
// Panic is useful when a supervising goroutine must observe the violation,
// but note that a panic can be recovered,
// so it weakens the guarantee that a violation stops execution.
func Panic(v Violation) {
	panic(v)
}
