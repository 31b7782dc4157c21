package gcontract

import "fmt"

// TrapPolicy controls whether a contract violation issues a debugger trap
// before its FailureHandler runs.
type TrapPolicy uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type TrapPolicy -linecomment

const (
	// TrapIfDebugged traps only while a debugger is attached,
	// so that an undebugged process reaches its FailureHandler
	// instead of dying on an unhandled trap.
	TrapIfDebugged TrapPolicy = iota // if-debugged

	// TrapAlways traps on every violation.
	TrapAlways // always

	// TrapNever never traps on a violation.
	TrapNever // never
)

// ParseTrapPolicy parses the names produced by [TrapPolicy.String].
func ParseTrapPolicy(s string) (TrapPolicy, error) {
	for _, p := range []TrapPolicy{TrapIfDebugged, TrapAlways, TrapNever} {
		if s == p.String() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown trap policy %q (want if-debugged, always, or never)", s)
}
