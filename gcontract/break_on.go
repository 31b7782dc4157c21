//go:build (debug || messaging) && !notrap

package gcontract

// Break writes a formatted message and traps into the debugger.
// Without an attached debugger, the trap usually terminates the process.
func Break(format string, args ...any) {
	Default().breakAt(1, format, args)
}

// BreakIf is like [Break], but does nothing unless cond is true.
func BreakIf(cond bool, format string, args ...any) {
	if cond {
		Default().breakAt(1, format, args)
	}
}
