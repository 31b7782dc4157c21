package gdebug

// Trap issues a breakpoint trap on the calling thread.
//
// With a debugger attached, control passes to the debugger,
// which may resume execution after the call.
// Without one, the operating system's default handling of the trap
// usually terminates the process.
//
// If [TrapAllowed] is false, Trap does nothing.
func Trap() {
	if TrapAllowed {
		trap()
	}
}
