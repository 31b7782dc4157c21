// Package gdebug holds the low-level debugger primitives used by gcontract:
// [Trap], which issues a breakpoint trap on the current thread,
// and [Attached], which asks the operating system whether a debugger
// is currently tracing this process.
//
// Both are always compiled.
// Gating them behind the debug and messaging build tags is the job of gcontract;
// call gdebug directly only from code that already made that decision.
//
// Trap is a no-op when built with the "notrap" tag,
// on js and wasip1, and on architectures without a known breakpoint instruction.
// [TrapAllowed] reports which case applies to the current build.
//
// Detection is implemented for Linux (TracerPid in /proc/self/status),
// macOS (the P_TRACED process flag from sysctl)
// and Windows (IsDebuggerPresent and CheckRemoteDebuggerPresent).
// Elsewhere [Attached] returns [ErrDetectionUnavailable].
package gdebug
