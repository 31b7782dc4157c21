package gdebug

import "errors"

// ErrDetectionUnavailable is returned by [Attached]
// when the platform offers no way to query debugger attachment.
var ErrDetectionUnavailable = errors.New("debugger detection unavailable on this platform")

// Attached reports whether a debugger is tracing the current process,
// whether the process was launched under it or it attached later.
//
// The operating system is queried on every call;
// the result is never cached, because a debugger may attach or detach at any time.
func Attached() (bool, error) {
	return attached()
}

// IsBeingDebugged is [Attached] with any error resolved to false,
// so that an unreliable signal never changes program behavior.
func IsBeingDebugged() bool {
	ok, err := attached()
	return err == nil && ok
}
