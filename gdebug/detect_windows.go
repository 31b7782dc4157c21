//go:build windows

package gdebug

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procIsDebuggerPresent          = kernel32.NewProc("IsDebuggerPresent")
	procCheckRemoteDebuggerPresent = kernel32.NewProc("CheckRemoteDebuggerPresent")
)

func attached() (bool, error) {
	if err := procIsDebuggerPresent.Find(); err != nil {
		return false, fmt.Errorf("failed to find IsDebuggerPresent: %w", err)
	}
	if r, _, _ := procIsDebuggerPresent.Call(); r != 0 {
		return true, nil
	}

	// IsDebuggerPresent only sees user-mode debuggers of this process;
	// the remote check also covers debuggers running in another process.
	if err := procCheckRemoteDebuggerPresent.Find(); err != nil {
		return false, nil
	}
	var present int32
	r, _, callErr := procCheckRemoteDebuggerPresent.Call(
		uintptr(windows.CurrentProcess()),
		uintptr(unsafe.Pointer(&present)),
	)
	if r == 0 {
		return false, fmt.Errorf("CheckRemoteDebuggerPresent failed: %w", callErr)
	}
	return present != 0, nil
}
