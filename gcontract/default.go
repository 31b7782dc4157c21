//go:build debug || messaging

package gcontract

import "sync/atomic"

var defaultEnv atomic.Pointer[Environment]

func init() {
	e, err := NewEnvironment()
	if err != nil {
		panic(err)
	}
	defaultEnv.Store(e)
}

// Default returns the process-wide environment used by the package-level functions.
// It starts at [DefaultIntensity] on every process start.
func Default() *Environment {
	return defaultEnv.Load()
}

// SetDefault replaces the process-wide environment and returns the previous one.
// It is intended for tests and for programs that configure the facility at startup.
func SetDefault(e *Environment) *Environment {
	if e == nil {
		panic("BUG: SetDefault called with nil environment")
	}
	return defaultEnv.Swap(e)
}
