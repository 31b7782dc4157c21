//go:build debug

package gcontract

// GetIntensity returns the current intensity of the default environment.
func GetIntensity() Intensity {
	return Default().Intensity()
}

// SetIntensity sets the intensity of the default environment.
// It is meant to be changed while the program runs,
// for instance from a debugger or an admin endpoint.
func SetIntensity(v Intensity) {
	Default().SetIntensity(v)
}

// PerformIfIntensity calls action if the intensity is at least intensity.
// Use it for diagnostics heavier than a single log line,
// such as dumping a data structure.
func PerformIfIntensity(intensity Intensity, action func()) {
	Default().PerformIfIntensity(intensity, action)
}

// IsBeingDebugged reports whether a debugger is attached to the process.
// It queries the operating system on every call.
func IsBeingDebugged() bool {
	return Default().IsBeingDebugged()
}

// ScopeEnabled reports whether the default environment's rules enable scope.
func ScopeEnabled(scope string) bool {
	return Default().ScopeEnabled(scope)
}
