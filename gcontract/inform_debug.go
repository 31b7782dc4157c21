//go:build debug

package gcontract

// Log writes a formatted message tagged with the calling function and line.
func Log(format string, args ...any) {
	Default().logAt(1, format, args)
}

// Inform writes a formatted diagnostic, regardless of intensity.
func Inform(format string, args ...any) {
	Default().logAt(1, format, args)
}

// InformIf is like [Inform], but only writes when cond is true.
func InformIf(cond bool, format string, args ...any) {
	if cond {
		Default().logAt(1, format, args)
	}
}

// InformAt is like [Inform], but only writes while the intensity
// is at least intensity.
func InformAt(intensity Intensity, format string, args ...any) {
	if e := Default(); e.Active(intensity) {
		e.logAt(1, format, args)
	}
}

// InformIfAt combines [InformIf] and [InformAt].
func InformIfAt(intensity Intensity, cond bool, format string, args ...any) {
	if e := Default(); cond && e.Active(intensity) {
		e.logAt(1, format, args)
	}
}
