//go:build debug

package gcontract

// Require checks a precondition on entry to a function.
// If cond is false, the violation is reported and execution stops.
func Require(cond bool) {
	Default().check(1, KindRequire, DefaultIntensity, cond, "", nil)
}

// Requiref is like [Require] with a formatted message,
// which replaces the condition text in the diagnostic.
func Requiref(cond bool, format string, args ...any) {
	Default().check(1, KindRequire, DefaultIntensity, cond, format, args)
}

// RequireAt is like [Require], but only checks cond
// while the intensity is at least intensity.
func RequireAt(intensity Intensity, cond bool) {
	Default().check(1, KindRequire, intensity, cond, "", nil)
}

// RequireAtf is like [RequireAt] with a formatted message.
func RequireAtf(intensity Intensity, cond bool, format string, args ...any) {
	Default().check(1, KindRequire, intensity, cond, format, args)
}

// RequireFunc is like [RequireAt], but cond is only called
// once the intensity gate is open.
func RequireFunc(intensity Intensity, cond func() bool) {
	Default().checkFunc(1, KindRequire, intensity, cond, nil)
}

// RequireFuncf is like [RequireFunc] with a lazily built message.
// msg is only called after cond has returned false.
func RequireFuncf(intensity Intensity, cond func() bool, msg func() string) {
	Default().checkFunc(1, KindRequire, intensity, cond, msg)
}

// RequireFailure reports an unconditional precondition failure.
func RequireFailure(format string, args ...any) {
	Default().failAt(1, KindRequire, DefaultIntensity, "", format, args)
}

// Check checks an invariant in the body of a function.
// If cond is false, the violation is reported and execution stops.
func Check(cond bool) {
	Default().check(1, KindCheck, DefaultIntensity, cond, "", nil)
}

// Checkf is like [Check] with a formatted message.
func Checkf(cond bool, format string, args ...any) {
	Default().check(1, KindCheck, DefaultIntensity, cond, format, args)
}

// CheckAt is like [Check], gated on intensity.
func CheckAt(intensity Intensity, cond bool) {
	Default().check(1, KindCheck, intensity, cond, "", nil)
}

// CheckAtf is like [CheckAt] with a formatted message.
func CheckAtf(intensity Intensity, cond bool, format string, args ...any) {
	Default().check(1, KindCheck, intensity, cond, format, args)
}

// CheckFunc is like [CheckAt], but cond is only called once the gate is open.
func CheckFunc(intensity Intensity, cond func() bool) {
	Default().checkFunc(1, KindCheck, intensity, cond, nil)
}

// CheckFuncf is like [CheckFunc] with a lazily built message.
func CheckFuncf(intensity Intensity, cond func() bool, msg func() string) {
	Default().checkFunc(1, KindCheck, intensity, cond, msg)
}

// CheckFailure reports an unconditional invariant failure.
func CheckFailure(format string, args ...any) {
	Default().failAt(1, KindCheck, DefaultIntensity, "", format, args)
}

// Ensure checks a postcondition before returning.
// If cond is false, the violation is reported and execution stops.
func Ensure(cond bool) {
	Default().check(1, KindEnsure, DefaultIntensity, cond, "", nil)
}

// Ensuref is like [Ensure] with a formatted message.
func Ensuref(cond bool, format string, args ...any) {
	Default().check(1, KindEnsure, DefaultIntensity, cond, format, args)
}

// EnsureAt is like [Ensure], gated on intensity.
func EnsureAt(intensity Intensity, cond bool) {
	Default().check(1, KindEnsure, intensity, cond, "", nil)
}

// EnsureAtf is like [EnsureAt] with a formatted message.
func EnsureAtf(intensity Intensity, cond bool, format string, args ...any) {
	Default().check(1, KindEnsure, intensity, cond, format, args)
}

// EnsureFunc is like [EnsureAt], but cond is only called once the gate is open.
func EnsureFunc(intensity Intensity, cond func() bool) {
	Default().checkFunc(1, KindEnsure, intensity, cond, nil)
}

// EnsureFuncf is like [EnsureFunc] with a lazily built message.
func EnsureFuncf(intensity Intensity, cond func() bool, msg func() string) {
	Default().checkFunc(1, KindEnsure, intensity, cond, msg)
}

// EnsureFailure reports an unconditional postcondition failure.
func EnsureFailure(format string, args ...any) {
	Default().failAt(1, KindEnsure, DefaultIntensity, "", format, args)
}

// Assert is a plain assertion without a contract role.
func Assert(cond bool) {
	Default().check(1, KindAssertion, DefaultIntensity, cond, "", nil)
}

// Assertf is like [Assert] with a formatted message.
func Assertf(cond bool, format string, args ...any) {
	Default().check(1, KindAssertion, DefaultIntensity, cond, format, args)
}

// AssertAt is like [Assert], gated on intensity.
func AssertAt(intensity Intensity, cond bool) {
	Default().check(1, KindAssertion, intensity, cond, "", nil)
}

// AssertAtf is like [AssertAt] with a formatted message.
func AssertAtf(intensity Intensity, cond bool, format string, args ...any) {
	Default().check(1, KindAssertion, intensity, cond, format, args)
}
