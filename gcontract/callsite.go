package gcontract

import "fmt"

// check is the shared body of the package-level contract functions.
// skip is the number of frames between check and the user's call site.
//
// The message is only formatted after the check has failed.
func (e *Environment) check(skip int, kind Kind, threshold Intensity, cond bool, format string, args []any) {
	if !e.Active(threshold) || cond {
		return
	}
	e.failAt(skip+1, kind, threshold, "", format, args)
}

// checkFunc is like check, but cond is only called once the gate is open,
// and msg, if not nil, only once cond has failed.
func (e *Environment) checkFunc(skip int, kind Kind, threshold Intensity, cond func() bool, msg func() string) {
	if !e.Active(threshold) || cond() {
		return
	}
	if msg == nil {
		e.failAt(skip+1, kind, threshold, "", "", nil)
		return
	}
	e.failAt(skip+1, kind, threshold, "", "%s", []any{msg()})
}

// failAt fails with a violation located skip frames above failAt's caller.
// condSuffix is appended to the recovered condition source, if any.
func (e *Environment) failAt(skip int, kind Kind, threshold Intensity, condSuffix, format string, args []any) {
	c := CallerAt(skip + 1)

	v := Violation{
		Kind:      kind,
		Intensity: threshold,
		Caller:    c,
	}
	if src := conditionSource(c.File, c.Line, kind); src != "" {
		v.Condition = src + condSuffix
	}
	if format != "" {
		v.Message = fmt.Sprintf(format, args...)
	}

	e.Fail(v)
}

// logAt emits a formatted message located skip frames above logAt's caller.
func (e *Environment) logAt(skip int, format string, args []any) {
	e.Log(fmt.Sprintf(format, args...), CallerAt(skip+1))
}

// breakAt is like logAt, followed by a trap.
func (e *Environment) breakAt(skip int, format string, args []any) {
	e.Break(fmt.Sprintf(format, args...), CallerAt(skip+1))
}
