//go:build debug

package gcontract_test

import (
	"log/slog"
	"testing"

	"github.com/gordian-engine/gdbc/gcontract"
	"github.com/gordian-engine/gdbc/gcontract/gcontracttest"
	"github.com/stretchr/testify/require"
)

// Tests in this file replace the process-wide environment,
// so none of them run in parallel.

func installEnv(t *testing.T, opts ...gcontract.Opt) *gcontracttest.Recorder {
	t.Helper()

	e, r := gcontracttest.NewEnv(t, opts...)
	gcontracttest.Install(t, e)
	return r
}

func TestEnabled_debug(t *testing.T) {
	require.True(t, gcontract.Enabled)
	require.True(t, gcontract.CurrentFlags().Debug)
}

func TestRequire(t *testing.T) {
	r := installEnv(t)

	x := 0
	v := r.ExpectViolation(t, func() {
		gcontract.Require(x > 0)
	})

	require.Equal(t, gcontract.KindRequire, v.Kind)
	require.Equal(t, gcontract.DefaultIntensity, v.Intensity)
	require.Equal(t, "x > 0", v.Condition)
	require.Empty(t, v.Message)
	require.Contains(t, v.Caller.File, "contract_debug_test.go")
	require.Contains(t, v.Caller.Function, "TestRequire")
	require.Regexp(t, `^REQUIRE failed: x > 0 \(contract_debug_test\.go:\d+ in gcontract_test\.TestRequire\.func\d+\)$`, v.Error())

	r.ExpectNoViolation(t, func() {
		gcontract.Require(x == 0)
	})
}

func TestContractKinds(t *testing.T) {
	r := installEnv(t)

	for _, tc := range []struct {
		kind gcontract.Kind
		fn   func(bool)
	}{
		{kind: gcontract.KindRequire, fn: gcontract.Require},
		{kind: gcontract.KindCheck, fn: gcontract.Check},
		{kind: gcontract.KindEnsure, fn: gcontract.Ensure},
		{kind: gcontract.KindAssertion, fn: gcontract.Assert},
	} {
		v := r.ExpectViolation(t, func() { tc.fn(false) })
		require.Equal(t, tc.kind, v.Kind)
	}
}

func TestRequiref_messageReplacesCondition(t *testing.T) {
	r := installEnv(t)

	items := []int{1, 2}
	v := r.ExpectViolation(t, func() {
		gcontract.Requiref(len(items) == 3, "want %d items, got %d", 3, len(items))
	})

	require.Equal(t, "len(items) == 3", v.Condition)
	require.Equal(t, "want 3 items, got 2", v.Message)
	require.Contains(t, v.Error(), "REQUIRE failed: want 3 items, got 2 (")

	v = r.ExpectViolation(t, func() { gcontract.Checkf(false, "state %s", "closed") })
	require.Equal(t, "state closed", v.Message)
	v = r.ExpectViolation(t, func() { gcontract.Ensuref(false, "ensured") })
	require.Equal(t, gcontract.KindEnsure, v.Kind)
	v = r.ExpectViolation(t, func() { gcontract.Assertf(false, "asserted") })
	require.Equal(t, gcontract.KindAssertion, v.Kind)
}

func TestAt_intensityGate(t *testing.T) {
	r := installEnv(t)

	// Intensity 0: a threshold 1 check is gated out.
	r.ExpectNoViolation(t, func() {
		gcontract.RequireAt(1, false)
		gcontract.CheckAt(1, false)
		gcontract.EnsureAt(1, false)
		gcontract.AssertAt(1, false)
		gcontract.RequireAtf(1, false, "never formatted")
	})
	require.Empty(t, r.Events())

	gcontract.SetIntensity(1)

	v := r.ExpectViolation(t, func() { gcontract.CheckAt(1, 2+2 == 5) })
	require.Equal(t, gcontract.KindCheck, v.Kind)
	require.Equal(t, gcontract.Intensity(1), v.Intensity)
	require.Equal(t, "2+2 == 5", v.Condition)
	require.Contains(t, v.Error(), "CHECK(1) failed: 2+2 == 5")

	v = r.ExpectViolation(t, func() { gcontract.EnsureAtf(0, false, "n=%d", 4) })
	require.Equal(t, "n=4", v.Message)
	v = r.ExpectViolation(t, func() { gcontract.CheckAtf(1, false, "c") })
	require.Equal(t, gcontract.KindCheck, v.Kind)
	v = r.ExpectViolation(t, func() { gcontract.AssertAtf(1, false, "a") })
	require.Equal(t, gcontract.KindAssertion, v.Kind)
}

func TestFunc_lazyCondition(t *testing.T) {
	r := installEnv(t)

	calls := 0
	cond := func() bool {
		calls++
		return false
	}

	r.ExpectNoViolation(t, func() {
		gcontract.RequireFunc(1, cond)
		gcontract.CheckFunc(1, cond)
		gcontract.EnsureFunc(1, cond)
	})
	require.Zero(t, calls)

	gcontract.SetIntensity(1)
	v := r.ExpectViolation(t, func() { gcontract.EnsureFunc(1, cond) })
	require.Equal(t, 1, calls)
	require.Equal(t, gcontract.KindEnsure, v.Kind)
	require.Equal(t, "cond", v.Condition)

	r.ExpectNoViolation(t, func() {
		gcontract.CheckFunc(0, func() bool { return true })
	})
}

func TestFuncf_lazyMessage(t *testing.T) {
	r := installEnv(t)

	conds, msgs := 0, 0
	cond := func(ok bool) func() bool {
		return func() bool {
			conds++
			return ok
		}
	}
	msg := func() string {
		msgs++
		return "built on failure"
	}

	r.ExpectNoViolation(t, func() {
		gcontract.RequireFuncf(1, cond(false), msg)
		gcontract.CheckFuncf(0, cond(true), msg)
	})
	require.Equal(t, 1, conds)
	require.Zero(t, msgs)

	v := r.ExpectViolation(t, func() { gcontract.EnsureFuncf(0, cond(false), msg) })
	require.Equal(t, gcontract.KindEnsure, v.Kind)
	require.Equal(t, "built on failure", v.Message)
	require.Equal(t, 2, conds)
	require.Equal(t, 1, msgs)

	v = r.ExpectViolation(t, func() { gcontract.RequireFuncf(0, cond(false), msg) })
	require.Equal(t, gcontract.KindRequire, v.Kind)
	v = r.ExpectViolation(t, func() { gcontract.CheckFuncf(0, cond(false), msg) })
	require.Equal(t, gcontract.KindCheck, v.Kind)
}

func TestSameLine_conditionText(t *testing.T) {
	r := installEnv(t)

	a, b := false, true

	// Two requires on one line: the line cannot say which one failed.
	v := r.ExpectViolation(t, func() { gcontract.Require(b); gcontract.Require(a) })
	require.Empty(t, v.Condition)
	require.Contains(t, v.Error(), "REQUIRE failed: false (")

	// Different kinds on one line resolve by kind.
	v = r.ExpectViolation(t, func() { gcontract.Require(b); gcontract.Check(a) })
	require.Equal(t, gcontract.KindCheck, v.Kind)
	require.Equal(t, "a", v.Condition)
}

func TestFailure(t *testing.T) {
	r := installEnv(t, gcontract.WithIntensity(-5))

	// Unconditional failures ignore the intensity.
	v := r.ExpectViolation(t, func() { gcontract.RequireFailure("unreachable state %d", 7) })
	require.Equal(t, gcontract.KindRequire, v.Kind)
	require.Equal(t, "unreachable state 7", v.Message)
	require.Empty(t, v.Condition)

	v = r.ExpectViolation(t, func() { gcontract.CheckFailure("c") })
	require.Equal(t, gcontract.KindCheck, v.Kind)

	v = r.ExpectViolation(t, func() { gcontract.EnsureFailure("e") })
	require.Equal(t, gcontract.KindEnsure, v.Kind)
	require.Contains(t, v.Caller.File, "contract_debug_test.go")
}

func TestNotNil(t *testing.T) {
	r := installEnv(t)

	n := 3
	var got *int
	r.ExpectNoViolation(t, func() {
		got = gcontract.RequireNotNil(&n)
	})
	require.Same(t, &n, got)

	var missing *int
	v := r.ExpectViolation(t, func() {
		_ = gcontract.RequireNotNil(missing)
	})
	require.Equal(t, gcontract.KindRequire, v.Kind)
	require.Equal(t, "missing != nil", v.Condition)

	v = r.ExpectViolation(t, func() {
		_ = gcontract.CheckNotNil[int](nil)
	})
	require.Equal(t, gcontract.KindCheck, v.Kind)
	require.Equal(t, "nil != nil", v.Condition)
}

func TestInform(t *testing.T) {
	r := installEnv(t)

	gcontract.Log("log %d", 1)
	gcontract.Inform("inform %d", 2)
	gcontract.InformIf(false, "skipped")
	gcontract.InformIf(true, "informIf %s", "yes")
	gcontract.InformAt(1, "gated out")
	gcontract.InformIfAt(0, false, "skipped too")
	gcontract.InformIfAt(0, true, "informIfAt")

	gcontract.SetIntensity(1)
	gcontract.InformAt(1, "now visible")

	require.Equal(t, []string{"log 1", "inform 2", "informIf yes", "informIfAt", "now visible"}, r.Messages())

	for _, en := range r.Entries() {
		require.Equal(t, slog.LevelInfo, en.Level)
		require.Contains(t, en.Caller.File, "contract_debug_test.go")
		require.Equal(t, "gcontract_test.TestInform", en.Caller.Function)
	}
	require.Zero(t, r.Traps())
}

func TestIntensity_package(t *testing.T) {
	installEnv(t)

	require.Equal(t, gcontract.DefaultIntensity, gcontract.GetIntensity())

	gcontract.SetIntensity(5)
	require.Equal(t, gcontract.Intensity(5), gcontract.GetIntensity())

	gcontract.SetIntensity(-3)
	require.Equal(t, gcontract.Intensity(-3), gcontract.GetIntensity())
}

func TestPerformIfIntensity_package(t *testing.T) {
	installEnv(t)

	calls := 0
	gcontract.PerformIfIntensity(1, func() { calls++ })
	require.Zero(t, calls)

	gcontract.PerformIfIntensity(0, func() { calls++ })
	require.Equal(t, 1, calls)
}

func TestIsBeingDebugged_package(t *testing.T) {
	r := installEnv(t)

	require.False(t, gcontract.IsBeingDebugged())
	r.SetDebugged(true)
	require.True(t, gcontract.IsBeingDebugged())
}

func TestScopeEnabled_package(t *testing.T) {
	installEnv(t, gcontract.WithRules(gcontract.MustParseRules("store.*")))

	require.True(t, gcontract.ScopeEnabled("store.index"))
	require.False(t, gcontract.ScopeEnabled("net.dial"))
}

func TestBreak_debug(t *testing.T) {
	r := installEnv(t)

	gcontract.BreakIf(false, "not taken")
	gcontract.Break("paused at %d", 9)

	if !gcontract.BreakEnabled {
		// Built with notrap.
		require.Empty(t, r.Events())
		return
	}

	require.Equal(t, []string{"paused at 9"}, r.Messages())
	require.Equal(t, slog.LevelWarn, r.Entries()[0].Level)
	require.Equal(t, 1, r.Traps())
}

func TestSetDefault_restores(t *testing.T) {
	orig := gcontract.Default()

	e, _ := gcontracttest.NewEnv(t)
	prev := gcontract.SetDefault(e)
	require.Same(t, orig, prev)
	require.Same(t, e, gcontract.Default())

	require.Same(t, e, gcontract.SetDefault(orig))
	require.Panics(t, func() { gcontract.SetDefault(nil) })
}

// Inform with a debugger break: log, then trap only while a debugger is attached.
func TestInformIf_breakWhenDebugged(t *testing.T) {
	r := installEnv(t)

	inform := func(cond bool) {
		gcontract.InformIf(cond, "queue full")
		gcontract.BreakIf(cond && gcontract.IsBeingDebugged(), "queue full")
	}

	inform(true)
	require.Equal(t, []string{"queue full"}, r.Messages())
	require.Zero(t, r.Traps())

	r.SetDebugged(true)
	inform(true)
	inform(false)

	if !gcontract.BreakEnabled {
		require.Zero(t, r.Traps())
		return
	}
	require.Equal(t, 1, r.Traps())
	require.Equal(t, []string{"queue full", "queue full", "queue full"}, r.Messages())
}
