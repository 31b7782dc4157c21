package gcontracttest

import (
	"math"
	"testing"

	"github.com/gordian-engine/gdbc/gcontract"
)

// DefaultEnv returns a recording environment with every scope enabled
// and caching switched on, for tests of code that consults [gcontract.ScopeEnabled].
func DefaultEnv(t testing.TB, opts ...gcontract.Opt) (*gcontract.Environment, *Recorder) {
	t.Helper()

	rs := gcontract.MustParseRules("*")
	rs.UseCaching()
	return NewEnv(t, append([]gcontract.Opt{gcontract.WithRules(rs)}, opts...)...)
}

// NopEnv returns a recording environment that disables every scope
// and every check declared at a threshold above the minimum intensity.
// This should generally not be used,
// but it may help in tests that are already expensive.
func NopEnv(t testing.TB, opts ...gcontract.Opt) (*gcontract.Environment, *Recorder) {
	t.Helper()

	rs := gcontract.MustParseRules("")
	rs.UseCaching()
	return NewEnv(t, append([]gcontract.Opt{
		gcontract.WithRules(rs),
		gcontract.WithIntensity(math.MinInt),
	}, opts...)...)
}
