//go:build debug || messaging

package gcontracttest

import (
	"testing"

	"github.com/gordian-engine/gdbc/gcontract"
)

// Install makes e the process-wide default environment until t finishes.
//
// The package-level gcontract functions then report to e,
// so tests calling Install must not run in parallel with each other.
func Install(t testing.TB, e *gcontract.Environment) {
	t.Helper()

	prev := gcontract.SetDefault(e)
	t.Cleanup(func() {
		gcontract.SetDefault(prev)
	})
}
