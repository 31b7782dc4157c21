// Package gcontract (Gordian contract) provides Design-by-Contract checks
// that cost nothing in release builds.
//
// The facility is compiled in only with the "debug" build tag,
// i.e. "go build -tags debug" or "go test -tags debug".
// Without the tag, every package-level function in this package has an empty body,
// so a call such as
//
//	gcontract.Require(len(buf) > 0)
//
// does nothing.
// Go still evaluates the arguments of a call to an empty function,
// so expensive conditions must be guarded by the [Enabled] constant,
// or use one of the lazy forms:
//
//	if gcontract.Enabled {
//		gcontract.Check(tree.Balanced())
//	}
//
//	gcontract.EnsureFunc(2, func() bool { return tree.Balanced() })
//	gcontract.EnsureFuncf(2, tree.Balanced, tree.Dump)
//
// The compiler removes the guarded block entirely when Enabled is false.
//
// Contracts come in four kinds:
// [Require] for preconditions, [Check] for invariants in a function body,
// [Ensure] for postconditions, and [Assert] for plain assertions.
// Every kind behaves the same way: if the check is active and its condition is false,
// the violation is logged, the process traps into an attached debugger,
// and execution stops.
// A violation never returns to the caller.
//
// The "At" variants take an [Intensity] threshold.
// A check declared at threshold t is only evaluated while the current intensity,
// see [GetIntensity] and [SetIntensity], is at least t.
// The intensity starts at [DefaultIntensity] in every process.
//
// [Break] and [BreakIf] trap into the debugger without stopping the program.
// They are compiled in with either the "debug" or the "messaging" tag,
// unless the "notrap" tag is also set.
// See [Flags.Operations] for the full table of what each combination of tags enables.
//
// All state lives in an [Environment].
// The package-level functions use [Default];
// tests should use the gcontracttest package instead of the process-wide environment.
//
// The *_nodebug.go files and break_off.go are generated from their debug counterparts.
// Edit the debug file and run "go generate" instead of editing them.
package gcontract

//go:generate go run github.com/gordian-engine/gdbc/gcontract/cmd/generate-nodebug contract_debug.go
//go:generate go run github.com/gordian-engine/gdbc/gcontract/cmd/generate-nodebug inform_debug.go
//go:generate go run github.com/gordian-engine/gdbc/gcontract/cmd/generate-nodebug state_debug.go
//go:generate go run github.com/gordian-engine/gdbc/gcontract/cmd/generate-nodebug break_on.go
