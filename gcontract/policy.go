package gcontract

import "strings"

// Enabled reports whether the facility was built in, i.e. the "debug" build tag.
//
// Enabled is a constant so that it can guard call sites whose arguments
// must not be evaluated in release builds:
//
//	if gcontract.Enabled {
//		gcontract.Require(tree.Balanced())
//	}
//
// The compiler removes the whole block when Enabled is false.
const Enabled = debugTag

// BreakEnabled reports whether [Break] and [BreakIf] are built in.
const BreakEnabled = (debugTag || messagingTag) && !notrapTag

// Flags are the build tags that shape the facility.
type Flags struct {
	// Debug is the "debug" tag, enabling the facility.
	Debug bool

	// Messaging is the "messaging" tag,
	// enabling Break and BreakIf without the rest of the facility.
	Messaging bool

	// NoTrap is the "notrap" tag, for targets that forbid self-trapping.
	NoTrap bool
}

// CurrentFlags returns the flags the running binary was built with.
func CurrentFlags() Flags {
	return Flags{Debug: debugTag, Messaging: messagingTag, NoTrap: notrapTag}
}

// AllFlags returns every combination of flags, in policy table order.
func AllFlags() []Flags {
	out := make([]Flags, 0, 8)
	for _, debug := range []bool{false, true} {
		for _, messaging := range []bool{false, true} {
			for _, notrap := range []bool{false, true} {
				out = append(out, Flags{Debug: debug, Messaging: messaging, NoTrap: notrap})
			}
		}
	}
	return out
}

func (f Flags) String() string {
	var tags []string
	if f.Debug {
		tags = append(tags, "debug")
	}
	if f.Messaging {
		tags = append(tags, "messaging")
	}
	if f.NoTrap {
		tags = append(tags, "notrap")
	}
	if len(tags) == 0 {
		return "(none)"
	}
	return strings.Join(tags, ",")
}

// Operation is one group of facility operations gated by the build flags.
type Operation uint16

const (
	OpContracts Operation = 1 << iota // Require, Check, Ensure, Assert
	OpLog                             // Log
	OpInform                          // Inform family
	OpIntensity                       // GetIntensity, SetIntensity
	OpPerform                         // PerformIfIntensity
	OpDetect                          // IsBeingDebugged
	OpBreak                           // Break, BreakIf
	OpTrap                            // debugger trap on break or violation
)

var operationNames = []struct {
	op   Operation
	name string
}{
	{OpContracts, "contracts"},
	{OpLog, "log"},
	{OpInform, "inform"},
	{OpIntensity, "intensity"},
	{OpPerform, "perform"},
	{OpDetect, "detect"},
	{OpBreak, "break"},
	{OpTrap, "trap"},
}

// OperationSet is a set of operations.
type OperationSet Operation

// Has reports whether op is in s.
func (s OperationSet) Has(op Operation) bool {
	return Operation(s)&op == op
}

// Names lists the operations in s in a fixed order.
func (s OperationSet) Names() []string {
	var out []string
	for _, n := range operationNames {
		if s.Has(n.op) {
			out = append(out, n.name)
		}
	}
	return out
}

func (s OperationSet) String() string {
	if s == 0 {
		return "none"
	}
	return strings.Join(s.Names(), ",")
}

const (
	debugOps = OperationSet(OpContracts | OpLog | OpInform | OpIntensity | OpPerform | OpDetect)
	breakOps = OperationSet(OpBreak | OpTrap | OpLog)
)

// policyTable maps every flag combination to the operations it enables.
//
// Messaging alone enables Break and BreakIf, which log as part of breaking.
// NoTrap removes Break, BreakIf, and trapping, whatever else is set.
var policyTable = map[Flags]OperationSet{
	{Debug: false, Messaging: false, NoTrap: false}: 0,
	{Debug: false, Messaging: false, NoTrap: true}:  0,
	{Debug: false, Messaging: true, NoTrap: false}:  breakOps,
	{Debug: false, Messaging: true, NoTrap: true}:   0,
	{Debug: true, Messaging: false, NoTrap: false}:  debugOps | breakOps,
	{Debug: true, Messaging: false, NoTrap: true}:   debugOps,
	{Debug: true, Messaging: true, NoTrap: false}:   debugOps | breakOps,
	{Debug: true, Messaging: true, NoTrap: true}:    debugOps,
}

// Operations returns the operations enabled under f.
func (f Flags) Operations() OperationSet {
	return policyTable[f]
}

// Allows reports whether op is enabled under f.
func (f Flags) Allows(op Operation) bool {
	return f.Operations().Has(op)
}
