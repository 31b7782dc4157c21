package gcontract

import (
	"fmt"
	"strings"
)

// Kind identifies the contract role of a check.
// It only affects the diagnostic; every kind fails the same way.
type Kind uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type Kind -trimprefix=Kind

const (
	// KindRequire is a precondition, checked on entry.
	KindRequire Kind = iota + 1

	// KindCheck is an invariant checked in the body of a function.
	KindCheck

	// KindEnsure is a postcondition, checked before returning.
	KindEnsure

	// KindAssertion is a plain assertion with no contract role.
	KindAssertion
)

// Label returns the upper-case name used in violation messages,
// e.g. "REQUIRE".
func (k Kind) Label() string {
	return strings.ToUpper(k.String())
}

// ParseKind parses a kind name as produced by [Kind.String] or [Kind.Label],
// ignoring case.
func ParseKind(s string) (Kind, error) {
	for k := KindRequire; k <= KindAssertion; k++ {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown contract kind %q (want require, check, ensure, or assertion)", s)
}
