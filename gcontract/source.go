package gcontract

import (
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"math"
	"os"
	"strings"
)

// conditionArgs maps the package-level call-site functions
// to their kind and the index of their condition argument.
var conditionArgs = map[string]struct {
	kind Kind
	arg  int
}{
	"Require": {KindRequire, 0}, "Requiref": {KindRequire, 0},
	"RequireAt": {KindRequire, 1}, "RequireAtf": {KindRequire, 1},
	"RequireFunc": {KindRequire, 1}, "RequireFuncf": {KindRequire, 1},
	"RequireNotNil": {KindRequire, 0},

	"Check": {KindCheck, 0}, "Checkf": {KindCheck, 0},
	"CheckAt": {KindCheck, 1}, "CheckAtf": {KindCheck, 1},
	"CheckFunc": {KindCheck, 1}, "CheckFuncf": {KindCheck, 1},
	"CheckNotNil": {KindCheck, 0},

	"Ensure": {KindEnsure, 0}, "Ensuref": {KindEnsure, 0},
	"EnsureAt": {KindEnsure, 1}, "EnsureAtf": {KindEnsure, 1},
	"EnsureFunc": {KindEnsure, 1}, "EnsureFuncf": {KindEnsure, 1},

	"Assert": {KindAssertion, 0}, "Assertf": {KindAssertion, 0},
	"AssertAt": {KindAssertion, 1}, "AssertAtf": {KindAssertion, 1},
}

// conditionSource recovers the source text of the condition
// passed to the contract call of the given kind at file:line.
//
// Go has no way to stringify an argument expression at the call site,
// so the file is parsed when, and only when, a check has already failed.
// The empty string is returned if the file cannot be read or parsed,
// or no matching call spans the line.
// It is also returned when several calls of the kind share the narrowest span,
// since the line alone cannot tell which of them failed.
func conditionSource(file string, line int, kind Kind) string {
	if file == "" || line <= 0 {
		return ""
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return ""
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file, src, parser.SkipObjectResolution)
	if err != nil {
		return ""
	}

	// Prefer the narrowest call of the right kind spanning the line.
	// Two such calls of equal span, even nested ones, could each be the failure.
	var (
		found     ast.Expr
		ambiguous bool
	)
	span := math.MaxInt
	ast.Inspect(f, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		start, end := fset.Position(call.Pos()).Line, fset.Position(call.End()).Line
		if line < start || line > end {
			// Nothing beneath a non-spanning node can span the line.
			return false
		}

		ca, ok := conditionArgs[calleeName(call.Fun)]
		if !ok || ca.kind != kind || ca.arg >= len(call.Args) {
			return true
		}

		switch s := end - start; {
		case s < span:
			found, span, ambiguous = call.Args[ca.arg], s, false
		case s == span:
			ambiguous = true
		}
		return true
	})
	if found == nil || ambiguous {
		return ""
	}

	var b strings.Builder
	if err := printer.Fprint(&b, fset, found); err != nil {
		return ""
	}
	return b.String()
}

// calleeName returns the bare function name of a call expression's Fun,
// so that gcontract.Require, Require, and RequireNotNil[T] all resolve.
func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	default:
		return ""
	}
}
