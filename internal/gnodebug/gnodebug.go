// Package gnodebug generates the release-build twin of a debug-only Go file.
//
// Given a file guarded by a build constraint such as "//go:build debug",
// [Generate] produces a file guarded by the negated constraint,
// containing every top-level function with the same signature and an empty body.
// Functions with results name them "_" and use a bare return,
// so callers get zero values.
// Methods, types, variables and constants are dropped,
// because the debug-only types they refer to do not exist in the twin.
//
// Unused imports are removed from the output with golang.org/x/tools/imports.
package gnodebug

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/format"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// OutputName returns the default twin file name for a debug file:
// "x_debug.go" becomes "x_nodebug.go", "x_on.go" becomes "x_off.go",
// and anything else gets "_nodebug" inserted before ".go".
func OutputName(in string) string {
	dir, base := filepath.Split(in)
	stem := strings.TrimSuffix(base, ".go")
	switch {
	case strings.HasSuffix(stem, "_debug"):
		stem = strings.TrimSuffix(stem, "_debug") + "_nodebug"
	case strings.HasSuffix(stem, "_on"):
		stem = strings.TrimSuffix(stem, "_on") + "_off"
	default:
		stem += "_nodebug"
	}
	return dir + stem + ".go"
}

// Generate returns the twin of the Go source src.
// filename is used in diagnostics and in the generated header.
func Generate(filename string, src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	expr, cg, err := buildConstraint(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	var dropped []span
	dropped = append(dropped, span{cg.Pos(), cg.End()})

	decls := f.Decls[:0]
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.GenDecl:
			if d.Tok == token.IMPORT {
				decls = append(decls, d)
				continue
			}
			dropped = append(dropped, declSpan(d, d.Doc))

		case *ast.FuncDecl:
			if d.Recv != nil {
				dropped = append(dropped, declSpan(d, d.Doc))
				continue
			}
			dropped = append(dropped, span{d.Body.Lbrace + 1, d.Body.Rbrace})
			stubBody(d)
			decls = append(decls, d)
		}
	}
	f.Decls = decls

	comments := f.Comments[:0]
	for _, c := range f.Comments {
		if !within(dropped, c) {
			comments = append(comments, c)
		}
	}
	f.Comments = comments

	var body bytes.Buffer
	if err := format.Node(&body, fset, f); err != nil {
		return nil, fmt.Errorf("failed to format twin of %s: %w", filename, err)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "//go:build %s\n\n", negate(expr))
	fmt.Fprintf(&out, "// Code generated by generate-nodebug from %s; DO NOT EDIT.\n\n", filepath.Base(filename))
	out.Write(bytes.TrimLeft(body.Bytes(), "\n"))

	res, err := imports.Process(OutputName(filename), out.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clean imports of twin of %s: %w", filename, err)
	}
	return res, nil
}

// buildConstraint returns the file's //go:build expression and its comment group.
func buildConstraint(f *ast.File) (constraint.Expr, *ast.CommentGroup, error) {
	for _, cg := range f.Comments {
		if cg.Pos() > f.Package {
			break
		}
		for _, c := range cg.List {
			if !constraint.IsGoBuild(c.Text) {
				continue
			}
			expr, err := constraint.Parse(c.Text)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid build constraint: %w", err)
			}
			return expr, cg, nil
		}
	}
	return nil, nil, errors.New("no //go:build constraint before the package clause")
}

// negate returns the negation of expr, unwrapping an existing negation.
func negate(expr constraint.Expr) constraint.Expr {
	if n, ok := expr.(*constraint.NotExpr); ok {
		return n.X
	}
	return &constraint.NotExpr{X: expr}
}

// stubBody replaces d's body with an empty one, or with a bare return
// after renaming all results to "_".
func stubBody(d *ast.FuncDecl) {
	lbrace := d.Body.Lbrace
	d.Body = &ast.BlockStmt{Lbrace: lbrace, Rbrace: lbrace + 1}

	if d.Type.Results == nil || len(d.Type.Results.List) == 0 {
		return
	}

	for _, field := range d.Type.Results.List {
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		field.Names = make([]*ast.Ident, n)
		for i := range field.Names {
			field.Names[i] = ast.NewIdent("_")
		}
	}
	d.Body.List = []ast.Stmt{&ast.ReturnStmt{Return: lbrace + 1}}
	d.Body.Rbrace = lbrace + 2
}

type span struct {
	from, to token.Pos
}

func declSpan(d ast.Decl, doc *ast.CommentGroup) span {
	s := span{d.Pos(), d.End()}
	if doc != nil {
		s.from = doc.Pos()
	}
	return s
}

func within(spans []span, cg *ast.CommentGroup) bool {
	for _, s := range spans {
		if cg.Pos() >= s.from && cg.End() <= s.to {
			return true
		}
	}
	return false
}
