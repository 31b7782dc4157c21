package gcontract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sourceFixture = `package fixture

func f(n int, p *int, xs []int, a, b bool) {
	gcontract.Require(n > 0)
	gcontract.RequireAtf(2, len(xs) == n,
		"want %d items", n)
	Check(inner(gcontract.Ensure(p != nil)))
	gcontract.EnsureFunc(1, func() bool { return n%2 == 0 })
	q := gcontract.RequireNotNil[int](p)
	fmt.Println(n)
	gcontract.Require(a); gcontract.Require(b)
	gcontract.Require(a); gcontract.Check(b)
	gcontract.Require(gcontract.RequireNotNil(p) != nil)
}
`

func writeFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.go")
	require.NoError(t, os.WriteFile(path, []byte(sourceFixture), 0o600))
	return path
}

func TestConditionSource(t *testing.T) {
	t.Parallel()

	path := writeFixture(t)

	for _, tc := range []struct {
		line int
		kind Kind
		want string
	}{
		{line: 4, kind: KindRequire, want: "n > 0"},
		{line: 5, kind: KindRequire, want: "len(xs) == n"},
		// A call spanning several lines matches on any of them.
		{line: 6, kind: KindRequire, want: "len(xs) == n"},
		// Nested calls of different kinds resolve by kind.
		{line: 7, kind: KindEnsure, want: "p != nil"},
		{line: 7, kind: KindCheck, want: "inner(gcontract.Ensure(p != nil))"},
		{line: 8, kind: KindEnsure, want: "func() bool { return n%2 == 0 }"},
		{line: 9, kind: KindRequire, want: "p"},
		// Wrong kind for the call on the line.
		{line: 4, kind: KindCheck, want: ""},
		// Two calls of the same kind on one line cannot be told apart.
		{line: 11, kind: KindRequire, want: ""},
		{line: 12, kind: KindRequire, want: "a"},
		{line: 12, kind: KindCheck, want: "b"},
		{line: 13, kind: KindRequire, want: ""},
		// Not a contract call.
		{line: 10, kind: KindRequire, want: ""},
		{line: 1, kind: KindRequire, want: ""},
		{line: 99, kind: KindRequire, want: ""},
	} {
		require.Equal(t, tc.want, conditionSource(path, tc.line, tc.kind), "line %d kind %s", tc.line, tc.kind)
	}
}

func TestConditionSource_unavailable(t *testing.T) {
	t.Parallel()

	require.Empty(t, conditionSource("", 4, KindRequire))
	require.Empty(t, conditionSource(filepath.Join(t.TempDir(), "missing.go"), 4, KindRequire))

	bad := filepath.Join(t.TempDir(), "bad.go")
	require.NoError(t, os.WriteFile(bad, []byte("package x\nfunc {"), 0o600))
	require.Empty(t, conditionSource(bad, 2, KindRequire))
}
