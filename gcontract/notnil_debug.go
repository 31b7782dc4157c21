//go:build debug

package gcontract

// RequireNotNil requires that p is not nil, and returns p.
// It shortens the common pattern of checking a pointer before its first use:
//
//	cfg := gcontract.RequireNotNil(opts.Config)
func RequireNotNil[T any](p *T) *T {
	if p == nil {
		Default().failAt(1, KindRequire, DefaultIntensity, " != nil", "", nil)
	}
	return p
}

// CheckNotNil is like [RequireNotNil] for a pointer produced in the body of a function.
func CheckNotNil[T any](p *T) *T {
	if p == nil {
		Default().failAt(1, KindCheck, DefaultIntensity, " != nil", "", nil)
	}
	return p
}
