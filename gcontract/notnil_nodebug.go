//go:build !debug

package gcontract

// RequireNotNil returns p unchecked in non-debug builds.
func RequireNotNil[T any](p *T) *T { return p }

// CheckNotNil returns p unchecked in non-debug builds.
func CheckNotNil[T any](p *T) *T { return p }
