//go:build tools

// For the tools.go pattern, see:
// https://go.dev/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module

package main

import (
	// For stringer, used by the go:generate calls in gcontract.
	_ "golang.org/x/tools/cmd/stringer"
)
