//go:build debug

package gcontract

const debugTag = true
