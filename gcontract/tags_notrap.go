//go:build notrap

package gcontract

const notrapTag = true
