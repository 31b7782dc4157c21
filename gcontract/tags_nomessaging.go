//go:build !messaging

package gcontract

const messagingTag = false
