// Package gcontractlog provides [gcontract.Sink] implementations
// for destinations other than log/slog.
//
// Use them with [gcontract.WithSink]:
//
//	env, err := gcontract.NewEnvironment(
//		gcontract.WithSink(gcontractlog.NewZerologSink(zlog)),
//	)
package gcontractlog
