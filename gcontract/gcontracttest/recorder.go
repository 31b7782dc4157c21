// Package gcontracttest provides contract environments for tests.
//
// A violation never returns to its caller,
// so tests observe violations through a [Recorder]:
// its failure handler records the violation and ends the violating goroutine,
// and [Recorder.ExpectViolation] runs the code under test on a goroutine of its own.
package gcontracttest

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gordian-engine/gdbc/gcontract"
	"github.com/gordian-engine/gdbc/internal/gtest"
	"github.com/stretchr/testify/require"
)

// EventKind distinguishes the events captured by a [Recorder].
type EventKind uint8

const (
	// EventEntry is a diagnostic emitted to the sink.
	EventEntry EventKind = iota + 1

	// EventTrap is a trap into the debugger.
	EventTrap

	// EventViolation is a call to the failure handler.
	EventViolation
)

// Event is one observation made by a [Recorder].
type Event struct {
	Kind EventKind

	// Set for EventEntry.
	Entry gcontract.Entry

	// Set for EventViolation.
	Violation gcontract.Violation
}

// Recorder captures everything an Environment from [NewEnv] does, in order.
type Recorder struct {
	t testing.TB

	mu     sync.Mutex
	events []Event

	debugged  atomic.Bool
	expecting atomic.Int32

	failures chan gcontract.Violation
}

// NewEnv returns an Environment wired to a new Recorder.
//
// Diagnostics are also written to the test log.
// Traps are recorded instead of executed,
// and the debugger detector reports false until [Recorder.SetDebugged] is called.
// A violation outside [Recorder.ExpectViolation] fails the test.
//
// opts are applied after the recorder's options, so they may override them.
func NewEnv(t testing.TB, opts ...gcontract.Opt) (*gcontract.Environment, *Recorder) {
	t.Helper()

	r := &Recorder{
		t:        t,
		failures: make(chan gcontract.Violation, 16),
	}

	all := append([]gcontract.Opt{
		gcontract.WithSink(gcontract.MultiSink(
			gcontract.NewSlogSink(gtest.NewLogger(t)),
			gcontract.SinkFunc(r.emit),
		)),
		gcontract.WithTrap(r.trap),
		gcontract.WithDetector(r.debugged.Load),
		gcontract.WithFailureHandler(r.fail),
	}, opts...)

	e, err := gcontract.NewEnvironment(all...)
	require.NoError(t, err)

	return e, r
}

// SetDebugged sets the value reported by the environment's debugger detector.
func (r *Recorder) SetDebugged(b bool) {
	r.debugged.Store(b)
}

// ExpectViolation calls fn on a new goroutine and returns the violation it raises.
// The test fails if fn returns normally.
func (r *Recorder) ExpectViolation(t testing.TB, fn func()) gcontract.Violation {
	t.Helper()

	if !r.run(t, fn) {
		t.Fatalf("expected a contract violation, but the function returned normally")
	}
	return gtest.IsSending(t, r.failures)
}

// ExpectNoViolation calls fn on a new goroutine,
// and fails the test if fn raises a violation.
func (r *Recorder) ExpectNoViolation(t testing.TB, fn func()) {
	t.Helper()

	if r.run(t, fn) {
		v := <-r.failures
		t.Fatalf("unexpected contract violation: %v", v)
	}
}

// run reports whether fn was stopped by a violation.
func (r *Recorder) run(t testing.TB, fn func()) (violated bool) {
	t.Helper()

	r.expecting.Add(1)
	defer r.expecting.Add(-1)

	returned := false
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
		returned = true
	}()

	// The failure path parses the caller's source file,
	// so allow more time than a plain channel hand-off.
	_ = gtest.ReceiveOrTimeout(t, done, gtest.ScaleMs(2000))
	return !returned
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Entries returns the diagnostics emitted so far.
func (r *Recorder) Entries() []gcontract.Entry {
	var out []gcontract.Entry
	for _, ev := range r.Events() {
		if ev.Kind == EventEntry {
			out = append(out, ev.Entry)
		}
	}
	return out
}

// Messages returns the message of each diagnostic emitted so far.
func (r *Recorder) Messages() []string {
	var out []string
	for _, en := range r.Entries() {
		out = append(out, en.Message)
	}
	return out
}

// Traps returns the number of traps so far.
func (r *Recorder) Traps() int {
	n := 0
	for _, ev := range r.Events() {
		if ev.Kind == EventTrap {
			n++
		}
	}
	return n
}

// Violations returns the violations raised so far.
func (r *Recorder) Violations() []gcontract.Violation {
	var out []gcontract.Violation
	for _, ev := range r.Events() {
		if ev.Kind == EventViolation {
			out = append(out, ev.Violation)
		}
	}
	return out
}

func (r *Recorder) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *Recorder) emit(en gcontract.Entry) {
	r.record(Event{Kind: EventEntry, Entry: en})
}

func (r *Recorder) trap() {
	r.record(Event{Kind: EventTrap})
}

func (r *Recorder) fail(v gcontract.Violation) {
	r.record(Event{Kind: EventViolation, Violation: v})

	if r.expecting.Load() == 0 {
		r.t.Errorf("contract violation outside ExpectViolation: %v", v)
	}

	select {
	case r.failures <- v:
	default:
	}

	runtime.Goexit()
}
