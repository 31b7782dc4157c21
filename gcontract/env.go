package gcontract

import (
	"errors"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/gordian-engine/gdbc/gdebug"
)

// Environment holds the state behind every contract check:
// the current intensity, where diagnostics go,
// how to trap into a debugger, and how to terminate after a violation.
//
// The package-level functions such as [Require] and [Inform]
// use the process-wide environment returned by [Default].
// Tests substitute their own Environment to avoid interfering with each other;
// see the gcontracttest package.
//
// The methods on Environment are the runtime-gated primitives.
// They are compiled into every build,
// but nothing calls them from a release build unless the program does so directly.
//
// Methods on Environment are safe for concurrent use.
// The zero value behaves like [NewEnvironment] without options.
type Environment struct {
	// Read and written with relaxed ordering.
	// A goroutine observing a level one update behind is acceptable;
	// the gate is advisory.
	intensity atomic.Int64

	sink Sink

	trap   func()
	detect func() bool

	trapPolicy TrapPolicy
	onFailure  FailureHandler

	// Nil rules enable every scope.
	rules *RuleSet
}

var stderrSink = NewSlogSink(slog.New(slog.NewTextHandler(os.Stderr, nil)))

// Opt is an option for [NewEnvironment].
type Opt func(*Environment) error

// NewEnvironment returns an Environment at [DefaultIntensity],
// logging as text to stderr, trapping with [gdebug.Trap]
// while [gdebug.IsBeingDebugged] reports true,
// and terminating violations with [Abort].
//
// Options are applied in order, so later options override earlier ones.
func NewEnvironment(opts ...Opt) (*Environment, error) {
	e := &Environment{
		sink:      stderrSink,
		trap:      gdebug.Trap,
		detect:    gdebug.IsBeingDebugged,
		onFailure: Abort,
	}

	var errs []error
	for _, opt := range opts {
		if err := opt(e); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return e, nil
}

// WithIntensity sets the starting intensity.
func WithIntensity(v Intensity) Opt {
	return func(e *Environment) error {
		e.intensity.Store(int64(v))
		return nil
	}
}

// WithSink sets the destination of diagnostics.
func WithSink(s Sink) Opt {
	return func(e *Environment) error {
		if s == nil {
			return errors.New("WithSink: sink must not be nil")
		}
		e.sink = s
		return nil
	}
}

// WithLogger is shorthand for WithSink(NewSlogSink(log)).
func WithLogger(log *slog.Logger) Opt {
	return func(e *Environment) error {
		if log == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		e.sink = NewSlogSink(log)
		return nil
	}
}

// WithTrap replaces the function that traps into the debugger.
func WithTrap(trap func()) Opt {
	return func(e *Environment) error {
		if trap == nil {
			return errors.New("WithTrap: trap must not be nil")
		}
		e.trap = trap
		return nil
	}
}

// WithDetector replaces the function reporting whether a debugger is attached.
// The detector is called on every query and must not cache its result.
func WithDetector(detect func() bool) Opt {
	return func(e *Environment) error {
		if detect == nil {
			return errors.New("WithDetector: detector must not be nil")
		}
		e.detect = detect
		return nil
	}
}

// WithTrapPolicy sets when a violation traps before terminating.
func WithTrapPolicy(p TrapPolicy) Opt {
	return func(e *Environment) error {
		switch p {
		case TrapIfDebugged, TrapAlways, TrapNever:
			e.trapPolicy = p
			return nil
		default:
			return errors.New("WithTrapPolicy: unknown policy " + p.String())
		}
	}
}

// WithFailureHandler replaces [Abort] as the terminal handler for violations.
func WithFailureHandler(h FailureHandler) Opt {
	return func(e *Environment) error {
		if h == nil {
			return errors.New("WithFailureHandler: handler must not be nil")
		}
		e.onFailure = h
		return nil
	}
}

// WithRules restricts [Environment.ScopeEnabled] to the scopes enabled by rs.
func WithRules(rs *RuleSet) Opt {
	return func(e *Environment) error {
		e.rules = rs
		return nil
	}
}

// Intensity returns the current intensity.
func (e *Environment) Intensity() Intensity {
	return Intensity(e.intensity.Load())
}

// SetIntensity replaces the current intensity.
// Any value is accepted; negative values switch off all default checks.
func (e *Environment) SetIntensity(v Intensity) {
	e.intensity.Store(int64(v))
}

// Active reports whether checks declared at threshold currently run.
func (e *Environment) Active(threshold Intensity) bool {
	return e.Intensity() >= threshold
}

// Contract is the primitive behind every contract check.
//
// If the current intensity is below threshold, or cond is true, Contract does nothing.
// Otherwise it builds a [Violation] from the remaining arguments
// and passes it to [Environment.Fail], which does not return.
func (e *Environment) Contract(
	kind Kind,
	threshold Intensity,
	cond bool,
	condText, message string,
	file string, line int,
) {
	if !e.Active(threshold) || cond {
		return
	}

	e.Fail(Violation{
		Kind:      kind,
		Intensity: threshold,
		Condition: condText,
		Message:   message,
		Caller:    Caller{File: file, Line: line},
	})
}

// Fail reports v to the sink, traps according to the trap policy,
// and then runs the failure handler.
//
// Fail never returns.
// If the configured handler returns, [Abort] runs instead.
func (e *Environment) Fail(v Violation) {
	e.emit(Entry{
		Level:     slog.LevelError,
		Message:   v.Error(),
		Caller:    v.Caller,
		Violation: &v,
	})

	if e.shouldTrap() {
		e.doTrap()
	}

	if e.onFailure != nil {
		e.onFailure(v)
	}
	Abort(v)
}

func (e *Environment) shouldTrap() bool {
	switch e.trapPolicy {
	case TrapAlways:
		return true
	case TrapIfDebugged:
		return e.IsBeingDebugged()
	default:
		return false
	}
}

// Log emits message with its calling context, regardless of intensity.
func (e *Environment) Log(message string, c Caller) {
	e.emit(Entry{Level: slog.LevelInfo, Message: message, Caller: c})
}

// InformAt emits message only if cond is true
// and checks declared at threshold are active.
func (e *Environment) InformAt(threshold Intensity, cond bool, message string, c Caller) {
	if !cond || !e.Active(threshold) {
		return
	}
	e.Log(message, c)
}

// Break emits message and then traps into the debugger.
// Unlike a violation, Break always traps, and execution continues
// if the debugger resumes.
func (e *Environment) Break(message string, c Caller) {
	e.emit(Entry{Level: slog.LevelWarn, Message: message, Caller: c})
	e.doTrap()
}

func (e *Environment) doTrap() {
	if e.trap == nil {
		gdebug.Trap()
		return
	}
	e.trap()
}

// BreakIf calls [Environment.Break] only if cond is true.
func (e *Environment) BreakIf(cond bool, message string, c Caller) {
	if cond {
		e.Break(message, c)
	}
}

// IsBeingDebugged queries the environment's detector.
// The result is not cached.
func (e *Environment) IsBeingDebugged() bool {
	if e.detect == nil {
		return gdebug.IsBeingDebugged()
	}
	return e.detect()
}

// PerformIfIntensity calls action once, synchronously,
// if checks declared at threshold are active.
func (e *Environment) PerformIfIntensity(threshold Intensity, action func()) {
	if e.Active(threshold) {
		action()
	}
}

// ScopeEnabled reports whether the named scope is enabled by the environment's rules.
// Without rules, every scope is enabled.
func (e *Environment) ScopeEnabled(scope string) bool {
	if e.rules == nil {
		return true
	}
	return e.rules.Enabled(scope)
}

// emit forwards en to the sink.
// Sink failures never reach the caller.
func (e *Environment) emit(en Entry) {
	defer func() { _ = recover() }()
	if e.sink == nil {
		stderrSink.Emit(en)
		return
	}
	e.sink.Emit(en)
}
