package statmodel

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ErrInvalidConfig, etc. are the kinds of failure that can occur when
// a model is specified or fit.  Use errors.Is to test for a kind; the
// typed errors below carry the details and can be extracted with
// errors.As.
var (
	ErrInvalidConfig = errors.New("invalid model configuration")
	ErrSingular      = errors.New("singular normal equations")
	ErrNotConverged  = errors.New("iteration limit reached before convergence")
	ErrStepHalving   = errors.New("step-halving failed to improve the objective")
)

// ConfigError reports a model that cannot be fit as specified, for
// example because the response, design and offset have different
// lengths, or a response value lies outside the family's domain.
type ConfigError struct {
	Op     string
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Op, e.Param, e.Reason)
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// MarshalZerologObject adds the error details to a log event.
func (e *ConfigError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("op", e.Op).
		Str("param", e.Param).
		Str("reason", e.Reason).
		Str("type", "ConfigError")
}

// NewConfigError returns a ConfigError with a stack trace attached.
func NewConfigError(op, param, format string, args ...interface{}) error {
	err := &ConfigError{Op: op, Param: param, Reason: fmt.Sprintf(format, args...)}
	return errors.WithStack(err)
}

// SingularError reports that the weighted normal equations could not
// be solved at the given iteration.
type SingularError struct {
	Iter   int
	Reason string
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("singular normal equations at iteration %d: %s", e.Iter, e.Reason)
}

// Unwrap returns ErrSingular.
func (e *SingularError) Unwrap() error {
	return ErrSingular
}

// MarshalZerologObject adds the error details to a log event.
func (e *SingularError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Int("iter", e.Iter).
		Str("reason", e.Reason).
		Str("type", "SingularError")
}

// NewSingularError returns a SingularError with a stack trace attached.
func NewSingularError(iter int, reason string) error {
	return errors.WithStack(&SingularError{Iter: iter, Reason: reason})
}

// ConvergenceError reports that the iteration limit was reached while
// the objective was still changing by Change.
type ConvergenceError struct {
	Iter   int
	Change float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("no convergence after %d iterations (last objective change %g)", e.Iter, e.Change)
}

// Unwrap returns ErrNotConverged.
func (e *ConvergenceError) Unwrap() error {
	return ErrNotConverged
}

// MarshalZerologObject adds the error details to a log event.
func (e *ConvergenceError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Int("iter", e.Iter).
		Float64("change", e.Change).
		Str("type", "ConvergenceError")
}

// NewConvergenceError returns a ConvergenceError with a stack trace attached.
func NewConvergenceError(iter int, change float64) error {
	return errors.WithStack(&ConvergenceError{Iter: iter, Change: change})
}

// StepHalvingError reports that no fraction of the proposed update
// increased the objective.
type StepHalvingError struct {
	Iter      int
	Halvings  int
	Objective float64
}

func (e *StepHalvingError) Error() string {
	return fmt.Sprintf("objective %g not improved after %d step halvings at iteration %d",
		e.Objective, e.Halvings, e.Iter)
}

// Unwrap returns ErrStepHalving.
func (e *StepHalvingError) Unwrap() error {
	return ErrStepHalving
}

// MarshalZerologObject adds the error details to a log event.
func (e *StepHalvingError) MarshalZerologObject(ev *zerolog.Event) {
	ev.Int("iter", e.Iter).
		Int("halvings", e.Halvings).
		Float64("objective", e.Objective).
		Str("type", "StepHalvingError")
}

// NewStepHalvingError returns a StepHalvingError with a stack trace attached.
func NewStepHalvingError(iter, halvings int, objective float64) error {
	return errors.WithStack(&StepHalvingError{Iter: iter, Halvings: halvings, Objective: objective})
}
