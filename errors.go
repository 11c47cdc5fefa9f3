package magnet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mvoloshyn/magnet/internal/container"
)

type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeCyclicDependency
	ErrCodeUnresolvableDependency
	ErrCodeConstructionFailed
	ErrCodeConnectionFailed
	ErrCodeDisconnectionFailed
	ErrCodeHealthcheckFailed
	ErrCodeInvalidBinding
	ErrCodeRegistrationFailed
	ErrCodeOverrideMisuse
	ErrCodeInvalidTarget
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:                "UNKNOWN",
	ErrCodeCyclicDependency:       "CYCLIC_DEPENDENCY",
	ErrCodeUnresolvableDependency: "UNRESOLVABLE_DEPENDENCY",
	ErrCodeConstructionFailed:     "CONSTRUCTION_FAILED",
	ErrCodeConnectionFailed:       "CONNECTION_FAILED",
	ErrCodeDisconnectionFailed:    "DISCONNECTION_FAILED",
	ErrCodeHealthcheckFailed:      "HEALTHCHECK_FAILED",
	ErrCodeInvalidBinding:         "INVALID_BINDING",
	ErrCodeRegistrationFailed:     "REGISTRATION_FAILED",
	ErrCodeOverrideMisuse:         "OVERRIDE_MISUSE",
	ErrCodeInvalidTarget:          "INVALID_TARGET",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint16(c))
}

// Error is the error type for every failure the container reports. Code
// identifies the failure class, Dependency names the type involved, and
// Chain carries the full cycle path for cyclic-dependency errors.
type Error struct {
	Code       ErrorCode
	Message    string
	Dependency string
	Chain      []string
	Cause      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Dependency != "" {
		b.WriteString(fmt.Sprintf(" dependency=%q:", e.Dependency))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithDependency(dep string) *Error {
	e.Dependency = dep
	return e
}

func (e *Error) WithChain(chain []string) *Error {
	e.Chain = chain
	return e
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// wrapEngine maps engine-level errors onto the public taxonomy. Context
// cancellation keeps its identity through Unwrap, so errors.Is against
// context.Canceled still matches after wrapping.
func wrapEngine(err error) error {
	if err == nil {
		return nil
	}

	var cycle *container.CycleError
	if errors.As(err, &cycle) {
		return newError(
			ErrCodeCyclicDependency,
			fmt.Sprintf("cyclic dependency: %s", strings.Join(cycle.Chain, " -> ")),
			nil,
		).WithChain(cycle.Chain).WithDependency(cycle.Chain[0])
	}

	var unresolvable *container.UnresolvableError
	if errors.As(err, &unresolvable) {
		return newError(ErrCodeUnresolvableDependency, err.Error(), nil).
			WithDependency(unresolvable.Type)
	}

	var construct *container.ConstructError
	if errors.As(err, &construct) {
		return newError(
			ErrCodeConstructionFailed,
			fmt.Sprintf("failed to construct %s", construct.Type),
			construct.Cause,
		).WithDependency(construct.Type)
	}

	var connect *container.ConnectError
	if errors.As(err, &connect) {
		return newError(
			ErrCodeConnectionFailed,
			fmt.Sprintf("failed to connect %s", connect.Type),
			connect.Cause,
		).WithDependency(connect.Type)
	}

	var disconnect *container.DisconnectError
	if errors.As(err, &disconnect) {
		return newError(
			ErrCodeDisconnectionFailed,
			fmt.Sprintf("%d dependencies failed to disconnect", len(disconnect.Failures)),
			errors.Join(disconnect.Failures...),
		)
	}

	if errors.Is(err, container.ErrNotTopOverride) || errors.Is(err, container.ErrOverrideReleased) {
		return newError(ErrCodeOverrideMisuse, err.Error(), nil)
	}

	if errors.Is(err, container.ErrAlreadyRegistered) {
		return newError(ErrCodeRegistrationFailed, err.Error(), nil)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return newError(ErrCodeConnectionFailed, "connect sequence interrupted", err)
	}

	return err
}

func IsCyclicDependency(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeCyclicDependency
}

func IsUnresolvableDependency(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeUnresolvableDependency
}

func IsConstructionFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConstructionFailed
}

func IsConnectionFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeConnectionFailed
}

func IsDisconnectionFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDisconnectionFailed
}

func IsHealthcheckFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeHealthcheckFailed
}

func IsOverrideMisuse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeOverrideMisuse
}
