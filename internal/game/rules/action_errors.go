// Package rules implements special actions: game actions a player may
// take while holding priority that do not use the stack (Rule 116).
package rules

import (
	"errors"
	"fmt"

	"github.com/maigus/maigus-engine-go/internal/game"
	"github.com/maigus/maigus-engine-go/internal/game/costs"
)

// ActionCode classifies why a special action is illegal.
type ActionCode string

const (
	CodeNotYourPriority   ActionCode = "NOT_YOUR_PRIORITY"
	CodeNotActivePlayer   ActionCode = "NOT_ACTIVE_PLAYER"
	CodeWrongPhase        ActionCode = "WRONG_PHASE"
	CodeStackNotEmpty     ActionCode = "STACK_NOT_EMPTY"
	CodeAlreadyPlayedLand ActionCode = "ALREADY_PLAYED_LAND"
	CodeNotALand          ActionCode = "NOT_A_LAND"
	CodeCantPayCost       ActionCode = "CANT_PAY_COST"
	CodeWrongZone         ActionCode = "WRONG_ZONE"
	CodeNoSuchAbility     ActionCode = "NO_SUCH_ABILITY"
	CodeNotFaceDown       ActionCode = "NOT_FACE_DOWN"
	CodeObjectNotFound    ActionCode = "OBJECT_NOT_FOUND"
	CodePlayerNotFound    ActionCode = "PLAYER_NOT_FOUND"
	CodeInvalidTarget     ActionCode = "INVALID_TARGET"
	CodeSummoningSickness ActionCode = "SUMMONING_SICKNESS"
	CodeUnknownAction     ActionCode = "UNKNOWN_ACTION"
)

// ActionError is a structured special-action failure.
type ActionError struct {
	Code   ActionCode
	Detail string

	// Expected and Actual are set for WrongZone errors.
	Expected game.Zone
	Actual   game.Zone

	// Cause carries the underlying payment error for CantPayCost.
	Cause error
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	switch {
	case e.Code == CodeWrongZone:
		return fmt.Sprintf("%s: expected %s, in %s", e.Code, e.Expected, e.Actual)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Detail)
	default:
		return string(e.Code)
	}
}

// Is matches any ActionError with the same code.
func (e *ActionError) Is(target error) bool {
	t, ok := target.(*ActionError)
	return ok && t.Code == e.Code
}

// Unwrap exposes the underlying cause, if any.
func (e *ActionError) Unwrap() error {
	return e.Cause
}

// Sentinels for errors.Is matching.
var (
	ErrNotYourPriority   = &ActionError{Code: CodeNotYourPriority}
	ErrNotActivePlayer   = &ActionError{Code: CodeNotActivePlayer}
	ErrWrongPhase        = &ActionError{Code: CodeWrongPhase}
	ErrStackNotEmpty     = &ActionError{Code: CodeStackNotEmpty}
	ErrAlreadyPlayedLand = &ActionError{Code: CodeAlreadyPlayedLand}
	ErrNotALand          = &ActionError{Code: CodeNotALand}
	ErrCantPayCost       = &ActionError{Code: CodeCantPayCost}
	ErrWrongZone         = &ActionError{Code: CodeWrongZone}
	ErrNoSuchAbility     = &ActionError{Code: CodeNoSuchAbility}
	ErrNotFaceDown       = &ActionError{Code: CodeNotFaceDown}
	ErrObjectNotFound    = &ActionError{Code: CodeObjectNotFound}
	ErrPlayerNotFound    = &ActionError{Code: CodePlayerNotFound}
	ErrInvalidTarget     = &ActionError{Code: CodeInvalidTarget}
	ErrUnknownAction     = &ActionError{Code: CodeUnknownAction}
)

func actionErr(code ActionCode, format string, args ...any) *ActionError {
	return &ActionError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

func wrongZone(expected, actual game.Zone) *ActionError {
	return &ActionError{Code: CodeWrongZone, Expected: expected, Actual: actual}
}

// fromPaymentError converts a cost failure into the action error a
// caller sees, preserving the cause for errors.As.
func fromPaymentError(err error) *ActionError {
	if err == nil {
		return nil
	}
	var pe *costs.PaymentError
	if errors.As(err, &pe) {
		return &ActionError{Code: CodeCantPayCost, Detail: pe.Error(), Cause: pe}
	}
	return &ActionError{Code: CodeCantPayCost, Detail: err.Error(), Cause: err}
}
