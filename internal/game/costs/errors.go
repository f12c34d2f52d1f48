// Package costs implements payable cost components and their payment
// orchestration: mana, tapping, life, sacrifice, discard, exile,
// counters and effect-backed costs, combined into ordered total costs.
package costs

import "fmt"

// ErrorCode classifies why a cost cannot be paid.
type ErrorCode string

const (
	CodeSourceNotFound              ErrorCode = "SOURCE_NOT_FOUND"
	CodePlayerNotFound              ErrorCode = "PLAYER_NOT_FOUND"
	CodeInsufficientMana            ErrorCode = "INSUFFICIENT_MANA"
	CodeInsufficientLife            ErrorCode = "INSUFFICIENT_LIFE"
	CodeInsufficientCounters        ErrorCode = "INSUFFICIENT_COUNTERS"
	CodeInsufficientEnergy          ErrorCode = "INSUFFICIENT_ENERGY"
	CodeAlreadyTapped               ErrorCode = "ALREADY_TAPPED"
	CodeAlreadyUntapped             ErrorCode = "ALREADY_UNTAPPED"
	CodeSummoningSickness           ErrorCode = "SUMMONING_SICKNESS"
	CodeSourceNotOnBattlefield      ErrorCode = "SOURCE_NOT_ON_BATTLEFIELD"
	CodeNoValidSacrificeTarget      ErrorCode = "NO_VALID_SACRIFICE_TARGET"
	CodeNoValidReturnTarget         ErrorCode = "NO_VALID_RETURN_TARGET"
	CodeInsufficientCardsInHand     ErrorCode = "INSUFFICIENT_CARDS_IN_HAND"
	CodeInsufficientCardsToExile    ErrorCode = "INSUFFICIENT_CARDS_TO_EXILE"
	CodeInsufficientCardsInGrave    ErrorCode = "INSUFFICIENT_CARDS_IN_GRAVEYARD"
	CodeInsufficientCardsToReveal   ErrorCode = "INSUFFICIENT_CARDS_TO_REVEAL"
	CodeOther                       ErrorCode = "OTHER"
)

// PaymentError is a structured, matchable cost failure. Components
// return these as values; nothing in this package panics on an
// unpayable cost.
type PaymentError struct {
	Code   ErrorCode
	Detail string
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Detail == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// Is matches any PaymentError with the same code, so callers can use
// errors.Is against the sentinel values below.
func (e *PaymentError) Is(target error) bool {
	t, ok := target.(*PaymentError)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is matching.
var (
	ErrSourceNotFound            = &PaymentError{Code: CodeSourceNotFound}
	ErrPlayerNotFound            = &PaymentError{Code: CodePlayerNotFound}
	ErrInsufficientMana          = &PaymentError{Code: CodeInsufficientMana}
	ErrInsufficientLife          = &PaymentError{Code: CodeInsufficientLife}
	ErrInsufficientCounters      = &PaymentError{Code: CodeInsufficientCounters}
	ErrInsufficientEnergy        = &PaymentError{Code: CodeInsufficientEnergy}
	ErrAlreadyTapped             = &PaymentError{Code: CodeAlreadyTapped}
	ErrAlreadyUntapped           = &PaymentError{Code: CodeAlreadyUntapped}
	ErrSummoningSickness         = &PaymentError{Code: CodeSummoningSickness}
	ErrSourceNotOnBattlefield    = &PaymentError{Code: CodeSourceNotOnBattlefield}
	ErrNoValidSacrificeTarget    = &PaymentError{Code: CodeNoValidSacrificeTarget}
	ErrNoValidReturnTarget       = &PaymentError{Code: CodeNoValidReturnTarget}
	ErrInsufficientCardsInHand   = &PaymentError{Code: CodeInsufficientCardsInHand}
	ErrInsufficientCardsToExile  = &PaymentError{Code: CodeInsufficientCardsToExile}
	ErrInsufficientCardsInGrave  = &PaymentError{Code: CodeInsufficientCardsInGrave}
	ErrInsufficientCardsToReveal = &PaymentError{Code: CodeInsufficientCardsToReveal}
)

func paymentErr(code ErrorCode, format string, args ...any) *PaymentError {
	return &PaymentError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// OtherError wraps a failure this package does not model, typically
// from an effect-backed cost.
func OtherError(format string, args ...any) *PaymentError {
	return paymentErr(CodeOther, format, args...)
}
