package expenses

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps one of them so
// callers can test with errors.Is.
var (
	ErrInvalidCategory        = errors.New("invalid category")
	ErrInvalidDate            = errors.New("invalid date")
	ErrFutureDate             = errors.New("date is in the future")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrZeroAmount             = errors.New("amount must not be zero")
	ErrBlankDetails           = errors.New("details must not be blank")
	ErrInvalidDetails         = errors.New("details must fit on a single line")
	ErrEmptyLedger            = errors.New("ledger has no transactions")
	ErrIndexOutOfRange        = errors.New("transaction number out of range")
	ErrInvalidField           = errors.New("invalid field")
	ErrUpdateCancelled        = errors.New("update cancelled")
	ErrDeleteCancelled        = errors.New("delete cancelled")
	ErrInvalidFilterValue     = errors.New("invalid filter value")
	ErrInvalidRange           = errors.New("invalid date range")
	ErrFileNotFound           = errors.New("ledger file not found")
	ErrCorruptFile            = errors.New("corrupt ledger file")
	ErrNegativeInitialBalance = errors.New("initial balance must not be negative")
	ErrBalanceMismatch        = errors.New("current balance does not match transactions")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field string // category, date, amount or details
	Value string // raw input
	Err   error  // wraps one of the error kinds
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field, value string, err error) error {
	return &ValidationError{Field: field, Value: value, Err: err}
}
