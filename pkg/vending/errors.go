package vending

import (
	"errors"
	"fmt"
)

// Domain-level error values returned by the vending machine. All of them are
// recoverable by the customer; a session stays usable after any of these.
var (
	ErrItemNotFound         = errors.New("item not found")
	ErrItemUnavailable      = errors.New("item unavailable")
	ErrInvalidDenomination  = errors.New("invalid coin denomination")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrChangeUnavailable    = errors.New("change unavailable")
	ErrNoActiveSession      = errors.New("no active purchase session")
	ErrSessionAlreadyActive = errors.New("purchase session already active")
	ErrInvalidItemName      = errors.New("invalid item name")
	ErrInvalidPriceCents    = errors.New("invalid price cents")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidCoinCount     = errors.New("invalid coin count")
	ErrInvalidAmountCents   = errors.New("invalid amount cents")
	ErrInvalidMachineConfig = errors.New("invalid machine config")
)

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}
