package cash

import "errors"

// Errors returned by this package and by [Bank] implementations.
// They are wrapped with details about the failed operation, so use
// [errors.Is] to match them.
var (
	// ErrCurrencyMismatch is returned when an operation mixes two currencies.
	// The package never converts implicitly.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrUnknownCurrency is returned when a currency is not registered.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUndefinedSmallestDenomination is returned when cash rounding is
	// requested for a currency without coins or notes.
	ErrUndefinedSmallestDenomination = errors.New("smallest denomination is not defined")

	// ErrUnknownRate is returned by a bank that has no rate between two currencies.
	ErrUnknownRate = errors.New("unknown exchange rate")

	// ErrConversionDisallowed is returned by a bank that refuses to exchange.
	ErrConversionDisallowed = errors.New("conversion is not allowed")

	// ErrInvalidAllocation is returned for empty, negative, or all-zero weights.
	ErrInvalidAllocation = errors.New("invalid allocation")
)

var (
	errUnitsOverflow  = errors.New("minor units overflow")
	errDivisionByZero = errors.New("division by zero")
	errFractionalPart = errors.New("amount has digits beyond the minor unit")
)
