package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates the caller is not authenticated or does not own the resource.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUnknownCurrency indicates that a currency code has no registered denomination table.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrMalformedVector indicates a denomination vector whose length does not match the
// currency's tiers or that holds a negative count.
var ErrMalformedVector = errors.New("malformed denomination vector")

// ErrInvalidTarget indicates a negative (or unrepresentable) drawer target value.
var ErrInvalidTarget = errors.New("invalid drawer target")

// ErrNegativeCount indicates a vector subtraction that would produce a negative count.
var ErrNegativeCount = errors.New("negative denomination count")

// ErrInvalidCurrencyTable indicates a currency definition that breaks the table invariants.
var ErrInvalidCurrencyTable = errors.New("invalid currency table")

// IsInputError reports whether err is one of the reconciliation input validation failures.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMalformedVector) ||
		errors.Is(err, ErrInvalidTarget) ||
		errors.Is(err, ErrNegativeCount) ||
		errors.Is(err, ErrUnknownCurrency) ||
		errors.Is(err, ErrValidation)
}
