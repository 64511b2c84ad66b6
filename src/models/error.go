package models

import "fmt"

var InvalidQuantityErr = fmt.Errorf("totalQuantity must be greater than 0")
var InvalidActionErr = fmt.Errorf("action must be BUY or SELL")
var InvalidOrderTypeErr = fmt.Errorf("invalid order type")
var InvalidPriceErr = fmt.Errorf("invalid price")
var TrailingParamsErr = fmt.Errorf("exactly one of trailingDistance or trailingPercent must be specified")
var InvalidLimitOffsetErr = fmt.Errorf("limitOffset must be non-negative")
var NoDateErr = fmt.Errorf("date cannot be zero")
var InvalidVolumeErr = fmt.Errorf("volume must be non-negative")
var OhlcRangeErr = fmt.Errorf("invalid OHLC range")

// ValidationError is returned from constructors and validating setters. It
// names the offending field so the caller can correct the input and retry;
// no invalid instance is ever constructed.
type ValidationError struct {
	Field  string
	Reason string
	err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func newValidationError(err error, field string, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
		err:    err,
	}
}
