package stats

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned when a sample has no elements.
	ErrEmptyInput = errors.New("sample is empty")
	// ErrInsufficientData is returned when a sample is too small for the requested estimator.
	ErrInsufficientData = errors.New("sample needs at least two values")
	// ErrDivisionByZero is returned when the standard deviation is zero.
	ErrDivisionByZero = errors.New("standard deviation is zero")
	// ErrNotFinite is returned when a statistic overflows float64.
	ErrNotFinite = errors.New("statistic is not finite")
)
