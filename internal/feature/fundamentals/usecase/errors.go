// Package usecase implements the business logic for the fundamentals feature.
package usecase

import "errors"

// ErrInvalidInput is returned when any required numeric field is missing or
// does not parse. The whole evaluation aborts: no partial result, no
// persistence. This is deliberately stricter than the growth scorecard's
// silent-zero policy.
var ErrInvalidInput = errors.New("invalid numeric input")
