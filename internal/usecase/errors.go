package usecase

import "errors"

// ErrInvalidInput marks a booking submission whose fields fail validation or
// do not parse. Callers branch with errors.Is.
var ErrInvalidInput = errors.New("invalid booking input")
