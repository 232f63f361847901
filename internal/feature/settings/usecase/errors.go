package usecase

import "errors"

var (
	// ErrUnknownOption is returned when writing an option that is not recognized.
	ErrUnknownOption = errors.New("unknown option")

	// ErrInvalidOptionValue is returned when an option value fails validation.
	ErrInvalidOptionValue = errors.New("invalid option value")
)
