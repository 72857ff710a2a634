package model

import "errors"

var (
	// malformed numeric or date input
	ErrValidation = errors.New("validation error")
	// referenced identifier is absent
	ErrNotFound = errors.New("not found")
	// unrecognized field selector or menu option
	ErrInvalidChoice = errors.New("invalid choice")
)
