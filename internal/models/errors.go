package models

import "errors"

var (
	ErrEmptyName           = errors.New("person name must not be empty")
	ErrInvalidAmount       = errors.New("amount must be a number greater than zero")
	ErrUnknownKind         = errors.New("unknown transaction kind")
	ErrInvalidDate         = errors.New("date must be formatted YYYY-MM-DD")
	ErrNoPersonSelected    = errors.New("no person selected")
	ErrPersonNotFound      = errors.New("person not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateID         = errors.New("duplicate id")
	ErrAlreadySettled      = errors.New("balance is already settled")
)

// IsValidation reports whether err is a caller mistake rather than a system failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrUnknownKind) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrNoPersonSelected) ||
		errors.Is(err, ErrDuplicateID) ||
		errors.Is(err, ErrAlreadySettled)
}

// IsNotFound reports whether err refers to a record that does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPersonNotFound) || errors.Is(err, ErrTransactionNotFound)
}
