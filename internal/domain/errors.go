package domain

import "errors"

var (
	// ErrInvalidRoster is returned when the roster configuration cannot be used
	ErrInvalidRoster = errors.New("invalid roster")

	// ErrUnknownContact is returned when an identifier is not in the directory
	ErrUnknownContact = errors.New("unknown contact")

	// ErrMissingCredentials is returned when provider credentials are not configured
	ErrMissingCredentials = errors.New("missing provider credentials")
)
