package models

import "errors"

var (
	// ErrRetriesExhausted is returned once every attempt failed transiently.
	ErrRetriesExhausted = errors.New("retries exhausted")
	// ErrMalformedResponse is returned when a successful response can't be decoded.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrNoAttempts is returned when a generator is configured to never try.
	ErrNoAttempts = errors.New("no attempts made")
)
