package gemini

import (
	"errors"
	"fmt"
	"net/url"
)

// TransientError is a failure worth retrying: a network error, a timeout or
// a non-200 status.
type TransientError struct {
	StatusCode int
	Err        error
}

func (e *TransientError) Error() string {
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// withoutURL strips the request url from net/http errors, since the url
// carries the api key.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%v request failed: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
