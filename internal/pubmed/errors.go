package pubmed

import (
	"errors"
	"fmt"
)

// ErrInvalidLimit is returned by Resolve when limit is not positive.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// TransportError indicates that an exchange with an E-utilities endpoint did
// not complete: the request failed, the status was not 2xx, or the search
// response could not be decoded.
type TransportError struct {
	Op         string // "esearch" or "efetch"
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: HTTP %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError indicates that a fetched document is not the expected
// PubmedArticleSet XML.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parsing response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsTransport returns true if err is or wraps a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsParse returns true if err is or wraps a *ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
