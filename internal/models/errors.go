package models

import "errors"

// NoResultFound is the reason reported when a provider answers without any square.
const NoResultFound = "No result found"

var (
	// ErrMissingWords is returned when a provider resolves a square without words.
	ErrMissingWords = errors.New("no words returned for the selected location")
	// ErrMissingCoordinates is returned when a provider resolves a square without coordinates.
	ErrMissingCoordinates = errors.New("no coordinates returned for the selected location")
)

// LookupFailedError reports that the underlying lookup call failed.
// Reason is the provider's own message.
type LookupFailedError struct {
	Reason string
	Err    error
}

func (e *LookupFailedError) Error() string {
	return "lookup failed: " + e.Reason
}

func (e *LookupFailedError) Unwrap() error {
	return e.Err
}

// NewLookupFailed builds a LookupFailedError for reason.
func NewLookupFailed(reason string) error {
	return &LookupFailedError{Reason: reason}
}

// IsLookupError reports whether err belongs to the lookup error taxonomy.
func IsLookupError(err error) bool {
	var lf *LookupFailedError
	return errors.As(err, &lf) || errors.Is(err, ErrMissingWords) || errors.Is(err, ErrMissingCoordinates)
}
