package datescan

import "errors"

// Decomposition errors. A format's pattern can match a substring that its
// rule still cannot take apart; both cases are recoverable, the finder skips
// the match and keeps scanning.
var (
	// ErrMalformedSegment reports a structural token mismatch, e.g. a rule
	// expecting three tokens after splitting but finding one.
	ErrMalformedSegment = errors.New("malformed date segment")

	// ErrInvalidFieldValue reports a numeric field outside plausible bounds,
	// e.g. month 13. Values are never clamped.
	ErrInvalidFieldValue = errors.New("field value out of range")
)

// IsMalformed reports whether err stems from a structural token mismatch.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedSegment)
}

// IsInvalidField reports whether err stems from an out-of-range field value.
func IsInvalidField(err error) bool {
	return errors.Is(err, ErrInvalidFieldValue)
}
