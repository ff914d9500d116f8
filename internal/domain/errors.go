package domain

import "errors"

// Caller-facing kinds.
var (
	ErrFormat            = errors.New("malformed catalog path")
	ErrDecode            = errors.New("invalid catalog token")
	ErrEncoding          = errors.New("catalog token is not valid text")
	ErrUnsupportedSource = errors.New("unsupported catalog source")
	ErrMissingListID     = errors.New("list endpoint requires a list id")
	ErrInvalidListURL    = errors.New("invalid trakt list url")
)

// Server-facing kinds.
var (
	ErrUpstream = errors.New("provider request failed")
	ErrParse    = errors.New("unexpected provider payload")
)

// IsCallerError reports whether err was caused by the request rather than the provider.
func IsCallerError(err error) bool {
	return errors.Is(err, ErrFormat) ||
		errors.Is(err, ErrDecode) ||
		errors.Is(err, ErrEncoding) ||
		errors.Is(err, ErrUnsupportedSource) ||
		errors.Is(err, ErrMissingListID) ||
		errors.Is(err, ErrInvalidListURL)
}
