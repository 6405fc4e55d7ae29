package errors

import "errors"

var (
	// ErrMalformedRecord marks a stored booking whose timestamp cannot be
	// normalized on read. One bad record fails the whole listing; partial
	// results are never returned.
	ErrMalformedRecord = errors.New("stored booking record is malformed")
)
