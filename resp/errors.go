package resp

import "errors"

// Codec failures, matched with errors.Is. Validation is side-effect free: a
// failed call leaves no partially constructed value and never reads out of
// bounds.
var (
	ErrInvalidFirstChar       = errors.New("invalid first char")
	ErrInvalidLength          = errors.New("invalid length")
	ErrInvalidLengthSeparator = errors.New("invalid length separator")
	ErrInvalidValue           = errors.New("invalid value")
	ErrInvalidTerminate       = errors.New("invalid terminate")
	ErrLengthsNotMatch        = errors.New("lengths do not match")
	ErrMaxDepthExceeded       = errors.New("max array nesting depth exceeded")

	// ErrInvalidValueChar is returned by the payload pre-checks when a
	// payload contains CR or LF and so cannot travel as a line value.
	ErrInvalidValueChar = errors.New("invalid value char")
)
