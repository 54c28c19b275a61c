package schedule

import "errors"

var (
	// ErrMalformedDate means a date string does not parse as YYYY-MM-DD.
	ErrMalformedDate = errors.New("malformed date")
	// ErrInvalidWindow means a window's from date is after its to date.
	ErrInvalidWindow = errors.New("invalid window")
	// ErrUnknownGroup means a schedule entry names a group that is not declared.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrInvalidEmail means a member identifier is not a plausible email address.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrOverlap means two different groups have intersecting windows.
	ErrOverlap = errors.New("overlapping windows")
	// ErrAmbiguousAssignment means more than one group covers the reference date
	// and no fallback ordering was requested.
	ErrAmbiguousAssignment = errors.New("ambiguous assignment")
)
