package param

import "errors"

var (
	// ErrDuplicateID is returned when a parameter ID is registered twice
	ErrDuplicateID = errors.New("duplicate parameter id")
	// ErrUnknownID is returned for lookups of unregistered parameters
	ErrUnknownID = errors.New("unknown parameter id")
)
