package bell

import "errors"

var (
	// ErrInvalidSampleRate is returned for non-positive or non-finite sample rates
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	// ErrInvalidBlockSize is returned for block sizes outside the supported range
	ErrInvalidBlockSize = errors.New("invalid block size")
	// ErrInvalidMaxHz is returned for a non-positive frequency ceiling
	ErrInvalidMaxHz = errors.New("invalid maximum frequency")
)
