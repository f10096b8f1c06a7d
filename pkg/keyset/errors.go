package keyset

import "errors"

var (
	// ErrInvalidHighKey reports a high-range key that is not divisible by the
	// classifier's divisor. Such a key cannot be rescaled losslessly, so the
	// whole classification fails rather than silently truncating.
	ErrInvalidHighKey = errors.New("keyset: high key not divisible by divisor")

	// ErrEmptyKeys reports an empty input sequence to BuildGroups.
	ErrEmptyKeys = errors.New("keyset: empty key sequence")
)
