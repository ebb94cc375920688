package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is matched by every KeyError
	ErrInvalidKey = errors.New("key must contain at least one letter")

	// ErrInvalidShift is returned when a Caesar key is not an integer
	ErrInvalidShift = errors.New("shift must be an integer")

	// ErrUnknownMethod is returned for a cipher name that is not supported
	ErrUnknownMethod = errors.New("unknown cipher method")
)

// KeyError reports a keyword with no letters left after normalization.
type KeyError struct {
	Cipher Method
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Cipher, ErrInvalidKey)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrInvalidKey
}
