package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks validation failures: missing required fields and
	// unknown enumeration values. The boundary maps it to 400; anything else
	// surfaces as an opaque internal error.
	ErrInvalidInput = errors.New("invalid input")

	ErrTemporary = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
