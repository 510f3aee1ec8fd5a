package services

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrOutOfStock         = errors.New("meal out of stock")
	ErrInsufficientTokens = errors.New("insufficient tokens")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrConflict means the transaction lost a race and the same request
	// may be retried unchanged. Every other kind needs caller-side
	// correction first.
	ErrConflict = errors.New("conflicting concurrent update, retry")
)

// NotFoundError names the missing entity ("meal", "user", "provider", "order").
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
