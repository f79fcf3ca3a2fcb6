package errs

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrBookUnavailable    = errors.New("book is not available for reservation")
	ErrOutOfStock         = errors.New("not enough books in stock")
	ErrAlreadyReturned    = errors.New("rental already returned")
	ErrAmountMismatch     = errors.New("transaction amount does not match order total")
	ErrMembershipExpired  = errors.New("membership card is expired")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInUse              = errors.New("resource is still referenced")
)

// FieldErrors is a per-field validation failure, rendered as a 422 body.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func Field(name, msg string) FieldErrors {
	return FieldErrors{name: msg}
}

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}
