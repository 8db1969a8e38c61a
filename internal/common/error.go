// Package common defines shared constants and sentinel errors used across
// client and server layers of AR Shopsy. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Account errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Checkout errors.
	ErrPaymentDeclined = errors.New("payment declined")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNotSignedIn     = errors.New("please sign in")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
