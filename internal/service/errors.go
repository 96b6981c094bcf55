package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP statuses; anything unlisted surfaces as an internal error.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserDisabled       = errors.New("user account disabled")
	ErrWeakPassword       = errors.New("password does not meet policy")

	ErrProductNotFound      = errors.New("product not found")
	ErrProductNameRequired  = errors.New("product name required")
	ErrDuplicateProductName = errors.New("product name already in use")
	ErrInvalidPrice         = errors.New("price must not be negative")
	ErrInvalidStock         = errors.New("stock must not be negative")

	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
)
