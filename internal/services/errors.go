package services

import "errors"

var (
	// ErrProductNotFound is returned when a referenced product does not
	// exist in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrNotInCart is returned when a cart operation references a product
	// the cart does not hold. Callers treat it as a notice, not a failure.
	ErrNotInCart = errors.New("product not in cart")

	// ErrEmptyCart is returned when checkout is attempted with no cart
	// contents. Nothing is persisted in that case.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrOrderNotFound is returned when a referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrCategoryNotFound is returned when a referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when signup reuses a registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken is returned when signup reuses a registered username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNotAdmin is returned when a user without the admin role requests
	// an admin capability.
	ErrNotAdmin = errors.New("admin access required")
)
