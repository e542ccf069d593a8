package service

import "errors"

var (
	// ErrStoreUnavailable means the data store was never configured. The
	// process still serves traffic, but store-backed endpoints report it.
	ErrStoreUnavailable = errors.New("store not configured")

	// Messages below are part of the API contract.
	ErrInvalidUser    = errors.New("Invalid user")
	ErrInvalidAddress = errors.New("Invalid address")
	ErrEmptyCart      = errors.New("Cart is empty")

	// ErrCartChanged is returned when the cart rows read at the start of
	// checkout were no longer all present at claim time.
	ErrCartChanged = errors.New("cart changed, retry checkout")

	ErrNotFound = errors.New("not found")

	ErrUnknownWebhookShape = errors.New("unrecognized webhook payload")
)
