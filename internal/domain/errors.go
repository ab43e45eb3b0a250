package domain

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrTicketNotFound     = errors.New("ticket not found")
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrEventNotSellable  = errors.New("event is not open for sale")
)

var (
	// ErrInvalidTransition: the requested status change is not in the
	// legal transition table.
	ErrInvalidTransition = errors.New("invalid order status transition")
	// ErrStatusConflict: the transition was legal but another actor changed
	// the order first (lost compare-and-set).
	ErrStatusConflict  = errors.New("order status changed concurrently")
	ErrPaymentMismatch = errors.New("payment amount does not match order total")
)

var (
	ErrTicketNotActive  = errors.New("ticket is not active")
	ErrAlreadyCheckedIn = errors.New("ticket already checked in")
	ErrNotOrderOwner    = errors.New("order belongs to another customer")
)

var (
	ErrValidation = errors.New("validation error")
)
