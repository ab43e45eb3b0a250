package ports

import "context"

// InventoryRepo is the ledger of per-ticket-type counters. Reserve performs
// the capacity check and the increment as one atomic unit; concurrent
// reservations against the same ticket type serialize, different types
// proceed independently.
type InventoryRepo interface {
	// Reserve returns domain.ErrInsufficientStock when the remaining
	// capacity cannot cover qty, domain.ErrTicketTypeNotFound for an
	// unknown id.
	Reserve(ctx context.Context, ticketTypeID string, qty int) error
	// Release always succeeds for a known ticket type; callers must call
	// it at most once per successful Reserve.
	Release(ctx context.Context, ticketTypeID string, qty int) error
}
