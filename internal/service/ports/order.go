package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TicketHold/internal/domain"
)

type OrderRepo interface {
	// Create persists the order and all of its tickets in one transaction.
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	// Transition is a compare-and-set on the stored status: it applies
	// from → to only while the order is still in from, cascades the ticket
	// statuses and, when releaseStock is set, returns the order's held
	// quantities to the ledger — all in one transaction. Losing the CAS
	// yields domain.ErrStatusConflict.
	Transition(ctx context.Context, orderID string, from, to domain.OrderStatus, releaseStock bool) error
	// ListExpiredPending returns ids of pending orders whose hold deadline
	// has passed, oldest first.
	ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]string, error)
}
