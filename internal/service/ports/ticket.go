package ports

import (
	"context"
	"time"

	"github.com/stpnv0/TicketHold/internal/domain"
)

type TicketRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Ticket, error)
	// CheckIn flips the ticket from active to used and stamps the check-in
	// time, as a compare-and-set: a concurrent scan of the same code loses
	// with domain.ErrAlreadyCheckedIn.
	CheckIn(ctx context.Context, code string, at time.Time) error
}
