package ports

import (
	"context"

	"github.com/stpnv0/TicketHold/internal/domain"
)

type CatalogRepo interface {
	CreateEvent(ctx context.Context, e *domain.Event) error
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	CreateTicketType(ctx context.Context, t *domain.TicketType) error
	GetTicketType(ctx context.Context, id string) (*domain.TicketType, error)
	ListTicketTypes(ctx context.Context, eventID string) ([]*domain.TicketType, error)
}
