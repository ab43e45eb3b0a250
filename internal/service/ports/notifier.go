package ports

import (
	"context"

	"github.com/stpnv0/TicketHold/internal/domain"
)

type OrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, order *domain.Order)
	NotifyOrderPaid(ctx context.Context, order *domain.Order)
	NotifyOrderCancelled(ctx context.Context, order *domain.Order)
	NotifyOrdersExpired(ctx context.Context, orderIDs []string)
}
