package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/TicketHold/internal/codes"
	"github.com/stpnv0/TicketHold/internal/domain"
	"github.com/stpnv0/TicketHold/internal/monitoring"
	"github.com/stpnv0/TicketHold/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const DefaultHoldDuration = 15 * time.Minute

// ReservationService turns a purchase intent into a held order or a
// rejection, all-or-nothing: either every line item's stock is reserved and
// the order is created, or nothing stays allocated.
type ReservationService struct {
	catalog      ports.CatalogRepo
	inventory    ports.InventoryRepo
	orderRepo    ports.OrderRepo
	notifier     ports.OrderNotifier
	holdDuration time.Duration
	logger       logger.Logger
}

func NewReservationService(
	catalog ports.CatalogRepo,
	inventory ports.InventoryRepo,
	orderRepo ports.OrderRepo,
	notifier ports.OrderNotifier,
	holdDuration time.Duration,
	logger logger.Logger,
) *ReservationService {
	if holdDuration <= 0 {
		holdDuration = DefaultHoldDuration
	}
	return &ReservationService{
		catalog:      catalog,
		inventory:    inventory,
		orderRepo:    orderRepo,
		notifier:     notifier,
		holdDuration: holdDuration,
		logger:       logger,
	}
}

func (s *ReservationService) CreateOrder(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error) {
	start := time.Now()
	defer func() { monitoring.ObserveReservation(time.Since(start)) }()

	types, total, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	// Reserve line by line; the first failure rolls back everything
	// already taken, so a multi-line intent never leaves partial
	// allocation behind.
	reserved := make([]domain.LineItem, 0, len(input.Items))
	for i, item := range input.Items {
		if err := s.inventory.Reserve(ctx, item.TicketTypeID, item.Quantity); err != nil {
			s.releaseReserved(ctx, reserved)
			if errors.Is(err, domain.ErrInsufficientStock) {
				monitoring.ReservationRejected("insufficient_stock")
				return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, types[i].Name)
			}
			return nil, fmt.Errorf("reserve stock: %w", err)
		}
		reserved = append(reserved, item)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:            uuid.New().String(),
		CustomerID:    input.CustomerID,
		EventID:       input.EventID,
		Total:         total,
		Status:        domain.OrderStatusPending,
		HoldExpiresAt: now.Add(s.holdDuration),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, item := range input.Items {
		for u := 0; u < item.Quantity; u++ {
			code, err := codes.Redemption()
			if err != nil {
				s.releaseReserved(ctx, reserved)
				return nil, fmt.Errorf("generate redemption code: %w", err)
			}
			order.Tickets = append(order.Tickets, domain.Ticket{
				ID:           uuid.New().String(),
				OrderID:      order.ID,
				TicketTypeID: item.TicketTypeID,
				Code:         code,
				Status:       domain.TicketStatusPending,
				HolderName:   input.Holder.Name,
				HolderEmail:  input.Holder.Email,
				HolderPhone:  input.Holder.Phone,
				CreatedAt:    now,
			})
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.releaseReserved(ctx, reserved)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order held",
		logger.String("order_id", order.ID),
		logger.String("event_id", order.EventID),
		logger.String("customer_id", order.CustomerID),
		logger.Int("tickets", len(order.Tickets)),
		logger.String("total", order.Total.String()),
	)
	monitoring.OrderCreated()

	go s.notifier.NotifyOrderCreated(context.WithoutCancel(ctx), order)

	return order, nil
}

// validate checks every precondition before any stock is touched and
// resolves the ticket types and the order total.
func (s *ReservationService) validate(ctx context.Context, input domain.CreateOrderInput) ([]*domain.TicketType, decimal.Decimal, error) {
	total := decimal.Zero

	if input.CustomerID == "" {
		return nil, total, fmt.Errorf("%w: customer id is required", domain.ErrValidation)
	}
	if len(input.Items) == 0 {
		return nil, total, fmt.Errorf("%w: at least one line item is required", domain.ErrValidation)
	}
	if input.Holder.Name == "" || input.Holder.Email == "" {
		return nil, total, fmt.Errorf("%w: holder name and email are required", domain.ErrValidation)
	}

	event, err := s.catalog.GetEvent(ctx, input.EventID)
	if err != nil {
		return nil, total, err
	}
	if !event.SellableAt(time.Now().UTC()) {
		monitoring.ReservationRejected("not_sellable")
		return nil, total, fmt.Errorf("%w: %s", domain.ErrEventNotSellable, event.Title)
	}

	types := make([]*domain.TicketType, 0, len(input.Items))
	seen := make(map[string]struct{}, len(input.Items))
	for _, item := range input.Items {
		if _, dup := seen[item.TicketTypeID]; dup {
			return nil, total, fmt.Errorf("%w: duplicate ticket type in order", domain.ErrValidation)
		}
		seen[item.TicketTypeID] = struct{}{}

		tt, err := s.catalog.GetTicketType(ctx, item.TicketTypeID)
		if err != nil {
			return nil, total, err
		}
		if tt.EventID != event.ID {
			return nil, total, fmt.Errorf("%w: ticket type %s does not belong to event", domain.ErrValidation, tt.Name)
		}
		if !tt.ValidQuantity(item.Quantity) {
			monitoring.ReservationRejected("invalid_quantity")
			return nil, total, fmt.Errorf("%w: %s: quantity must be a multiple of %d, at most %d",
				domain.ErrInvalidQuantity, tt.Name, tt.NumPerOrder, tt.MaxPerOrder)
		}

		types = append(types, tt)
		total = total.Add(tt.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return types, total, nil
}

func (s *ReservationService) releaseReserved(ctx context.Context, reserved []domain.LineItem) {
	for _, item := range reserved {
		if err := s.inventory.Release(ctx, item.TicketTypeID, item.Quantity); err != nil {
			s.logger.Error("failed to release stock after aborted reservation",
				logger.String("ticket_type_id", item.TicketTypeID),
				logger.Int("quantity", item.Quantity),
				logger.String("error", err.Error()),
			)
		}
	}
}
