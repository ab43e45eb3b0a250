package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/TicketHold/internal/domain"
	"github.com/stpnv0/TicketHold/internal/monitoring"
	"github.com/stpnv0/TicketHold/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultExpiryBatch = 100

// OrderService owns every transition away from a held order. The legal
// transition table lives in domain; the compare-and-set that makes
// concurrent actors safe lives in the repository's Transition.
type OrderService struct {
	orderRepo   ports.OrderRepo
	notifier    ports.OrderNotifier
	expiryBatch int
	logger      logger.Logger
}

func NewOrderService(orderRepo ports.OrderRepo, notifier ports.OrderNotifier, expiryBatch int, logger logger.Logger) *OrderService {
	if expiryBatch <= 0 {
		expiryBatch = defaultExpiryBatch
	}
	return &OrderService{
		orderRepo:   orderRepo,
		notifier:    notifier,
		expiryBatch: expiryBatch,
		logger:      logger,
	}
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	return s.orderRepo.ListByCustomer(ctx, customerID)
}

// Cancel aborts a held order on behalf of its customer and returns the held
// stock to the pool.
func (s *OrderService) Cancel(ctx context.Context, orderID, customerID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, domain.ErrNotOrderOwner
	}
	if !order.Status.CanTransitionTo(domain.OrderStatusCancelled) {
		return nil, fmt.Errorf("%w: %s -> cancelled", domain.ErrInvalidTransition, order.Status)
	}

	err = s.orderRepo.Transition(ctx, orderID, domain.OrderStatusPending, domain.OrderStatusCancelled, true)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order cancelled",
		logger.String("order_id", orderID),
		logger.String("customer_id", customerID),
	)
	monitoring.OrderCancelled()

	order, err = s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	go s.notifier.NotifyOrderCancelled(context.WithoutCancel(ctx), order)

	return order, nil
}

// ResolvePayment applies the gateway's verdict to a held order. Callbacks
// for orders no longer pending are accepted as no-ops: gateways redeliver,
// and the reaper may have won the race already.
func (s *OrderService) ResolvePayment(ctx context.Context, orderID string, outcome domain.PaymentOutcome, verifiedAmount decimal.Decimal) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPending {
		s.logger.Info("payment callback for resolved order ignored",
			logger.String("order_id", orderID),
			logger.String("status", string(order.Status)),
		)
		return order, nil
	}

	switch outcome {
	case domain.PaymentOutcomeSuccess:
		if !verifiedAmount.Equal(order.Total) {
			s.logger.Warn("payment amount mismatch, order left pending",
				logger.String("order_id", orderID),
				logger.String("verified_amount", verifiedAmount.String()),
				logger.String("order_total", order.Total.String()),
			)
			return nil, domain.ErrPaymentMismatch
		}
		err = s.orderRepo.Transition(ctx, orderID, domain.OrderStatusPending, domain.OrderStatusPaid, false)
	case domain.PaymentOutcomeFailure:
		err = s.orderRepo.Transition(ctx, orderID, domain.OrderStatusPending, domain.OrderStatusCancelled, true)
	default:
		return nil, fmt.Errorf("%w: unknown payment outcome %q", domain.ErrValidation, outcome)
	}

	if errors.Is(err, domain.ErrStatusConflict) {
		// Another actor resolved the order between our read and the CAS.
		return s.orderRepo.GetByID(ctx, orderID)
	}
	if err != nil {
		return nil, err
	}

	order, err = s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch outcome {
	case domain.PaymentOutcomeSuccess:
		s.logger.Info("order paid", logger.String("order_id", orderID))
		monitoring.OrderPaid()
		go s.notifier.NotifyOrderPaid(context.WithoutCancel(ctx), order)
	case domain.PaymentOutcomeFailure:
		s.logger.Info("order cancelled after failed payment", logger.String("order_id", orderID))
		monitoring.OrderCancelled()
		go s.notifier.NotifyOrderCancelled(context.WithoutCancel(ctx), order)
	}

	return order, nil
}

// Refund moves a paid order to refunded. Sold capacity is not re-offered
// for sale.
func (s *OrderService) Refund(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(domain.OrderStatusRefunded) {
		return nil, fmt.Errorf("%w: %s -> refunded", domain.ErrInvalidTransition, order.Status)
	}

	err = s.orderRepo.Transition(ctx, orderID, domain.OrderStatusPaid, domain.OrderStatusRefunded, false)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order refunded", logger.String("order_id", orderID))
	monitoring.OrderRefunded()

	return s.orderRepo.GetByID(ctx, orderID)
}

// ExpireDue expires every pending order whose hold deadline has passed,
// one compare-and-set at a time. A lost CAS means a callback or an explicit
// cancel got there first; that is steady-state under concurrency, not an
// error, and the order is simply skipped.
func (s *OrderService) ExpireDue(ctx context.Context) ([]string, error) {
	ids, err := s.orderRepo.ListExpiredPending(ctx, time.Now().UTC(), s.expiryBatch)
	if err != nil {
		return nil, fmt.Errorf("list expired holds: %w", err)
	}

	var expired []string
	for _, id := range ids {
		err := s.orderRepo.Transition(ctx, id, domain.OrderStatusPending, domain.OrderStatusExpired, true)
		switch {
		case err == nil:
			expired = append(expired, id)
		case errors.Is(err, domain.ErrStatusConflict), errors.Is(err, domain.ErrOrderNotFound):
			continue
		default:
			s.logger.Error("failed to expire order",
				logger.String("order_id", id),
				logger.String("error", err.Error()),
			)
		}
	}

	if len(expired) > 0 {
		s.logger.Info("expired holds released", logger.Int("count", len(expired)))
		monitoring.OrdersExpired(len(expired))
		go s.notifier.NotifyOrdersExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}
