package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusExpired   OrderStatus = "expired"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// legalTransitions is the single source of truth for the order lifecycle.
// Every status change in the system goes through CanTransitionTo.
var legalTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusPaid, OrderStatusCancelled, OrderStatusExpired},
	OrderStatusPaid:    {OrderStatusRefunded},
}

func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return len(legalTransitions[s]) == 0
}

// ReleasesStock reports whether entering the status returns the order's
// reserved quantity to the pool. Refunds deliberately do not re-release
// sold capacity.
func (s OrderStatus) ReleasesStock() bool {
	return s == OrderStatusCancelled || s == OrderStatusExpired
}

// TicketStatusFor maps an order transition target onto the status its
// tickets cascade to.
func TicketStatusFor(s OrderStatus) TicketStatus {
	switch s {
	case OrderStatusPaid:
		return TicketStatusActive
	case OrderStatusCancelled:
		return TicketStatusCancelled
	case OrderStatusExpired:
		return TicketStatusExpired
	case OrderStatusRefunded:
		return TicketStatusRefunded
	default:
		return TicketStatusPending
	}
}

type Order struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	EventID       string          `json:"event_id"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	HoldExpiresAt time.Time       `json:"hold_expires_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Tickets       []Ticket        `json:"tickets"`
}

// HeldQuantities aggregates the order's tickets per ticket type, the shape
// the inventory ledger releases in.
func (o *Order) HeldQuantities() map[string]int {
	held := make(map[string]int, len(o.Tickets))
	for _, t := range o.Tickets {
		held[t.TicketTypeID]++
	}
	return held
}

type LineItem struct {
	TicketTypeID string
	Quantity     int
}

type HolderInfo struct {
	Name  string
	Email string
	Phone string
}

type CreateOrderInput struct {
	EventID    string
	CustomerID string
	Items      []LineItem
	Holder     HolderInfo
}

type PaymentOutcome string

const (
	PaymentOutcomeSuccess PaymentOutcome = "success"
	PaymentOutcomeFailure PaymentOutcome = "failure"
)
