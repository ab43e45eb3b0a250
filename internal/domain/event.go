package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Venue        string    `json:"venue"`
	StartsAt     time.Time `json:"starts_at"`
	SaleStartsAt time.Time `json:"sale_starts_at"`
	SaleEndsAt   time.Time `json:"sale_ends_at"`
	Cancelled    bool      `json:"cancelled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SellableAt reports whether tickets may be reserved at the given instant:
// the sale window contains it and the event has not been cancelled.
func (e *Event) SellableAt(now time.Time) bool {
	return !e.Cancelled && !now.Before(e.SaleStartsAt) && !now.After(e.SaleEndsAt)
}

// TicketType is countable stock for one event. SoldQuantity is only ever
// adjusted through the inventory ledger's conditional updates.
type TicketType struct {
	ID              string          `json:"id"`
	EventID         string          `json:"event_id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	InitialQuantity int             `json:"initial_quantity"`
	SoldQuantity    int             `json:"sold_quantity"`
	NumPerOrder     int             `json:"num_per_order"`
	MaxPerOrder     int             `json:"max_per_order"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (t *TicketType) Available() int {
	return t.InitialQuantity - t.SoldQuantity
}

// ValidQuantity checks the per-order bounds: a positive multiple of
// num_per_order that does not exceed max_per_order.
func (t *TicketType) ValidQuantity(qty int) bool {
	if qty <= 0 || qty > t.MaxPerOrder {
		return false
	}
	return t.NumPerOrder <= 1 || qty%t.NumPerOrder == 0
}

type EventDetails struct {
	Event       Event        `json:"event"`
	TicketTypes []TicketType `json:"ticket_types"`
}

type CreateEventInput struct {
	Title        string
	Description  string
	Venue        string
	StartsAt     time.Time
	SaleStartsAt time.Time
	SaleEndsAt   time.Time
}

type CreateTicketTypeInput struct {
	EventID         string
	Name            string
	Price           decimal.Decimal
	InitialQuantity int
	NumPerOrder     int
	MaxPerOrder     int
}
