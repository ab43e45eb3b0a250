package domain

import "time"

type TicketStatus string

const (
	TicketStatusPending   TicketStatus = "pending"
	TicketStatusActive    TicketStatus = "active"
	TicketStatusUsed      TicketStatus = "used"
	TicketStatusCancelled TicketStatus = "cancelled"
	TicketStatusExpired   TicketStatus = "expired"
	TicketStatusRefunded  TicketStatus = "refunded"
)

// Ticket is one purchased unit. Its status follows the parent order except
// for the one-way active → used flip at the venue gate.
type Ticket struct {
	ID           string       `json:"id"`
	OrderID      string       `json:"order_id"`
	TicketTypeID string       `json:"ticket_type_id"`
	Code         string       `json:"code"`
	Status       TicketStatus `json:"status"`
	SeatLabel    string       `json:"seat_label,omitempty"`
	HolderName   string       `json:"holder_name"`
	HolderEmail  string       `json:"holder_email"`
	HolderPhone  string       `json:"holder_phone"`
	CheckedInAt  *time.Time   `json:"checked_in_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
