package dto

import (
	"time"

	"github.com/stpnv0/TicketHold/internal/domain"
)

type EventResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Venue        string `json:"venue"`
	StartsAt     string `json:"starts_at"`
	SaleStartsAt string `json:"sale_starts_at"`
	SaleEndsAt   string `json:"sale_ends_at"`
	Cancelled    bool   `json:"cancelled"`
	CreatedAt    string `json:"created_at"`
}

type TicketTypeResponse struct {
	ID              string `json:"id"`
	EventID         string `json:"event_id"`
	Name            string `json:"name"`
	Price           string `json:"price"`
	InitialQuantity int    `json:"initial_quantity"`
	Available       int    `json:"available"`
	NumPerOrder     int    `json:"num_per_order"`
	MaxPerOrder     int    `json:"max_per_order"`
}

type EventDetailsResponse struct {
	Event       EventResponse        `json:"event"`
	TicketTypes []TicketTypeResponse `json:"ticket_types"`
}

type TicketResponse struct {
	ID           string `json:"id"`
	TicketTypeID string `json:"ticket_type_id"`
	Code         string `json:"code"`
	Status       string `json:"status"`
	SeatLabel    string `json:"seat_label,omitempty"`
	HolderName   string `json:"holder_name"`
	HolderEmail  string `json:"holder_email"`
	HolderPhone  string `json:"holder_phone,omitempty"`
	CheckedInAt  string `json:"checked_in_at,omitempty"`
}

type OrderResponse struct {
	ID            string           `json:"id"`
	CustomerID    string           `json:"customer_id"`
	EventID       string           `json:"event_id"`
	Total         string           `json:"total"`
	Status        string           `json:"status"`
	HoldExpiresAt string           `json:"hold_expires_at"`
	CreatedAt     string           `json:"created_at"`
	Tickets       []TicketResponse `json:"tickets,omitempty"`
}

type CheckinResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Ticket  *TicketResponse `json:"ticket,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Venue:        e.Venue,
		StartsAt:     e.StartsAt.Format(time.RFC3339),
		SaleStartsAt: e.SaleStartsAt.Format(time.RFC3339),
		SaleEndsAt:   e.SaleEndsAt.Format(time.RFC3339),
		Cancelled:    e.Cancelled,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketTypeResponse(t *domain.TicketType) TicketTypeResponse {
	return TicketTypeResponse{
		ID:              t.ID,
		EventID:         t.EventID,
		Name:            t.Name,
		Price:           t.Price.StringFixed(2),
		InitialQuantity: t.InitialQuantity,
		Available:       t.Available(),
		NumPerOrder:     t.NumPerOrder,
		MaxPerOrder:     t.MaxPerOrder,
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	types := make([]TicketTypeResponse, 0, len(d.TicketTypes))
	for i := range d.TicketTypes {
		types = append(types, ToTicketTypeResponse(&d.TicketTypes[i]))
	}

	return EventDetailsResponse{
		Event:       ToEventResponse(&d.Event),
		TicketTypes: types,
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:           t.ID,
		TicketTypeID: t.TicketTypeID,
		Code:         t.Code,
		Status:       string(t.Status),
		SeatLabel:    t.SeatLabel,
		HolderName:   t.HolderName,
		HolderEmail:  t.HolderEmail,
		HolderPhone:  t.HolderPhone,
	}
	if t.CheckedInAt != nil {
		resp.CheckedInAt = t.CheckedInAt.Format(time.RFC3339)
	}
	return resp
}

func ToOrderResponse(o *domain.Order) OrderResponse {
	tickets := make([]TicketResponse, 0, len(o.Tickets))
	for i := range o.Tickets {
		tickets = append(tickets, ToTicketResponse(&o.Tickets[i]))
	}

	return OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		EventID:       o.EventID,
		Total:         o.Total.StringFixed(2),
		Status:        string(o.Status),
		HoldExpiresAt: o.HoldExpiresAt.Format(time.RFC3339),
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		Tickets:       tickets,
	}
}
