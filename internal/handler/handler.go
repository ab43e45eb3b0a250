package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/TicketHold/internal/domain"
	"github.com/stpnv0/TicketHold/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	CreateTicketType(ctx context.Context, input domain.CreateTicketTypeInput) (*domain.TicketType, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type ReservationSvc interface {
	CreateOrder(ctx context.Context, input domain.CreateOrderInput) (*domain.Order, error)
}

type OrderSvc interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	Cancel(ctx context.Context, orderID, customerID string) (*domain.Order, error)
	ResolvePayment(ctx context.Context, orderID string, outcome domain.PaymentOutcome, verifiedAmount decimal.Decimal) (*domain.Order, error)
	Refund(ctx context.Context, orderID string) (*domain.Order, error)
}

type CheckinSvc interface {
	CheckIn(ctx context.Context, code string) (*domain.Ticket, error)
}

type Handler struct {
	catalogService     CatalogSvc
	reservationService ReservationSvc
	orderService       OrderSvc
	checkinService     CheckinSvc
}

func NewHandler(catalogService CatalogSvc, reservationService ReservationSvc, orderService OrderSvc, checkinService CheckinSvc) *Handler {
	return &Handler{
		catalogService:     catalogService,
		reservationService: reservationService,
		orderService:       orderService,
		checkinService:     checkinService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid starts_at format, expected RFC3339"})
		return
	}
	saleStartsAt, err := time.Parse(time.RFC3339, req.SaleStartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sale_starts_at format, expected RFC3339"})
		return
	}
	saleEndsAt, err := time.Parse(time.RFC3339, req.SaleEndsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid sale_ends_at format, expected RFC3339"})
		return
	}

	input := domain.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Venue:        req.Venue,
		StartsAt:     startsAt,
		SaleStartsAt: saleStartsAt,
		SaleEndsAt:   saleEndsAt,
	}

	event, err := h.catalogService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.catalogService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateTicketType(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price"})
		return
	}

	input := domain.CreateTicketTypeInput{
		EventID:         eventID,
		Name:            req.Name,
		Price:           price,
		InitialQuantity: req.InitialQuantity,
		NumPerOrder:     req.NumPerOrder,
		MaxPerOrder:     req.MaxPerOrder,
	}

	tt, err := h.catalogService.CreateTicketType(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketTypeResponse(tt))
}

// Orders

func (h *Handler) CreateOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.LineItem{
			TicketTypeID: it.TicketTypeID,
			Quantity:     it.Quantity,
		})
	}

	input := domain.CreateOrderInput{
		EventID:    req.EventID,
		CustomerID: req.CustomerID,
		Items:      items,
		Holder: domain.HolderInfo{
			Name:  req.HolderName,
			Email: req.HolderEmail,
			Phone: req.HolderPhone,
		},
	}

	order, err := h.reservationService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *Handler) GetOrder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) CancelOrder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), id, req.CustomerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) RefundOrder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.orderService.Refund(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *Handler) GetCustomerOrders(c *ginext.Context) {
	customerID := c.Param("id")
	if _, err := uuid.Parse(customerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid customer id"})
		return
	}

	orders, err := h.orderService.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

// Payments

func (h *Handler) PaymentCallback(c *ginext.Context) {
	var req dto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome := domain.PaymentOutcome(req.Outcome)

	amount := decimal.Zero
	if outcome == domain.PaymentOutcomeSuccess {
		var err error
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid amount"})
			return
		}
	}

	order, err := h.orderService.ResolvePayment(c.Request.Context(), req.OrderID, outcome, amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": string(order.Status)})
}

// Check-in

func (h *Handler) CheckinTicket(c *ginext.Context) {
	var req dto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.checkinService.CheckIn(c.Request.Context(), req.Code)
	switch {
	case err == nil:
		resp := dto.ToTicketResponse(ticket)
		c.JSON(http.StatusOK, dto.CheckinResponse{
			Success: true,
			Message: "checked in",
			Ticket:  &resp,
		})
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		c.Set("error", err.Error())
		resp := dto.ToTicketResponse(ticket)
		c.JSON(http.StatusConflict, dto.CheckinResponse{
			Success: false,
			Message: fmt.Sprintf("already checked in at %s", resp.CheckedInAt),
			Ticket:  &resp,
		})
	case errors.Is(err, domain.ErrTicketNotActive):
		c.Set("error", err.Error())
		c.JSON(http.StatusConflict, dto.CheckinResponse{
			Success: false,
			Message: "ticket is not active",
		})
	case errors.Is(err, domain.ErrTicketNotFound):
		c.Set("error", err.Error())
		c.JSON(http.StatusNotFound, dto.CheckinResponse{
			Success: false,
			Message: "unknown code",
		})
	default:
		h.handleError(c, err)
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrTicketTypeNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrEventNotSellable),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrStatusConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentMismatch):
		// Tampering or integration bug; details stay in the logs.
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "payment verification failed"})

	case errors.Is(err, domain.ErrNotOrderOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
