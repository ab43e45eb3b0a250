package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/TicketHold/internal/domain"
	"github.com/stpnv0/TicketHold/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// stubNotifier satisfies ports.OrderNotifier without side effects; services
// fire notifications from goroutines and the tests do not wait on them.
type stubNotifier struct{}

func (stubNotifier) NotifyOrderCreated(context.Context, *domain.Order)   {}
func (stubNotifier) NotifyOrderPaid(context.Context, *domain.Order)      {}
func (stubNotifier) NotifyOrderCancelled(context.Context, *domain.Order) {}
func (stubNotifier) NotifyOrdersExpired(context.Context, []string)       {}

// fixture wires the services to the in-memory store, whose conditional
// updates mirror the Postgres repositories. The race tests below rely on
// that: they hammer the same store from real goroutines.
type fixture struct {
	store       *memory.Store
	reservation *ReservationService
	orders      *OrderService
	checkin     *CheckinService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	log := newTestLogger(t)
	return &fixture{
		store:       store,
		reservation: NewReservationService(store, store, store, stubNotifier{}, 15*time.Minute, log),
		orders:      NewOrderService(store, stubNotifier{}, 0, log),
		checkin:     NewCheckinService(store, log),
	}
}

func (f *fixture) seedEvent(t *testing.T) *domain.Event {
	t.Helper()
	now := time.Now().UTC()
	event := &domain.Event{
		ID:           uuid.New().String(),
		Title:        "Night Drive Live",
		Venue:        "Main Hall",
		StartsAt:     now.Add(48 * time.Hour),
		SaleStartsAt: now.Add(-time.Hour),
		SaleEndsAt:   now.Add(24 * time.Hour),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, f.store.CreateEvent(context.Background(), event))
	return event
}

func (f *fixture) seedTicketType(t *testing.T, eventID, name, price string, initial, numPer, maxPer int) *domain.TicketType {
	t.Helper()
	tt := &domain.TicketType{
		ID:              uuid.New().String(),
		EventID:         eventID,
		Name:            name,
		Price:           decimal.RequireFromString(price),
		InitialQuantity: initial,
		NumPerOrder:     numPer,
		MaxPerOrder:     maxPer,
	}
	require.NoError(t, f.store.CreateTicketType(context.Background(), tt))
	return tt
}

func (f *fixture) soldQuantity(t *testing.T, ticketTypeID string) int {
	t.Helper()
	tt, err := f.store.GetTicketType(context.Background(), ticketTypeID)
	require.NoError(t, err)
	return tt.SoldQuantity
}

func orderInput(eventID, customerID string, items ...domain.LineItem) domain.CreateOrderInput {
	return domain.CreateOrderInput{
		EventID:    eventID,
		CustomerID: customerID,
		Items:      items,
		Holder: domain.HolderInfo{
			Name:  "Alice Reyes",
			Email: "alice@example.com",
			Phone: "+15550100",
		},
	}
}

func TestReservationService_CreateOrder_Success(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	tt := f.seedTicketType(t, event.ID, "Standard", "49.90", 10, 1, 5)
	customerID := uuid.New().String()

	before := time.Now().UTC()
	order, err := f.reservation.CreateOrder(context.Background(),
		orderInput(event.ID, customerID, domain.LineItem{TicketTypeID: tt.ID, Quantity: 2}))

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, customerID, order.CustomerID)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("99.80")), "total = %s", order.Total)
	assert.WithinDuration(t, before.Add(15*time.Minute), order.HoldExpiresAt, 5*time.Second)

	require.Len(t, order.Tickets, 2)
	assert.NotEqual(t, order.Tickets[0].Code, order.Tickets[1].Code)
	for _, ticket := range order.Tickets {
		assert.Equal(t, domain.TicketStatusPending, ticket.Status)
		assert.NotEmpty(t, ticket.Code)
		assert.Equal(t, "Alice Reyes", ticket.HolderName)
	}

	assert.Equal(t, 2, f.soldQuantity(t, tt.ID))
}

func TestReservationService_CreateOrder_MultipleLines(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	standard := f.seedTicketType(t, event.ID, "Standard", "40.00", 10, 1, 5)
	vip := f.seedTicketType(t, event.ID, "VIP", "120.00", 4, 1, 2)

	order, err := f.reservation.CreateOrder(context.Background(),
		orderInput(event.ID, uuid.New().String(),
			domain.LineItem{TicketTypeID: standard.ID, Quantity: 2},
			domain.LineItem{TicketTypeID: vip.ID, Quantity: 1},
		))

	require.NoError(t, err)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("200.00")), "total = %s", order.Total)
	assert.Len(t, order.Tickets, 3)
	assert.Equal(t, 2, f.soldQuantity(t, standard.ID))
	assert.Equal(t, 1, f.soldQuantity(t, vip.ID))
}

func TestReservationService_CreateOrder_EventNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.reservation.CreateOrder(context.Background(),
		orderInput(uuid.New().String(), uuid.New().String(),
			domain.LineItem{TicketTypeID: uuid.New().String(), Quantity: 1}))

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestReservationService_CreateOrder_SaleWindowClosed(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()
	event := &domain.Event{
		ID:           uuid.New().String(),
		Title:        "Past Sale",
		StartsAt:     now.Add(48 * time.Hour),
		SaleStartsAt: now.Add(-48 * time.Hour),
		SaleEndsAt:   now.Add(-time.Hour),
	}
	require.NoError(t, f.store.CreateEvent(context.Background(), event))
	tt := f.seedTicketType(t, event.ID, "Standard", "10.00", 10, 1, 5)

	_, err := f.reservation.CreateOrder(context.Background(),
		orderInput(event.ID, uuid.New().String(),
			domain.LineItem{TicketTypeID: tt.ID, Quantity: 1}))

	assert.ErrorIs(t, err, domain.ErrEventNotSellable)
	assert.Equal(t, 0, f.soldQuantity(t, tt.ID))
}

func TestReservationService_CreateOrder_ValidationErrors(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	tt := f.seedTicketType(t, event.ID, "Standard", "10.00", 10, 1, 5)

	tests := []struct {
		name  string
		input domain.CreateOrderInput
	}{
		{
			name: "missing customer",
			input: domain.CreateOrderInput{
				EventID: event.ID,
				Items:   []domain.LineItem{{TicketTypeID: tt.ID, Quantity: 1}},
				Holder:  domain.HolderInfo{Name: "A", Email: "a@example.com"},
			},
		},
		{
			name: "no line items",
			input: domain.CreateOrderInput{
				EventID:    event.ID,
				CustomerID: uuid.New().String(),
				Holder:     domain.HolderInfo{Name: "A", Email: "a@example.com"},
			},
		},
		{
			name: "missing holder email",
			input: domain.CreateOrderInput{
				EventID:    event.ID,
				CustomerID: uuid.New().String(),
				Items:      []domain.LineItem{{TicketTypeID: tt.ID, Quantity: 1}},
				Holder:     domain.HolderInfo{Name: "A"},
			},
		},
		{
			name: "duplicate ticket type",
			input: orderInput(event.ID, uuid.New().String(),
				domain.LineItem{TicketTypeID: tt.ID, Quantity: 1},
				domain.LineItem{TicketTypeID: tt.ID, Quantity: 1},
			),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.reservation.CreateOrder(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	assert.Equal(t, 0, f.soldQuantity(t, tt.ID))
}

func TestReservationService_CreateOrder_TicketTypeFromOtherEvent(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	other := f.seedEvent(t)
	foreign := f.seedTicketType(t, other.ID, "Foreign", "10.00", 10, 1, 5)

	_, err := f.reservation.CreateOrder(context.Background(),
		orderInput(event.ID, uuid.New().String(),
			domain.LineItem{TicketTypeID: foreign.ID, Quantity: 1}))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_CreateOrder_InvalidQuantity(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	pair := f.seedTicketType(t, event.ID, "Pair", "30.00", 20, 2, 8)

	_, err := f.reservation.CreateOrder(context.Background(),
		orderInput(event.ID, uuid.New().String(),
			domain.LineItem{TicketTypeID: pair.ID, Quantity: 3}))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.reservation.CreateOrder(context.Background(),
		orderInput(event.ID, uuid.New().String(),
			domain.LineItem{TicketTypeID: pair.ID, Quantity: 10}))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Equal(t, 0, f.soldQuantity(t, pair.ID))
}

func TestReservationService_CreateOrder_InsufficientStock(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	tt := f.seedTicketType(t, event.ID, "Standard", "10.00", 1, 1, 5)

	_, err := f.reservation.CreateOrder(context.Background(),
		orderInput(event.ID, uuid.New().String(),
			domain.LineItem{TicketTypeID: tt.ID, Quantity: 2}))

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Standard")
	assert.Equal(t, 0, f.soldQuantity(t, tt.ID))
}

func TestReservationService_CreateOrder_RollsBackEarlierLines(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	plenty := f.seedTicketType(t, event.ID, "Standard", "10.00", 10, 1, 5)
	scarce := f.seedTicketType(t, event.ID, "VIP", "100.00", 1, 1, 5)

	_, err := f.reservation.CreateOrder(context.Background(),
		orderInput(event.ID, uuid.New().String(),
			domain.LineItem{TicketTypeID: plenty.ID, Quantity: 2},
			domain.LineItem{TicketTypeID: scarce.ID, Quantity: 2},
		))

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 0, f.soldQuantity(t, plenty.ID), "first line must be released")
	assert.Equal(t, 0, f.soldQuantity(t, scarce.ID))
}

func TestReservationService_CreateOrder_LastUnitRace(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	tt := f.seedTicketType(t, event.ID, "Last One", "10.00", 1, 1, 1)

	start := make(chan struct{})
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.reservation.CreateOrder(context.Background(),
				orderInput(event.ID, uuid.New().String(),
					domain.LineItem{TicketTypeID: tt.ID, Quantity: 1}))
		}(i)
	}
	close(start)
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			losses++
		}
	}
	assert.Equal(t, 1, wins, "exactly one buyer gets the last unit")
	assert.Equal(t, 1, losses)
	assert.Equal(t, 1, f.soldQuantity(t, tt.ID))
}

func TestReservationService_CreateOrder_NeverOversells(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	tt := f.seedTicketType(t, event.ID, "Limited", "10.00", 5, 1, 1)

	const buyers = 20
	start := make(chan struct{})
	errs := make([]error, buyers)
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.reservation.CreateOrder(context.Background(),
				orderInput(event.ID, uuid.New().String(),
					domain.LineItem{TicketTypeID: tt.ID, Quantity: 1}))
		}(i)
	}
	close(start)
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 5, wins)
	assert.Equal(t, 5, f.soldQuantity(t, tt.ID))
}
