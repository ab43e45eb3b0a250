package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stpnv0/TicketHold/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activeTicket walks a single-ticket order through payment and returns the
// active ticket ready for the gate.
func (f *fixture) activeTicket(t *testing.T) domain.Ticket {
	t.Helper()
	event := f.seedEvent(t)
	tt := f.seedTicketType(t, event.ID, "Standard", "49.90", 10, 1, 5)
	held := f.holdOrder(t, event.ID, tt.ID, uuid.New().String(), 1)

	order, err := f.orders.ResolvePayment(context.Background(), held.ID,
		domain.PaymentOutcomeSuccess, held.Total)
	require.NoError(t, err)
	require.Len(t, order.Tickets, 1)
	require.Equal(t, domain.TicketStatusActive, order.Tickets[0].Status)
	return order.Tickets[0]
}

func TestCheckinService_CheckIn_Success(t *testing.T) {
	f := newFixture(t)
	ticket := f.activeTicket(t)

	checked, err := f.checkin.CheckIn(context.Background(), ticket.Code)

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusUsed, checked.Status)
	require.NotNil(t, checked.CheckedInAt)
	assert.False(t, checked.CheckedInAt.IsZero())
}

func TestCheckinService_CheckIn_NormalizesCode(t *testing.T) {
	f := newFixture(t)
	ticket := f.activeTicket(t)

	checked, err := f.checkin.CheckIn(context.Background(), "  "+strings.ToLower(ticket.Code)+" ")

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusUsed, checked.Status)
}

func TestCheckinService_CheckIn_SecondScanRejected(t *testing.T) {
	f := newFixture(t)
	ticket := f.activeTicket(t)

	first, err := f.checkin.CheckIn(context.Background(), ticket.Code)
	require.NoError(t, err)

	second, err := f.checkin.CheckIn(context.Background(), ticket.Code)

	require.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	require.NotNil(t, second)
	require.NotNil(t, second.CheckedInAt)
	assert.Equal(t, first.CheckedInAt, second.CheckedInAt, "snapshot keeps the original check-in time")
}

func TestCheckinService_CheckIn_ConcurrentScansSingleWinner(t *testing.T) {
	f := newFixture(t)
	ticket := f.activeTicket(t)

	start := make(chan struct{})
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.checkin.CheckIn(context.Background(), ticket.Code)
		}(i)
	}
	close(start)
	wg.Wait()

	var wins, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
			rejected++
		}
	}
	assert.Equal(t, 1, wins, "the same code admits exactly once")
	assert.Equal(t, 1, rejected)
}

func TestCheckinService_CheckIn_PendingTicket(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	tt := f.seedTicketType(t, event.ID, "Standard", "49.90", 10, 1, 5)
	held := f.holdOrder(t, event.ID, tt.ID, uuid.New().String(), 1)

	_, err := f.checkin.CheckIn(context.Background(), held.Tickets[0].Code)

	assert.ErrorIs(t, err, domain.ErrTicketNotActive, "an unpaid ticket does not admit")
}

func TestCheckinService_CheckIn_CancelledTicket(t *testing.T) {
	f := newFixture(t)
	event := f.seedEvent(t)
	tt := f.seedTicketType(t, event.ID, "Standard", "49.90", 10, 1, 5)
	customerID := uuid.New().String()
	held := f.holdOrder(t, event.ID, tt.ID, customerID, 1)

	_, err := f.orders.Cancel(context.Background(), held.ID, customerID)
	require.NoError(t, err)

	_, err = f.checkin.CheckIn(context.Background(), held.Tickets[0].Code)

	assert.ErrorIs(t, err, domain.ErrTicketNotActive)
}

func TestCheckinService_CheckIn_UnknownCode(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkin.CheckIn(context.Background(), "DEADBEEFDEADBEEF")

	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestCheckinService_CheckIn_EmptyCode(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkin.CheckIn(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
