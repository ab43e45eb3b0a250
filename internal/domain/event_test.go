package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent_SellableAt(t *testing.T) {
	now := time.Now().UTC()
	event := Event{
		SaleStartsAt: now.Add(-time.Hour),
		SaleEndsAt:   now.Add(time.Hour),
	}

	assert.True(t, event.SellableAt(now))
	assert.True(t, event.SellableAt(event.SaleStartsAt))
	assert.True(t, event.SellableAt(event.SaleEndsAt))
	assert.False(t, event.SellableAt(now.Add(-2*time.Hour)))
	assert.False(t, event.SellableAt(now.Add(2*time.Hour)))

	event.Cancelled = true
	assert.False(t, event.SellableAt(now))
}

func TestTicketType_Available(t *testing.T) {
	tt := TicketType{InitialQuantity: 100, SoldQuantity: 37}
	assert.Equal(t, 63, tt.Available())
}

func TestTicketType_ValidQuantity(t *testing.T) {
	tt := TicketType{InitialQuantity: 100, NumPerOrder: 2, MaxPerOrder: 8}

	assert.True(t, tt.ValidQuantity(2))
	assert.True(t, tt.ValidQuantity(8))
	assert.False(t, tt.ValidQuantity(0))
	assert.False(t, tt.ValidQuantity(-2))
	assert.False(t, tt.ValidQuantity(3), "not a multiple of num_per_order")
	assert.False(t, tt.ValidQuantity(10), "above max_per_order")
}

func TestTicketType_ValidQuantity_SingleUnit(t *testing.T) {
	tt := TicketType{InitialQuantity: 10, NumPerOrder: 1, MaxPerOrder: 4}

	for q := 1; q <= 4; q++ {
		assert.True(t, tt.ValidQuantity(q))
	}
	assert.False(t, tt.ValidQuantity(5))
}
