package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/TicketHold/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestReaper_Tick_ExpiresDueHolds(t *testing.T) {
	expirer := mocks.NewMockOrderExpirer(t)
	log := newTestLogger(t)

	r := New(expirer, 50*time.Millisecond, log)

	expirer.EXPECT().ExpireDue(mock.Anything).Return([]string{"o1", "o2"}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestReaper_Tick_HandlesError(t *testing.T) {
	expirer := mocks.NewMockOrderExpirer(t)
	log := newTestLogger(t)

	r := New(expirer, 50*time.Millisecond, log)

	expirer.EXPECT().ExpireDue(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestReaper_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockOrderExpirer(t)
	log := newTestLogger(t)

	r := New(expirer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop on context cancel")
	}
}

func TestReaper_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockOrderExpirer(t)
	log := newTestLogger(t)

	r := New(expirer, 30*time.Millisecond, log)

	expirer.EXPECT().ExpireDue(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	calls := len(expirer.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
