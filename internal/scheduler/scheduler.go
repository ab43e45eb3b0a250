// Package scheduler runs the expiry reaper: a periodic scan that releases
// abandoned holds back to the inventory pool.
package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

// orderExpirer goes through the same transition API as request handlers,
// so a reaper tick racing a payment callback is settled by the status
// compare-and-set, never by special-casing. Multiple reaper instances are
// safe for the same reason.
type orderExpirer interface {
	ExpireDue(ctx context.Context) ([]string, error)
}

type Reaper struct {
	orderService orderExpirer
	interval     time.Duration
	logger       logger.Logger
}

func New(
	orderService orderExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Reaper {
	return &Reaper{
		orderService: orderService,
		interval:     interval,
		logger:       logger,
	}
}

func (r *Reaper) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("expiry reaper started",
		logger.Duration("interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("expiry reaper stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reaper) tick(ctx context.Context) {
	expired, err := r.orderService.ExpireDue(ctx)
	if err != nil {
		r.logger.Error("failed to expire due holds",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, id := range expired {
		r.logger.Info("hold expired",
			logger.String("order_id", id),
		)
	}
}
