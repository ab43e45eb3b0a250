package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/TicketHold/internal/domain"
	"github.com/stpnv0/TicketHold/internal/monitoring"
	"github.com/stpnv0/TicketHold/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CheckinService consumes tickets at the venue gate. The active → used flip
// is a compare-and-set in the repository, so the same code scanned twice
// concurrently yields exactly one success.
type CheckinService struct {
	tickets ports.TicketRepo
	logger  logger.Logger
}

func NewCheckinService(tickets ports.TicketRepo, logger logger.Logger) *CheckinService {
	return &CheckinService{tickets: tickets, logger: logger}
}

// CheckIn redeems the ticket with the given code. On ErrAlreadyCheckedIn
// the returned snapshot carries the original check-in time.
func (s *CheckinService) CheckIn(ctx context.Context, code string) (*domain.Ticket, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrValidation)
	}

	err := s.tickets.CheckIn(ctx, code, time.Now().UTC())
	switch {
	case err == nil:
		monitoring.CheckInResult("ok")
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		monitoring.CheckInResult("already_used")
	case errors.Is(err, domain.ErrTicketNotActive):
		monitoring.CheckInResult("not_active")
		return nil, err
	case errors.Is(err, domain.ErrTicketNotFound):
		monitoring.CheckInResult("invalid")
		return nil, err
	default:
		return nil, err
	}

	ticket, getErr := s.tickets.GetByCode(ctx, code)
	if getErr != nil {
		return nil, getErr
	}

	if err == nil {
		s.logger.Info("ticket checked in",
			logger.String("code", code),
			logger.String("order_id", ticket.OrderID),
		)
	}

	return ticket, err
}
