package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/TicketHold/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) GetByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE code = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get ticket by code: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(
		&t.ID, &t.OrderID, &t.TicketTypeID, &t.Code, &t.Status,
		&t.SeatLabel, &t.HolderName, &t.HolderEmail, &t.HolderPhone,
		&t.CheckedInAt, &t.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

// CheckIn flips active → used guarded by the stored status, so two gates
// scanning the same code concurrently produce exactly one success.
func (r *TicketRepository) CheckIn(ctx context.Context, code string, at time.Time) error {
	query := `UPDATE tickets
			  SET status = $3, checked_in_at = $2
			  WHERE code = $1 AND status = $4`
	res, err := r.db.Master.ExecContext(ctx, query, code, at, domain.TicketStatusUsed, domain.TicketStatusActive)
	if err != nil {
		return fmt.Errorf("check in ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check-in rows affected: %w", err)
	}
	if rows == 0 {
		t, err := r.GetByCode(ctx, code)
		if err != nil {
			return err
		}
		if t.Status == domain.TicketStatusUsed {
			return domain.ErrAlreadyCheckedIn
		}
		return domain.ErrTicketNotActive
	}

	return nil
}
