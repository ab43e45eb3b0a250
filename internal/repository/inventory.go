package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/TicketHold/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

// InventoryRepository is the authoritative ledger of sold counters.
// Reserve is a single conditional UPDATE, so the capacity check and the
// increment happen in the same atomic unit; Postgres row locking serializes
// writers per ticket type and leaves other types unaffected.
//
// Neither operation is wrapped in retries: an ambiguous network failure
// after the statement applied would move the counter twice on a second
// attempt.
type InventoryRepository struct {
	db *dbpg.DB
}

func NewInventoryRepo(db *dbpg.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Reserve(ctx context.Context, ticketTypeID string, qty int) error {
	query := `UPDATE ticket_types
			  SET sold_quantity = sold_quantity + $2, updated_at = now()
			  WHERE id = $1 AND sold_quantity + $2 <= initial_quantity`
	res, err := r.db.Master.ExecContext(ctx, query, ticketTypeID, qty)
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reserve rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM ticket_types WHERE id = $1)`
		if err = r.db.Master.QueryRowContext(ctx, checkQuery, ticketTypeID).Scan(&exists); err != nil {
			return fmt.Errorf("check ticket type: %w", err)
		}
		if !exists {
			return domain.ErrTicketTypeNotFound
		}
		return domain.ErrInsufficientStock
	}

	return nil
}

func (r *InventoryRepository) Release(ctx context.Context, ticketTypeID string, qty int) error {
	query := `UPDATE ticket_types
			  SET sold_quantity = GREATEST(sold_quantity - $2, 0), updated_at = now()
			  WHERE id = $1`
	res, err := r.db.Master.ExecContext(ctx, query, ticketTypeID, qty)
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTicketTypeNotFound
	}

	return nil
}
