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

const ticketColumns = `id, order_id, ticket_type_id, code, status, seat_label,
				holder_name, holder_email, holder_phone, checked_in_at, created_at`

type OrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOrderRepo(db *dbpg.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	orderQuery := `INSERT INTO orders (id, customer_id, event_id, total, status, hold_expires_at, created_at, updated_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, orderQuery,
		o.ID, o.CustomerID, o.EventID, o.Total,
		o.Status, o.HoldExpiresAt, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	ticketQuery := `INSERT INTO tickets (id, order_id, ticket_type_id, code, status, seat_label, holder_name, holder_email, holder_phone, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, t := range o.Tickets {
		_, err = tx.ExecContext(
			ctx, ticketQuery,
			t.ID, t.OrderID, t.TicketTypeID, t.Code, t.Status,
			t.SeatLabel, t.HolderName, t.HolderEmail, t.HolderPhone, t.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert ticket: %w", err)
		}
	}

	return tx.Commit()
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT id, customer_id, event_id, total, status, hold_expires_at, created_at, updated_at
			  FROM orders
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	var o domain.Order
	if err = row.Scan(
		&o.ID, &o.CustomerID, &o.EventID, &o.Total,
		&o.Status, &o.HoldExpiresAt, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	tickets, err := r.listTickets(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Tickets = tickets

	return &o, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	query := `SELECT id, customer_id, event_id, total, status, hold_expires_at, created_at, updated_at
			  FROM orders
			  WHERE customer_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	defer rows.Close()

	var res []*domain.Order
	for rows.Next() {
		var o domain.Order
		if err = rows.Scan(
			&o.ID, &o.CustomerID, &o.EventID, &o.Total,
			&o.Status, &o.HoldExpiresAt, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}

// Transition applies from → to only while the stored status still equals
// from. The status CAS, the ticket cascade and the stock release commit or
// roll back together, so a lost race can never half-apply.
func (r *OrderRepository) Transition(ctx context.Context, orderID string, from, to domain.OrderStatus, releaseStock bool) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE orders
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := tx.ExecContext(ctx, query, orderID, from, to)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`
		if err = tx.QueryRowContext(ctx, checkQuery, orderID).Scan(&exists); err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if !exists {
			return domain.ErrOrderNotFound
		}
		return domain.ErrStatusConflict
	}

	// Used tickets keep their status on refund; every other cascade
	// overwrites unconditionally.
	cascadeQuery := `UPDATE tickets
					 SET status = $2
					 WHERE order_id = $1 AND status <> $3`
	_, err = tx.ExecContext(ctx, cascadeQuery, orderID, domain.TicketStatusFor(to), domain.TicketStatusUsed)
	if err != nil {
		return fmt.Errorf("cascade ticket status: %w", err)
	}

	if releaseStock {
		releaseQuery := `UPDATE ticket_types tt
						 SET sold_quantity = GREATEST(tt.sold_quantity - held.qty, 0), updated_at = now()
						 FROM (
							 SELECT ticket_type_id, COUNT(*) AS qty
							 FROM tickets
							 WHERE order_id = $1
							 GROUP BY ticket_type_id
						 ) held
						 WHERE tt.id = held.ticket_type_id`
		if _, err = tx.ExecContext(ctx, releaseQuery, orderID); err != nil {
			return fmt.Errorf("release held stock: %w", err)
		}
	}

	return tx.Commit()
}

func (r *OrderRepository) ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]string, error) {
	query := `SELECT id
			  FROM orders
			  WHERE status = $1 AND hold_expires_at <= $2
			  ORDER BY hold_expires_at
			  LIMIT $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.OrderStatusPending, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list expired pending: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan order id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *OrderRepository) listTickets(ctx context.Context, orderID string) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + `
			  FROM tickets
			  WHERE order_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err = rows.Scan(
			&t.ID, &t.OrderID, &t.TicketTypeID, &t.Code, &t.Status,
			&t.SeatLabel, &t.HolderName, &t.HolderEmail, &t.HolderPhone,
			&t.CheckedInAt, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}
