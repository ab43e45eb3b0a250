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

const ticketTypeColumns = `id, event_id, name, price, initial_quantity, sold_quantity,
				num_per_order, max_per_order, created_at, updated_at`

type CatalogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCatalogRepo(db *dbpg.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CatalogRepository) CreateEvent(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, venue, starts_at, sale_starts_at, sale_ends_at, cancelled, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Venue,
		e.StartsAt, e.SaleStartsAt, e.SaleEndsAt, e.Cancelled, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *CatalogRepository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, venue, starts_at, sale_starts_at, sale_ends_at, cancelled, created_at, updated_at
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Venue,
		&e.StartsAt, &e.SaleStartsAt, &e.SaleEndsAt, &e.Cancelled,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *CatalogRepository) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, title, description, venue, starts_at, sale_starts_at, sale_ends_at, cancelled, created_at, updated_at
			  FROM events
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Venue,
			&e.StartsAt, &e.SaleStartsAt, &e.SaleEndsAt, &e.Cancelled,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *CatalogRepository) CreateTicketType(ctx context.Context, t *domain.TicketType) error {
	query := `INSERT INTO ticket_types (id, event_id, name, price, initial_quantity, sold_quantity, num_per_order, max_per_order, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.EventID, t.Name, t.Price,
		t.InitialQuantity, t.SoldQuantity, t.NumPerOrder, t.MaxPerOrder, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert ticket type: %w", err)
	}

	return nil
}

func (r *CatalogRepository) GetTicketType(ctx context.Context, id string) (*domain.TicketType, error) {
	query := `SELECT ` + ticketTypeColumns + `
			  FROM ticket_types
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket type: %w", err)
	}

	var t domain.TicketType
	if err = row.Scan(
		&t.ID, &t.EventID, &t.Name, &t.Price,
		&t.InitialQuantity, &t.SoldQuantity,
		&t.NumPerOrder, &t.MaxPerOrder,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("scan ticket type: %w", err)
	}

	return &t, nil
}

func (r *CatalogRepository) ListTicketTypes(ctx context.Context, eventID string) ([]*domain.TicketType, error) {
	query := `SELECT ` + ticketTypeColumns + `
			  FROM ticket_types
			  WHERE event_id = $1
			  ORDER BY price`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}
	defer rows.Close()

	var res []*domain.TicketType
	for rows.Next() {
		var t domain.TicketType
		if err = rows.Scan(
			&t.ID, &t.EventID, &t.Name, &t.Price,
			&t.InitialQuantity, &t.SoldQuantity,
			&t.NumPerOrder, &t.MaxPerOrder,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket type: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
