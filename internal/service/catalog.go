package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/TicketHold/internal/domain"
	"github.com/stpnv0/TicketHold/internal/service/ports"
)

// CatalogService covers the minimal event/ticket-type surface the
// reservation flow depends on. Full catalog management lives elsewhere.
type CatalogService struct {
	repo ports.CatalogRepo
}

func NewCatalogService(repo ports.CatalogRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}
	if !input.SaleEndsAt.After(input.SaleStartsAt) {
		return nil, fmt.Errorf("%w: sale_ends_at must be after sale_starts_at", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Description:  input.Description,
		Venue:        input.Venue,
		StartsAt:     input.StartsAt,
		SaleStartsAt: input.SaleStartsAt,
		SaleEndsAt:   input.SaleEndsAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *CatalogService) CreateTicketType(ctx context.Context, input domain.CreateTicketTypeInput) (*domain.TicketType, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.InitialQuantity <= 0 {
		return nil, fmt.Errorf("%w: initial_quantity must be positive", domain.ErrValidation)
	}

	numPerOrder := input.NumPerOrder
	if numPerOrder <= 0 {
		numPerOrder = 1
	}
	maxPerOrder := input.MaxPerOrder
	if maxPerOrder <= 0 {
		maxPerOrder = input.InitialQuantity
	}
	if maxPerOrder < numPerOrder {
		return nil, fmt.Errorf("%w: max_per_order must not be below num_per_order", domain.ErrValidation)
	}

	if _, err := s.repo.GetEvent(ctx, input.EventID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tt := &domain.TicketType{
		ID:              uuid.New().String(),
		EventID:         input.EventID,
		Name:            input.Name,
		Price:           input.Price,
		InitialQuantity: input.InitialQuantity,
		NumPerOrder:     numPerOrder,
		MaxPerOrder:     maxPerOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateTicketType(ctx, tt); err != nil {
		return nil, fmt.Errorf("create ticket type: %w", err)
	}

	return tt, nil
}

func (s *CatalogService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	types, err := s.repo.ListTicketTypes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list ticket types: %w", err)
	}

	details := &domain.EventDetails{Event: *event}
	details.TicketTypes = make([]domain.TicketType, len(types))
	for i, t := range types {
		details.TicketTypes[i] = *t
	}

	return details, nil
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListEvents(ctx)
}
