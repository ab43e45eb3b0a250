// Package memory holds an in-memory implementation of the repository ports
// with the same atomicity guarantees as the Postgres one: reserve is a
// check-and-increment under lock, order transitions are compare-and-set.
// It backs the service test suites, where the stock races are exercised
// with real goroutines.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stpnv0/TicketHold/internal/domain"
)

type Store struct {
	mu            sync.Mutex
	events        map[string]domain.Event
	ticketTypes   map[string]domain.TicketType
	orders        map[string]domain.Order
	tickets       map[string]domain.Ticket
	orderTickets  map[string][]string
	ticketsByCode map[string]string
}

func NewStore() *Store {
	return &Store{
		events:        make(map[string]domain.Event),
		ticketTypes:   make(map[string]domain.TicketType),
		orders:        make(map[string]domain.Order),
		tickets:       make(map[string]domain.Ticket),
		orderTickets:  make(map[string][]string),
		ticketsByCode: make(map[string]string),
	}
}

// Catalog

func (s *Store) CreateEvent(_ context.Context, e *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[e.ID] = *e
	return nil
}

func (s *Store) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (s *Store) ListEvents(_ context.Context) ([]*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]*domain.Event, 0, len(s.events))
	for _, e := range s.events {
		e := e
		res = append(res, &e)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].StartsAt.After(res[j].StartsAt) })
	return res, nil
}

func (s *Store) CreateTicketType(_ context.Context, t *domain.TicketType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticketTypes[t.ID] = *t
	return nil
}

func (s *Store) GetTicketType(_ context.Context, id string) (*domain.TicketType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.ticketTypes[id]
	if !ok {
		return nil, domain.ErrTicketTypeNotFound
	}
	return &t, nil
}

func (s *Store) ListTicketTypes(_ context.Context, eventID string) ([]*domain.TicketType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*domain.TicketType
	for _, t := range s.ticketTypes {
		if t.EventID == eventID {
			t := t
			res = append(res, &t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Price.LessThan(res[j].Price) })
	return res, nil
}

// Inventory ledger

func (s *Store) Reserve(_ context.Context, ticketTypeID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.ticketTypes[ticketTypeID]
	if !ok {
		return domain.ErrTicketTypeNotFound
	}
	if t.SoldQuantity+qty > t.InitialQuantity {
		return domain.ErrInsufficientStock
	}
	t.SoldQuantity += qty
	s.ticketTypes[ticketTypeID] = t
	return nil
}

func (s *Store) Release(_ context.Context, ticketTypeID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.ticketTypes[ticketTypeID]
	if !ok {
		return domain.ErrTicketTypeNotFound
	}
	t.SoldQuantity -= qty
	if t.SoldQuantity < 0 {
		t.SoldQuantity = 0
	}
	s.ticketTypes[ticketTypeID] = t
	return nil
}

// Orders

func (s *Store) Create(_ context.Context, o *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *o
	stored.Tickets = nil
	s.orders[o.ID] = stored
	for _, t := range o.Tickets {
		s.tickets[t.ID] = t
		s.orderTickets[o.ID] = append(s.orderTickets[o.ID], t.ID)
		s.ticketsByCode[t.Code] = t.ID
	}
	return nil
}

func (s *Store) GetByID(_ context.Context, id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Tickets = s.collectTickets(id)
	return &o, nil
}

func (s *Store) ListByCustomer(_ context.Context, customerID string) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*domain.Order
	for id, o := range s.orders {
		if o.CustomerID == customerID {
			o := o
			o.Tickets = s.collectTickets(id)
			res = append(res, &o)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (s *Store) Transition(_ context.Context, orderID string, from, to domain.OrderStatus, releaseStock bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if o.Status != from {
		return domain.ErrStatusConflict
	}
	o.Status = to
	o.UpdatedAt = time.Now().UTC()
	s.orders[orderID] = o

	cascade := domain.TicketStatusFor(to)
	for _, tid := range s.orderTickets[orderID] {
		t := s.tickets[tid]
		if t.Status == domain.TicketStatusUsed {
			continue
		}
		t.Status = cascade
		s.tickets[tid] = t
		if releaseStock {
			tt, ok := s.ticketTypes[t.TicketTypeID]
			if ok && tt.SoldQuantity > 0 {
				tt.SoldQuantity--
				s.ticketTypes[t.TicketTypeID] = tt
			}
		}
	}
	return nil
}

func (s *Store) ListExpiredPending(_ context.Context, now time.Time, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	type due struct {
		id string
		at time.Time
	}
	var dues []due
	for id, o := range s.orders {
		if o.Status == domain.OrderStatusPending && !o.HoldExpiresAt.After(now) {
			dues = append(dues, due{id: id, at: o.HoldExpiresAt})
		}
	}
	sort.Slice(dues, func(i, j int) bool { return dues[i].at.Before(dues[j].at) })
	if limit > 0 && len(dues) > limit {
		dues = dues[:limit]
	}
	ids := make([]string, 0, len(dues))
	for _, d := range dues {
		ids = append(ids, d.id)
	}
	return ids, nil
}

// Tickets

func (s *Store) GetByCode(_ context.Context, code string) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tid, ok := s.ticketsByCode[code]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	t := s.tickets[tid]
	return &t, nil
}

func (s *Store) CheckIn(_ context.Context, code string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tid, ok := s.ticketsByCode[code]
	if !ok {
		return domain.ErrTicketNotFound
	}
	t := s.tickets[tid]
	switch t.Status {
	case domain.TicketStatusActive:
		t.Status = domain.TicketStatusUsed
		t.CheckedInAt = &at
		s.tickets[tid] = t
		return nil
	case domain.TicketStatusUsed:
		return domain.ErrAlreadyCheckedIn
	default:
		return domain.ErrTicketNotActive
	}
}

func (s *Store) collectTickets(orderID string) []domain.Ticket {
	ids := s.orderTickets[orderID]
	res := make([]domain.Ticket, 0, len(ids))
	for _, tid := range ids {
		res = append(res, s.tickets[tid])
	}
	return res
}
