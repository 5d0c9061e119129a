package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventdesk/internal/domain"
	"eventdesk/internal/validation"
)

// eventService is the one resource service that deviates from the generic
// implementation: reads eager-load the sponsor collection and writes reconcile
// it against the store (the association upsert).
type eventService struct {
	eventRepo   domain.EventRepository
	sponsorRepo domain.Repository[*domain.Sponsor]
	timeout     time.Duration
}

// NewEventService returns the event service. sponsorRepo resolves sponsor ids
// supplied in nested event payloads during reconciliation.
func NewEventService(eventRepo domain.EventRepository, sponsorRepo domain.Repository[*domain.Sponsor], timeout time.Duration) domain.CRUDService[*domain.Event] {
	return &eventService{
		eventRepo:   eventRepo,
		sponsorRepo: sponsorRepo,
		timeout:     timeout,
	}
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	events, err := s.eventRepo.ListWithSponsors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id int) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	event, err := s.eventRepo.GetWithSponsors(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// Create persists the event together with its nested sponsors in one unit:
// sponsors with a zero id are inserted as new rows, sponsors with a non-zero
// id are assumed to exist, and every sponsor in the payload is linked to the
// new event.
func (s *eventService) Create(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if msgs := validation.Check(event); len(msgs) > 0 {
		return &domain.ValidationError{Fields: msgs}
	}
	event.ID = 0
	event.IsDeleted = false
	for _, sp := range event.Sponsors {
		if sp.ID == 0 {
			sp.IsDeleted = false
		}
	}
	if err := s.eventRepo.CreateWithSponsors(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update overwrites the event's scalar fields and, when the payload carries a
// non-empty sponsor list, replaces the association set with it: zero-id
// sponsors are staged as new rows, non-zero ids are re-attached when they
// resolve to an active sponsor and skipped otherwise. An empty sponsor list
// leaves the existing association set untouched.
func (s *eventService) Update(ctx context.Context, id int, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if event.ID != id {
		return domain.ErrIDMismatch
	}
	if msgs := validation.Check(event); len(msgs) > 0 {
		return &domain.ValidationError{Fields: msgs}
	}
	existing, err := s.eventRepo.GetWithSponsors(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	existing.UpdateFrom(event)

	replaceLinks := len(event.Sponsors) > 0
	if replaceLinks {
		reconciled := make([]*domain.Sponsor, 0, len(event.Sponsors))
		for _, sp := range event.Sponsors {
			if sp.ID == 0 {
				sp.IsDeleted = false
				reconciled = append(reconciled, sp)
				continue
			}
			stored, err := s.sponsorRepo.GetByID(ctx, sp.ID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return fmt.Errorf("resolve sponsor %d: %w", sp.ID, err)
			}
			reconciled = append(reconciled, stored)
		}
		existing.Sponsors = reconciled
	}

	if err := s.eventRepo.SaveWithSponsors(ctx, existing, replaceLinks); err != nil {
		return recoverConflict[*domain.Event](ctx, s.eventRepo, id, err)
	}
	return nil
}

func (s *eventService) SoftDelete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	existing.SetDeleted(true)
	if err := s.eventRepo.Save(ctx, existing); err != nil {
		return recoverConflict[*domain.Event](ctx, s.eventRepo, id, err)
	}
	return nil
}
