package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventdesk/internal/domain"
	"eventdesk/internal/validation"
)

// crudService implements the soft-delete CRUD contract once for every entity
// type. All entities share the same lifecycle: reads filter out soft-deleted
// rows, delete only flips the flag, and a failed optimistic save is recovered
// by a single existence re-check.
type crudService[T domain.Entity[T]] struct {
	repo    domain.Repository[T]
	timeout time.Duration
}

// NewCRUDService returns the generic CRUD service for the given repository.
func NewCRUDService[T domain.Entity[T]](repo domain.Repository[T], timeout time.Duration) domain.CRUDService[T] {
	return &crudService[T]{repo: repo, timeout: timeout}
}

func (s *crudService[T]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *crudService[T]) Get(ctx context.Context, id int) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var zero T
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return zero, domain.ErrNotFound
		}
		return zero, fmt.Errorf("get: %w", err)
	}
	return item, nil
}

func (s *crudService[T]) Create(ctx context.Context, item T) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if msgs := validation.Check(item); len(msgs) > 0 {
		return &domain.ValidationError{Fields: msgs}
	}
	item.SetResourceID(0)
	item.SetDeleted(false)
	if err := s.repo.Create(ctx, item); err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

func (s *crudService[T]) Update(ctx context.Context, id int, item T) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if item.ResourceID() != id {
		return domain.ErrIDMismatch
	}
	if msgs := validation.Check(item); len(msgs) > 0 {
		return &domain.ValidationError{Fields: msgs}
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get: %w", err)
	}
	existing.UpdateFrom(item)
	if err := s.repo.Save(ctx, existing); err != nil {
		return recoverConflict(ctx, s.repo, id, err)
	}
	return nil
}

func (s *crudService[T]) SoftDelete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get: %w", err)
	}
	existing.SetDeleted(true)
	if err := s.repo.Save(ctx, existing); err != nil {
		return recoverConflict(ctx, s.repo, id, err)
	}
	return nil
}

// recoverConflict applies the one-shot recovery for an optimistic-concurrency
// failure: when the row no longer exists (or is now soft-deleted) the conflict
// downgrades to ErrNotFound, otherwise it propagates. The mutation itself is
// never retried.
func recoverConflict[T domain.Resource](ctx context.Context, repo domain.Repository[T], id int, err error) error {
	if !errors.Is(err, domain.ErrConflict) {
		return fmt.Errorf("save: %w", err)
	}
	exists, checkErr := repo.Exists(ctx, id)
	if checkErr != nil {
		return fmt.Errorf("existence check after conflict: %w", checkErr)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}
