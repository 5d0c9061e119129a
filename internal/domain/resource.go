package domain

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors shared by every resource.
var (
	// ErrNotFound is returned when a row is absent or soft-deleted.
	ErrNotFound = errors.New("resource not found")
	// ErrIDMismatch is returned when the path id and payload id disagree on update.
	ErrIDMismatch = errors.New("payload id does not match path id")
	// ErrConflict is returned when a row changed between load and save.
	ErrConflict = errors.New("resource was modified concurrently")
)

// ValidationError reports declared field-rule violations. It is produced
// before any persistence attempt.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// Resource is implemented by every entity participating in the generic
// soft-delete CRUD contract.
type Resource interface {
	ResourceID() int
	SetResourceID(id int)
	Deleted() bool
	SetDeleted(deleted bool)
}

// Updatable defines an entity's mutable-field set: UpdateFrom overwrites the
// receiver's mutable fields with those of src, leaving the id, the deletion
// flag, and the row version untouched.
type Updatable[T any] interface {
	UpdateFrom(src T)
}

// Entity constrains the generic CRUD service to entities that expose both the
// soft-delete contract and their mutable-field set.
type Entity[T any] interface {
	Resource
	Updatable[T]
}

// Repository defines generic storage for a soft-deleted entity. List, GetByID,
// and Exists only see rows with is_deleted = false. Save must fail with
// ErrConflict when the stored row version no longer matches the loaded one.
type Repository[T Resource] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (T, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, item T) error
	Save(ctx context.Context, item T) error
}

// CRUDService defines the five operations every resource exposes.
type CRUDService[T Resource] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, item T) error
	Update(ctx context.Context, id int, item T) error
	SoftDelete(ctx context.Context, id int) error
}
