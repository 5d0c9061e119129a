package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory Repository for tests. Soft-deleted rows stay in the
// map but are invisible to List, GetByID, and Exists, matching the SQL
// implementations.
type fakeRepo[T domain.Entity[T]] struct {
	byID      map[int]T
	nextID    int
	createErr error
	saveErr   error  // if set, Save returns this
	onSave    func() // runs before each Save, simulates concurrent writers
	saveCalls int
}

func newFakeRepo[T domain.Entity[T]]() *fakeRepo[T] {
	return &fakeRepo[T]{byID: make(map[int]T), nextID: 1}
}

func (f *fakeRepo[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	for id := 1; id < f.nextID; id++ {
		if item, ok := f.byID[id]; ok && !item.Deleted() {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo[T]) GetByID(ctx context.Context, id int) (T, error) {
	var zero T
	item, ok := f.byID[id]
	if !ok || item.Deleted() {
		return zero, domain.ErrNotFound
	}
	return item, nil
}

func (f *fakeRepo[T]) Exists(ctx context.Context, id int) (bool, error) {
	item, ok := f.byID[id]
	return ok && !item.Deleted(), nil
}

func (f *fakeRepo[T]) Create(ctx context.Context, item T) error {
	if f.createErr != nil {
		return f.createErr
	}
	item.SetResourceID(f.nextID)
	f.nextID++
	f.byID[item.ResourceID()] = item
	return nil
}

func (f *fakeRepo[T]) Save(ctx context.Context, item T) error {
	f.saveCalls++
	if f.onSave != nil {
		f.onSave()
	}
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.byID[item.ResourceID()]; !ok {
		return domain.ErrConflict
	}
	f.byID[item.ResourceID()] = item
	return nil
}

func validOrganizer() *domain.Organizer {
	return &domain.Organizer{Name: "Ana Souza", Contact: "(11)91234-5678"}
}

func TestCRUDService_Create(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	tests := []struct {
		name       string
		organizer  *domain.Organizer
		wantErr    bool
		wantFields []string
	}{
		{
			name:      "success",
			organizer: validOrganizer(),
		},
		{
			name:       "contact without punctuation fails",
			organizer:  &domain.Organizer{Name: "Ana Souza", Contact: "99999999999"},
			wantErr:    true,
			wantFields: []string{"contact"},
		},
		{
			name:       "missing name",
			organizer:  &domain.Organizer{Contact: "(11)91234-5678"},
			wantErr:    true,
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo[*domain.Organizer]()
			svc := NewCRUDService[*domain.Organizer](repo, timeout)
			err := svc.Create(ctx, tt.organizer)
			if tt.wantErr {
				var vErr *domain.ValidationError
				require.ErrorAs(t, err, &vErr)
				for _, field := range tt.wantFields {
					found := false
					for _, msg := range vErr.Fields {
						if len(msg) >= len(field) && msg[:len(field)] == field {
							found = true
						}
					}
					assert.True(t, found, "expected a message for field %q, got %v", field, vErr.Fields)
				}
				assert.Empty(t, repo.byID, "nothing should be persisted on validation failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, tt.organizer.ID)
			assert.False(t, tt.organizer.IsDeleted)
		})
	}
}

func TestCRUDService_Create_IgnoresClientID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo[*domain.Organizer]()
	svc := NewCRUDService[*domain.Organizer](repo, 5*time.Second)

	organizer := validOrganizer()
	organizer.ID = 42
	organizer.IsDeleted = true
	require.NoError(t, svc.Create(ctx, organizer))
	assert.Equal(t, 1, organizer.ID, "client-supplied id must be replaced")
	assert.False(t, organizer.IsDeleted, "client-supplied deletion flag must be reset")
}

func TestCRUDService_Get(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo[*domain.Organizer]()
	svc := NewCRUDService[*domain.Organizer](repo, 5*time.Second)

	organizer := validOrganizer()
	require.NoError(t, svc.Create(ctx, organizer))

	got, err := svc.Get(ctx, organizer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", got.Name)

	_, err = svc.Get(ctx, 999)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCRUDService_List_ExcludesSoftDeleted(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo[*domain.Organizer]()
	svc := NewCRUDService[*domain.Organizer](repo, 5*time.Second)

	first := validOrganizer()
	second := &domain.Organizer{Name: "Bruno Lima", Contact: "(21)99876-5432"}
	require.NoError(t, svc.Create(ctx, first))
	require.NoError(t, svc.Create(ctx, second))

	require.NoError(t, svc.SoftDelete(ctx, first.ID))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
}

func TestCRUDService_List_EmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	svc := NewCRUDService[*domain.Organizer](newFakeRepo[*domain.Organizer](), 5*time.Second)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Len(t, items, 0)
}

func TestCRUDService_Update(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	tests := []struct {
		name         string
		setup        func(repo *fakeRepo[*domain.Organizer], svc domain.CRUDService[*domain.Organizer]) int
		pathID       func(createdID int) int
		payload      func(createdID int) *domain.Organizer
		wantErr      error
		wantNoWrite  bool
		assertResult func(t *testing.T, svc domain.CRUDService[*domain.Organizer], id int)
	}{
		{
			name: "success",
			setup: func(repo *fakeRepo[*domain.Organizer], svc domain.CRUDService[*domain.Organizer]) int {
				o := validOrganizer()
				_ = svc.Create(ctx, o)
				return o.ID
			},
			pathID: func(id int) int { return id },
			payload: func(id int) *domain.Organizer {
				return &domain.Organizer{ID: id, Name: "Ana S. Souza", Contact: "(11)91234-5678"}
			},
			assertResult: func(t *testing.T, svc domain.CRUDService[*domain.Organizer], id int) {
				got, err := svc.Get(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, "Ana S. Souza", got.Name)
			},
		},
		{
			name: "id mismatch performs no write",
			setup: func(repo *fakeRepo[*domain.Organizer], svc domain.CRUDService[*domain.Organizer]) int {
				o := validOrganizer()
				_ = svc.Create(ctx, o)
				return o.ID
			},
			pathID: func(id int) int { return id },
			payload: func(id int) *domain.Organizer {
				return &domain.Organizer{ID: id + 1, Name: "Ana S. Souza", Contact: "(11)91234-5678"}
			},
			wantErr:     domain.ErrIDMismatch,
			wantNoWrite: true,
			assertResult: func(t *testing.T, svc domain.CRUDService[*domain.Organizer], id int) {
				got, err := svc.Get(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, "Ana Souza", got.Name, "original row must be untouched")
			},
		},
		{
			name: "missing target",
			setup: func(repo *fakeRepo[*domain.Organizer], svc domain.CRUDService[*domain.Organizer]) int {
				return 77
			},
			pathID: func(id int) int { return id },
			payload: func(id int) *domain.Organizer {
				return &domain.Organizer{ID: id, Name: "Ana", Contact: "(11)91234-5678"}
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo[*domain.Organizer]()
			svc := NewCRUDService[*domain.Organizer](repo, timeout)
			id := tt.setup(repo, svc)
			saveCallsBefore := repo.saveCalls

			err := svc.Update(ctx, tt.pathID(id), tt.payload(id))
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				if tt.wantNoWrite {
					assert.Equal(t, saveCallsBefore, repo.saveCalls, "no save may be attempted")
				}
			} else {
				require.NoError(t, err)
			}
			if tt.assertResult != nil {
				tt.assertResult(t, svc, id)
			}
		})
	}
}

func TestCRUDService_SoftDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo[*domain.Organizer]()
	svc := NewCRUDService[*domain.Organizer](repo, 5*time.Second)

	organizer := validOrganizer()
	require.NoError(t, svc.Create(ctx, organizer))

	require.NoError(t, svc.SoftDelete(ctx, organizer.ID))

	_, err := svc.Get(ctx, organizer.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound), "soft-deleted row must be invisible")

	err = svc.SoftDelete(ctx, organizer.ID)
	require.True(t, errors.Is(err, domain.ErrNotFound), "second delete finds nothing")

	stored, ok := repo.byID[organizer.ID]
	require.True(t, ok, "the row itself must survive")
	assert.True(t, stored.IsDeleted)
}

func TestCRUDService_ConflictRecovery(t *testing.T) {
	ctx := context.Background()
	timeout := 5 * time.Second

	t.Run("row vanished downgrades to not found", func(t *testing.T) {
		repo := newFakeRepo[*domain.Organizer]()
		svc := NewCRUDService[*domain.Organizer](repo, timeout)
		organizer := validOrganizer()
		require.NoError(t, svc.Create(ctx, organizer))

		// A concurrent writer removes the row between the read and the save:
		// the save conflicts and the existence re-check comes back empty.
		repo.saveErr = domain.ErrConflict
		repo.onSave = func() { delete(repo.byID, organizer.ID) }

		err := svc.Update(ctx, organizer.ID, &domain.Organizer{ID: organizer.ID, Name: "New", Contact: "(11)91234-5678"})
		require.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
	})

	t.Run("conflict propagates when row still exists", func(t *testing.T) {
		repo := newFakeRepo[*domain.Organizer]()
		svc := NewCRUDService[*domain.Organizer](repo, timeout)
		organizer := validOrganizer()
		require.NoError(t, svc.Create(ctx, organizer))

		repo.saveErr = domain.ErrConflict
		err := svc.Update(ctx, organizer.ID, &domain.Organizer{ID: organizer.ID, Name: "New", Contact: "(11)91234-5678"})
		require.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("soft delete conflict on vanished row is not found", func(t *testing.T) {
		repo := newFakeRepo[*domain.Organizer]()
		svc := NewCRUDService[*domain.Organizer](repo, timeout)
		organizer := validOrganizer()
		require.NoError(t, svc.Create(ctx, organizer))

		repo.saveErr = domain.ErrConflict
		repo.onSave = func() { delete(repo.byID, organizer.ID) }

		err := svc.SoftDelete(ctx, organizer.ID)
		require.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
	})
}
