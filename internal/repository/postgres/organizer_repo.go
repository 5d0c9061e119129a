package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventdesk/internal/domain"
)

type organizerRepository struct {
	DB *sql.DB
}

func NewOrganizerRepository(db *sql.DB) domain.Repository[*domain.Organizer] {
	return &organizerRepository{DB: db}
}

func (r *organizerRepository) List(ctx context.Context) ([]*domain.Organizer, error) {
	query := `
		SELECT id, name, contact, is_deleted, row_version
		FROM organizers
		WHERE is_deleted = false
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	organizers := make([]*domain.Organizer, 0)
	for rows.Next() {
		o := &domain.Organizer{}
		if err := rows.Scan(&o.ID, &o.Name, &o.Contact, &o.IsDeleted, &o.RowVersion); err != nil {
			return nil, err
		}
		organizers = append(organizers, o)
	}
	return organizers, rows.Err()
}

func (r *organizerRepository) GetByID(ctx context.Context, id int) (*domain.Organizer, error) {
	query := `
		SELECT id, name, contact, is_deleted, row_version
		FROM organizers
		WHERE id = $1 AND is_deleted = false
	`
	o := &domain.Organizer{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.Contact, &o.IsDeleted, &o.RowVersion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *organizerRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM organizers WHERE id = $1 AND is_deleted = false)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *organizerRepository) Create(ctx context.Context, o *domain.Organizer) error {
	query := `
		INSERT INTO organizers (name, contact, is_deleted, row_version)
		VALUES ($1, $2, false, 1)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, o.Name, o.Contact).Scan(&o.ID); err != nil {
		return err
	}
	o.IsDeleted = false
	o.RowVersion = 1
	return nil
}

func (r *organizerRepository) Save(ctx context.Context, o *domain.Organizer) error {
	query := `
		UPDATE organizers
		SET name = $1, contact = $2, is_deleted = $3, row_version = row_version + 1
		WHERE id = $4 AND row_version = $5
	`
	result, err := r.DB.ExecContext(ctx, query, o.Name, o.Contact, o.IsDeleted, o.ID, o.RowVersion)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrConflict
	}
	o.RowVersion++
	return nil
}
