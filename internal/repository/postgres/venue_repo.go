package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventdesk/internal/domain"
)

type venueRepository struct {
	DB *sql.DB
}

func NewVenueRepository(db *sql.DB) domain.Repository[*domain.Venue] {
	return &venueRepository{DB: db}
}

func (r *venueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `
		SELECT id, name, address, max_capacity, is_deleted, row_version
		FROM venues
		WHERE is_deleted = false
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v := &domain.Venue{}
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.MaxCapacity, &v.IsDeleted, &v.RowVersion); err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*domain.Venue, error) {
	query := `
		SELECT id, name, address, max_capacity, is_deleted, row_version
		FROM venues
		WHERE id = $1 AND is_deleted = false
	`
	v := &domain.Venue{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Name, &v.Address, &v.MaxCapacity, &v.IsDeleted, &v.RowVersion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *venueRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1 AND is_deleted = false)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *venueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `
		INSERT INTO venues (name, address, max_capacity, is_deleted, row_version)
		VALUES ($1, $2, $3, false, 1)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, v.Name, v.Address, v.MaxCapacity).Scan(&v.ID); err != nil {
		return err
	}
	v.IsDeleted = false
	v.RowVersion = 1
	return nil
}

func (r *venueRepository) Save(ctx context.Context, v *domain.Venue) error {
	query := `
		UPDATE venues
		SET name = $1, address = $2, max_capacity = $3, is_deleted = $4, row_version = row_version + 1
		WHERE id = $5 AND row_version = $6
	`
	result, err := r.DB.ExecContext(ctx, query, v.Name, v.Address, v.MaxCapacity, v.IsDeleted, v.ID, v.RowVersion)
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
	v.RowVersion++
	return nil
}
