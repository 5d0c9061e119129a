package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventdesk/internal/domain"
)

type sponsorRepository struct {
	DB *sql.DB
}

func NewSponsorRepository(db *sql.DB) domain.Repository[*domain.Sponsor] {
	return &sponsorRepository{DB: db}
}

func (r *sponsorRepository) List(ctx context.Context) ([]*domain.Sponsor, error) {
	query := `
		SELECT id, name, contact, is_deleted, row_version
		FROM sponsors
		WHERE is_deleted = false
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sponsors := make([]*domain.Sponsor, 0)
	for rows.Next() {
		s := &domain.Sponsor{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.IsDeleted, &s.RowVersion); err != nil {
			return nil, err
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}

func (r *sponsorRepository) GetByID(ctx context.Context, id int) (*domain.Sponsor, error) {
	query := `
		SELECT id, name, contact, is_deleted, row_version
		FROM sponsors
		WHERE id = $1 AND is_deleted = false
	`
	s := &domain.Sponsor{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Contact, &s.IsDeleted, &s.RowVersion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sponsorRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM sponsors WHERE id = $1 AND is_deleted = false)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *sponsorRepository) Create(ctx context.Context, s *domain.Sponsor) error {
	query := `
		INSERT INTO sponsors (name, contact, is_deleted, row_version)
		VALUES ($1, $2, false, 1)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, s.Name, s.Contact).Scan(&s.ID); err != nil {
		return err
	}
	s.IsDeleted = false
	s.RowVersion = 1
	return nil
}

func (r *sponsorRepository) Save(ctx context.Context, s *domain.Sponsor) error {
	query := `
		UPDATE sponsors
		SET name = $1, contact = $2, is_deleted = $3, row_version = row_version + 1
		WHERE id = $4 AND row_version = $5
	`
	result, err := r.DB.ExecContext(ctx, query, s.Name, s.Contact, s.IsDeleted, s.ID, s.RowVersion)
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
	s.RowVersion++
	return nil
}
