package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventdesk/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.Repository[*domain.Participant] {
	return &participantRepository{DB: db}
}

func (r *participantRepository) List(ctx context.Context) ([]*domain.Participant, error) {
	query := `
		SELECT id, name, email, national_id, is_deleted, row_version
		FROM participants
		WHERE is_deleted = false
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p := &domain.Participant{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.NationalID, &p.IsDeleted, &p.RowVersion); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *participantRepository) GetByID(ctx context.Context, id int) (*domain.Participant, error) {
	query := `
		SELECT id, name, email, national_id, is_deleted, row_version
		FROM participants
		WHERE id = $1 AND is_deleted = false
	`
	p := &domain.Participant{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Email, &p.NationalID, &p.IsDeleted, &p.RowVersion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *participantRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM participants WHERE id = $1 AND is_deleted = false)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (name, email, national_id, is_deleted, row_version)
		VALUES ($1, $2, $3, false, 1)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, p.Name, p.Email, p.NationalID).Scan(&p.ID); err != nil {
		return err
	}
	p.IsDeleted = false
	p.RowVersion = 1
	return nil
}

func (r *participantRepository) Save(ctx context.Context, p *domain.Participant) error {
	query := `
		UPDATE participants
		SET name = $1, email = $2, national_id = $3, is_deleted = $4, row_version = row_version + 1
		WHERE id = $5 AND row_version = $6
	`
	result, err := r.DB.ExecContext(ctx, query, p.Name, p.Email, p.NationalID, p.IsDeleted, p.ID, p.RowVersion)
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
	p.RowVersion++
	return nil
}
