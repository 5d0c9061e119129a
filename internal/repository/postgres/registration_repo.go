package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventdesk/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.Repository[*domain.Registration] {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	query := `
		SELECT id, registration_date, event_id, participant_id, is_deleted, row_version
		FROM registrations
		WHERE is_deleted = false
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	registrations := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.RegistrationDate, &reg.EventID, &reg.ParticipantID, &reg.IsDeleted, &reg.RowVersion); err != nil {
			return nil, err
		}
		registrations = append(registrations, reg)
	}
	return registrations, rows.Err()
}

func (r *registrationRepository) GetByID(ctx context.Context, id int) (*domain.Registration, error) {
	query := `
		SELECT id, registration_date, event_id, participant_id, is_deleted, row_version
		FROM registrations
		WHERE id = $1 AND is_deleted = false
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&reg.ID, &reg.RegistrationDate, &reg.EventID, &reg.ParticipantID, &reg.IsDeleted, &reg.RowVersion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM registrations WHERE id = $1 AND is_deleted = false)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (registration_date, event_id, participant_id, is_deleted, row_version)
		VALUES ($1, $2, $3, false, 1)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, reg.RegistrationDate, reg.EventID, reg.ParticipantID).Scan(&reg.ID); err != nil {
		return err
	}
	reg.IsDeleted = false
	reg.RowVersion = 1
	return nil
}

func (r *registrationRepository) Save(ctx context.Context, reg *domain.Registration) error {
	query := `
		UPDATE registrations
		SET registration_date = $1, event_id = $2, participant_id = $3, is_deleted = $4, row_version = row_version + 1
		WHERE id = $5 AND row_version = $6
	`
	result, err := r.DB.ExecContext(ctx, query, reg.RegistrationDate, reg.EventID, reg.ParticipantID, reg.IsDeleted, reg.ID, reg.RowVersion)
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
	reg.RowVersion++
	return nil
}
