package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventdesk/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func scanEvent(row interface{ Scan(dest ...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Date, &e.Capacity, &e.VenueID, &e.OrganizerID, &e.IsDeleted, &e.RowVersion)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, name, description, date, capacity, venue_id, organizer_id, is_deleted, row_version
		FROM events
		WHERE is_deleted = false
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	query := `
		SELECT id, name, description, date, capacity, venue_id, organizer_id, is_deleted, row_version
		FROM events
		WHERE id = $1 AND is_deleted = false
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1 AND is_deleted = false)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *eventRepository) ListWithSponsors(ctx context.Context) ([]*domain.Event, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return events, nil
	}

	byID := make(map[int]*domain.Event, len(events))
	ids := make([]int, 0, len(events))
	for _, e := range events {
		e.Sponsors = []*domain.Sponsor{}
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	query := `
		SELECT es.event_id, s.id, s.name, s.contact, s.is_deleted, s.row_version
		FROM event_sponsors es
		JOIN sponsors s ON s.id = es.sponsor_id
		WHERE s.is_deleted = false AND es.event_id = ANY($1)
		ORDER BY s.id
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var eventID int
		s := &domain.Sponsor{}
		if err := rows.Scan(&eventID, &s.ID, &s.Name, &s.Contact, &s.IsDeleted, &s.RowVersion); err != nil {
			return nil, err
		}
		if e, ok := byID[eventID]; ok {
			e.Sponsors = append(e.Sponsors, s)
		}
	}
	return events, rows.Err()
}

func (r *eventRepository) GetWithSponsors(ctx context.Context, id int) (*domain.Event, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT s.id, s.name, s.contact, s.is_deleted, s.row_version
		FROM event_sponsors es
		JOIN sponsors s ON s.id = es.sponsor_id
		WHERE s.is_deleted = false AND es.event_id = $1
		ORDER BY s.id
	`
	rows, err := r.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	e.Sponsors = []*domain.Sponsor{}
	for rows.Next() {
		s := &domain.Sponsor{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.IsDeleted, &s.RowVersion); err != nil {
			return nil, err
		}
		e.Sponsors = append(e.Sponsors, s)
	}
	return e, rows.Err()
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, description, date, capacity, venue_id, organizer_id, is_deleted, row_version)
		VALUES ($1, $2, $3, $4, $5, $6, false, 1)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, e.Name, e.Description, e.Date, e.Capacity, e.VenueID, e.OrganizerID).Scan(&e.ID); err != nil {
		return err
	}
	e.IsDeleted = false
	e.RowVersion = 1
	return nil
}

// CreateWithSponsors inserts the event, any nested sponsors that carry a zero
// id, and one association row per sponsor, all in a single transaction.
func (r *eventRepository) CreateWithSponsors(ctx context.Context, e *domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (name, description, date, capacity, venue_id, organizer_id, is_deleted, row_version)
		VALUES ($1, $2, $3, $4, $5, $6, false, 1)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, e.Name, e.Description, e.Date, e.Capacity, e.VenueID, e.OrganizerID).Scan(&e.ID); err != nil {
		return err
	}
	e.IsDeleted = false
	e.RowVersion = 1

	if err := insertSponsorLinks(ctx, tx, e.ID, e.Sponsors); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *eventRepository) Save(ctx context.Context, e *domain.Event) error {
	result, err := r.DB.ExecContext(ctx, saveEventQuery, e.Name, e.Description, e.Date, e.Capacity, e.VenueID, e.OrganizerID, e.IsDeleted, e.ID, e.RowVersion)
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
	e.RowVersion++
	return nil
}

const saveEventQuery = `
	UPDATE events
	SET name = $1, description = $2, date = $3, capacity = $4, venue_id = $5, organizer_id = $6, is_deleted = $7, row_version = row_version + 1
	WHERE id = $8 AND row_version = $9
`

// SaveWithSponsors persists the event under the optimistic-concurrency check
// and, when replaceLinks is true, replaces the association set with
// e.Sponsors. The event update and the link maintenance commit as one unit.
func (r *eventRepository) SaveWithSponsors(ctx context.Context, e *domain.Event, replaceLinks bool) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, saveEventQuery, e.Name, e.Description, e.Date, e.Capacity, e.VenueID, e.OrganizerID, e.IsDeleted, e.ID, e.RowVersion)
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

	if replaceLinks {
		if _, err := tx.ExecContext(ctx, `DELETE FROM event_sponsors WHERE event_id = $1`, e.ID); err != nil {
			return err
		}
		if err := insertSponsorLinks(ctx, tx, e.ID, e.Sponsors); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	e.RowVersion++
	return nil
}

// insertSponsorLinks inserts sponsors that carry a zero id (assigning their
// generated ids) and writes one association row per sponsor.
func insertSponsorLinks(ctx context.Context, tx *sql.Tx, eventID int, sponsors []*domain.Sponsor) error {
	insertSponsor := `
		INSERT INTO sponsors (name, contact, is_deleted, row_version)
		VALUES ($1, $2, false, 1)
		RETURNING id
	`
	insertLink := `
		INSERT INTO event_sponsors (event_id, sponsor_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	for _, s := range sponsors {
		if s.ID == 0 {
			if err := tx.QueryRowContext(ctx, insertSponsor, s.Name, s.Contact).Scan(&s.ID); err != nil {
				return err
			}
			s.IsDeleted = false
			s.RowVersion = 1
		}
		if _, err := tx.ExecContext(ctx, insertLink, eventID, s.ID); err != nil {
			return err
		}
	}
	return nil
}
