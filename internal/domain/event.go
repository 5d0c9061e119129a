package domain

import (
	"context"
	"time"
)

// Event represents a scheduled event held at a venue. The sponsor collection
// is the many-to-many side of the event_sponsors association.
// swagger:model Event
type Event struct {
	ID          int        `json:"id"`
	Name        string     `json:"name" validate:"required,max=100"`
	Description string     `json:"description" validate:"required,max=500"`
	Date        time.Time  `json:"date" validate:"required"`
	Capacity    int        `json:"capacity" validate:"required,min=1,max=10000"`
	VenueID     int        `json:"venue_id" validate:"required"`
	OrganizerID int        `json:"organizer_id" validate:"required"`
	Sponsors    []*Sponsor `json:"sponsors" validate:"dive"`
	IsDeleted   bool       `json:"is_deleted"`
	RowVersion  int        `json:"-"`
}

func (e *Event) ResourceID() int { return e.ID }
func (e *Event) SetResourceID(id int) { e.ID = id }
func (e *Event) Deleted() bool { return e.IsDeleted }
func (e *Event) SetDeleted(deleted bool) { e.IsDeleted = deleted }

// UpdateFrom overwrites the event's mutable scalar fields. The sponsor
// collection is reconciled separately by the event service.
func (e *Event) UpdateFrom(src *Event) {
	e.Name = src.Name
	e.Description = src.Description
	e.Date = src.Date
	e.Capacity = src.Capacity
	e.VenueID = src.VenueID
	e.OrganizerID = src.OrganizerID
}

// EventRepository extends the generic contract with eager sponsor loads and
// transactional maintenance of the event_sponsors association.
type EventRepository interface {
	Repository[*Event]
	// ListWithSponsors returns active events with their sponsor collections loaded.
	ListWithSponsors(ctx context.Context) ([]*Event, error)
	// GetWithSponsors returns the active event with its sponsor collection loaded.
	GetWithSponsors(ctx context.Context, id int) (*Event, error)
	// CreateWithSponsors inserts the event, inserts sponsors in event.Sponsors
	// that have a zero id (assigning their ids), and writes one association row
	// per sponsor, all in a single transaction.
	CreateWithSponsors(ctx context.Context, event *Event) error
	// SaveWithSponsors persists the event under the optimistic-concurrency
	// policy. When replaceLinks is true the association set is replaced with
	// event.Sponsors, inserting zero-id sponsors first; when false the
	// association rows are left untouched.
	SaveWithSponsors(ctx context.Context, event *Event, replaceLinks bool) error
}
