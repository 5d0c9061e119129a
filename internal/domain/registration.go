package domain

import "time"

// Registration links a participant to an event. Both sides are referenced by
// id only; no foreign-key load happens in the API layer.
// swagger:model Registration
type Registration struct {
	ID               int       `json:"id"`
	RegistrationDate time.Time `json:"registration_date" validate:"required"`
	EventID          int       `json:"event_id" validate:"required"`
	ParticipantID    int       `json:"participant_id" validate:"required"`
	IsDeleted        bool      `json:"is_deleted"`
	RowVersion       int       `json:"-"`
}

func (r *Registration) ResourceID() int { return r.ID }
func (r *Registration) SetResourceID(id int) { r.ID = id }
func (r *Registration) Deleted() bool { return r.IsDeleted }
func (r *Registration) SetDeleted(deleted bool) { r.IsDeleted = deleted }

// UpdateFrom overwrites the registration's mutable fields.
func (r *Registration) UpdateFrom(src *Registration) {
	r.RegistrationDate = src.RegistrationDate
	r.EventID = src.EventID
	r.ParticipantID = src.ParticipantID
}
