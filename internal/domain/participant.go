package domain

// Participant represents a person who can register for events.
// NationalID must match the DDD.DDD.DDD-DD format.
// swagger:model Participant
type Participant struct {
	ID         int    `json:"id"`
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	NationalID string `json:"national_id" validate:"required,national_id"`
	IsDeleted  bool   `json:"is_deleted"`
	RowVersion int    `json:"-"`
}

func (p *Participant) ResourceID() int { return p.ID }
func (p *Participant) SetResourceID(id int) { p.ID = id }
func (p *Participant) Deleted() bool { return p.IsDeleted }
func (p *Participant) SetDeleted(deleted bool) { p.IsDeleted = deleted }

// UpdateFrom overwrites the participant's mutable fields.
func (p *Participant) UpdateFrom(src *Participant) {
	p.Name = src.Name
	p.Email = src.Email
	p.NationalID = src.NationalID
}
