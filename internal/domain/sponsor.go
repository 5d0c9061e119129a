package domain

// Sponsor represents a company sponsoring events, related to Event
// many-to-many through the event_sponsors association table.
// swagger:model Sponsor
type Sponsor struct {
	ID         int    `json:"id"`
	Name       string `json:"name" validate:"required,max=100"`
	Contact    string `json:"contact" validate:"required,phone_br"`
	IsDeleted  bool   `json:"is_deleted"`
	RowVersion int    `json:"-"`
}

func (s *Sponsor) ResourceID() int { return s.ID }
func (s *Sponsor) SetResourceID(id int) { s.ID = id }
func (s *Sponsor) Deleted() bool { return s.IsDeleted }
func (s *Sponsor) SetDeleted(deleted bool) { s.IsDeleted = deleted }

// UpdateFrom overwrites the sponsor's mutable fields.
func (s *Sponsor) UpdateFrom(src *Sponsor) {
	s.Name = src.Name
	s.Contact = src.Contact
}
