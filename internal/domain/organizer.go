package domain

// Organizer represents a person or company responsible for events.
// Contact must match the (DD)DDDDD-DDDD phone format.
// swagger:model Organizer
type Organizer struct {
	ID         int    `json:"id"`
	Name       string `json:"name" validate:"required,max=100"`
	Contact    string `json:"contact" validate:"required,phone_br"`
	IsDeleted  bool   `json:"is_deleted"`
	RowVersion int    `json:"-"`
}

func (o *Organizer) ResourceID() int { return o.ID }
func (o *Organizer) SetResourceID(id int) { o.ID = id }
func (o *Organizer) Deleted() bool { return o.IsDeleted }
func (o *Organizer) SetDeleted(deleted bool) { o.IsDeleted = deleted }

// UpdateFrom overwrites the organizer's mutable fields.
func (o *Organizer) UpdateFrom(src *Organizer) {
	o.Name = src.Name
	o.Contact = src.Contact
}
