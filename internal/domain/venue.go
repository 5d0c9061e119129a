package domain

// Venue represents a location where events are held. Events reference it by id.
// swagger:model Venue
type Venue struct {
	ID          int    `json:"id"`
	Name        string `json:"name" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=200"`
	MaxCapacity int    `json:"max_capacity" validate:"min=1,max=10000"`
	IsDeleted   bool   `json:"is_deleted"`
	RowVersion  int    `json:"-"`
}

func (v *Venue) ResourceID() int { return v.ID }
func (v *Venue) SetResourceID(id int) { v.ID = id }
func (v *Venue) Deleted() bool { return v.IsDeleted }
func (v *Venue) SetDeleted(deleted bool) { v.IsDeleted = deleted }

// UpdateFrom overwrites the venue's mutable fields.
func (v *Venue) UpdateFrom(src *Venue) {
	v.Name = src.Name
	v.Address = src.Address
	v.MaxCapacity = src.MaxCapacity
}
