package models

// Service represents one offered treatment in the catalog, together with the
// nominal time slots it can be booked for on any given day. Catalog documents
// are read-only from the application's point of view.
type Service struct {
	ID          string   `bson:"id,omitempty" json:"id,omitempty"` // Unique service identifier (e.g., UUID)
	Name        string   `bson:"name" json:"name"`                 // Unique treatment name within the catalog
	Slots       []string `bson:"slots" json:"slots"`               // Ordered slot labels, e.g. "9:00 AM"
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64  `bson:"price,omitempty" json:"price,omitempty"`
	Image       string   `bson:"image,omitempty" json:"image,omitempty"`
}
