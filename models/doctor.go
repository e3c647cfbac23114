package models

// Doctor represents a clinic doctor managed through the admin routes.
type Doctor struct {
	ID        string `bson:"id,omitempty" json:"id,omitempty"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	Specialty string `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image     string `bson:"image,omitempty" json:"image,omitempty"`
}
