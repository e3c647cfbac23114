package models

import "time"

// User represents a portal account. Accounts are upserted on sign-in; Role is
// "admin" for accounts allowed on the doctor-management routes.
type User struct {
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
