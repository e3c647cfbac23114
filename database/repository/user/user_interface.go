package userRepo

import "doctorsportal/models"

// UserRepository defines access to portal user accounts.
type UserRepository interface {
	// Upsert creates or updates the account stored under email.
	Upsert(email string, user *models.User) error
	// GetByEmail returns (nil, nil) when no account exists.
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	// SetRole updates the role of an existing account.
	SetRole(email, role string) error
}
