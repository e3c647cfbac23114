package user

import (
	"fmt"
	"time"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"
)

const tokenTTL = time.Hour

// UserService manages portal accounts and their access tokens.
type UserService interface {
	// Upsert stores the account under email and issues a fresh access token.
	Upsert(email string, user models.User) (string, error)
	GetAll() ([]models.User, error)
	// IsAdmin reports whether the account with the given email holds the
	// admin role. Unknown accounts are not admins.
	IsAdmin(email string) (bool, error)
	// MakeAdmin grants the admin role to target. The requester must already
	// be an admin; ErrNotAdmin otherwise.
	MakeAdmin(requesterEmail, targetEmail string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Upsert stores the account and returns a signed token embedding the email,
// valid for one hour. Every sign-in renews the token.
func (s *DefaultUserService) Upsert(email string, user models.User) (string, error) {
	if err := s.Repo.Upsert(email, &user); err != nil {
		return "", fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := utils.GenerateToken(email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token for %s: %w", email, err)
	}
	return token, nil
}

// GetAll returns all portal accounts.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// IsAdmin reports whether the account holds the admin role.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to fetch account %s: %w", email, err)
	}
	return account.IsAdmin(), nil
}

// MakeAdmin grants the admin role to target on behalf of requester.
func (s *DefaultUserService) MakeAdmin(requesterEmail, targetEmail string) error {
	isAdmin, err := s.IsAdmin(requesterEmail)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrNotAdmin
	}
	if err := s.Repo.SetRole(targetEmail, "admin"); err != nil {
		return fmt.Errorf("failed to grant admin role to %s: %w", targetEmail, err)
	}
	return nil
}
