package doctor

import (
	"fmt"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"

	"github.com/google/uuid"
)

// DoctorService manages the clinic's doctor records. Admin-gated, pass-through
// CRUD.
type DoctorService interface {
	Add(doctor models.Doctor) (*models.Doctor, error)
	List() ([]models.Doctor, error)
	Remove(email string) error
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

// Add stores a new doctor record.
func (s *DefaultDoctorService) Add(doctor models.Doctor) (*models.Doctor, error) {
	if doctor.Name == "" || doctor.Email == "" {
		return nil, fmt.Errorf("doctor name and email are required")
	}
	doctor.ID = uuid.New().String()
	if err := s.Repo.Create(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// List returns all doctors.
func (s *DefaultDoctorService) List() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

// Remove deletes the doctor record with the given email.
func (s *DefaultDoctorService) Remove(email string) error {
	return s.Repo.DeleteByEmail(email)
}
