package doctorRepo

import "doctorsportal/models"

// DoctorRepository defines access to clinic doctor records.
type DoctorRepository interface {
	Create(doctor *models.Doctor) error
	GetAll() ([]models.Doctor, error)
	DeleteByEmail(email string) error
}
