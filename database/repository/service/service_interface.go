package serviceRepo

import "doctorsportal/models"

// ServiceRepository defines access to the treatment catalog. The catalog is
// read-only from the application; seeding happens out of band.
type ServiceRepository interface {
	GetAll() ([]models.Service, error)
}
