package bookingRepo

import "doctorsportal/models"

// BookingRepository defines access to persisted appointment bookings.
type BookingRepository interface {
	// Create inserts a new booking. ErrDuplicateBooking is returned when the
	// unique (treatment, date, patient) index rejects the insert.
	Create(booking *models.Booking) error
	// FindDuplicate looks up a booking by (treatment, date, patient). The slot
	// is deliberately not part of the key: one booking per treatment per day
	// per patient. Returns (nil, nil) when none exists.
	FindDuplicate(treatment, date, patient string) (*models.Booking, error)
	// GetByDate returns all bookings for a calendar date in insertion order.
	GetByDate(date string) ([]models.Booking, error)
	// GetByPatient returns all bookings made by the given patient email.
	GetByPatient(patient string) ([]models.Booking, error)
}
