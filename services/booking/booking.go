package booking

import (
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService records appointment bookings and dispatches confirmation
// emails for the ones that go through.
type BookingService interface {
	Record(booking models.Booking) (models.BookingResult, error)
	// ListByPatient returns all bookings made by the given patient email.
	ListByPatient(patient string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.ConfirmationDispatcher
}

// Record persists a booking unless the patient already holds one for the same
// treatment on the same date. The requested slot is not part of the duplicate
// key: a patient booked for a different slot of the same treatment/date is
// still a duplicate. Duplicates are reported through the Success flag, never
// as an error.
//
// Confirmation dispatch is fire-and-forget; a dispatch failure is logged and
// the booking still succeeds.
func (s *DefaultBookingService) Record(booking models.Booking) (models.BookingResult, error) {
	if err := validate(&booking); err != nil {
		return models.BookingResult{}, err
	}

	existing, err := s.Repo.FindDuplicate(booking.Treatment, booking.Date, booking.Patient)
	if err != nil {
		return models.BookingResult{}, fmt.Errorf("duplicate check failed: %w", err)
	}
	if existing != nil {
		return models.BookingResult{Success: false, Booking: existing}, nil
	}

	booking.ID = uuid.New().String()
	if err := s.Repo.Create(&booking); err != nil {
		// The unique index can still reject the insert when two identical
		// requests pass the pre-check concurrently. Report the winner's
		// record as the duplicate outcome.
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			winner, findErr := s.Repo.FindDuplicate(booking.Treatment, booking.Date, booking.Patient)
			if findErr != nil || winner == nil {
				return models.BookingResult{}, fmt.Errorf("failed to fetch conflicting booking: %w", err)
			}
			return models.BookingResult{Success: false, Booking: winner}, nil
		}
		return models.BookingResult{}, fmt.Errorf("failed to persist booking: %w", err)
	}

	if err := s.Notifier.DispatchConfirmation(models.AppointmentEmailPayload{
		To:          booking.Patient,
		PatientName: booking.PatientName,
		Treatment:   booking.Treatment,
		Date:        booking.Date,
		Slot:        booking.Slot,
	}); err != nil {
		utils.GetLogger().Error("failed to dispatch confirmation email",
			zap.String("patient", booking.Patient),
			zap.String("treatment", booking.Treatment),
			zap.Error(err))
	}

	return models.BookingResult{Success: true, Booking: &booking}, nil
}

// ListByPatient returns all bookings made by the given patient email.
func (s *DefaultBookingService) ListByPatient(patient string) ([]models.Booking, error) {
	return s.Repo.GetByPatient(patient)
}

func validate(b *models.Booking) error {
	var missing []string
	if b.Patient == "" {
		missing = append(missing, "patient")
	}
	if b.PatientName == "" {
		missing = append(missing, "patientName")
	}
	if b.Treatment == "" {
		missing = append(missing, "treatment")
	}
	if b.Date == "" {
		missing = append(missing, "date")
	}
	if b.Slot == "" {
		missing = append(missing, "slot")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
