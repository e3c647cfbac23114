package availability

import (
	"fmt"
	"strings"

	bookingRepo "doctorsportal/database/repository/booking"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"
)

// AvailabilityService computes, for a calendar date, the catalog with each
// service's slot list reduced to slots not yet claimed by a booking.
type AvailabilityService interface {
	Compute(date string) ([]models.Service, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	ServiceRepo serviceRepo.ServiceRepository
	BookingRepo bookingRepo.BookingRepository
}

// Compute returns the catalog for the given date with booked slots removed.
// A slot is open iff no booking exists with that exact (treatment, date, slot)
// combination. Services with no remaining slots are still returned, with an
// empty slot list. Pure read path: no side effects, idempotent.
//
// The date is required; there is no implicit default.
func (s *DefaultAvailabilityService) Compute(date string) ([]models.Service, error) {
	if strings.TrimSpace(date) == "" {
		return nil, ErrDateRequired
	}

	services, err := s.ServiceRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", err)
	}

	// One date-scoped query for the whole catalog, partitioned per service
	// in memory.
	bookings, err := s.BookingRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	for i := range services {
		booked := make(map[string]struct{})
		for _, b := range bookings {
			if b.Treatment == services[i].Name {
				booked[b.Slot] = struct{}{}
			}
		}

		open := make([]string, 0, len(services[i].Slots))
		for _, slot := range services[i].Slots {
			if _, taken := booked[slot]; !taken {
				open = append(open, slot)
			}
		}
		services[i].Slots = open
	}

	return services, nil
}
