package models

import "time"

// Booking represents a confirmed appointment record.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                   // Unique booking identifier (UUID)
	Patient     string    `bson:"patient" json:"patient"`         // Requesting patient's email
	PatientName string    `bson:"patientName" json:"patientName"` // Display name for the confirmation email
	Treatment   string    `bson:"treatment" json:"treatment"`     // Must match a Service name
	Date        string    `bson:"date" json:"date"`               // Calendar date in display format, e.g. "May 14, 2022"
	Slot        string    `bson:"slot" json:"slot"`               // One of the service's slot labels
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// BookingResult is the outcome of a booking attempt. Success is false when an
// identical (treatment, date, patient) booking already exists; Booking then
// carries the conflicting record. The HTTP layer returns 200 either way and
// callers inspect the flag.
type BookingResult struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking,omitempty"`
}
