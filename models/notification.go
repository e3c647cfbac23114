package models

// AppointmentEmailPayload is the queued task payload for a booking
// confirmation email.
type AppointmentEmailPayload struct {
	To          string `json:"to"`          // Patient email
	PatientName string `json:"patientName"` // Greeting name
	Treatment   string `json:"treatment"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
}
