package notification

import (
	"context"

	"doctorsportal/models"
)

// EmailSender delivers a single email. Implementations can be swapped
// (SendGrid, SMTP, stub) without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string // Plain text body
	HTML    string // Optional HTML body
}

// ConfirmationDispatcher hands a booking confirmation off for asynchronous
// delivery. Dispatch happens on the booking path, delivery on the worker;
// neither failure reaches the patient's booking response.
type ConfirmationDispatcher interface {
	DispatchConfirmation(payload models.AppointmentEmailPayload) error
}
