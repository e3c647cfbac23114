package tasks

import (
	"encoding/json"
	"fmt"

	"doctorsportal/models"
	"doctorsportal/services/notification"

	"github.com/hibiken/asynq"
)

const TypeConfirmationEmail = "email:confirmation"

// NewConfirmationEmailTask builds the queued task for a booking confirmation
// email.
func NewConfirmationEmailTask(payload models.AppointmentEmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeConfirmationEmail, b), nil
}

// BuildConfirmationEmail renders the confirmation message for a booking.
func BuildConfirmationEmail(p models.AppointmentEmailPayload) notification.EmailMessage {
	subject := fmt.Sprintf("Your appointment for %s on %s at %s is confirmed", p.Treatment, p.Date, p.Slot)
	html := fmt.Sprintf(`<div>
<p>Hello %s</p>
<h4>Your appointment for %s is confirmed</h4>
<p>Looking forward to seeing you on %s at %s</p>
<p>Our Address:</p>
<p>Dhaka, Bangladesh</p>
</div>`, p.PatientName, p.Treatment, p.Date, p.Slot)

	return notification.EmailMessage{
		To:      p.To,
		ToName:  p.PatientName,
		Subject: subject,
		Body:    subject,
		HTML:    html,
	}
}
