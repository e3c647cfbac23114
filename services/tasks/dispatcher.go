package tasks

import (
	"fmt"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

// enqueuer is the slice of asynq.Client used by the dispatcher, split out so
// tests can capture enqueued tasks.
type enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqDispatcher enqueues confirmation emails on the Redis-backed task queue
// consumed by the email worker. Implements notification.ConfirmationDispatcher.
type AsynqDispatcher struct {
	Client enqueuer
}

// NewAsynqDispatcher wraps an asynq client.
func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

// DispatchConfirmation enqueues the confirmation email task.
func (d *AsynqDispatcher) DispatchConfirmation(payload models.AppointmentEmailPayload) error {
	task, err := NewConfirmationEmailTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	if _, err := d.Client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}
