package tasks

import (
	"encoding/json"

	"shutterdesk/models"

	"github.com/hibiken/asynq"
)

const TypeSendClientEmail = "email:send"

// NewClientEmailTask builds the asynq task for a queued client email.
func NewClientEmailTask(payload models.EmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendClientEmail, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}
