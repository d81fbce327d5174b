package notification

import (
	"context"

	"shutterdesk/models"

	"github.com/hibiken/asynq"
)

// NotificationService delivers messages to clients. Delivery is
// asynchronous: enqueue succeeds or fails immediately, the worker owns the
// actual send and its retries.
type NotificationService interface {
	EnqueueClientEmail(ctx context.Context, payload models.EmailPayload) error
}

// DefaultNotificationService implements NotificationService on top of an
// asynq queue.
type DefaultNotificationService struct {
	Client *asynq.Client
}
