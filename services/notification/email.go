package notification

import (
	"context"
	"fmt"
	"strings"

	"shutterdesk/models"
	"shutterdesk/services/tasks"
	"shutterdesk/utils"

	"go.uber.org/zap"
)

// EnqueueClientEmail queues an email for delivery by the background worker.
func (s *DefaultNotificationService) EnqueueClientEmail(ctx context.Context, payload models.EmailPayload) error {
	if !strings.Contains(payload.To, "@") {
		return fmt.Errorf("no valid client email address on session %s", payload.SessionID)
	}

	task, opts, err := tasks.NewClientEmailTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build email task: %w", err)
	}
	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}

	utils.GetLogger().Info("queued client email",
		zap.String("taskId", info.ID),
		zap.String("sessionId", payload.SessionID),
		zap.String("to", payload.To),
	)
	return nil
}
