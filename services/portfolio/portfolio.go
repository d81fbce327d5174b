package portfolio

import (
	"context"
	"fmt"

	"shutterdesk/models"
	"shutterdesk/utils"

	"go.uber.org/zap"
)

// CreateShoot persists a new portfolio shoot record from a generate-shoot
// command.
func (s *DefaultPortfolioService) CreateShoot(ctx context.Context, req models.ShootRequest) (*models.Shoot, error) {
	if req.SessionID == "" || req.Title == "" {
		return nil, fmt.Errorf("shoot request is missing session id or title")
	}

	shoot := models.Shoot{
		SessionID:    req.SessionID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Date:         req.Date,
		ClientEmails: req.ClientEmails,
	}
	id, err := s.Repo.Create(ctx, shoot)
	if err != nil {
		return nil, fmt.Errorf("failed to create shoot record: %w", err)
	}
	shoot.ID = id

	utils.GetLogger().Info("created portfolio shoot",
		zap.String("shootId", id),
		zap.String("sessionId", req.SessionID),
	)
	return &shoot, nil
}

// ListShootsForSession returns the shoots already created from a session.
func (s *DefaultPortfolioService) ListShootsForSession(ctx context.Context, sessionID string) ([]models.Shoot, error) {
	return s.Repo.GetBySessionID(ctx, sessionID)
}
