package portfolio

import (
	"context"

	shootRepo "shutterdesk/database/repository/shoot"
	"shutterdesk/models"
)

// PortfolioService creates shoot records from booked sessions.
type PortfolioService interface {
	CreateShoot(ctx context.Context, req models.ShootRequest) (*models.Shoot, error)
	ListShootsForSession(ctx context.Context, sessionID string) ([]models.Shoot, error)
}

// DefaultPortfolioService implements PortfolioService.
type DefaultPortfolioService struct {
	Repo shootRepo.ShootRepository
}
