package session

import (
	"context"

	catalogRepo "shutterdesk/database/repository/catalog"
	sessionRepo "shutterdesk/database/repository/session"
	"shutterdesk/models"
	"shutterdesk/services/invoicing"
	"shutterdesk/services/notification"
	"shutterdesk/services/portfolio"

	"github.com/go-redis/redis/v8"
)

// SessionService is the operator-facing surface over the booking workflow:
// listing and querying sessions, lifecycle transitions, the side-effect
// commands, and document generation.
type SessionService interface {
	ListSessions(ctx context.Context, term string, opts FilterOptions, key SortKey, dir SortDirection) (*models.ViewSnapshot, error)
	GetSnapshot(ctx context.Context, snapshotID string) (*models.ViewSnapshot, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	CreateSession(ctx context.Context, sess models.Session) (*models.Session, error)
	UpdateSession(ctx context.Context, id string, fields map[string]interface{}) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	Summary(ctx context.Context, id string) (*models.SessionSummary, error)
	TransitionSession(ctx context.Context, id string, target models.SessionStatus) (*models.Session, error)
	GenerateShoot(ctx context.Context, id string) (*models.Shoot, error)
	CreateInvoice(ctx context.Context, id string) (*models.Invoice, error)
	BuildDocument(ctx context.Context, id string, kind models.DocumentKind) (*models.Document, error)
	EmailClient(ctx context.Context, id string, note string) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Repo         sessionRepo.SessionRepository
	Catalog      catalogRepo.CatalogRepository
	Portfolio    portfolio.PortfolioService
	Invoicing    invoicing.InvoicingService
	Notification notification.NotificationService
	Cache        *redis.Client
}
