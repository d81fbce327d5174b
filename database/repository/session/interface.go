package sessionRepo

import (
	"context"

	"shutterdesk/database"
	"shutterdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SessionRepository is the session store. All writes are keyed by the
// session's real identifier, never by a presentation number.
type SessionRepository interface {
	Create(ctx context.Context, sess models.Session) (string, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	List(ctx context.Context) ([]models.Session, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateStatus(ctx context.Context, id string, status models.SessionStatus) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo returns a SessionRepository backed by MongoDB.
func NewMongoSessionRepo() SessionRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoSessionRepo{
		coll: db.Collection("sessions"),
	}
}
