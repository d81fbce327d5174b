package shootRepo

import (
	"context"

	"shutterdesk/database"
	"shutterdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ShootRepository stores portfolio shoot records created from booked
// sessions.
type ShootRepository interface {
	Create(ctx context.Context, shoot models.Shoot) (string, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.Shoot, error)
}

type mongoShootRepo struct {
	coll *mongo.Collection
}

// NewMongoShootRepo returns a ShootRepository backed by MongoDB.
func NewMongoShootRepo() ShootRepository {
	db := database.MongoClient.Database(database.DBName)
	return &mongoShootRepo{
		coll: db.Collection("shoots"),
	}
}
