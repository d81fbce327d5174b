package shootRepo

import (
	"context"
	"time"

	"shutterdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new shoot record and returns its ID.
func (r *mongoShootRepo) Create(ctx context.Context, shoot models.Shoot) (string, error) {
	if shoot.ID == "" {
		shoot.ID = uuid.New().String()
	}
	shoot.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, shoot); err != nil {
		return "", err
	}
	return shoot.ID, nil
}

// GetBySessionID fetches all shoots created from a session.
func (r *mongoShootRepo) GetBySessionID(ctx context.Context, sessionID string) ([]models.Shoot, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shoots []models.Shoot
	if err := cursor.All(ctx, &shoots); err != nil {
		return nil, err
	}
	return shoots, nil
}
