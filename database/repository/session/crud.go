package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shutterdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new session and returns its ID. Status defaults to
// pending when unset.
func (r *mongoSessionRepo) Create(ctx context.Context, sess models.Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	if sess.Status == "" {
		sess.Status = models.StatusPending
	}
	if !sess.Status.Valid() {
		return "", fmt.Errorf("invalid session status %q", sess.Status)
	}
	sess.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, sess); err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}
	return sess.ID, nil
}

// GetByID returns a session by its real identifier.
func (r *mongoSessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	var sess models.Session
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sess)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// List returns all sessions, newest first.
func (r *mongoSessionRepo) List(ctx context.Context) ([]models.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateFields applies a partial update to a session. Status is not
// updatable through this path; status changes go through UpdateStatus so the
// state machine stays in charge.
func (r *mongoSessionRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "status")
	delete(fields, "created_at")
	if len(fields) == 0 {
		return nil
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateStatus sets a session's lifecycle status.
func (r *mongoSessionRepo) UpdateStatus(ctx context.Context, id string, status models.SessionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid session status %q", status)
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a session by ID.
func (r *mongoSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("session not found")
	}
	return nil
}
