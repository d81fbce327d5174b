package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shutterdesk/models"

	"github.com/google/uuid"
)

const (
	viewSnapshotPrefix = "viewSnapshot:"
	viewSnapshotTTL    = 10 * time.Minute
)

func newSnapshot(rows []models.SessionRow) *models.ViewSnapshot {
	return &models.ViewSnapshot{
		SnapshotID: uuid.New().String(),
		Rows:       rows,
		CreatedAt:  time.Now(),
	}
}

// cacheSnapshot stores a rendered view snapshot in Redis with a TTL so a
// later print or export can reuse exactly the rows the operator saw.
// Caching is best effort; a nil cache client skips it.
func (s *DefaultSessionService) cacheSnapshot(ctx context.Context, snap *models.ViewSnapshot) error {
	if s.Cache == nil {
		return nil
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal view snapshot: %w", err)
	}
	if err := s.Cache.Set(ctx, viewSnapshotPrefix+snap.SnapshotID, data, viewSnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to store view snapshot: %w", err)
	}
	return nil
}

// GetSnapshot retrieves a previously rendered view snapshot.
func (s *DefaultSessionService) GetSnapshot(ctx context.Context, snapshotID string) (*models.ViewSnapshot, error) {
	if s.Cache == nil {
		return nil, fmt.Errorf("snapshot cache is not configured")
	}
	data, err := s.Cache.Get(ctx, viewSnapshotPrefix+snapshotID).Result()
	if err != nil {
		return nil, fmt.Errorf("view snapshot not found or expired: %w", err)
	}
	var snap models.ViewSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to parse view snapshot: %w", err)
	}
	return &snap, nil
}
