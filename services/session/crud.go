package session

import (
	"context"
	"fmt"

	"shutterdesk/models"
	"shutterdesk/utils"

	"go.uber.org/zap"
)

// ListSessions queries the current session collection (search, then filter,
// then sort), renders it into presentation rows and returns the result as a
// snapshot. Display numbers are local to the returned snapshot; later
// mutations never renumber rows an operator is already looking at.
func (s *DefaultSessionService) ListSessions(ctx context.Context, term string, opts FilterOptions, key SortKey, dir SortDirection) (*models.ViewSnapshot, error) {
	sessions, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	view := QuerySessions(sessions, term, opts, key, dir)
	snap := newSnapshot(BuildRows(view))

	if err := s.cacheSnapshot(ctx, snap); err != nil {
		utils.GetLogger().Warn("failed to cache view snapshot",
			zap.String("snapshotId", snap.SnapshotID),
			zap.Error(err),
		)
	}
	return snap, nil
}

// GetSession returns a session by its real identifier.
func (s *DefaultSessionService) GetSession(ctx context.Context, id string) (*models.Session, error) {
	return s.Repo.GetByID(ctx, id)
}

// CreateSession stores a new session.
func (s *DefaultSessionService) CreateSession(ctx context.Context, sess models.Session) (*models.Session, error) {
	if sess.ClientName == "" {
		return nil, ErrInvalidSession
	}
	id, err := s.Repo.Create(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}

// UpdateSession applies a partial field update and returns the fresh record.
// Status is never updated through this path.
func (s *DefaultSessionService) UpdateSession(ctx context.Context, id string, fields map[string]interface{}) (*models.Session, error) {
	if err := s.Repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

// DeleteSession removes a session by its real identifier.
func (s *DefaultSessionService) DeleteSession(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// Summary returns the derived values for one selected session: the computed
// total when one is available, and the actions legal in its current state.
// An uncomputable price is reported as unavailable, never as $0.
func (s *DefaultSessionService) Summary(ctx context.Context, id string) (*models.SessionSummary, error) {
	sess, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	packages, addOns, err := s.catalogSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.SessionSummary{SessionID: sess.ID}
	if total, err := ComputeTotal(*sess, packages, addOns); err == nil {
		summary.Total = total
		summary.PriceAvailable = true
	}
	for _, action := range ActionsFor(sess.Status) {
		summary.Actions = append(summary.Actions, string(action))
	}
	return summary, nil
}

// catalogSnapshot fetches the current packages and add-ons in one step.
func (s *DefaultSessionService) catalogSnapshot(ctx context.Context) ([]models.Package, []models.AddOn, error) {
	packages, err := s.Catalog.ListPackages(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list packages: %w", err)
	}
	addOns, err := s.Catalog.ListAddOns(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list add-ons: %w", err)
	}
	return packages, addOns, nil
}
