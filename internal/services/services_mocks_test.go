package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/papertrade/folio/internal/errors"
	"github.com/papertrade/folio/internal/models"
)

// ---- Mocks for repositories used in unit tests ----

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type mockPositionRepo struct {
	positions map[string][]*models.Position
	err       error
}

func (m *mockPositionRepo) ListByUser(ctx context.Context, userID string) ([]*models.Position, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.positions[userID], nil
}

func (m *mockPositionRepo) ListUsers(ctx context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	users := make([]string, 0, len(m.positions))
	for u := range m.positions {
		users = append(users, u)
	}
	sort.Strings(users)
	return users, nil
}

type mockPriceRepo struct {
	observations map[string][]*models.PriceObservation
	err          error
}

func (m *mockPriceRepo) LatestDailyAtOrBefore(ctx context.Context, assetID string, asOf time.Time) (*models.PriceObservation, error) {
	if m.err != nil {
		return nil, m.err
	}
	var latest *models.PriceObservation
	for _, obs := range m.observations[assetID] {
		if obs.Timeframe != models.TimeframeDay || obs.Timestamp.After(asOf) {
			continue
		}
		if latest == nil || obs.Timestamp.After(latest.Timestamp) {
			latest = obs
		}
	}
	return latest, nil
}

type mockSnapshotRepo struct {
	store        map[string]*models.PortfolioSnapshot
	upsertCalls  int
	conflictOnce bool
	err          error
}

func newMockSnapshotRepo() *mockSnapshotRepo {
	return &mockSnapshotRepo{store: make(map[string]*models.PortfolioSnapshot)}
}

func snapshotKey(userID string, date time.Time) string {
	return userID + "|" + date.UTC().Format(time.RFC3339)
}

func (m *mockSnapshotRepo) Upsert(ctx context.Context, snapshot *models.PortfolioSnapshot) (*models.PortfolioSnapshot, error) {
	m.upsertCalls++
	if m.err != nil {
		return nil, m.err
	}
	if m.conflictOnce {
		m.conflictOnce = false
		return nil, apperrors.ErrConflict
	}
	key := snapshotKey(snapshot.UserID, snapshot.Date)
	if existing, ok := m.store[key]; ok {
		existing.TotalValue = snapshot.TotalValue
		existing.UpdatedAt = time.Now()
		return existing, nil
	}
	stored := &models.PortfolioSnapshot{
		ID:         uuid.New().String(),
		UserID:     snapshot.UserID,
		Date:       snapshot.Date,
		TotalValue: snapshot.TotalValue,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	m.store[key] = stored
	return stored, nil
}

func (m *mockSnapshotRepo) GetByUserDate(ctx context.Context, userID string, date time.Time) (*models.PortfolioSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.store[snapshotKey(userID, date)], nil
}

func (m *mockSnapshotRepo) ListByUser(ctx context.Context, userID string, dateRange *models.Period) ([]*models.PortfolioSnapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	snapshots := make([]*models.PortfolioSnapshot, 0)
	for _, snap := range m.store {
		if snap.UserID != userID {
			continue
		}
		if dateRange != nil && (snap.Date.Before(dateRange.StartDate) || snap.Date.After(dateRange.EndDate)) {
			continue
		}
		snapshots = append(snapshots, snap)
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Date.Before(snapshots[j].Date)
	})
	return snapshots, nil
}
