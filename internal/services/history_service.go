package services

import (
	"context"

	apperrors "github.com/papertrade/folio/internal/errors"
	"github.com/papertrade/folio/internal/models"
	"github.com/papertrade/folio/internal/repositories"
)

type HistoryServiceImpl struct {
	snapshots repositories.SnapshotRepository
	clock     Clock
}

// NewHistoryService creates the snapshot history query engine
func NewHistoryService(snapshots repositories.SnapshotRepository, clock Clock) HistoryService {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &HistoryServiceImpl{snapshots: snapshots, clock: clock}
}

func (s *HistoryServiceImpl) ListHistory(ctx context.Context, userID string, window models.Window) ([]*models.PortfolioSnapshot, error) {
	if userID == "" {
		return nil, &apperrors.ErrValidation{Field: "user_id", Message: "is required"}
	}

	// Today uses the same midnight normalization as snapshot creation so the
	// inclusive [cutoff, today] bounds compare exactly against stored dates.
	today := models.MidnightUTC(s.clock.Now())

	var dateRange *models.Period
	if cutoff, ok := window.Cutoff(today); ok {
		dateRange = &models.Period{StartDate: cutoff, EndDate: today}
	}

	snapshots, err := s.snapshots.ListByUser(ctx, userID, dateRange)
	if err != nil {
		return nil, &apperrors.ErrUpstream{Store: "snapshots", Err: err}
	}
	return snapshots, nil
}
