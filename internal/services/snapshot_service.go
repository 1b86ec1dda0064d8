package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/papertrade/folio/internal/errors"
	"github.com/papertrade/folio/internal/models"
	"github.com/papertrade/folio/internal/repositories"
)

type SnapshotServiceImpl struct {
	positions repositories.PositionRepository
	prices    repositories.PriceRepository
	snapshots repositories.SnapshotRepository
	clock     Clock
}

// NewSnapshotService creates the snapshot engine
func NewSnapshotService(
	positions repositories.PositionRepository,
	prices repositories.PriceRepository,
	snapshots repositories.SnapshotRepository,
	clock Clock,
) SnapshotService {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &SnapshotServiceImpl{
		positions: positions,
		prices:    prices,
		snapshots: snapshots,
		clock:     clock,
	}
}

func (s *SnapshotServiceImpl) CreateOrUpdateSnapshot(ctx context.Context, userID string, targetDate *time.Time) (*models.PortfolioSnapshot, error) {
	if userID == "" {
		return nil, &apperrors.ErrValidation{Field: "user_id", Message: "is required"}
	}

	at := s.clock.Now()
	if targetDate != nil {
		at = *targetDate
	}
	date := models.MidnightUTC(at)

	positions, err := s.positions.ListByUser(ctx, userID)
	if err != nil {
		return nil, &apperrors.ErrUpstream{Store: "holdings", Err: err}
	}

	// An empty portfolio is a valid state worth recording: the snapshot is
	// written with a total of exactly zero.
	total := decimal.Zero
	for _, position := range positions {
		if position.Quantity.IsZero() {
			continue
		}
		obs, err := s.prices.LatestDailyAtOrBefore(ctx, position.AssetID, date)
		if err != nil {
			return nil, &apperrors.ErrUpstream{Store: "prices", Err: err}
		}
		if obs == nil {
			// No daily price at or before the target date: the position
			// contributes zero rather than failing the whole snapshot.
			continue
		}
		total = total.Add(obs.Price.Mul(position.Quantity))
	}

	snapshot := &models.PortfolioSnapshot{
		UserID:     userID,
		Date:       date,
		TotalValue: total,
	}

	stored, err := s.snapshots.Upsert(ctx, snapshot)
	if errors.Is(err, apperrors.ErrConflict) {
		// A concurrent call for the same user/day just won the insert; the
		// record exists now, so a single re-applied upsert lands as an
		// in-place update.
		stored, err = s.snapshots.Upsert(ctx, &models.PortfolioSnapshot{
			UserID:     userID,
			Date:       date,
			TotalValue: total,
		})
	}
	if err != nil {
		return nil, &apperrors.ErrUpstream{Store: "snapshots", Err: err}
	}
	if stored == nil {
		return nil, &apperrors.ErrUpstream{Store: "snapshots", Err: fmt.Errorf("snapshot missing after upsert for user %s", userID)}
	}
	return stored, nil
}
