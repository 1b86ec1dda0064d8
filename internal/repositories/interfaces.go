package repositories

import (
	"context"
	"time"

	"github.com/papertrade/folio/internal/models"
)

// PositionRepository reads current holdings. The holdings table is owned by
// order execution; this side only ever reads it.
type PositionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Position, error)
	ListUsers(ctx context.Context) ([]string, error)
}

// PriceRepository reads the asset price series.
type PriceRepository interface {
	// LatestDailyAtOrBefore returns the day-timeframe observation with the
	// greatest timestamp not exceeding asOf, or nil when the asset has no
	// daily price history up to that date.
	LatestDailyAtOrBefore(ctx context.Context, assetID string, asOf time.Time) (*models.PriceObservation, error)
}

// SnapshotRepository owns the portfolio_snapshots table.
type SnapshotRepository interface {
	// Upsert atomically inserts the snapshot or, when a record already exists
	// for the same (user_id, date), overwrites its total_value. Returns the
	// stored row.
	Upsert(ctx context.Context, snapshot *models.PortfolioSnapshot) (*models.PortfolioSnapshot, error)
	// ListByUser returns the user's snapshots ordered by ascending date,
	// restricted to the inclusive dateRange when one is given.
	ListByUser(ctx context.Context, userID string, dateRange *models.Period) ([]*models.PortfolioSnapshot, error)
	GetByUserDate(ctx context.Context, userID string, date time.Time) (*models.PortfolioSnapshot, error)
}
