package services

import (
	"context"
	"time"

	"github.com/papertrade/folio/internal/models"
)

// SnapshotService defines the portfolio snapshot engine
type SnapshotService interface {
	// CreateOrUpdateSnapshot values the user's current holdings as of
	// targetDate (defaulting to now) and upserts the one snapshot record for
	// that user and calendar day. The call is idempotent per (user, day).
	CreateOrUpdateSnapshot(ctx context.Context, userID string, targetDate *time.Time) (*models.PortfolioSnapshot, error)
}

// HistoryService defines the snapshot history query engine
type HistoryService interface {
	// ListHistory returns the user's persisted snapshots ordered oldest
	// first, restricted to the window when one is recognized.
	ListHistory(ctx context.Context, userID string, window models.Window) ([]*models.PortfolioSnapshot, error)
}

// Clock supplies the current time so "now"-defaulting operations stay
// deterministic under test.
type Clock interface {
	Now() time.Time
}
