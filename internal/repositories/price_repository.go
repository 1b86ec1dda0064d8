package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/papertrade/folio/internal/db"
	"github.com/papertrade/folio/internal/models"
)

type priceRepository struct {
	db *db.DB
}

// NewPriceRepository creates a new price series repository
func NewPriceRepository(database *db.DB) PriceRepository {
	return &priceRepository{db: database}
}

func (r *priceRepository) LatestDailyAtOrBefore(ctx context.Context, assetID string, asOf time.Time) (*models.PriceObservation, error) {
	var obs models.PriceObservation
	err := r.db.WithContext(ctx).
		Where("asset_id = ? AND timeframe = ? AND timestamp <= ?", assetID, models.TimeframeDay, asOf).
		Order("timestamp DESC").
		First(&obs).Error
	if err != nil {
		// No price history up to asOf is a valid empty result, not a failure.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest daily price: %w", err)
	}
	return &obs, nil
}
