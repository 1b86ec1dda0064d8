package repositories

import (
	"context"
	"fmt"

	"github.com/papertrade/folio/internal/db"
	"github.com/papertrade/folio/internal/models"
)

type positionRepository struct {
	db *db.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(database *db.DB) PositionRepository {
	return &positionRepository{db: database}
}

func (r *positionRepository) ListByUser(ctx context.Context, userID string) ([]*models.Position, error) {
	positions := make([]*models.Position, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("asset_id").
		Find(&positions).Error; err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return positions, nil
}

func (r *positionRepository) ListUsers(ctx context.Context) ([]string, error) {
	users := make([]string, 0)
	if err := r.db.WithContext(ctx).
		Model(&models.Position{}).
		Distinct("user_id").
		Order("user_id").
		Pluck("user_id", &users).Error; err != nil {
		return nil, fmt.Errorf("failed to list position users: %w", err)
	}
	return users, nil
}
