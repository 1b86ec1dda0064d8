package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertrade/folio/internal/models"
)

func TestPositionListByUser(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPositionRepository(database)
	ctx := context.Background()

	seed := []*models.Position{
		{ID: "p1", UserID: "u1", AssetID: "BTC", Quantity: decimal.RequireFromString("0.5")},
		{ID: "p2", UserID: "u1", AssetID: "AAPL", Quantity: decimal.NewFromInt(10)},
		{ID: "p3", UserID: "u2", AssetID: "BTC", Quantity: decimal.NewFromInt(1)},
	}
	for _, p := range seed {
		require.NoError(t, database.Create(p).Error)
	}

	positions, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, "AAPL", positions[0].AssetID)
	assert.Equal(t, "BTC", positions[1].AssetID)

	empty, err := repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPositionListUsers(t *testing.T) {
	database := setupTestDB(t)
	repo := NewPositionRepository(database)

	seed := []*models.Position{
		{ID: "p1", UserID: "u2", AssetID: "BTC", Quantity: decimal.NewFromInt(1)},
		{ID: "p2", UserID: "u1", AssetID: "AAPL", Quantity: decimal.NewFromInt(10)},
		{ID: "p3", UserID: "u1", AssetID: "BTC", Quantity: decimal.NewFromInt(2)},
	}
	for _, p := range seed {
		require.NoError(t, database.Create(p).Error)
	}

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, users)
}
