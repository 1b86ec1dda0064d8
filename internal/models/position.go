package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Position is a user's current holding of an asset. The holdings table is
// owned by the order-execution side of the system; the snapshot engine only
// reads it.
type Position struct {
	ID          string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID      string          `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;index"`
	AssetID     string          `json:"asset_id" gorm:"column:asset_id;type:varchar(255);not null;index"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"column:quantity;type:decimal(30,18);not null"`
	AvgBuyPrice decimal.Decimal `json:"avg_buy_price" gorm:"column:avg_buy_price;type:decimal(30,18);not null;default:0"`
	CreatedAt   time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Position) TableName() string {
	return "positions"
}

func (p *Position) Validate() error {
	if p.UserID == "" {
		return errors.New("user_id is required")
	}
	if p.AssetID == "" {
		return errors.New("asset_id is required")
	}
	if p.Quantity.IsNegative() {
		return errors.New("quantity must not be negative")
	}
	return nil
}
