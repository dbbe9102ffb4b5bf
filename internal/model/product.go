package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable inventory item. Stock is decremented inside the same
// transaction that records a sale and must never go below zero.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Brand       string    `gorm:"not null"`
	Model       string    `gorm:"not null"`
	Category    string    `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Description *string
	// Features and Tags are stored as JSON text arrays, searched with
	// substring matching like the name/brand/model columns.
	Features  string `gorm:"type:jsonb;default:'[]'"`
	Tags      string `gorm:"type:jsonb;default:'[]'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
