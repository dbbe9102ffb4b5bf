package model

import (
	"time"

	"github.com/google/uuid"
)

// Settings holds the business identity printed on receipts. A single active
// row is upserted; readers take the most recently updated one.
type Settings struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
