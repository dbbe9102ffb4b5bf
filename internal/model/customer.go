package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is created as part of every sale transaction. There is no
// lookup-or-create step: two identical sales produce two customer rows.
type Customer struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	ContactNumber string    `gorm:"not null"`
	// CNIC is the national identity number — optional for cash customers.
	CNIC      *string `gorm:"column:cnic"`
	Address   string  `gorm:"not null"`
	CreatedAt time.Time
}
