package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Plan struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	DurationDays int             `json:"durationDays" gorm:"default:30"`
	Enable       bool            `json:"enable" gorm:"default:true"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
