package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// User représente un opérateur de la plateforme (marchand)

type Role string

// Définir les valeurs possibles pour le type Role
const (
	AdminRole Role = "ADMIN"
	UserRole  Role = "USER"
)

type User struct {
	ID              string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email           string          `json:"email" binding:"required,email"`
	Password        string          `json:"-"`
	UserName        string          `json:"username"`
	Role            Role            `json:"role" gorm:"type:varchar(20);default:'USER'"`
	Balance         decimal.Decimal `json:"balance" gorm:"type:numeric(12,2);default:0"`
	ChannelID       string          `json:"channelId"`
	ChannelToken    string          `json:"-"`
	Enable          bool            `json:"enable"`
	EmailVerifiedAt sql.NullTime    `json:"emailVerifiedAt"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
