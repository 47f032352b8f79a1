package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BalanceTopUp est une recharge du solde interne d'un marchand.
type BalanceTopUp struct {
	ID                string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PublicID          string          `json:"publicId" gorm:"index"`
	UserID            string          `json:"userId" gorm:"type:uuid;not null;index"`
	Provider          string          `json:"provider" gorm:"type:varchar(30);not null"`
	ProviderPaymentID string          `json:"providerPaymentId" gorm:"uniqueIndex;not null"`
	Status            string          `json:"status" gorm:"type:varchar(40);default:'pending'"`
	StatusDetail      string          `json:"statusDetail"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
	Currency          string          `json:"currency" gorm:"type:varchar(10);default:'BRL'"`
	Metadata          datatypes.JSON  `json:"metadata"`
	RawData           datatypes.JSON  `json:"-"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
