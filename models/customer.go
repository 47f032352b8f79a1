package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer est un client final du bot, identifié par son contact WhatsApp.
// Le solde (wallet) est crédité par les paiements approuvés et débité par
// les achats de produits (hors de ce module).
type Customer struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string          `json:"userId" gorm:"type:uuid;not null;index:ux_customers_user_contact,unique,priority:1"`
	ContactID string          `json:"contactId" gorm:"not null;index:ux_customers_user_contact,unique,priority:2"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance" gorm:"type:numeric(12,2);default:0"`
	Blocked   bool            `json:"blocked"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
