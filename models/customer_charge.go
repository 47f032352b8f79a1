package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CustomerCharge est un paiement initié par un client final pour recharger
// son wallet auprès d'un marchand. Jamais supprimé: c'est la piste d'audit.
type CustomerCharge struct {
	ID                string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PublicID          string          `json:"publicId" gorm:"index"`
	UserID            string          `json:"userId" gorm:"type:uuid;not null;index"`
	ContactID         string          `json:"contactId" gorm:"not null"`
	CustomerName      string          `json:"customerName"`
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

// PublicID est l'identifiant exposé dans les liens de paiement envoyés aux
// clients, pour ne jamais révéler la clé primaire.
func (c *CustomerCharge) BeforeCreate(tx *gorm.DB) error {
	if c.PublicID == "" {
		c.PublicID = uuid.NewString()
	}
	return nil
}
