package models

import (
	"time"
)

// GatewayCredential porte le jeton d'accès à la passerelle pour un
// sous-fournisseur donné. UserID nul = credential de la plateforme
// (paiements de plans et recharges de solde); UserID renseigné =
// credential propre au marchand (recharges wallet de ses clients).
type GatewayCredential struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      *string   `json:"userId" gorm:"type:uuid;index"`
	Provider    string    `json:"provider" gorm:"type:varchar(30);not null;index"`
	AccessToken string    `json:"-" gorm:"not null"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
