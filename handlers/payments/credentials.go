package payments

import (
	"errors"
	"fmt"

	"github.com/DouglasReisofc/dashboard-sub002/models"

	"gorm.io/gorm"
)

// Conditions de configuration que les relivraisons de la passerelle ne
// peuvent pas corriger: on répond 200 pour éviter les tempêtes de retry.
var (
	ErrUnsupportedProvider = errors.New("unsupported payment provider")
	ErrCredentialNotFound  = errors.New("gateway credential missing or inactive")
)

// resolveAccessToken retourne le jeton d'accès à utiliser pour interroger
// la passerelle. Les recharges wallet utilisent le credential du marchand
// propriétaire; les paiements de plan et les recharges de solde utilisent
// le credential de la plateforme (user_id nul).
func (h *WebhookHandler) resolveAccessToken(lp *locatedPayment) (string, error) {
	provider := lp.provider()
	if !models.IsKnownProvider(provider) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}

	query := h.db.Where("provider = ? AND active = ?", provider, true)
	if lp.domain == domainCustomerCharge {
		query = query.Where("user_id = ?", lp.userID())
	} else {
		query = query.Where("user_id IS NULL")
	}

	var credential models.GatewayCredential
	if err := query.First(&credential).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCredentialNotFound
		}
		return "", err
	}

	return credential.AccessToken, nil
}
