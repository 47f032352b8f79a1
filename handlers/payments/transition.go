package payments

import (
	"encoding/json"
	"strings"

	"github.com/DouglasReisofc/dashboard-sub002/gateway"
	"github.com/DouglasReisofc/dashboard-sub002/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IsApprovalTransition décide si le statut fraîchement lu constitue la
// première approbation du paiement. approved→approved (relivraison),
// pending→pending, approved→autre chose: aucun effet de bord.
func IsApprovalTransition(previous, fetched string) bool {
	return strings.ToLower(fetched) == models.PaymentStatusApproved &&
		strings.ToLower(previous) != models.PaymentStatusApproved
}

const maxRawPayloadBytes = 64 * 1024

func capRawPayload(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return datatypes.JSON(`{}`)
	}
	if len(raw) > maxRawPayloadBytes {
		return datatypes.JSON(`{"truncated":true}`)
	}
	return datatypes.JSON(raw)
}

type applyResult struct {
	Transition   bool
	NewBalance   decimal.Decimal
	Customer     *models.Customer
	Subscription *models.Subscription
	Plan         *models.Plan
}

// applyPayment persiste l'état fraîchement lu et, sur une vraie transition
// d'approbation, exécute les effets de bord du domaine dans la même
// transaction. La revendication est un UPDATE conditionnel: une seule
// livraison peut faire passer le statut à approved, même quand la même
// notification arrive plusieurs fois en parallèle.
func (h *WebhookHandler) applyPayment(lp *locatedPayment, payment *gateway.Payment) (*applyResult, error) {
	res := &applyResult{}
	updates := map[string]interface{}{
		"status":        payment.Status,
		"status_detail": payment.StatusDetail,
		"raw_data":      capRawPayload(payment.Raw),
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		claimed := false
		if IsApprovalTransition(lp.status(), payment.Status) {
			claim := tx.Model(lp.model()).
				Where("id = ? AND LOWER(status) <> ?", lp.id(), models.PaymentStatusApproved).
				Updates(updates)
			if claim.Error != nil {
				return claim.Error
			}
			claimed = claim.RowsAffected == 1
		}

		if !claimed {
			// Pas de transition (ou revendication perdue face à une livraison
			// concurrente): on persiste quand même l'état courant, un
			// pending→rejected doit rester visible pour les opérateurs.
			return tx.Model(lp.model()).Where("id = ?", lp.id()).Updates(updates).Error
		}

		res.Transition = true
		return h.dispatchSideEffects(tx, lp, res)
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
