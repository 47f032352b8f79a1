package payments

import (
	"errors"

	"github.com/DouglasReisofc/dashboard-sub002/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// paymentDomain identifie lequel des trois magasins de paiements possède
// l'enregistrement corrélé à une notification de la passerelle.
type paymentDomain string

const (
	domainCustomerCharge paymentDomain = "customer_charge"
	domainPlanPayment    paymentDomain = "plan_payment"
	domainBalanceTopUp   paymentDomain = "balance_topup"
)

type locatedPayment struct {
	domain paymentDomain
	charge *models.CustomerCharge
	plan   *models.PlanPayment
	topUp  *models.BalanceTopUp
}

func (lp *locatedPayment) id() string {
	switch lp.domain {
	case domainCustomerCharge:
		return lp.charge.ID
	case domainPlanPayment:
		return lp.plan.ID
	default:
		return lp.topUp.ID
	}
}

func (lp *locatedPayment) status() string {
	switch lp.domain {
	case domainCustomerCharge:
		return lp.charge.Status
	case domainPlanPayment:
		return lp.plan.Status
	default:
		return lp.topUp.Status
	}
}

func (lp *locatedPayment) provider() string {
	switch lp.domain {
	case domainCustomerCharge:
		return lp.charge.Provider
	case domainPlanPayment:
		return lp.plan.Provider
	default:
		return lp.topUp.Provider
	}
}

func (lp *locatedPayment) userID() string {
	switch lp.domain {
	case domainCustomerCharge:
		return lp.charge.UserID
	case domainPlanPayment:
		return lp.plan.UserID
	default:
		return lp.topUp.UserID
	}
}

func (lp *locatedPayment) amount() decimal.Decimal {
	switch lp.domain {
	case domainCustomerCharge:
		return lp.charge.Amount
	case domainPlanPayment:
		return lp.plan.Amount
	default:
		return lp.topUp.Amount
	}
}

// model retourne un modèle vide du bon magasin, pour construire des
// requêtes UPDATE sans hériter des conditions de l'instance chargée.
func (lp *locatedPayment) model() interface{} {
	switch lp.domain {
	case domainCustomerCharge:
		return &models.CustomerCharge{}
	case domainPlanPayment:
		return &models.PlanPayment{}
	default:
		return &models.BalanceTopUp{}
	}
}

// locateRecord cherche l'identifiant de paiement de la passerelle dans les
// trois magasins, dans un ordre fixe. Un identifiant inconnu n'est pas une
// erreur: la passerelle notifie aussi des évènements hors de notre portée
// (contestations, remboursements non modélisés).
func (h *WebhookHandler) locateRecord(providerPaymentID string) (*locatedPayment, error) {
	var charge models.CustomerCharge
	err := h.db.First(&charge, "provider_payment_id = ?", providerPaymentID).Error
	if err == nil {
		return &locatedPayment{domain: domainCustomerCharge, charge: &charge}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var planPayment models.PlanPayment
	err = h.db.First(&planPayment, "provider_payment_id = ?", providerPaymentID).Error
	if err == nil {
		return &locatedPayment{domain: domainPlanPayment, plan: &planPayment}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var topUp models.BalanceTopUp
	err = h.db.First(&topUp, "provider_payment_id = ?", providerPaymentID).Error
	if err == nil {
		return &locatedPayment{domain: domainBalanceTopUp, topUp: &topUp}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, nil
}
