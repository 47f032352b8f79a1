package payments

import (
	"errors"
	"fmt"
	"time"

	"github.com/DouglasReisofc/dashboard-sub002/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Erreurs typées des collaborateurs ledger/abonnement, jamais comparées
// par texte de message.
var (
	ErrCustomerNotFound = errors.New("customer record not found")
	ErrUserNotFound     = errors.New("platform user not found")
	ErrPlanNotFound     = errors.New("plan not found")
)

// dispatchSideEffects exécute l'effet durable du domaine. Appelé seulement
// après une revendication de transition réussie; il ne refait aucun
// contrôle d'idempotence lui-même.
func (h *WebhookHandler) dispatchSideEffects(tx *gorm.DB, lp *locatedPayment, res *applyResult) error {
	switch lp.domain {
	case domainCustomerCharge:
		return creditCustomerWallet(tx, lp.charge, res)
	case domainPlanPayment:
		return activateSubscription(tx, lp.plan, res)
	case domainBalanceTopUp:
		return creditUserBalance(tx, lp.topUp, res)
	}
	return fmt.Errorf("unknown payment domain: %s", lp.domain)
}

func creditCustomerWallet(tx *gorm.DB, charge *models.CustomerCharge, res *applyResult) error {
	credit := tx.Model(&models.Customer{}).
		Where("user_id = ? AND contact_id = ?", charge.UserID, charge.ContactID).
		UpdateColumn("balance", gorm.Expr("balance + ?", charge.Amount))
	if credit.Error != nil {
		return credit.Error
	}
	if credit.RowsAffected == 0 {
		return fmt.Errorf("%w: user=%s contact=%s", ErrCustomerNotFound, charge.UserID, charge.ContactID)
	}

	var customer models.Customer
	if err := tx.First(&customer, "user_id = ? AND contact_id = ?", charge.UserID, charge.ContactID).Error; err != nil {
		return err
	}

	res.Customer = &customer
	res.NewBalance = customer.Balance
	return nil
}

func activateSubscription(tx *gorm.DB, payment *models.PlanPayment, res *applyResult) error {
	var plan models.Plan
	if err := tx.First(&plan, "id = ?", payment.PlanID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrPlanNotFound, payment.PlanID)
		}
		return err
	}

	duration := time.Duration(plan.DurationDays) * 24 * time.Hour
	now := time.Now()

	var sub models.Subscription
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&sub, "user_id = ? AND plan_id = ?", payment.UserID, payment.PlanID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = models.Subscription{
			UserID:    payment.UserID,
			PlanID:    payment.PlanID,
			Status:    models.SubscriptionActive,
			PeriodEnd: now.Add(duration),
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if sub.Status == models.SubscriptionActive && sub.PeriodEnd.After(now) {
			// Renouvellement anticipé: la nouvelle période prolonge la fin
			// existante au lieu de repartir de maintenant.
			sub.PeriodEnd = sub.PeriodEnd.Add(duration)
		} else {
			sub.PeriodEnd = now.Add(duration)
		}
		sub.Status = models.SubscriptionActive
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}
	}

	if err := tx.Model(&models.PlanPayment{}).
		Where("id = ?", payment.ID).
		UpdateColumn("subscription_id", sub.ID).Error; err != nil {
		return err
	}

	res.Subscription = &sub
	res.Plan = &plan
	return nil
}

func creditUserBalance(tx *gorm.DB, topUp *models.BalanceTopUp, res *applyResult) error {
	credit := tx.Model(&models.User{}).
		Where("id = ?", topUp.UserID).
		UpdateColumn("balance", gorm.Expr("balance + ?", topUp.Amount))
	if credit.Error != nil {
		return credit.Error
	}
	if credit.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrUserNotFound, topUp.UserID)
	}

	var user models.User
	if err := tx.First(&user, "id = ?", topUp.UserID).Error; err != nil {
		return err
	}

	res.NewBalance = user.Balance
	return nil
}
