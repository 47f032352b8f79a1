package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/DouglasReisofc/dashboard-sub002/messenger"
	"github.com/DouglasReisofc/dashboard-sub002/models"
	"github.com/DouglasReisofc/dashboard-sub002/realtime"
	"github.com/DouglasReisofc/dashboard-sub002/utils"
	mailsmodels "github.com/DouglasReisofc/dashboard-sub002/utils/mails-models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MailFunc func(to string, message []byte) error

// Emitter diffuse les notifications best-effort une fois les effets
// durables commités. Chaque canal échoue indépendamment: une erreur est
// journalisée et n'affecte ni les autres canaux, ni le crédit déjà
// appliqué, ni la réponse renvoyée à la passerelle.
type Emitter struct {
	db   *gorm.DB
	bus  realtime.Bus
	chat messenger.Sender
	mail MailFunc
}

func NewEmitter(db *gorm.DB, bus realtime.Bus, chat messenger.Sender, mail MailFunc) *Emitter {
	if mail == nil {
		mail = utils.SendMail
	}
	return &Emitter{db: db, bus: bus, chat: chat, mail: mail}
}

func (e *Emitter) Emit(ctx context.Context, lp *locatedPayment, res *applyResult) {
	var owner models.User
	ownerLoaded := true
	if err := e.db.First(&owner, "id = ?", lp.userID()).Error; err != nil {
		utils.LogError(err, "Unable to load owner user for payment notifications")
		ownerLoaded = false
	}

	switch lp.domain {
	case domainCustomerCharge:
		e.emitChargeApproved(ctx, lp.charge, res, &owner, ownerLoaded)
	case domainPlanPayment:
		e.emitPlanApproved(lp.plan, res, &owner, ownerLoaded)
	case domainBalanceTopUp:
		e.emitTopUpApproved(lp.topUp, res, &owner, ownerLoaded)
	}
}

func (e *Emitter) emitChargeApproved(ctx context.Context, charge *models.CustomerCharge, res *applyResult, owner *models.User, ownerLoaded bool) {
	// Évènement temps réel vers les sessions connectées du marchand
	topic := fmt.Sprintf("user.%s.threads", charge.UserID)
	event := map[string]interface{}{
		"type":       "charge_updated",
		"chargeId":   charge.ID,
		"contactId":  charge.ContactID,
		"amount":     charge.Amount,
		"newBalance": res.NewBalance,
	}
	if err := e.bus.Publish(topic, event); err != nil {
		utils.LogError(err, "Error publishing realtime charge event")
	}

	// Confirmation WhatsApp au client final, si le canal est configuré
	if ownerLoaded && owner.ChannelID != "" && owner.ChannelToken != "" {
		creds := messenger.Credentials{ChannelID: owner.ChannelID, Token: owner.ChannelToken}
		variables := map[string]string{
			"amount":  charge.Amount.StringFixed(2),
			"balance": res.NewBalance.StringFixed(2),
		}
		if err := e.chat.SendTemplate(ctx, creds, charge.ContactID, "payment_approved", variables); err != nil {
			utils.LogError(err, "Error sending payment confirmation message")
		}
	}

	customerName := charge.CustomerName
	if res.Customer != nil && res.Customer.Name != "" {
		customerName = res.Customer.Name
	}

	e.createNotification(charge.UserID, models.NotificationChargeApproved,
		"Pagamento aprovado",
		fmt.Sprintf("Recarga de R$ %s do cliente %s", charge.Amount.StringFixed(2), charge.ContactID),
		map[string]interface{}{
			"chargeId":   charge.ID,
			"contactId":  charge.ContactID,
			"amount":     charge.Amount,
			"newBalance": res.NewBalance,
		})

	if ownerLoaded && owner.Email != "" {
		message := mailsmodels.ChargeApproved(customerName, charge.ContactID,
			charge.Amount.StringFixed(2), res.NewBalance.StringFixed(2))
		if err := e.mail(owner.Email, message); err != nil {
			utils.LogError(err, "Error sending charge approval email")
		}
	}
}

func (e *Emitter) emitPlanApproved(payment *models.PlanPayment, res *applyResult, owner *models.User, ownerLoaded bool) {
	planName := payment.PlanID
	if res.Plan != nil {
		planName = res.Plan.Name
	}

	e.createNotification(payment.UserID, models.NotificationPlanApproved,
		"Assinatura ativada",
		fmt.Sprintf("Pagamento do plano %s aprovado", planName),
		map[string]interface{}{
			"planPaymentId":  payment.ID,
			"planId":         payment.PlanID,
			"subscriptionId": res.Subscription.ID,
			"amount":         payment.Amount,
			"periodEnd":      res.Subscription.PeriodEnd,
		})

	if ownerLoaded && owner.Email != "" {
		message := mailsmodels.SubscriptionActivated(planName, payment.Amount.StringFixed(2), res.Subscription.PeriodEnd)
		if err := e.mail(owner.Email, message); err != nil {
			utils.LogError(err, "Error sending subscription activation email")
		}
	}

	// Les paiements de plan sont du revenu plateforme: copie aux admins
	if adminEmail := os.Getenv("ADMIN_NOTIFY_EMAIL"); adminEmail != "" {
		message := mailsmodels.SubscriptionActivated(planName, payment.Amount.StringFixed(2), res.Subscription.PeriodEnd)
		if err := e.mail(adminEmail, message); err != nil {
			utils.LogError(err, "Error sending admin copy of plan payment email")
		}
	}
}

func (e *Emitter) emitTopUpApproved(topUp *models.BalanceTopUp, res *applyResult, owner *models.User, ownerLoaded bool) {
	e.createNotification(topUp.UserID, models.NotificationTopUpApproved,
		"Recarga de saldo confirmada",
		fmt.Sprintf("Recarga de R$ %s aprovada", topUp.Amount.StringFixed(2)),
		map[string]interface{}{
			"topUpId":    topUp.ID,
			"amount":     topUp.Amount,
			"newBalance": res.NewBalance,
		})

	if ownerLoaded && owner.Email != "" {
		message := mailsmodels.TopUpConfirmation(topUp.Amount.StringFixed(2), res.NewBalance.StringFixed(2))
		if err := e.mail(owner.Email, message); err != nil {
			utils.LogError(err, "Error sending top-up confirmation email")
		}
	}
}

func (e *Emitter) createNotification(userID string, kind models.NotificationType, title, body string, payload map[string]interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		utils.LogError(err, "Error encoding notification payload")
		raw = []byte(`{}`)
	}

	notification := models.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Body:    body,
		Payload: datatypes.JSON(raw),
	}
	if err := e.db.Create(&notification).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating payment notification record")
	}
}
