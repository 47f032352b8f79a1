package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/DouglasReisofc/dashboard-sub002/gateway"
	"github.com/DouglasReisofc/dashboard-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"
)

// PaymentFetcher interroge l'opération de lecture de la passerelle.
type PaymentFetcher interface {
	GetPayment(ctx context.Context, accessToken, providerPaymentID string) (*gateway.Payment, error)
}

type WebhookHandler struct {
	db      *gorm.DB
	fetcher PaymentFetcher
	emitter *Emitter
}

func NewWebhookHandler(db *gorm.DB, fetcher PaymentFetcher, emitter *Emitter) *WebhookHandler {
	return &WebhookHandler{db: db, fetcher: fetcher, emitter: emitter}
}

// HandleGatewayWebhook reçoit les notifications asynchrones de la
// passerelle et réconcilie l'enregistrement local correspondant.
// Politique de réponse: 200 pour tout ce qu'un retry ne corrigera pas
// (évènement non identifiable, paiement inconnu, credential absent),
// 5xx uniquement quand la passerelle doit relivrer (lecture passerelle
// ou écriture des effets en échec).
// @Summary Payment gateway webhook
// @Description Receives asynchronous payment status notifications and reconciles local payment records
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "message: processing outcome"
// @Failure 502 {object} map[string]string "error: gateway unreachable, retry expected"
// @Router /payments/webhook [post]
func (h *WebhookHandler) HandleGatewayWebhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	paymentID := extractPaymentID(c)
	if paymentID == "" {
		utils.LogInfo("Webhook without payment identifier, acknowledged as no-op")
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
		return
	}

	located, err := h.locateRecord(paymentID)
	if err != nil {
		utils.LogError(err, "Error locating payment record for webhook")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error locating payment record"})
		return
	}
	if located == nil {
		utils.LogInfo(fmt.Sprintf("No payment record for provider payment id %s, acknowledged as no-op", paymentID))
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
		return
	}

	accessToken, err := h.resolveAccessToken(located)
	if err != nil {
		if errors.Is(err, ErrUnsupportedProvider) || errors.Is(err, ErrCredentialNotFound) {
			utils.LogWarn(fmt.Sprintf("Cannot resolve gateway credentials for payment %s: %v", paymentID, err))
			c.JSON(http.StatusOK, gin.H{"message": "Gateway credentials unavailable"})
			return
		}
		utils.LogError(err, "Error resolving gateway credentials")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error resolving gateway credentials"})
		return
	}

	payment, err := h.fetcher.GetPayment(c.Request.Context(), accessToken, paymentID)
	if err != nil {
		// Erreur dure: la passerelle doit relivrer, sinon l'état réel du
		// paiement resterait non confirmé pour toujours.
		utils.LogError(err, "Error fetching payment from gateway")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error querying payment gateway"})
		return
	}

	result, err := h.applyPayment(located, payment)
	if err != nil {
		utils.LogErrorWithUser(located.userID(), err, "Error applying payment status update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error applying payment update"})
		return
	}

	if !result.Transition {
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
		return
	}

	h.emitter.Emit(c.Request.Context(), located, result)
	c.JSON(http.StatusOK, gin.H{"message": "Payment approved and applied"})
}

// extractPaymentID extrait l'identifiant de paiement d'une notification.
// Priorité: paramètre de requête id, puis champs id/payment_id/data_id du
// corps (chaîne ou nombre), les mêmes champs sous data, et enfin le dernier
// segment d'un champ resource en forme d'URL.
func extractPaymentID(c *gin.Context) string {
	if id := c.Query("id"); id != "" {
		return id
	}

	var payload map[string]interface{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return ""
	}

	if id := idFromFields(payload); id != "" {
		return id
	}

	if data, ok := payload["data"].(map[string]interface{}); ok {
		if id := idFromFields(data); id != "" {
			return id
		}
	}

	if resource := cast.ToString(payload["resource"]); strings.Contains(resource, "/") {
		if u, err := url.Parse(resource); err == nil {
			if id := path.Base(u.Path); id != "" && id != "." && id != "/" {
				return id
			}
		}
	}

	return ""
}

func idFromFields(fields map[string]interface{}) string {
	for _, key := range []string{"id", "payment_id", "data_id"} {
		if value, ok := fields[key]; ok {
			if id := cast.ToString(value); id != "" {
				return id
			}
		}
	}
	return ""
}
