package routes

import (
	"os"

	"github.com/DouglasReisofc/dashboard-sub002/db"
	"github.com/DouglasReisofc/dashboard-sub002/gateway"
	"github.com/DouglasReisofc/dashboard-sub002/handlers/payments"
	"github.com/DouglasReisofc/dashboard-sub002/messenger"
	"github.com/DouglasReisofc/dashboard-sub002/middleware"
	"github.com/DouglasReisofc/dashboard-sub002/realtime"
	"github.com/DouglasReisofc/dashboard-sub002/utils"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(r *gin.Engine) {
	var bus realtime.Bus = realtime.NoopBus{}
	if amqpURL := os.Getenv("RABBITMQ_URL"); amqpURL != "" {
		if amqpBus, err := realtime.Connect(amqpURL); err != nil {
			utils.LogError(err, "RabbitMQ unreachable, realtime events disabled")
		} else {
			bus = amqpBus
		}
	}

	emitter := payments.NewEmitter(db.DB, bus, messenger.NewClient(), nil)
	webhook := payments.NewWebhookHandler(db.DB, gateway.NewClient(), emitter)

	// Appelé par la passerelle, donc sans authentification
	r.POST("/payments/webhook", webhook.HandleGatewayWebhook)

	paymentRoutes := r.Group("/payments")
	paymentRoutes.Use(middleware.JWTAuth())
	{
		paymentRoutes.GET("/charges", payments.GetUserCharges)
		paymentRoutes.GET("/plan-payments", payments.GetUserPlanPayments)
		paymentRoutes.GET("/topups", payments.GetUserTopUps)
		paymentRoutes.GET("/topups/all", middleware.AdminAuth(), payments.GetAllTopUps)
	}
}
