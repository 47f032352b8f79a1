package routes

import (
	"github.com/DouglasReisofc/dashboard-sub002/handlers/notifications"
	"github.com/DouglasReisofc/dashboard-sub002/middleware"

	"github.com/gin-gonic/gin"
)

func NotificationsRoutes(r *gin.Engine) {
	notificationRoutes := r.Group("/notifications")
	notificationRoutes.Use(middleware.JWTAuth())
	{
		notificationRoutes.GET("/", notifications.GetUserNotifications)
		notificationRoutes.PUT("/:id/read", notifications.MarkNotificationRead)
	}
}
