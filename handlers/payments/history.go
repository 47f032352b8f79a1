package payments

import (
	"net/http"

	"github.com/DouglasReisofc/dashboard-sub002/db"
	"github.com/DouglasReisofc/dashboard-sub002/models"

	"github.com/gin-gonic/gin"
)

// @Summary List customer charges
// @Description Retrieve the authenticated merchant's customer wallet charges, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CustomerCharge
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /payments/charges [get]
func GetUserCharges(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var charges []models.CustomerCharge
	result := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&charges)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, charges)
}

// @Summary List plan payments
// @Description Retrieve the authenticated merchant's subscription plan payments, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PlanPayment
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /payments/plan-payments [get]
func GetUserPlanPayments(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var payments []models.PlanPayment
	result := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary List balance top-ups
// @Description Retrieve the authenticated merchant's balance top-ups, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BalanceTopUp
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /payments/topups [get]
func GetUserTopUps(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var topUps []models.BalanceTopUp
	result := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&topUps)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, topUps)
}

// @Summary List all balance top-ups
// @Description Retrieve every balance top-up on the platform (admin only)
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.BalanceTopUp
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /payments/topups/all [get]
func GetAllTopUps(c *gin.Context) {
	var topUps []models.BalanceTopUp
	result := db.DB.Order("created_at DESC").Find(&topUps)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, topUps)
}
