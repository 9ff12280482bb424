package admin

import (
	"net/http"

	"github.com/nafhansa/JobTracker-sub000/db"
	"github.com/nafhansa/JobTracker-sub000/models"
	"github.com/nafhansa/JobTracker-sub000/payments"
	"github.com/nafhansa/JobTracker-sub000/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Admin dashboard stats
// @Description Aggregate counts for the admin analytics dashboard
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "dashboard counters"
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Router /api/admin/dashboard [get]
func GetDashboard(c *gin.Context) {
	var totalUsers, totalJobs, monthlySubs, lifetimeSubs int64

	if err := db.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		utils.LogError(err, "Error counting users in GetDashboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing the dashboard"})
		return
	}
	if err := db.DB.Model(&models.Job{}).Count(&totalJobs).Error; err != nil {
		utils.LogError(err, "Error counting jobs in GetDashboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing the dashboard"})
		return
	}
	if err := db.DB.Model(&models.Subscription{}).
		Where("plan = ? AND status = ?", models.PlanMonthly, models.SubscriptionActive).
		Count(&monthlySubs).Error; err != nil {
		utils.LogError(err, "Error counting monthly subscriptions in GetDashboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing the dashboard"})
		return
	}
	if err := db.DB.Model(&models.Subscription{}).
		Where("plan = ?", models.PlanLifetime).
		Count(&lifetimeSubs).Error; err != nil {
		utils.LogError(err, "Error counting lifetime subscriptions in GetDashboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing the dashboard"})
		return
	}

	remaining, err := payments.LifetimeSlotsRemaining(db.DB)
	if err != nil {
		utils.LogError(err, "Error counting lifetime slots in GetDashboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing the dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":             totalUsers,
		"totalJobs":              totalJobs,
		"activeMonthly":          monthlySubs,
		"lifetimeUsers":          lifetimeSubs,
		"lifetimeSlotsRemaining": remaining,
	})
}

// @Summary Recent lifetime purchases
// @Description Return the lifetime-purchase ledger, newest first
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LifetimeAccessPurchase
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Router /api/admin/purchases [get]
func GetPurchases(c *gin.Context) {
	var purchases []models.LifetimeAccessPurchase
	err := db.DB.Order("created_at DESC").Limit(100).Find(&purchases).Error
	if err != nil {
		utils.LogError(err, "Error fetching purchases in GetPurchases")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching purchases"})
		return
	}

	c.JSON(http.StatusOK, purchases)
}
