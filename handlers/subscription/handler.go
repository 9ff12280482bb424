package subscription

import (
	"errors"
	"net/http"
	"time"

	"github.com/nafhansa/JobTracker-sub000/db"
	"github.com/nafhansa/JobTracker-sub000/models"
	"github.com/nafhansa/JobTracker-sub000/payments"
	"github.com/nafhansa/JobTracker-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get the user's subscription
// @Description Return the subscription state of the connected user and whether it grants Pro access
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "subscription + isPro"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /api/subscription [get]
func GetMySubscription(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var sub models.Subscription
	err := db.DB.First(&sub, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Accounts predating the subscription table default to free
		sub = models.Subscription{
			UserID: userID.(string),
			Plan:   models.PlanFree,
			Status: models.SubscriptionActive,
		}
	} else if err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching the subscription in GetMySubscription")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription": sub,
		"isPro":        sub.IsPro(time.Now()),
	})
}

// @Summary Remaining lifetime slots
// @Description Return how many lifetime plans are still available under the global cap
// @Tags subscriptions
// @Accept json
// @Produce json
// @Success 200 {object} map[string]int "remaining: slots left, limit: global cap"
// @Router /api/subscription/lifetime-slots [get]
func GetLifetimeSlots(c *gin.Context) {
	remaining, err := payments.LifetimeSlotsRemaining(db.DB)
	if err != nil {
		utils.LogError(err, "Error counting lifetime slots in GetLifetimeSlots")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting lifetime slots"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"remaining": remaining,
		"limit":     models.LifetimeSlotLimit,
	})
}
