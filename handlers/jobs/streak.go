package jobs

import (
	"errors"
	"net/http"

	"github.com/nafhansa/JobTracker-sub000/db"
	"github.com/nafhansa/JobTracker-sub000/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Get the user's application streak
// @Description Return the current and longest daily application streak
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserStreak
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /api/streaks [get]
func GetMyStreak(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var streak models.UserStreak
	err := db.DB.First(&streak, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, models.UserStreak{UserID: userID.(string)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the streak"})
		return
	}

	c.JSON(http.StatusOK, streak)
}
