package paddle

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/nafhansa/JobTracker-sub000/db"
	"github.com/nafhansa/JobTracker-sub000/payments"
	"github.com/nafhansa/JobTracker-sub000/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Paddle webhook
// @Description Handle a Paddle Billing event; signature in the paddle-signature header
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "message: processed"
// @Failure 401 {object} map[string]string "error: Invalid signature"
// @Failure 500 {object} map[string]string "error: Webhook secret not configured"
// @Router /api/webhook/paddle [post]
func Webhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to read the request body"})
		return
	}

	secret := os.Getenv("PADDLE_WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Paddle webhook secret not configured"})
		return
	}

	sig := c.GetHeader("paddle-signature")
	if !payments.VerifyPaddleSignature(payload, sig, secret) {
		utils.LogError(nil, "Paddle signature verification failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	var event payments.PaddleEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing the event"})
		return
	}

	outcome := payments.ClassifyPaddle(event, os.Getenv("PADDLE_LIFETIME_PRICE_ID"))
	if outcome.Kind == payments.OutcomeNone {
		utils.LogInfo("Paddle event ignored: " + outcome.Reason)
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
		return
	}

	userID, err := payments.ResolveUser(db.DB, outcome)
	if err != nil {
		// Acknowledge anyway so Paddle does not retry forever
		utils.LogError(err, "Unresolved Paddle event "+event.EventType)
		c.JSON(http.StatusOK, gin.H{"message": "Event skipped, no matching user"})
		return
	}

	if err := payments.ApplyOutcome(db.DB, userID, outcome); err != nil {
		utils.LogErrorWithUser(userID, err, "Error applying the Paddle outcome")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the subscription"})
		return
	}

	utils.LogSuccessWithUser(userID, "Paddle event applied: "+event.EventType)
	c.JSON(http.StatusOK, gin.H{"message": "Event processed"})
}
