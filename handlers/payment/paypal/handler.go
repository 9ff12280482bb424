package paypal

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/nafhansa/JobTracker-sub000/db"
	"github.com/nafhansa/JobTracker-sub000/payments"
	"github.com/nafhansa/JobTracker-sub000/utils"

	"github.com/gin-gonic/gin"
)

// @Summary PayPal webhook
// @Description Handle a PayPal billing event
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "message: processed"
// @Failure 400 {object} map[string]string "error: Invalid body"
// @Router /api/webhook/paypal [post]
func Webhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to read the request body"})
		return
	}

	// No signature verification on this path. TODO: wire PayPal's
	// verify-webhook-signature API before enabling live billing events.
	var event payments.PayPalEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing the event"})
		return
	}

	outcome := payments.ClassifyPayPal(event)
	if outcome.Kind == payments.OutcomeNone {
		utils.LogInfo("PayPal event ignored: " + outcome.Reason)
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
		return
	}

	userID, err := payments.ResolveUser(db.DB, outcome)
	if err != nil {
		utils.LogError(err, "Unresolved PayPal event "+event.EventType)
		c.JSON(http.StatusOK, gin.H{"message": "Event skipped, no matching user"})
		return
	}

	if err := payments.ApplyOutcome(db.DB, userID, outcome); err != nil {
		utils.LogErrorWithUser(userID, err, "Error applying the PayPal outcome")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the subscription"})
		return
	}

	utils.LogSuccessWithUser(userID, "PayPal event applied: "+event.EventType)
	c.JSON(http.StatusOK, gin.H{"message": "Event processed"})
}
