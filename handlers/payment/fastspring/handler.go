package fastspring

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

// @Summary FastSpring webhook
// @Description Handle a FastSpring delivery; each event in the batch is processed independently
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "processed: number of applied events"
// @Failure 401 {object} map[string]string "error: Invalid signature"
// @Failure 500 {object} map[string]string "error: Webhook secret not configured"
// @Router /api/webhook [post]
func Webhook(c *gin.Context) {
	const MaxBodyBytes = int64(262144)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to read the request body"})
		return
	}

	secret := os.Getenv("FASTSPRING_WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "FastSpring webhook secret not configured"})
		return
	}

	sig := c.GetHeader("X-FS-Signature")
	if !payments.VerifyFastSpringSignature(payload, sig, secret) {
		utils.LogError(nil, "FastSpring signature verification failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	var webhook payments.FastSpringWebhook
	if err := json.Unmarshal(payload, &webhook); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing the webhook"})
		return
	}

	processed := 0
	for _, event := range webhook.Events {
		if processEvent(event) {
			processed++
		}
	}

	c.JSON(http.StatusOK, gin.H{"processed": processed})
}

// processEvent applies one event of the batch; a failing event never
// blocks the others.
func processEvent(event payments.FastSpringEvent) bool {
	outcome := payments.ClassifyFastSpring(event)
	if outcome.Kind == payments.OutcomeNone {
		utils.LogInfo("FastSpring event " + event.ID + " ignored: " + outcome.Reason)
		return false
	}

	userID, err := payments.ResolveUser(db.DB, outcome)
	if err != nil {
		utils.LogError(err, "Unresolved FastSpring event "+event.ID+" ("+event.Type+")")
		return false
	}

	if err := payments.ApplyOutcome(db.DB, userID, outcome); err != nil {
		utils.LogErrorWithUser(userID, err, "Error applying the FastSpring outcome for event "+event.ID)
		return false
	}

	utils.LogSuccessWithUser(userID, "FastSpring event applied: "+event.Type)
	return true
}
