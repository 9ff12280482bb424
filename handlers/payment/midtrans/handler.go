package midtrans

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/nafhansa/JobTracker-sub000/db"
	"github.com/nafhansa/JobTracker-sub000/models"
	"github.com/nafhansa/JobTracker-sub000/payments"
	"github.com/nafhansa/JobTracker-sub000/utils"
	mailsmodels "github.com/nafhansa/JobTracker-sub000/utils/mails-models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

const (
	defaultMonthlyPriceIDR  = 49000
	defaultLifetimePriceIDR = 499000
)

func midtransEnv() midtrans.EnvironmentType {
	if os.Getenv("MIDTRANS_ENV") == "production" {
		return midtrans.Production
	}
	return midtrans.Sandbox
}

// CheckoutInput is the body of the checkout-init call
type CheckoutInput struct {
	Plan models.SubscriptionPlan `json:"plan" binding:"required" example:"monthly"`
}

// @Summary Start a Midtrans Snap checkout
// @Description Create a Snap transaction for a premium plan and record it as pending
// @Tags payments
// @Accept json
// @Produce json
// @Param checkout body CheckoutInput true "Plan to buy"
// @Security BearerAuth
// @Success 200 {object} map[string]string "token: Snap token, redirectUrl: Snap URL, orderId: order id"
// @Failure 400 {object} map[string]string "error: Invalid plan"
// @Failure 500 {object} map[string]string "error: Midtrans error"
// @Router /api/payment/midtrans/checkout [post]
func CreateCheckout(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var amount int64
	switch input.Plan {
	case models.PlanMonthly:
		amount = defaultMonthlyPriceIDR
	case models.PlanLifetime:
		amount = defaultLifetimePriceIDR

		remaining, err := payments.LifetimeSlotsRemaining(db.DB)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking lifetime slots"})
			return
		}
		if remaining <= 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Lifetime plan is sold out"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan, expected monthly or lifetime"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var s snap.Client
	s.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtransEnv())

	orderID := "jobtracker-" + uuid.NewString()

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.UserName,
			Email: user.Email,
		},
		CustomField1: user.ID,
		CustomField2: string(input.Plan),
	}

	resp, snapErr := s.CreateTransaction(req)
	if snapErr != nil {
		utils.LogErrorWithUser(userID, snapErr, "Error creating the Snap transaction in CreateCheckout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the Midtrans transaction"})
		return
	}

	pending := models.PendingMidtransTransaction{
		OrderID:   orderID,
		UserID:    user.ID,
		Plan:      input.Plan,
		Amount:    amount,
		Token:     resp.Token,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := db.DB.Create(&pending).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error recording the pending transaction in CreateCheckout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording the pending transaction"})
		return
	}

	utils.LogSuccessWithUser(userID, "Snap checkout created in CreateCheckout")
	c.JSON(http.StatusOK, gin.H{
		"token":       resp.Token,
		"redirectUrl": resp.RedirectURL,
		"orderId":     orderID,
	})
}

// @Summary Midtrans payment notification webhook
// @Description Handle a Midtrans transaction notification; the signature rides in the body
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "status: OK"
// @Failure 403 {object} map[string]string "error: Invalid signature"
// @Failure 500 {object} map[string]string "error: Server key not configured"
// @Router /api/payment/midtrans/webhook [post]
func Webhook(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to read the request body"})
		return
	}

	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Midtrans server key not configured"})
		return
	}

	var notif payments.MidtransNotification
	if err := json.Unmarshal(payload, &notif); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing the notification"})
		return
	}

	// Notifications without a signature_key are accepted unverified.
	// TODO: confirm with Midtrans support whether unsigned notifications
	// can be rejected outright once signed keys are enabled on the
	// dashboard.
	if notif.SignatureKey != "" {
		if !payments.VerifyMidtransSignature(notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey, serverKey) {
			utils.LogError(nil, "Midtrans signature verification failed for order "+notif.OrderID)
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid signature"})
			return
		}
	} else {
		utils.LogInfo("Midtrans notification without signature_key for order " + notif.OrderID + ", verification skipped")
	}

	processNotification(c, notif)
}

// VerifyInput is the body of the manual verification call
type VerifyInput struct {
	OrderID string `json:"orderId" binding:"required"`
}

// @Summary Manually verify a Midtrans transaction
// @Description Poll the Midtrans status API for an order; settlement/capture upgrades the subscription
// @Tags payments
// @Accept json
// @Produce json
// @Param verify body VerifyInput true "Order to verify"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success: whether the payment is settled"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Midtrans error"
// @Router /api/payment/midtrans/verify [post]
func Verify(c *gin.Context) {
	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var core coreapi.Client
	core.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtransEnv())

	status, apiErr := core.CheckTransaction(input.OrderID)
	if apiErr != nil {
		utils.LogError(apiErr, "Error checking the transaction status in Verify")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking the Midtrans transaction"})
		return
	}

	handleTransactionStatus(c, status)
}

// handleTransactionStatus applies a polled transaction status. Anything
// short of settlement/capture is reported back without touching the
// subscription.
func handleTransactionStatus(c *gin.Context, status *coreapi.TransactionStatusResponse) {
	if status.TransactionStatus != "settlement" && status.TransactionStatus != "capture" {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"status":  status.TransactionStatus,
		})
		return
	}

	notif := payments.MidtransNotification{
		OrderID:           status.OrderID,
		TransactionStatus: status.TransactionStatus,
		StatusCode:        status.StatusCode,
		GrossAmount:       status.GrossAmount,
		Currency:          status.Currency,
	}

	processNotification(c, notif)
}

// processNotification runs the shared classification pipeline for a
// verified (or verification-skipped) notification and acknowledges it.
func processNotification(c *gin.Context, notif payments.MidtransNotification) {
	// The status API does not echo custom fields; the pending
	// transaction row recorded at checkout carries user and plan.
	var pending models.PendingMidtransTransaction
	pendingErr := db.DB.First(&pending, "order_id = ?", notif.OrderID).Error
	if pendingErr == nil {
		if notif.CustomField1 == "" {
			notif.CustomField1 = pending.UserID
		}
		if notif.CustomField2 == "" {
			notif.CustomField2 = string(pending.Plan)
		}
	} else if !errors.Is(pendingErr, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading the pending transaction"})
		return
	}

	outcome := payments.ClassifyMidtrans(notif)
	if outcome.Kind == payments.OutcomeNone {
		utils.LogInfo("Midtrans notification ignored for order " + notif.OrderID + ": " + outcome.Reason)
		deletePendingIfTerminal(notif)
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
		return
	}

	userID, err := payments.ResolveUser(db.DB, outcome)
	if err != nil {
		// Acknowledge anyway so Midtrans does not hammer the endpoint
		utils.LogError(err, "Unresolved Midtrans notification for order "+notif.OrderID)
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
		return
	}

	if err := payments.ApplyOutcome(db.DB, userID, outcome); err != nil {
		utils.LogErrorWithUser(userID, err, "Error applying the Midtrans outcome")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the subscription"})
		return
	}

	db.DB.Where("order_id = ?", notif.OrderID).Delete(&models.PendingMidtransTransaction{})

	sendConfirmationMail(userID, outcome)

	utils.LogSuccessWithUser(userID, "Midtrans payment applied for order "+notif.OrderID)
	c.JSON(http.StatusOK, gin.H{"status": "OK", "success": true})
}

func deletePendingIfTerminal(notif payments.MidtransNotification) {
	switch notif.TransactionStatus {
	case "deny", "cancel", "expire":
		db.DB.Where("order_id = ?", notif.OrderID).Delete(&models.PendingMidtransTransaction{})
	}
}

func sendConfirmationMail(userID string, outcome payments.Outcome) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		return
	}
	go mailsmodels.PaymentConfirmation(mailsmodels.PaymentEmailData{
		Email:    user.Email,
		UserName: user.UserName,
		Plan:     string(outcome.Plan),
		Provider: outcome.Provider,
	})
}
