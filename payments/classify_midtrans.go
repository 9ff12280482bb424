package payments

import (
	"time"

	"github.com/nafhansa/JobTracker-sub000/models"
)

// MidtransNotification is the webhook body Midtrans posts for a Snap
// transaction. The user and plan ride along in the custom fields set at
// checkout.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	Currency          string `json:"currency"`
	CustomField1      string `json:"custom_field1"`
	CustomField2      string `json:"custom_field2"`
}

// ClassifyMidtrans maps a Midtrans transaction_status to a canonical
// outcome. settlement/capture activate the plan carried in
// custom_field2; deny/cancel/expire are log-only.
func ClassifyMidtrans(n MidtransNotification) Outcome {
	o := Outcome{
		Kind:     OutcomeNone,
		Provider: "midtrans",
		UserID:   n.CustomField1,
		OrderID:  n.OrderID,
		Currency: n.Currency,
	}

	switch n.TransactionStatus {
	case "settlement", "capture":
		if n.CustomField2 == string(models.PlanLifetime) {
			o.Kind = OutcomeLifetime
			o.Plan = models.PlanLifetime
			o.Status = models.SubscriptionActive
			return o
		}
		renews := time.Now().AddDate(0, 1, 0)
		o.Kind = OutcomeActivated
		o.Plan = models.PlanMonthly
		o.Status = models.SubscriptionActive
		o.RenewsAt = &renews
		return o
	case "deny", "cancel", "expire":
		o.Reason = "terminal failure status: " + n.TransactionStatus
		return o
	default:
		o.Reason = "non-terminal status: " + n.TransactionStatus
		return o
	}
}
