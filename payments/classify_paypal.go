package payments

import (
	"time"

	"github.com/nafhansa/JobTracker-sub000/models"
)

// PayPalEvent is the resource envelope PayPal posts to the webhook
// endpoint.
type PayPalEvent struct {
	EventType string `json:"event_type"`
	Resource  struct {
		ID                 string `json:"id"`
		CustomID           string `json:"custom_id"`
		Custom             string `json:"custom"`
		BillingAgreementID string `json:"billing_agreement_id"`
		Subscriber         struct {
			EmailAddress string `json:"email_address"`
		} `json:"subscriber"`
	} `json:"resource"`
}

// ClassifyPayPal maps a PayPal event to a canonical outcome. Renewals
// via PAYMENT.SALE.COMPLETED extend the subscription by 31 days.
func ClassifyPayPal(ev PayPalEvent) Outcome {
	o := Outcome{
		Kind:     OutcomeNone,
		Provider: "paypal",
		Email:    ev.Resource.Subscriber.EmailAddress,
	}

	switch ev.EventType {
	case "BILLING.SUBSCRIPTION.ACTIVATED":
		renews := time.Now().AddDate(0, 1, 0)
		o.Kind = OutcomeActivated
		o.Plan = models.PlanMonthly
		o.Status = models.SubscriptionActive
		o.UserID = ev.Resource.CustomID
		o.ExternalSubscriptionID = ev.Resource.ID
		o.RenewsAt = &renews
		return o

	case "PAYMENT.SALE.COMPLETED":
		renews := time.Now().Add(31 * 24 * time.Hour)
		o.Kind = OutcomeRenewed
		o.Plan = models.PlanMonthly
		o.Status = models.SubscriptionActive
		o.UserID = ev.Resource.Custom
		o.ExternalSubscriptionID = ev.Resource.BillingAgreementID
		o.RenewsAt = &renews
		return o

	case "BILLING.SUBSCRIPTION.CANCELLED":
		// The payload carries no period end; the mutator falls back to
		// the stored renewal date so access runs out, not off.
		o.Kind = OutcomeCancelled
		o.Status = models.SubscriptionCancelled
		o.UserID = ev.Resource.CustomID
		o.ExternalSubscriptionID = ev.Resource.ID
		return o

	default:
		o.Reason = "unhandled event type: " + ev.EventType
		return o
	}
}
