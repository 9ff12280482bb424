package payments

import (
	"time"

	"github.com/nafhansa/JobTracker-sub000/models"
)

// PaddleEvent is the envelope Paddle Billing posts to the webhook
// endpoint.
type PaddleEvent struct {
	EventType string `json:"event_type"`
	Data      struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		CustomData struct {
			UserID string `json:"userId"`
		} `json:"custom_data"`
		Items []struct {
			Price struct {
				ID string `json:"id"`
			} `json:"price"`
		} `json:"items"`
		CurrentBillingPeriod struct {
			EndsAt string `json:"ends_at"`
		} `json:"current_billing_period"`
		CanceledAt string `json:"canceled_at"`
		Details    struct {
			Totals struct {
				Total string `json:"total"`
			} `json:"totals"`
		} `json:"details"`
		CurrencyCode string `json:"currency_code"`
	} `json:"data"`
}

// ClassifyPaddle maps a Paddle event to a canonical outcome. The
// lifetime check on transaction.paid is the most specific branch and
// runs first within its case.
func ClassifyPaddle(ev PaddleEvent, lifetimePriceID string) Outcome {
	o := Outcome{
		Kind:     OutcomeNone,
		Provider: "paddle",
		UserID:   ev.Data.CustomData.UserID,
	}

	switch ev.EventType {
	case "transaction.paid":
		for _, item := range ev.Data.Items {
			if lifetimePriceID != "" && item.Price.ID == lifetimePriceID {
				o.Kind = OutcomeLifetime
				o.Plan = models.PlanLifetime
				o.Status = models.SubscriptionActive
				o.OrderID = ev.Data.ID
				o.Currency = ev.Data.CurrencyCode
				return o
			}
		}
		o.Reason = "transaction.paid without the lifetime price"
		return o

	case "subscription.created", "subscription.activated":
		o.Kind = OutcomeActivated
		o.Plan = models.PlanMonthly
		o.Status = paddleStatus(ev.Data.Status)
		o.ExternalSubscriptionID = ev.Data.ID
		o.RenewsAt = parsePaddleTime(ev.Data.CurrentBillingPeriod.EndsAt)
		return o

	case "subscription.updated":
		o.Kind = OutcomeRenewed
		o.Plan = models.PlanMonthly
		o.Status = paddleStatus(ev.Data.Status)
		o.ExternalSubscriptionID = ev.Data.ID
		o.RenewsAt = parsePaddleTime(ev.Data.CurrentBillingPeriod.EndsAt)
		return o

	case "subscription.canceled":
		o.Kind = OutcomeCancelled
		o.Status = models.SubscriptionCancelled
		o.ExternalSubscriptionID = ev.Data.ID
		o.EndsAt = parsePaddleTime(ev.Data.CurrentBillingPeriod.EndsAt)
		if o.EndsAt == nil {
			o.EndsAt = parsePaddleTime(ev.Data.CanceledAt)
		}
		return o

	default:
		o.Reason = "unhandled event type: " + ev.EventType
		return o
	}
}

func paddleStatus(s string) models.SubscriptionStatus {
	switch s {
	case "trialing":
		return models.SubscriptionTrialing
	case "past_due", "paused":
		return models.SubscriptionIncomplete
	case "canceled":
		return models.SubscriptionCancelled
	default:
		return models.SubscriptionActive
	}
}

func parsePaddleTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
