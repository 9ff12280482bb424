package payments

import (
	"time"

	"github.com/nafhansa/JobTracker-sub000/models"
)

// FastSpringWebhook is the batch envelope FastSpring posts: several
// events per delivery, each processed independently.
type FastSpringWebhook struct {
	Events []FastSpringEvent `json:"events"`
}

type FastSpringEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		ID           string `json:"id"`
		Subscription string `json:"subscription"`
		Currency     string `json:"currency"`
		Customer     struct {
			Email string `json:"email"`
		} `json:"customer"`
		Tags struct {
			UserID string `json:"userId"`
		} `json:"tags"`
		Items []struct {
			Product      string `json:"product"`
			Subscription string `json:"subscription"`
		} `json:"items"`
	} `json:"data"`
}

// ClassifyFastSpring maps one FastSpring event to a canonical outcome.
// order.completed only activates when the order carries a subscription
// item; the subscription id is stored for later event resolution.
func ClassifyFastSpring(ev FastSpringEvent) Outcome {
	o := Outcome{
		Kind:     OutcomeNone,
		Provider: "fastspring",
		UserID:   ev.Data.Tags.UserID,
		Email:    ev.Data.Customer.Email,
		Currency: ev.Data.Currency,
	}

	switch ev.Type {
	case "order.completed":
		for _, item := range ev.Data.Items {
			if item.Subscription != "" {
				renews := time.Now().AddDate(0, 1, 0)
				o.Kind = OutcomeActivated
				o.Plan = models.PlanMonthly
				o.Status = models.SubscriptionActive
				o.ExternalSubscriptionID = item.Subscription
				o.OrderID = ev.Data.ID
				o.RenewsAt = &renews
				return o
			}
		}
		o.Reason = "order.completed without a subscription item"
		return o

	case "subscription.activated", "subscription.charge.completed", "charge.completed":
		renews := time.Now().AddDate(0, 1, 0)
		o.Kind = OutcomeRenewed
		o.Plan = models.PlanMonthly
		o.Status = models.SubscriptionActive
		o.ExternalSubscriptionID = fastspringSubscriptionID(ev)
		o.RenewsAt = &renews
		return o

	case "subscription.deactivated", "subscription.canceled":
		o.Kind = OutcomeCancelled
		o.Status = models.SubscriptionCancelled
		o.ExternalSubscriptionID = fastspringSubscriptionID(ev)
		return o

	default:
		o.Reason = "unhandled event type: " + ev.Type
		return o
	}
}

func fastspringSubscriptionID(ev FastSpringEvent) string {
	if ev.Data.Subscription != "" {
		return ev.Data.Subscription
	}
	return ev.Data.ID
}
