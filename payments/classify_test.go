package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nafhansa/JobTracker-sub000/models"
)

func TestClassifyMidtrans_SettlementMonthly(t *testing.T) {
	o := ClassifyMidtrans(MidtransNotification{
		OrderID:           "order-1",
		TransactionStatus: "settlement",
		CustomField1:      "u1",
		CustomField2:      "monthly",
	})

	assert.Equal(t, OutcomeActivated, o.Kind)
	assert.Equal(t, models.PlanMonthly, o.Plan)
	assert.Equal(t, models.SubscriptionActive, o.Status)
	assert.Equal(t, "u1", o.UserID)
	assert.NotNil(t, o.RenewsAt)
	assert.True(t, o.RenewsAt.After(time.Now()))
}

func TestClassifyMidtrans_CaptureLifetime(t *testing.T) {
	o := ClassifyMidtrans(MidtransNotification{
		OrderID:           "order-2",
		TransactionStatus: "capture",
		CustomField1:      "u1",
		CustomField2:      "lifetime",
	})

	assert.Equal(t, OutcomeLifetime, o.Kind)
	assert.Equal(t, models.PlanLifetime, o.Plan)
}

func TestClassifyMidtrans_TerminalFailuresAreNone(t *testing.T) {
	for _, status := range []string{"deny", "cancel", "expire"} {
		o := ClassifyMidtrans(MidtransNotification{TransactionStatus: status})
		assert.Equal(t, OutcomeNone, o.Kind, status)
		assert.NotEmpty(t, o.Reason, status)
	}
}

func TestClassifyMidtrans_PendingIsNone(t *testing.T) {
	o := ClassifyMidtrans(MidtransNotification{TransactionStatus: "pending"})
	assert.Equal(t, OutcomeNone, o.Kind)
}

func TestClassifyPaddle_TransactionPaidLifetime(t *testing.T) {
	ev := PaddleEvent{EventType: "transaction.paid"}
	ev.Data.ID = "txn_1"
	ev.Data.CustomData.UserID = "u1"
	ev.Data.Items = []struct {
		Price struct {
			ID string `json:"id"`
		} `json:"price"`
	}{{}}
	ev.Data.Items[0].Price.ID = "pri_lifetime"

	o := ClassifyPaddle(ev, "pri_lifetime")
	assert.Equal(t, OutcomeLifetime, o.Kind)
	assert.Equal(t, models.PlanLifetime, o.Plan)
	assert.Equal(t, "u1", o.UserID)
	assert.Equal(t, "txn_1", o.OrderID)
}

func TestClassifyPaddle_TransactionPaidOtherPriceIsNone(t *testing.T) {
	ev := PaddleEvent{EventType: "transaction.paid"}
	ev.Data.Items = []struct {
		Price struct {
			ID string `json:"id"`
		} `json:"price"`
	}{{}}
	ev.Data.Items[0].Price.ID = "pri_something_else"

	o := ClassifyPaddle(ev, "pri_lifetime")
	assert.Equal(t, OutcomeNone, o.Kind)
}

func TestClassifyPaddle_SubscriptionCreated(t *testing.T) {
	ev := PaddleEvent{EventType: "subscription.created"}
	ev.Data.ID = "sub_1"
	ev.Data.Status = "active"
	ev.Data.CustomData.UserID = "u1"
	ev.Data.CurrentBillingPeriod.EndsAt = "2025-07-01T00:00:00Z"

	o := ClassifyPaddle(ev, "pri_lifetime")
	assert.Equal(t, OutcomeActivated, o.Kind)
	assert.Equal(t, models.PlanMonthly, o.Plan)
	assert.Equal(t, "sub_1", o.ExternalSubscriptionID)
	if assert.NotNil(t, o.RenewsAt) {
		assert.Equal(t, 2025, o.RenewsAt.Year())
	}
}

func TestClassifyPaddle_SubscriptionUpdatedIsRenewal(t *testing.T) {
	ev := PaddleEvent{EventType: "subscription.updated"}
	ev.Data.ID = "sub_1"
	ev.Data.Status = "active"
	ev.Data.CurrentBillingPeriod.EndsAt = "2025-08-01T00:00:00Z"

	o := ClassifyPaddle(ev, "")
	assert.Equal(t, OutcomeRenewed, o.Kind)
}

func TestClassifyPaddle_SubscriptionCanceledKeepsPeriodEnd(t *testing.T) {
	ev := PaddleEvent{EventType: "subscription.canceled"}
	ev.Data.ID = "sub_1"
	ev.Data.CurrentBillingPeriod.EndsAt = "2025-09-01T00:00:00Z"

	o := ClassifyPaddle(ev, "")
	assert.Equal(t, OutcomeCancelled, o.Kind)
	assert.Equal(t, models.SubscriptionCancelled, o.Status)
	if assert.NotNil(t, o.EndsAt) {
		assert.Equal(t, time.September, o.EndsAt.Month())
	}
}

func TestClassifyPaddle_CanceledFallsBackToCanceledAt(t *testing.T) {
	ev := PaddleEvent{EventType: "subscription.canceled"}
	ev.Data.ID = "sub_1"
	ev.Data.CanceledAt = "2025-06-15T12:00:00Z"

	o := ClassifyPaddle(ev, "")
	if assert.NotNil(t, o.EndsAt) {
		assert.Equal(t, 15, o.EndsAt.Day())
	}
}

func TestClassifyPaddle_StatusMapping(t *testing.T) {
	cases := map[string]models.SubscriptionStatus{
		"active":   models.SubscriptionActive,
		"trialing": models.SubscriptionTrialing,
		"past_due": models.SubscriptionIncomplete,
		"paused":   models.SubscriptionIncomplete,
		"canceled": models.SubscriptionCancelled,
	}
	for raw, want := range cases {
		ev := PaddleEvent{EventType: "subscription.created"}
		ev.Data.Status = raw
		assert.Equal(t, want, ClassifyPaddle(ev, "").Status, raw)
	}
}

func TestClassifyPayPal_Activated(t *testing.T) {
	ev := PayPalEvent{EventType: "BILLING.SUBSCRIPTION.ACTIVATED"}
	ev.Resource.ID = "I-ABC"
	ev.Resource.CustomID = "u1"
	ev.Resource.Subscriber.EmailAddress = "user@example.com"

	o := ClassifyPayPal(ev)
	assert.Equal(t, OutcomeActivated, o.Kind)
	assert.Equal(t, "u1", o.UserID)
	assert.Equal(t, "I-ABC", o.ExternalSubscriptionID)
	assert.Equal(t, "user@example.com", o.Email)
	assert.NotNil(t, o.RenewsAt)
}

func TestClassifyPayPal_SaleCompletedIsRenewal(t *testing.T) {
	ev := PayPalEvent{EventType: "PAYMENT.SALE.COMPLETED"}
	ev.Resource.Custom = "u1"
	ev.Resource.BillingAgreementID = "I-ABC"

	o := ClassifyPayPal(ev)
	assert.Equal(t, OutcomeRenewed, o.Kind)
	assert.Equal(t, "u1", o.UserID)
	assert.Equal(t, "I-ABC", o.ExternalSubscriptionID)
	if assert.NotNil(t, o.RenewsAt) {
		assert.True(t, o.RenewsAt.After(time.Now().Add(30*24*time.Hour)))
	}
}

func TestClassifyPayPal_CancelledLeavesEndsAtOpen(t *testing.T) {
	ev := PayPalEvent{EventType: "BILLING.SUBSCRIPTION.CANCELLED"}
	ev.Resource.ID = "I-ABC"

	o := ClassifyPayPal(ev)
	assert.Equal(t, OutcomeCancelled, o.Kind)
	assert.Nil(t, o.EndsAt)
}

func TestClassifyPayPal_UnknownEventIsNone(t *testing.T) {
	o := ClassifyPayPal(PayPalEvent{EventType: "CHECKOUT.ORDER.APPROVED"})
	assert.Equal(t, OutcomeNone, o.Kind)
}

func fastSpringEvent(typ string) FastSpringEvent {
	ev := FastSpringEvent{ID: "ev-1", Type: typ}
	ev.Data.ID = "res-1"
	ev.Data.Customer.Email = "user@example.com"
	ev.Data.Tags.UserID = "u1"
	return ev
}

func TestClassifyFastSpring_OrderCompletedWithSubscription(t *testing.T) {
	ev := fastSpringEvent("order.completed")
	ev.Data.Items = []struct {
		Product      string `json:"product"`
		Subscription string `json:"subscription"`
	}{{Product: "jobtracker-pro", Subscription: "fs-sub-1"}}

	o := ClassifyFastSpring(ev)
	assert.Equal(t, OutcomeActivated, o.Kind)
	assert.Equal(t, "fs-sub-1", o.ExternalSubscriptionID)
	assert.Equal(t, "u1", o.UserID)
}

func TestClassifyFastSpring_OrderCompletedWithoutSubscriptionIsNone(t *testing.T) {
	ev := fastSpringEvent("order.completed")
	ev.Data.Items = []struct {
		Product      string `json:"product"`
		Subscription string `json:"subscription"`
	}{{Product: "one-off"}}

	o := ClassifyFastSpring(ev)
	assert.Equal(t, OutcomeNone, o.Kind)
}

func TestClassifyFastSpring_ChargeCompletedIsRenewal(t *testing.T) {
	ev := fastSpringEvent("subscription.charge.completed")
	ev.Data.Subscription = "fs-sub-1"

	o := ClassifyFastSpring(ev)
	assert.Equal(t, OutcomeRenewed, o.Kind)
	assert.Equal(t, "fs-sub-1", o.ExternalSubscriptionID)
}

func TestClassifyFastSpring_DeactivatedIsCancellation(t *testing.T) {
	ev := fastSpringEvent("subscription.deactivated")

	o := ClassifyFastSpring(ev)
	assert.Equal(t, OutcomeCancelled, o.Kind)
	assert.Equal(t, "res-1", o.ExternalSubscriptionID)
}
