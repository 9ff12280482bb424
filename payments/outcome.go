// Package payments holds the provider-independent webhook pipeline:
// signature verification, classification of raw provider events into
// canonical outcomes, resolution of the target user and the final
// subscription mutation.
package payments

import (
	"time"

	"github.com/nafhansa/JobTracker-sub000/models"
)

type OutcomeKind string

const (
	// OutcomeNone means the event carries no subscription change and is
	// only logged.
	OutcomeNone      OutcomeKind = "none"
	OutcomeActivated OutcomeKind = "activated"
	OutcomeRenewed   OutcomeKind = "renewed"
	OutcomeCancelled OutcomeKind = "cancelled"
	OutcomeLifetime  OutcomeKind = "lifetime-granted"
)

// Outcome is the canonical form of one provider webhook event. It
// carries the subscription change to apply plus the identification
// hints the resolver tries in order: UserID, ExternalSubscriptionID,
// Email.
type Outcome struct {
	Kind     OutcomeKind
	Provider string

	// Resolution hints, in fallback order
	UserID                 string
	ExternalSubscriptionID string
	Email                  string

	Plan     models.SubscriptionPlan
	Status   models.SubscriptionStatus
	RenewsAt *time.Time
	EndsAt   *time.Time

	// Ledger data for lifetime grants
	OrderID  string
	Amount   int64
	Currency string

	// Reason documents why an event produced no outcome
	Reason string
}
