package models

import (
	"time"
)

type SubscriptionPlan string

const (
	PlanFree     SubscriptionPlan = "free"
	PlanMonthly  SubscriptionPlan = "monthly"
	PlanLifetime SubscriptionPlan = "lifetime"
)

type SubscriptionStatus string

const (
	SubscriptionActive     SubscriptionStatus = "active"
	SubscriptionCancelled  SubscriptionStatus = "cancelled"
	SubscriptionTrialing   SubscriptionStatus = "trialing"
	SubscriptionIncomplete SubscriptionStatus = "incomplete"
)

// Subscription is the premium state of one user, one row per user.
// It is mutated exclusively by payments.ApplyOutcome in response to a
// verified webhook event or a manual verify call.
type Subscription struct {
	ID                     string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID                 string             `json:"userId" gorm:"type:uuid;not null;uniqueIndex"`
	Plan                   SubscriptionPlan   `json:"plan" gorm:"type:varchar(20);default:'free'"`
	Status                 SubscriptionStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	Provider               string             `json:"provider"`
	ExternalSubscriptionID string             `json:"externalSubscriptionId" gorm:"column:external_subscription_id"`
	RenewsAt               *time.Time         `json:"renewsAt"`
	EndsAt                 *time.Time         `json:"endsAt"`
	CreatedAt              time.Time          `json:"createdAt"`
	UpdatedAt              time.Time          `json:"updatedAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// IsPro reports whether the subscription currently grants premium access.
// A cancelled subscription stays Pro until EndsAt passes.
func (s *Subscription) IsPro(now time.Time) bool {
	if s == nil {
		return false
	}
	switch s.Plan {
	case PlanLifetime:
		return true
	case PlanMonthly:
		if s.Status == SubscriptionActive || s.Status == SubscriptionTrialing {
			return true
		}
		if s.Status == SubscriptionCancelled && s.EndsAt != nil {
			return now.Before(*s.EndsAt)
		}
	}
	return false
}
