package payments

import (
	"errors"
	"time"

	"github.com/nafhansa/JobTracker-sub000/models"
	"github.com/nafhansa/JobTracker-sub000/utils"

	"gorm.io/gorm"
)

// ErrLifetimeSoldOut means the global lifetime slot cap is reached.
var ErrLifetimeSoldOut = errors.New("no lifetime slots remaining")

// ApplyOutcome merge-updates the user's subscription row according to a
// canonical outcome. The update is idempotent: reapplying the same
// outcome leaves the subscription in the same terminal state. Lifetime
// grants also append a row to the lifetime-purchase ledger, subject to
// the global slot cap. No locking; concurrent deliveries are
// last-write-wins.
func ApplyOutcome(database *gorm.DB, userID string, o Outcome) error {
	switch o.Kind {
	case OutcomeNone:
		utils.LogInfo("Webhook event from " + o.Provider + " ignored: " + o.Reason)
		return nil
	case OutcomeLifetime:
		return applyLifetime(database, userID, o)
	case OutcomeActivated, OutcomeRenewed:
		return mergeSubscription(database, userID, map[string]interface{}{
			"plan":                     o.Plan,
			"status":                   o.Status,
			"provider":                 o.Provider,
			"external_subscription_id": o.ExternalSubscriptionID,
			"renews_at":                o.RenewsAt,
		})
	case OutcomeCancelled:
		return applyCancellation(database, userID, o)
	default:
		return errors.New("unknown outcome kind: " + string(o.Kind))
	}
}

func applyCancellation(database *gorm.DB, userID string, o Outcome) error {
	var sub models.Subscription
	if err := database.First(&sub, "user_id = ?", userID).Error; err != nil {
		return err
	}

	endsAt := o.EndsAt
	if endsAt == nil {
		// No period end in the payload: let access run until the stored
		// renewal date.
		endsAt = sub.RenewsAt
	}

	return database.Model(&sub).Updates(map[string]interface{}{
		"status":  models.SubscriptionCancelled,
		"ends_at": endsAt,
	}).Error
}

func applyLifetime(database *gorm.DB, userID string, o Outcome) error {
	var already int64
	if err := database.Model(&models.LifetimeAccessPurchase{}).
		Where("user_id = ?", userID).Count(&already).Error; err != nil {
		return err
	}

	if already == 0 {
		remaining, err := LifetimeSlotsRemaining(database)
		if err != nil {
			return err
		}
		if remaining <= 0 {
			return ErrLifetimeSoldOut
		}

		purchase := models.LifetimeAccessPurchase{
			UserID:   userID,
			Provider: o.Provider,
			OrderID:  o.OrderID,
			Amount:   o.Amount,
			Currency: o.Currency,
		}
		if err := database.Create(&purchase).Error; err != nil {
			return err
		}
	}

	return mergeSubscription(database, userID, map[string]interface{}{
		"plan":      models.PlanLifetime,
		"status":    models.SubscriptionActive,
		"provider":  o.Provider,
		"renews_at": nil,
		"ends_at":   nil,
	})
}

// mergeSubscription updates the existing subscription row, or creates
// one for users missing theirs. Zero-valued hints are dropped so a
// sparse event cannot blank out stored identifiers.
func mergeSubscription(database *gorm.DB, userID string, fields map[string]interface{}) error {
	for k, v := range fields {
		switch val := v.(type) {
		case string:
			if val == "" {
				delete(fields, k)
			}
		case models.SubscriptionPlan:
			if val == "" {
				delete(fields, k)
			}
		case models.SubscriptionStatus:
			if val == "" {
				delete(fields, k)
			}
		case *time.Time:
			if val == nil {
				delete(fields, k)
			}
		}
	}

	var sub models.Subscription
	err := database.First(&sub, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = models.Subscription{UserID: userID}
		applyFields(&sub, fields)
		return database.Create(&sub).Error
	}
	if err != nil {
		return err
	}

	return database.Model(&sub).Updates(fields).Error
}

func applyFields(sub *models.Subscription, fields map[string]interface{}) {
	if v, ok := fields["plan"].(models.SubscriptionPlan); ok {
		sub.Plan = v
	}
	if v, ok := fields["status"].(models.SubscriptionStatus); ok {
		sub.Status = v
	}
	if v, ok := fields["provider"].(string); ok {
		sub.Provider = v
	}
	if v, ok := fields["external_subscription_id"].(string); ok {
		sub.ExternalSubscriptionID = v
	}
	if v, ok := fields["renews_at"].(*time.Time); ok {
		sub.RenewsAt = v
	}
	if v, ok := fields["ends_at"].(*time.Time); ok {
		sub.EndsAt = v
	}
}

// LifetimeSlotsRemaining returns how many lifetime plans are still
// sellable under the global cap.
func LifetimeSlotsRemaining(database *gorm.DB) (int, error) {
	var sold int64
	if err := database.Model(&models.LifetimeAccessPurchase{}).Count(&sold).Error; err != nil {
		return 0, err
	}

	remaining := models.LifetimeSlotLimit - int(sold)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
