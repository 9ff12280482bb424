package payments

import (
	"errors"

	"github.com/nafhansa/JobTracker-sub000/models"

	"gorm.io/gorm"
)

// ErrUserNotResolved means none of the resolution strategies matched a
// user. The event is skipped and the webhook still acknowledged, to keep
// the provider from retrying forever.
var ErrUserNotResolved = errors.New("no user could be resolved from the event")

// ResolveUser locates the internal user for an outcome, trying in order:
// the explicit user id from the payload's custom field, the stored
// external subscription id, then the customer email. First hit wins.
func ResolveUser(database *gorm.DB, o Outcome) (string, error) {
	if o.UserID != "" {
		var user models.User
		if err := database.First(&user, "id = ?", o.UserID).Error; err == nil {
			return user.ID, nil
		}
	}

	if o.ExternalSubscriptionID != "" {
		var sub models.Subscription
		if err := database.First(&sub, "external_subscription_id = ?", o.ExternalSubscriptionID).Error; err == nil {
			return sub.UserID, nil
		}
	}

	if o.Email != "" {
		var user models.User
		if err := database.First(&user, "email = ?", o.Email).Error; err == nil {
			return user.ID, nil
		}
	}

	return "", ErrUserNotResolved
}
