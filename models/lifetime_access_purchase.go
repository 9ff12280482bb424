package models

import (
	"time"
)

// LifetimeSlotLimit caps the number of lifetime plans that can ever be
// sold. Checked before a lifetime grant is recorded.
const LifetimeSlotLimit = 500

// LifetimeAccessPurchase is one row in the lifetime-purchase ledger,
// appended whenever a provider event grants the lifetime plan.
type LifetimeAccessPurchase struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	Provider  string    `json:"provider"`
	OrderID   string    `json:"orderId"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"createdAt"`
}

func (LifetimeAccessPurchase) TableName() string {
	return "lifetime_access_purchases"
}
