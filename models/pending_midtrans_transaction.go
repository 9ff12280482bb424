package models

import (
	"time"
)

// PendingMidtransTransaction tracks a Snap checkout between init and the
// terminal webhook/verify call, at which point the row is deleted.
type PendingMidtransTransaction struct {
	OrderID   string           `json:"orderId" gorm:"primaryKey;column:order_id"`
	UserID    string           `json:"userId" gorm:"type:uuid;not null;index"`
	Plan      SubscriptionPlan `json:"plan" gorm:"type:varchar(20)"`
	Amount    int64            `json:"amount"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (PendingMidtransTransaction) TableName() string {
	return "pending_midtrans_transactions"
}
