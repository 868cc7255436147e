package models

import "time"

const (
	NotificationNewOrder         = "new_order"
	NotificationPaymentSubmitted = "payment_submitted"
	NotificationLowStock         = "low_stock"
)

// AdminNotification is an append-only notice for kitchen admins,
// produced as a side effect of order/payment activity.
type AdminNotification struct {
	ID             uint   `gorm:"primaryKey"`
	Type           string `gorm:"size:20"`
	Title          string `gorm:"size:200"`
	Message        string `gorm:"type:text"`
	IsRead         bool
	RelatedOrderID *uint
	RelatedMealID  *uint
	CreatedAt      time.Time
}
