package models

import (
	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"   // awaiting payment
	StatusPaid      OrderStatus = "paid"      // payment submitted, possibly partial
	StatusConfirmed OrderStatus = "confirmed" // payment verified and fully paid
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
	StatusFree      OrderStatus = "free" // sponsor-paid, set only at creation
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusConfirmed, StatusPreparing,
		StatusReady, StatusCompleted, StatusCancelled, StatusFree:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from s to next.
// Same-state updates are accepted as no-ops, which keeps payment
// re-verification idempotent. completed, cancelled and free are terminal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, n := range orderTransitions[s] {
		if n == next {
			return true
		}
	}
	return false
}

type Order struct {
	gorm.Model
	UserID           uint `gorm:"index"`
	User             User
	Status           OrderStatus `gorm:"size:20;default:pending"`
	TotalAmount      float64
	IsFreeMeal       bool
	Notes            string `gorm:"type:text"`
	AdminNotes       string `gorm:"type:text"`
	CreatedByAdminID *uint
	CreatedByAdmin   *User `gorm:"foreignKey:CreatedByAdminID"`
	Items            []OrderItem
}

func (o *Order) ItemsCount() int {
	n := 0
	for _, it := range o.Items {
		n += int(it.Quantity)
	}
	return n
}

func (o *Order) IsAdminCreated() bool {
	return o.CreatedByAdminID != nil
}

// OrderItem freezes the meal's price at order-creation time. Later
// catalog price changes never touch past orders.
type OrderItem struct {
	gorm.Model
	OrderID      uint `gorm:"index"`
	MealID       uint
	Meal         Meal
	Quantity     uint
	PricePerItem float64
	Subtotal     float64
}
