package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment records an M-Pesa transaction reference against an order.
// At most one payment exists per order, and never for a free-meal order.
type Payment struct {
	gorm.Model
	OrderID           uint `gorm:"uniqueIndex"`
	Order             Order
	TransactionCode   string `gorm:"size:20;not null"`
	AmountPaid        float64
	PhoneNumber       string `gorm:"size:15"`
	IsVerified        bool
	VerifiedByID      *uint
	VerifiedBy        *User `gorm:"foreignKey:VerifiedByID"`
	VerificationNotes string `gorm:"type:text"`
	VerifiedAt        *time.Time
}

// AmountRemaining clamps at zero; overpayment is tolerated.
// Requires Order to be loaded.
func (p *Payment) AmountRemaining() float64 {
	r := p.Order.TotalAmount - p.AmountPaid
	if r < 0 {
		return 0
	}
	return r
}

func (p *Payment) IsFullyPaid() bool {
	return p.AmountPaid >= p.Order.TotalAmount
}
