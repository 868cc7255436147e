package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Notifier *NotificationService
}

func NewPaymentService(db *gorm.DB, log *zap.Logger, notifier *NotificationService) *PaymentService {
	return &PaymentService{DB: db, Log: log, Notifier: notifier}
}

type SubmitPaymentInput struct {
	OrderID         uint    `json:"order_id" binding:"required"`
	TransactionCode string  `json:"transaction_code" binding:"required"`
	AmountPaid      float64 `json:"amount_paid" binding:"required,gt=0"`
	PhoneNumber     string  `json:"phone_number"`
}

// Submit records an M-Pesa reference against the caller's order and
// moves it to paid. Rejected for free-meal orders and for orders that
// already carry a payment.
func (s *PaymentService) Submit(userID uint, input SubmitPaymentInput) (*models.Payment, error) {
	var order models.Order
	if err := s.DB.Preload("User").First(&order, input.OrderID).Error; err != nil {
		return nil, errNotFound("order not found")
	}
	if order.UserID != userID {
		return nil, errNotFound("order not found")
	}
	if order.IsFreeMeal {
		return nil, errBadRequest("Cannot create payment for free meal orders.")
	}

	var existing int64
	s.DB.Model(&models.Payment{}).Where("order_id = ?", order.ID).Count(&existing)
	if existing > 0 {
		return nil, errConflict("Payment already exists for this order.")
	}

	if !order.Status.CanTransition(models.StatusPaid) {
		return nil, errConflict(fmt.Sprintf("cannot submit payment for a %s order", order.Status))
	}

	payment := &models.Payment{
		OrderID:         order.ID,
		TransactionCode: input.TransactionCode,
		AmountPaid:      input.AmountPaid,
		PhoneNumber:     input.PhoneNumber,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", models.StatusPaid).Error
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("payment submitted",
		zap.Uint("payment_id", payment.ID),
		zap.Uint("order_id", order.ID),
		zap.Float64("amount", payment.AmountPaid),
	)

	orderID := order.ID
	s.Notifier.Emit(
		models.NotificationPaymentSubmitted,
		fmt.Sprintf("Payment Submitted for Order #%d", order.ID),
		fmt.Sprintf("Transaction code: %s - Amount: KSh %.2f", payment.TransactionCode, payment.AmountPaid),
		&orderID, nil,
	)

	return s.get(payment.ID)
}

func (s *PaymentService) get(paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.Preload("Order.User").Preload("VerifiedBy").First(&payment, paymentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("payment not found")
		}
		return nil, err
	}
	return &payment, nil
}

// GetOwned returns the payment only if the underlying order belongs to
// the caller.
func (s *PaymentService) GetOwned(userID, paymentID uint) (*models.Payment, error) {
	payment, err := s.get(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Order.UserID != userID {
		return nil, errNotFound("payment not found")
	}
	return payment, nil
}

func (s *PaymentService) AdminGet(paymentID uint) (*models.Payment, error) {
	return s.get(paymentID)
}

func (s *PaymentService) AdminList() ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Preload("Order.User").Preload("VerifiedBy").
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}

type PaymentUpdateInput struct {
	AmountPaid        *float64 `json:"amount_paid"`
	IsVerified        *bool    `json:"is_verified"`
	VerificationNotes *string  `json:"verification_notes"`
}

// AdminUpdate edits amount/verification/notes and stamps the verifier.
// When the payment ends up verified and fully paid, the order is
// promoted to confirmed. Re-verifying an already-confirmed payment with
// unchanged fields is a no-op.
func (s *PaymentService) AdminUpdate(adminID, paymentID uint, input PaymentUpdateInput) (*models.Payment, error) {
	payment, err := s.get(paymentID)
	if err != nil {
		return nil, err
	}

	if input.AmountPaid != nil {
		if *input.AmountPaid < 0 {
			return nil, errBadRequest("amount_paid cannot be negative")
		}
		payment.AmountPaid = *input.AmountPaid
	}
	if input.IsVerified != nil {
		payment.IsVerified = *input.IsVerified
	}
	if input.VerificationNotes != nil {
		payment.VerificationNotes = *input.VerificationNotes
	}

	now := time.Now()
	payment.VerifiedByID = &adminID
	payment.VerifiedAt = &now

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"amount_paid":        payment.AmountPaid,
			"is_verified":        payment.IsVerified,
			"verification_notes": payment.VerificationNotes,
			"verified_by_id":     adminID,
			"verified_at":        now,
		}
		if err := tx.Model(&models.Payment{}).Where("id = ?", payment.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		if payment.IsVerified && payment.IsFullyPaid() &&
			payment.Order.Status.CanTransition(models.StatusConfirmed) &&
			payment.Order.Status != models.StatusConfirmed {
			return tx.Model(&models.Order{}).Where("id = ?", payment.OrderID).
				Update("status", models.StatusConfirmed).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("payment updated",
		zap.Uint("payment_id", payment.ID),
		zap.Bool("verified", payment.IsVerified),
		zap.Float64("amount", payment.AmountPaid),
	)

	return s.get(payment.ID)
}
