package services

import (
	"time"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"

	"gorm.io/gorm"
)

type NotificationService struct {
	DB  *gorm.DB
	Hub *RealtimeHub
}

func NewNotificationService(db *gorm.DB, hub *RealtimeHub) *NotificationService {
	return &NotificationService{DB: db, Hub: hub}
}

// Emit appends a notification row and pushes it to connected admin
// dashboards. Fire-and-forget: callers never fail on a broken socket.
func (s *NotificationService) Emit(typ, title, message string, orderID, mealID *uint) {
	n := &models.AdminNotification{
		Type:           typ,
		Title:          title,
		Message:        message,
		RelatedOrderID: orderID,
		RelatedMealID:  mealID,
		CreatedAt:      time.Now(),
	}
	_ = s.DB.Create(n).Error

	if s.Hub != nil {
		s.Hub.Broadcast(map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
}

func (s *NotificationService) List(unreadOnly bool) ([]models.AdminNotification, error) {
	var out []models.AdminNotification
	q := s.DB.Order("created_at DESC")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	err := q.Find(&out).Error
	return out, err
}

func (s *NotificationService) MarkRead(id uint) error {
	res := s.DB.Model(&models.AdminNotification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotFound("notification not found")
	}
	return nil
}

func (s *NotificationService) MarkAllRead() error {
	return s.DB.Model(&models.AdminNotification{}).Where("is_read = ?", false).Update("is_read", true).Error
}
