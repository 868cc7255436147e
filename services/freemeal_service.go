package services

import (
	"errors"
	"time"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"

	"gorm.io/gorm"
)

type FreeMealDayService struct {
	DB *gorm.DB
}

func NewFreeMealDayService(db *gorm.DB) *FreeMealDayService {
	return &FreeMealDayService{DB: db}
}

// IsFreeMealDay reports whether an active free-meal designation exists
// for the calendar date of t. Evaluated at order creation; the result
// is frozen onto the order and never re-checked.
func (s *FreeMealDayService) IsFreeMealDay(t time.Time) bool {
	var count int64
	s.DB.Model(&models.FreeMealDay{}).
		Where("date = ? AND is_active = ?", models.DateOnly(t), true).
		Count(&count)
	return count > 0
}

func (s *FreeMealDayService) List() ([]models.FreeMealDay, error) {
	var days []models.FreeMealDay
	err := s.DB.Preload("CreatedBy").Order("date DESC").Find(&days).Error
	return days, err
}

func (s *FreeMealDayService) Get(id uint) (*models.FreeMealDay, error) {
	var day models.FreeMealDay
	if err := s.DB.Preload("CreatedBy").First(&day, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("free meal day not found")
		}
		return nil, err
	}
	return &day, nil
}

func (s *FreeMealDayService) Create(adminID uint, date time.Time, reason string) (*models.FreeMealDay, error) {
	day := &models.FreeMealDay{
		Date:        models.DateOnly(date),
		Reason:      reason,
		IsActive:    true,
		CreatedByID: &adminID,
	}

	var existing int64
	s.DB.Model(&models.FreeMealDay{}).Where("date = ?", day.Date).Count(&existing)
	if existing > 0 {
		return nil, errConflict("a free meal day already exists for this date")
	}

	if err := s.DB.Create(day).Error; err != nil {
		return nil, err
	}
	return day, nil
}

type FreeMealDayUpdate struct {
	Reason   *string
	IsActive *bool
}

func (s *FreeMealDayService) Update(id uint, input FreeMealDayUpdate) (*models.FreeMealDay, error) {
	day, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if input.Reason != nil {
		day.Reason = *input.Reason
	}
	if input.IsActive != nil {
		day.IsActive = *input.IsActive
	}
	if err := s.DB.Save(day).Error; err != nil {
		return nil, err
	}
	return day, nil
}

// Deactivate soft-disables the designation. Past designations are
// never hard-deleted so historical orders keep their context.
func (s *FreeMealDayService) Deactivate(id uint) error {
	res := s.DB.Model(&models.FreeMealDay{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotFound("free meal day not found")
	}
	return nil
}
