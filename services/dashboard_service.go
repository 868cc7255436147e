package services

import (
	"time"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"

	"gorm.io/gorm"
)

// DashboardService computes read-only rollups. Figures are recomputed
// per request; nothing is materialized.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type AdminStats struct {
	Date               string  `json:"date"`
	TotalOrders        int64   `json:"total_orders"`
	TotalRevenue       float64 `json:"total_revenue"`
	FreeMealOrders     int64   `json:"free_meal_orders"`
	AdminCreatedOrders int64   `json:"admin_created_orders"`
	PendingPayments    int64   `json:"pending_payments"`
	ActiveMeals        int64   `json:"active_meals"`
	TotalCustomers     int64   `json:"total_customers"`
}

// AdminStatsFor aggregates the kitchen-admin dashboard for one date
// (default: today).
func (s *DashboardService) AdminStatsFor(date time.Time) (*AdminStats, error) {
	day := models.DateOnly(date)
	next := day.AddDate(0, 0, 1)
	dayOrders := s.DB.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", day, next)

	stats := &AdminStats{Date: day.Format("2006-01-02")}

	if err := dayOrders.Session(&gorm.Session{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	// Revenue counts real money only; free-meal orders are excluded.
	var revenue *float64
	err := s.DB.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ? AND is_free_meal = ?", day, next, false).
		Select("SUM(total_amount)").Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	if revenue != nil {
		stats.TotalRevenue = *revenue
	}

	dayOrders.Session(&gorm.Session{}).Where("is_free_meal = ?", true).Count(&stats.FreeMealOrders)
	dayOrders.Session(&gorm.Session{}).Where("created_by_admin_id IS NOT NULL").Count(&stats.AdminCreatedOrders)

	s.DB.Model(&models.Payment{}).Where("is_verified = ?", false).Count(&stats.PendingPayments)
	s.DB.Model(&models.Meal{}).Where("is_available = ?", true).Count(&stats.ActiveMeals)
	s.DB.Model(&models.User{}).Where("is_kitchen_admin = ?", false).Count(&stats.TotalCustomers)

	return stats, nil
}

type CustomerStats struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	TotalSpent      float64 `json:"total_spent"`
}

func (s *DashboardService) CustomerStatsFor(userID uint) (*CustomerStats, error) {
	stats := &CustomerStats{}
	userOrders := s.DB.Model(&models.Order{}).Where("user_id = ?", userID)

	if err := userOrders.Session(&gorm.Session{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	userOrders.Session(&gorm.Session{}).
		Where("status IN ?", []models.OrderStatus{models.StatusPending, models.StatusPaid}).
		Count(&stats.PendingOrders)
	userOrders.Session(&gorm.Session{}).
		Where("status = ?", models.StatusCompleted).
		Count(&stats.CompletedOrders)

	var spent *float64
	err := s.DB.Model(&models.Order{}).
		Where("user_id = ? AND is_free_meal = ?", userID, false).
		Select("SUM(total_amount)").Scan(&spent).Error
	if err != nil {
		return nil, err
	}
	if spent != nil {
		stats.TotalSpent = *spent
	}

	return stats, nil
}

type DateRangeReport struct {
	From           string         `json:"from"`
	To             string         `json:"to"`
	TotalOrders    int64          `json:"total_orders"`
	TotalRevenue   float64        `json:"total_revenue"`
	FreeMealOrders int64          `json:"free_meal_orders"`
	Orders         []models.Order `json:"orders"`
}

// OrdersByDateRange lists orders in [from, to] with summary figures,
// optionally narrowed to one department.
func (s *DashboardService) OrdersByDateRange(from, to time.Time, departmentID *uint) (*DateRangeReport, error) {
	start := models.DateOnly(from)
	end := models.DateOnly(to).AddDate(0, 0, 1)

	base := s.DB.Model(&models.Order{}).
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end)
	if departmentID != nil {
		base = base.Joins("JOIN users ON users.id = orders.user_id").
			Where("users.department_id = ?", *departmentID)
	}

	report := &DateRangeReport{
		From: start.Format("2006-01-02"),
		To:   models.DateOnly(to).Format("2006-01-02"),
	}

	if err := base.Session(&gorm.Session{}).Count(&report.TotalOrders).Error; err != nil {
		return nil, err
	}

	var revenue *float64
	if err := base.Session(&gorm.Session{}).
		Where("orders.is_free_meal = ?", false).
		Select("SUM(orders.total_amount)").Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		report.TotalRevenue = *revenue
	}

	base.Session(&gorm.Session{}).Where("orders.is_free_meal = ?", true).Count(&report.FreeMealOrders)

	q := s.DB.Preload("Items.Meal").Preload("User.Department").
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end)
	if departmentID != nil {
		q = q.Joins("JOIN users ON users.id = orders.user_id").
			Where("users.department_id = ?", *departmentID)
	}
	if err := q.Order("orders.created_at DESC").Find(&report.Orders).Error; err != nil {
		return nil, err
	}

	return report, nil
}
