package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// lowStockThreshold triggers a low_stock admin notice once a meal's
// remaining units fall to or below it.
const lowStockThreshold = 5

type OrderService struct {
	DB       *gorm.DB
	Log      *zap.Logger
	FreeDays *FreeMealDayService
	Notifier *NotificationService
}

func NewOrderService(db *gorm.DB, log *zap.Logger, freeDays *FreeMealDayService, notifier *NotificationService) *OrderService {
	return &OrderService{DB: db, Log: log, FreeDays: freeDays, Notifier: notifier}
}

type OrderItemRequest struct {
	MealID   uint `json:"meal_id" binding:"required"`
	Quantity uint `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	Items []OrderItemRequest `json:"items" binding:"required,dive"`
	Notes string             `json:"notes"`
}

type AdminCreateOrderInput struct {
	UserEmail  string             `json:"user_email" binding:"required,email"`
	Items      []OrderItemRequest `json:"items" binding:"required,dive"`
	Notes      string             `json:"notes"`
	AdminNotes string             `json:"admin_notes"`
}

// Create places an order for the authenticated employee.
func (s *OrderService) Create(userID uint, input CreateOrderInput) (*models.Order, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, errNotFound("user not found")
	}
	return s.create(&user, nil, input.Items, input.Notes, "")
}

// CreateForUser places an order on an employee's behalf and stamps the
// creating admin on it.
func (s *OrderService) CreateForUser(adminID uint, input AdminCreateOrderInput) (*models.Order, error) {
	var admin models.User
	if err := s.DB.First(&admin, adminID).Error; err != nil {
		return nil, errNotFound("admin not found")
	}

	var user models.User
	err := s.DB.Where("email = ? AND is_kitchen_admin = ?", input.UserEmail, false).First(&user).Error
	if err != nil {
		return nil, errBadRequest("User with this email does not exist or is an admin.")
	}

	return s.create(&user, &admin, input.Items, input.Notes, input.AdminNotes)
}

// validateItems rejects the whole request on the first violated line.
// Returns the referenced meals keyed by ID for pricing.
func (s *OrderService) validateItems(items []OrderItemRequest) (map[uint]*models.Meal, error) {
	if len(items) == 0 {
		return nil, errBadRequest("At least one item is required.")
	}

	meals := make(map[uint]*models.Meal, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, errBadRequest("Quantity must be at least 1.")
		}

		meal, ok := meals[it.MealID]
		if !ok {
			var m models.Meal
			if err := s.DB.First(&m, it.MealID).Error; err != nil {
				return nil, errBadRequest(fmt.Sprintf("Meal %d does not exist.", it.MealID))
			}
			meal = &m
			meals[it.MealID] = meal
		}

		if !meal.IsAvailable {
			return nil, errBadRequest(fmt.Sprintf("%s is not available.", meal.Name))
		}
		if it.Quantity > meal.MaxPerPerson {
			return nil, errBadRequest(fmt.Sprintf("Maximum %d %s allowed per person.", meal.MaxPerPerson, meal.Name))
		}
		if meal.UnitsAvailable != nil && int(it.Quantity) > *meal.UnitsAvailable {
			return nil, errBadRequest(fmt.Sprintf("Only %d units of %s available.", *meal.UnitsAvailable, meal.Name))
		}
	}
	return meals, nil
}

// priceOrder freezes per-line prices and the order total. On a free
// meal day every line is frozen at zero. Shared by the self-service
// and admin-assisted creation paths.
func priceOrder(items []OrderItemRequest, meals map[uint]*models.Meal, isFreeDay bool) ([]models.OrderItem, float64) {
	lines := make([]models.OrderItem, 0, len(items))
	total := 0.0
	for _, it := range items {
		price := meals[it.MealID].Price
		if isFreeDay {
			price = 0
		}
		subtotal := price * float64(it.Quantity)
		lines = append(lines, models.OrderItem{
			MealID:       it.MealID,
			Quantity:     it.Quantity,
			PricePerItem: price,
			Subtotal:     subtotal,
		})
		total += subtotal
	}
	return lines, total
}

func (s *OrderService) create(user, admin *models.User, items []OrderItemRequest, notes, adminNotes string) (*models.Order, error) {
	meals, err := s.validateItems(items)
	if err != nil {
		return nil, err
	}

	isFreeDay := s.FreeDays.IsFreeMealDay(time.Now())
	lines, total := priceOrder(items, meals, isFreeDay)

	status := models.StatusPending
	if isFreeDay {
		status = models.StatusFree
	}

	order := &models.Order{
		UserID:      user.ID,
		Status:      status,
		TotalAmount: total,
		IsFreeMeal:  isFreeDay,
		Notes:       notes,
		AdminNotes:  adminNotes,
		Items:       lines,
	}
	if admin != nil {
		order.CreatedByAdminID = &admin.ID
	}

	var lowStock []*models.Meal
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		// Decrement finite inventory with a conditional UPDATE so
		// concurrent orders can never drive units below zero.
		for _, line := range lines {
			meal := meals[line.MealID]
			if meal.UnitsAvailable == nil {
				continue
			}
			res := tx.Model(&models.Meal{}).
				Where("id = ? AND units_available >= ?", line.MealID, line.Quantity).
				UpdateColumn("units_available", gorm.Expr("units_available - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errBadRequest(fmt.Sprintf("Only %d units of %s available.", *meal.UnitsAvailable, meal.Name))
			}
			if remaining := *meal.UnitsAvailable - int(line.Quantity); remaining <= lowStockThreshold {
				lowStock = append(lowStock, meal)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", user.ID),
		zap.Float64("total", order.TotalAmount),
		zap.Bool("free_meal", order.IsFreeMeal),
		zap.Bool("admin_created", admin != nil),
	)

	orderID := order.ID
	s.Notifier.Emit(
		models.NotificationNewOrder,
		fmt.Sprintf("New Order #%d", order.ID),
		fmt.Sprintf("Order from %s - KSh %.2f", user.FullName(), order.TotalAmount),
		&orderID, nil,
	)
	for _, meal := range lowStock {
		mealID := meal.ID
		s.Notifier.Emit(
			models.NotificationLowStock,
			fmt.Sprintf("Low Stock: %s", meal.Name),
			fmt.Sprintf("%s is running low on units.", meal.Name),
			nil, &mealID,
		)
	}

	return s.Get(order.ID)
}

// Get loads an order with its items, meals and owner.
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.
		Preload("Items.Meal").
		Preload("User.Department").
		Preload("CreatedByAdmin").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("order not found")
		}
		return nil, err
	}
	return &order, nil
}

// GetOwned enforces that the order belongs to the caller.
func (s *OrderService) GetOwned(userID, orderID uint) (*models.Order, error) {
	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, errNotFound("order not found")
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.
		Preload("Items.Meal").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

type OrderFilter struct {
	Date         *time.Time
	From         *time.Time
	To           *time.Time
	Status       *models.OrderStatus
	DepartmentID *uint
}

// AdminList returns all orders matching the filter, newest first.
func (s *OrderService) AdminList(filter OrderFilter) ([]models.Order, error) {
	q := s.DB.
		Preload("Items.Meal").
		Preload("User.Department").
		Preload("CreatedByAdmin")

	if filter.Date != nil {
		day := models.DateOnly(*filter.Date)
		q = q.Where("orders.created_at >= ? AND orders.created_at < ?", day, day.AddDate(0, 0, 1))
	}
	if filter.From != nil {
		q = q.Where("orders.created_at >= ?", models.DateOnly(*filter.From))
	}
	if filter.To != nil {
		q = q.Where("orders.created_at < ?", models.DateOnly(*filter.To).AddDate(0, 0, 1))
	}
	if filter.Status != nil {
		q = q.Where("orders.status = ?", *filter.Status)
	}
	if filter.DepartmentID != nil {
		q = q.Joins("JOIN users ON users.id = orders.user_id").
			Where("users.department_id = ?", *filter.DepartmentID)
	}

	var orders []models.Order
	err := q.Order("orders.created_at DESC").Find(&orders).Error
	return orders, err
}

// UpdateStatus moves an order along the workflow. Illegal transitions
// (backward moves, leaving a terminal state) are rejected.
func (s *OrderService) UpdateStatus(orderID uint, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, errBadRequest(fmt.Sprintf("unknown status %q", next))
	}
	if next == models.StatusFree {
		return nil, errBadRequest("free status is set only at order creation")
	}

	order, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(next) {
		return nil, errConflict(fmt.Sprintf("cannot move order from %s to %s", order.Status, next))
	}
	if order.Status == next {
		return order, nil
	}

	if err := s.DB.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("status", next).Error; err != nil {
		return nil, err
	}
	order.Status = next

	s.Log.Info("order status updated",
		zap.Uint("order_id", order.ID),
		zap.String("status", string(next)),
	)
	return order, nil
}
