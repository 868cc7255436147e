package services

import (
	"fmt"
	"testing"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Department{},
		&models.User{},
		&models.EmailVerification{},
		&models.RevokedToken{},
		&models.MealCategory{},
		&models.Meal{},
		&models.FreeMealDay{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.AdminNotification{},
	))
	return db
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(db, zap.NewNop(), NewFreeMealDayService(db), NewNotificationService(db, nil))
}

func newPaymentService(t *testing.T, db *gorm.DB) *PaymentService {
	t.Helper()
	return NewPaymentService(db, zap.NewNop(), NewNotificationService(db, nil))
}

var userSeq int

func createUser(t *testing.T, db *gorm.DB, admin bool) *models.User {
	t.Helper()
	userSeq++
	user := &models.User{
		Email:           fmt.Sprintf("user%d@ca.go.ke", userSeq),
		Username:        fmt.Sprintf("user%d", userSeq),
		Password:        "hashed",
		FirstName:       "Test",
		LastName:        fmt.Sprintf("User%d", userSeq),
		IsKitchenAdmin:  admin,
		IsEmailVerified: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createMeal(t *testing.T, db *gorm.DB, price float64, maxPerPerson uint, units *int) *models.Meal {
	t.Helper()
	category := &models.MealCategory{Name: fmt.Sprintf("Category %d", userSeq)}
	userSeq++
	require.NoError(t, db.Create(category).Error)

	meal := &models.Meal{
		Name:           fmt.Sprintf("Meal %d", userSeq),
		Description:    "test meal",
		Price:          price,
		CategoryID:     category.ID,
		IsAvailable:    true,
		MaxPerPerson:   maxPerPerson,
		UnitsAvailable: units,
	}
	require.NoError(t, db.Create(meal).Error)
	return meal
}

func intPtr(v int) *int { return &v }

func unitsLeft(t *testing.T, db *gorm.DB, mealID uint) *int {
	t.Helper()
	var meal models.Meal
	require.NoError(t, db.First(&meal, mealID).Error)
	return meal.UnitsAvailable
}
