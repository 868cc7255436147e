package services

import (
	"testing"
	"time"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_TotalAndInventory(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	user := createUser(t, db, false)
	meal := createMeal(t, db, 500, 2, intPtr(3))

	order, err := svc.Create(user.ID, CreateOrderInput{
		Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, order.TotalAmount)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.False(t, order.IsFreeMeal)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 500.0, order.Items[0].PricePerItem)
	assert.Equal(t, 1000.0, order.Items[0].Subtotal)

	require.NotNil(t, unitsLeft(t, db, meal.ID))
	assert.Equal(t, 1, *unitsLeft(t, db, meal.ID))

	// a second order of 2 exceeds the remaining single unit
	_, err = svc.Create(user.ID, CreateOrderInput{
		Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 2}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "units")
	assert.Equal(t, 1, *unitsLeft(t, db, meal.ID))
}

func TestCreateOrder_SubtotalsSumToTotal(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	user := createUser(t, db, false)
	mealA := createMeal(t, db, 250, 5, nil)
	mealB := createMeal(t, db, 120.50, 3, nil)

	order, err := svc.Create(user.ID, CreateOrderInput{
		Items: []OrderItemRequest{
			{MealID: mealA.ID, Quantity: 2},
			{MealID: mealB.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	sum := 0.0
	for _, item := range order.Items {
		sum += item.Subtotal
	}
	assert.InDelta(t, order.TotalAmount, sum, 0.0001)
	assert.InDelta(t, 861.50, order.TotalAmount, 0.0001)
}

func TestCreateOrder_ValidationFailuresAreAtomic(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	user := createUser(t, db, false)

	t.Run("empty items", func(t *testing.T) {
		_, err := svc.Create(user.ID, CreateOrderInput{})
		require.Error(t, err)
	})

	t.Run("unavailable meal", func(t *testing.T) {
		meal := createMeal(t, db, 300, 2, nil)
		require.NoError(t, db.Model(meal).Update("is_available", false).Error)

		_, err := svc.Create(user.ID, CreateOrderInput{
			Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 1}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not available")
	})

	t.Run("cap exceeded", func(t *testing.T) {
		meal := createMeal(t, db, 300, 2, intPtr(10))

		_, err := svc.Create(user.ID, CreateOrderInput{
			Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 3}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "per person")
		assert.Equal(t, 10, *unitsLeft(t, db, meal.ID))
	})

	t.Run("one bad line rejects all, nothing persists", func(t *testing.T) {
		good := createMeal(t, db, 200, 5, intPtr(10))
		bad := createMeal(t, db, 100, 1, nil)

		var before int64
		db.Model(&models.Order{}).Count(&before)

		_, err := svc.Create(user.ID, CreateOrderInput{
			Items: []OrderItemRequest{
				{MealID: good.ID, Quantity: 2},
				{MealID: bad.ID, Quantity: 2}, // exceeds cap 1
			},
		})
		require.Error(t, err)

		var after int64
		db.Model(&models.Order{}).Count(&after)
		assert.Equal(t, before, after)
		assert.Equal(t, 10, *unitsLeft(t, db, good.ID))
	})
}

func TestCreateOrder_FreeMealDay(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	user := createUser(t, db, false)
	admin := createUser(t, db, true)
	meal := createMeal(t, db, 500, 2, nil)

	_, err := svc.FreeDays.Create(admin.ID, time.Now(), "Mashujaa Day")
	require.NoError(t, err)

	order, err := svc.Create(user.ID, CreateOrderInput{
		Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.True(t, order.IsFreeMeal)
	assert.Equal(t, models.StatusFree, order.Status)
	assert.Equal(t, 0.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 0.0, order.Items[0].PricePerItem)
	assert.Equal(t, 0.0, order.Items[0].Subtotal)
}

func TestCreateOrder_DeactivatedFreeDayCharges(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	user := createUser(t, db, false)
	admin := createUser(t, db, true)
	meal := createMeal(t, db, 500, 2, nil)

	day, err := svc.FreeDays.Create(admin.ID, time.Now(), "cancelled event")
	require.NoError(t, err)
	require.NoError(t, svc.FreeDays.Deactivate(day.ID))

	order, err := svc.Create(user.ID, CreateOrderInput{
		Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.False(t, order.IsFreeMeal)
	assert.Equal(t, 500.0, order.TotalAmount)
}

func TestCreateOrder_EmitsAdminNotification(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	user := createUser(t, db, false)
	meal := createMeal(t, db, 500, 2, nil)

	order, err := svc.Create(user.ID, CreateOrderInput{
		Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	var notifications []models.AdminNotification
	require.NoError(t, db.Where("type = ?", models.NotificationNewOrder).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	require.NotNil(t, notifications[0].RelatedOrderID)
	assert.Equal(t, order.ID, *notifications[0].RelatedOrderID)
}

func TestCreateOrder_LowStockNotification(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	user := createUser(t, db, false)
	meal := createMeal(t, db, 500, 5, intPtr(7))

	_, err := svc.Create(user.ID, CreateOrderInput{
		Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	var count int64
	db.Model(&models.AdminNotification{}).Where("type = ?", models.NotificationLowStock).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAdminCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	admin := createUser(t, db, true)
	user := createUser(t, db, false)
	meal := createMeal(t, db, 400, 2, nil)

	order, err := svc.CreateForUser(admin.ID, AdminCreateOrderInput{
		UserEmail:  user.Email,
		Items:      []OrderItemRequest{{MealID: meal.ID, Quantity: 1}},
		AdminNotes: "walk-in order",
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	require.NotNil(t, order.CreatedByAdminID)
	assert.Equal(t, admin.ID, *order.CreatedByAdminID)
	assert.True(t, order.IsAdminCreated())
	assert.Equal(t, "walk-in order", order.AdminNotes)

	// ordering on behalf of another admin is rejected
	_, err = svc.CreateForUser(admin.ID, AdminCreateOrderInput{
		UserEmail: admin.Email,
		Items:     []OrderItemRequest{{MealID: meal.ID, Quantity: 1}},
	})
	require.Error(t, err)
}

func TestGetOwned_RejectsCrossUserAccess(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	owner := createUser(t, db, false)
	other := createUser(t, db, false)
	meal := createMeal(t, db, 300, 2, nil)

	order, err := svc.Create(owner.ID, CreateOrderInput{
		Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.GetOwned(other.ID, order.ID)
	require.Error(t, err)

	got, err := svc.GetOwned(owner.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestUpdateStatus_TransitionGuards(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	user := createUser(t, db, false)
	meal := createMeal(t, db, 300, 2, nil)

	order, err := svc.Create(user.ID, CreateOrderInput{
		Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// forward walk
	for _, next := range []models.OrderStatus{
		models.StatusPaid, models.StatusConfirmed, models.StatusPreparing,
		models.StatusReady, models.StatusCompleted,
	} {
		order, err = svc.UpdateStatus(order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, order.Status)
	}

	// terminal: no moving back
	_, err = svc.UpdateStatus(order.ID, models.StatusPending)
	require.Error(t, err)
	_, err = svc.UpdateStatus(order.ID, models.StatusCancelled)
	require.Error(t, err)

	// free is never reachable via update
	_, err = svc.UpdateStatus(order.ID, models.StatusFree)
	require.Error(t, err)
}

func TestUpdateStatus_CancelFromAnyNonTerminal(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	user := createUser(t, db, false)
	meal := createMeal(t, db, 300, 5, nil)

	order, err := svc.Create(user.ID, CreateOrderInput{
		Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	order, err = svc.UpdateStatus(order.ID, models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, order.Status)

	// cancelled is terminal
	_, err = svc.UpdateStatus(order.ID, models.StatusPaid)
	require.Error(t, err)
}

func TestAdminList_Filters(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(t, db)
	meal := createMeal(t, db, 300, 5, nil)

	dept := &models.Department{Name: "Engineering", IsActive: true}
	require.NoError(t, db.Create(dept).Error)
	inDept := createUser(t, db, false)
	require.NoError(t, db.Model(inDept).Update("department_id", dept.ID).Error)
	outDept := createUser(t, db, false)

	_, err := svc.Create(inDept.ID, CreateOrderInput{Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 1}}})
	require.NoError(t, err)
	_, err = svc.Create(outDept.ID, CreateOrderInput{Items: []OrderItemRequest{{MealID: meal.ID, Quantity: 1}}})
	require.NoError(t, err)

	all, err := svc.AdminList(OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	deptID := dept.ID
	filtered, err := svc.AdminList(OrderFilter{DepartmentID: &deptID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, inDept.ID, filtered[0].UserID)

	pending := models.StatusPending
	byStatus, err := svc.AdminList(OrderFilter{Status: &pending})
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	today := time.Now()
	byDate, err := svc.AdminList(OrderFilter{Date: &today})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)
}
