package services

import (
	"testing"
	"time"

	"github.com/Nyandiekahh/CA-Menu-Backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStatsFor(t *testing.T) {
	db := setupTestDB(t)
	orders := newOrderService(t, db)
	payments := newPaymentService(t, db)
	dashboard := NewDashboardService(db)
	admin := createUser(t, db, true)

	alice := createUser(t, db, false)
	bob := createUser(t, db, false)

	paid := placeOrder(t, db, orders, alice.ID, 300, 1) // 300, paid below
	placeOrder(t, db, orders, bob.ID, 250, 2)           // 500, pending

	_, err := payments.Submit(alice.ID, SubmitPaymentInput{
		OrderID: paid.ID, TransactionCode: "QK12AB34CD", AmountPaid: 300,
	})
	require.NoError(t, err)

	// an admin-created order for bob
	meal := createMeal(t, db, 150, 5, nil)
	_, err = orders.CreateForUser(admin.ID, AdminCreateOrderInput{
		UserEmail: bob.Email,
		Items:     []OrderItemRequest{{MealID: meal.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	stats, err := dashboard.AdminStatsFor(time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.InDelta(t, 950, stats.TotalRevenue, 0.0001)
	assert.Equal(t, int64(0), stats.FreeMealOrders)
	assert.Equal(t, int64(1), stats.AdminCreatedOrders)
	assert.Equal(t, int64(1), stats.PendingPayments)
	assert.Equal(t, int64(3), stats.ActiveMeals)
	assert.Equal(t, int64(2), stats.TotalCustomers)
}

func TestAdminStatsFor_FreeOrdersExcludedFromRevenue(t *testing.T) {
	db := setupTestDB(t)
	orders := newOrderService(t, db)
	dashboard := NewDashboardService(db)
	admin := createUser(t, db, true)
	user := createUser(t, db, false)

	_, err := orders.FreeDays.Create(admin.ID, time.Now(), "launch day")
	require.NoError(t, err)
	placeOrder(t, db, orders, user.ID, 400, 1)

	stats, err := dashboard.AdminStatsFor(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.FreeMealOrders)
	assert.Equal(t, 0.0, stats.TotalRevenue)
}

func TestCustomerStatsFor(t *testing.T) {
	db := setupTestDB(t)
	orders := newOrderService(t, db)
	dashboard := NewDashboardService(db)
	user := createUser(t, db, false)
	other := createUser(t, db, false)

	first := placeOrder(t, db, orders, user.ID, 200, 1)
	placeOrder(t, db, orders, user.ID, 350, 1)
	placeOrder(t, db, orders, other.ID, 1000, 1) // not counted

	for _, next := range []models.OrderStatus{
		models.StatusPaid, models.StatusConfirmed, models.StatusPreparing,
		models.StatusReady, models.StatusCompleted,
	} {
		_, err := orders.UpdateStatus(first.ID, next)
		require.NoError(t, err)
	}

	stats, err := dashboard.CustomerStatsFor(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.CompletedOrders)
	assert.InDelta(t, 550, stats.TotalSpent, 0.0001)
}

func TestOrdersByDateRange(t *testing.T) {
	db := setupTestDB(t)
	orders := newOrderService(t, db)
	dashboard := NewDashboardService(db)

	dept := &models.Department{Name: "ICT", IsActive: true}
	require.NoError(t, db.Create(dept).Error)

	inDept := createUser(t, db, false)
	require.NoError(t, db.Model(inDept).Update("department_id", dept.ID).Error)
	outside := createUser(t, db, false)

	placeOrder(t, db, orders, inDept.ID, 300, 1)
	placeOrder(t, db, orders, outside.ID, 450, 1)

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now()

	report, err := dashboard.OrdersByDateRange(from, to, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), report.TotalOrders)
	assert.InDelta(t, 750, report.TotalRevenue, 0.0001)
	assert.Len(t, report.Orders, 2)

	report, err = dashboard.OrdersByDateRange(from, to, &dept.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.TotalOrders)
	assert.InDelta(t, 300, report.TotalRevenue, 0.0001)
	require.Len(t, report.Orders, 1)
	assert.Equal(t, inDept.ID, report.Orders[0].UserID)

	// window ending before the orders were placed
	report, err = dashboard.OrdersByDateRange(from.AddDate(0, 0, -7), from.AddDate(0, 0, -2), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), report.TotalOrders)
	assert.Empty(t, report.Orders)
}
