package routes

import (
	"github.com/Nyandiekahh/CA-Menu-Backend/controllers"
	"github.com/Nyandiekahh/CA-Menu-Backend/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the controllers the router wires up.
type Handlers struct {
	Departments   *controllers.DepartmentController
	FreeMealDays  *controllers.FreeMealDayController
	Meals         *controllers.MealController
	Orders        *controllers.OrderController
	Payments      *controllers.PaymentController
	Notifications *controllers.NotificationController
	Dashboard     *controllers.DashboardController
	Realtime      *controllers.RealtimeController
}

func SetupRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.Default())

	r.GET("/", controllers.LandingPage)
	r.GET("/api/status", controllers.APIStatus)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/verify-email", controllers.VerifyEmail)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Authenticated employee routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/auth/logout", controllers.Logout)

		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)

		api.GET("/departments", h.Departments.List)

		api.GET("/categories", h.Meals.ListCategories)
		api.GET("/meals", h.Meals.ListMeals)
		api.GET("/meals/:id", h.Meals.GetMeal)

		api.GET("/check-free-meal-today", h.FreeMealDays.CheckToday)

		api.GET("/orders", h.Orders.List)
		api.POST("/orders", h.Orders.Create)
		api.GET("/orders/:id", h.Orders.Get)

		api.POST("/payments", h.Payments.Submit)
		api.GET("/payments/:id", h.Payments.Get)

		api.GET("/dashboard/customer-stats", h.Dashboard.CustomerStats)
	}

	// Kitchen-admin routes
	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.GET("/departments", h.Departments.AdminList)
		admin.POST("/departments", h.Departments.Create)
		admin.PUT("/departments/:id", h.Departments.Update)
		admin.DELETE("/departments/:id", h.Departments.Deactivate)

		admin.GET("/free-meal-days", h.FreeMealDays.List)
		admin.POST("/free-meal-days", h.FreeMealDays.Create)
		admin.PUT("/free-meal-days/:id", h.FreeMealDays.Update)
		admin.DELETE("/free-meal-days/:id", h.FreeMealDays.Deactivate)

		admin.POST("/categories", h.Meals.CreateCategory)
		admin.PUT("/categories/:id", h.Meals.UpdateCategory)
		admin.DELETE("/categories/:id", h.Meals.DeleteCategory)

		admin.GET("/meals", h.Meals.AdminListMeals)
		admin.POST("/meals", h.Meals.CreateMeal)
		admin.PUT("/meals/:id", h.Meals.UpdateMeal)
		admin.DELETE("/meals/:id", h.Meals.DeleteMeal)

		admin.GET("/orders", h.Orders.AdminList)
		admin.POST("/orders", h.Orders.AdminCreate)
		admin.GET("/orders/date-range", h.Dashboard.OrdersByDateRange)
		admin.GET("/orders/:id", h.Orders.AdminGet)
		admin.PATCH("/orders/:id/status", h.Orders.AdminUpdateStatus)

		admin.GET("/payments", h.Payments.AdminList)
		admin.GET("/payments/:id", h.Payments.AdminGet)
		admin.PUT("/payments/:id", h.Payments.AdminUpdate)

		admin.GET("/notifications", h.Notifications.List)
		admin.PATCH("/notifications/:id/read", h.Notifications.MarkRead)
		admin.POST("/notifications/read-all", h.Notifications.MarkAllRead)

		admin.GET("/dashboard-stats", h.Dashboard.AdminStats)

		admin.GET("/ws/notifications", h.Realtime.NotificationsWS)
	}

	return r
}
