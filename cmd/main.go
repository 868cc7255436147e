package main

import (
	"os"

	"github.com/Nyandiekahh/CA-Menu-Backend/config"
	"github.com/Nyandiekahh/CA-Menu-Backend/controllers"
	"github.com/Nyandiekahh/CA-Menu-Backend/routes"
	"github.com/Nyandiekahh/CA-Menu-Backend/services"
	"github.com/Nyandiekahh/CA-Menu-Backend/utils"
)

func main() {
	utils.InitLogger(os.Getenv("APP_ENV"))
	config.InitDB()
	utils.InitMailer()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	notifier := services.NewNotificationService(config.DB, hub)
	freeDays := services.NewFreeMealDayService(config.DB)

	h := &routes.Handlers{
		Departments:   controllers.NewDepartmentController(services.NewDepartmentService(config.DB)),
		FreeMealDays:  controllers.NewFreeMealDayController(freeDays),
		Meals:         controllers.NewMealController(services.NewCatalogService(config.DB)),
		Orders:        controllers.NewOrderController(services.NewOrderService(config.DB, utils.Log, freeDays, notifier)),
		Payments:      controllers.NewPaymentController(services.NewPaymentService(config.DB, utils.Log, notifier)),
		Notifications: controllers.NewNotificationController(notifier),
		Dashboard:     controllers.NewDashboardController(services.NewDashboardService(config.DB)),
		Realtime:      controllers.NewRealtimeController(hub),
	}

	r := routes.SetupRouter(h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
