package routes

import (
	"aquadrop-backend/config"
	"aquadrop-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRouter(h *controllers.Handler, cfg *config.Config, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(log))

	api := r.Group("/api")
	{
		// Dashboard routes
		api.GET("/dashboard", h.GetDashboardOverview)

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", h.CreateCustomer)
			customers.GET("", h.GetCustomers)
			customers.GET("/:id", h.GetCustomer)
			customers.PUT("/:id", h.UpdateCustomer)
			customers.DELETE("/:id", h.DeleteCustomer)
			customers.PUT("/:id/status", h.UpdateCustomerStatus)
			customers.GET("/:id/services", h.GetCustomerServices)
			customers.POST("/:id/services", h.RecordService)
		}

		// Service log
		api.GET("/services", h.GetServices)

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.POST("", h.CreatePart)
			inventory.GET("", h.GetParts)
			inventory.GET("/:id", h.GetPart)
			inventory.PUT("/:id", h.UpdatePart)
			inventory.DELETE("/:id", h.DeletePart)
			inventory.POST("/:id/adjust", h.AdjustPart)
		}

		//Reports routes
		api.GET("/reports", h.GetReports)

		api.POST("/reminders/run", h.RunReminders)
	}

	return r
}
