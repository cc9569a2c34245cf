package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/controllers"
	"github.com/platforma-programari/booking-backend/middleware"
)

// SetupServiceRoutes configures service catalog routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Post("/", middleware.Protected(), middleware.RequireRole("SUPER_ADMIN", "ADMIN"), controllers.CreateService)
	service.Put("/:id", middleware.Protected(), middleware.RequireRole("SUPER_ADMIN", "ADMIN"), controllers.UpdateService)
}
