package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/controllers"
	"github.com/platforma-programari/booking-backend/middleware"
)

// SetupDashboardRoutes configures the admin dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", middleware.Protected(), middleware.RequireRole("SUPER_ADMIN", "ADMIN"), controllers.GetDashboardStats)
}
