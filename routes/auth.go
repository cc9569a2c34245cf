package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/controllers"
	"github.com/platforma-programari/booking-backend/middleware"
)

// SetupAuthRoutes configures authentication routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/login", controllers.Login)
	auth.Get("/me", middleware.Protected(), controllers.Me)
}
