package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/controllers"
	"github.com/platforma-programari/booking-backend/middleware"
)

// SetupHoursRoutes configures business hours routes. Day/range resolution is
// public (the booking form greys out closed days); editing is admin only.
func SetupHoursRoutes(app *fiber.App) {
	hours := app.Group("/hours")
	hours.Get("/day", controllers.GetDayWindow)
	hours.Get("/range", controllers.GetRangeWindows)

	admin := hours.Group("", middleware.Protected(), middleware.RequireRole("SUPER_ADMIN", "ADMIN"))
	admin.Get("/", controllers.GetRecurringHours)
	admin.Put("/", controllers.UpsertRecurringHours)
	admin.Get("/exceptions", controllers.ListExceptions)
	admin.Post("/exceptions", controllers.UpsertException)
	admin.Delete("/exceptions/:id", controllers.DeleteException)
}
