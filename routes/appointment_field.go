package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/controllers"
	"github.com/platforma-programari/booking-backend/middleware"
)

// SetupAppointmentFieldRoutes configures the dynamic field schema routes.
// Listing is public so the booking form can render its extra inputs.
func SetupAppointmentFieldRoutes(app *fiber.App) {
	field := app.Group("/appointment-fields")
	field.Get("/", controllers.GetAppointmentFields)

	admin := field.Group("", middleware.Protected(), middleware.RequireRole("SUPER_ADMIN", "ADMIN"))
	admin.Post("/", controllers.CreateAppointmentField)
	admin.Put("/:id", controllers.UpdateAppointmentField)
	admin.Delete("/:id", controllers.DeleteAppointmentField)
}
