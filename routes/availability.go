package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/controllers"
)

// SetupAvailabilityRoutes configures the public availability routes used by
// the booking form.
func SetupAvailabilityRoutes(app *fiber.App) {
	app.Get("/availability", controllers.GetAvailability)
	app.Get("/availability/calendar", controllers.GetAvailabilityCalendar)
}
