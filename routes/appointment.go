package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/controllers"
	"github.com/platforma-programari/booking-backend/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes. Create
// accepts anonymous bookings from the public form; everything else requires
// a staff account.
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	appointment.Post("/", middleware.AuthOptional(), controllers.CreateAppointment)

	staff := appointment.Group("", middleware.Protected(), middleware.RequireRole("SUPER_ADMIN", "ADMIN", "EMPLOYEE"))
	staff.Get("/", controllers.GetAllAppointments)
	staff.Get("/:id", controllers.GetAppointment)
	staff.Put("/:id", controllers.UpdateAppointment)
	staff.Put("/:id/work", controllers.WorkAppointment)
	staff.Put("/:id/cancel", controllers.CancelAppointment)
	staff.Put("/:id/complete", controllers.CompleteAppointment)
	staff.Get("/:id/photos", controllers.ListAppointmentPhotos)
	staff.Post("/:id/photos", controllers.UploadAppointmentPhotos)
}
