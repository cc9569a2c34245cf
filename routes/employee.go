package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/controllers"
	"github.com/platforma-programari/booking-backend/middleware"
)

// SetupEmployeeRoutes configures employee routes. The public list feeds the
// booking form's employee picker.
func SetupEmployeeRoutes(app *fiber.App) {
	employee := app.Group("/employees")
	employee.Get("/", controllers.GetAllEmployees)

	employee.Get("/me", middleware.Protected(), controllers.GetMyEmployee)
	employee.Get("/me/services", middleware.Protected(), controllers.GetMyServices)

	admin := employee.Group("", middleware.Protected(), middleware.RequireRole("SUPER_ADMIN", "ADMIN"))
	admin.Post("/", controllers.CreateEmployee)
	admin.Post("/create-with-user", controllers.CreateEmployeeWithUser)

	capability := app.Group("/employee-services", middleware.Protected(), middleware.RequireRole("SUPER_ADMIN", "ADMIN"))
	capability.Get("/", controllers.GetEmployeeServices)
	capability.Post("/", controllers.AddEmployeeService)
	capability.Delete("/", controllers.RemoveEmployeeService)
}
