package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/db"
	"github.com/platforma-programari/booking-backend/scheduling"
	"github.com/platforma-programari/booking-backend/utils"
)

func availabilityService() *scheduling.AvailabilityService {
	store := scheduling.NewStore(db.DB)
	return scheduling.NewAvailabilityService(store, scheduling.NewWindowResolver(store))
}

// GetAvailability returns the free slots of one day for a service.
// With employee_id the response is {slots: [...]}; without it, a
// per-employee breakdown {by_employee: [...]}.
func GetAvailability(c *fiber.Ctx) error {
	serviceID := uint(c.QueryInt("service_id"))
	date := c.Query("date")
	employeeID := uint(c.QueryInt("employee_id"))

	if serviceID == 0 || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "service_id and date are required",
		})
	}
	if !scheduling.ValidDate(date) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date must be YYYY-MM-DD",
		})
	}

	byEmployee, err := availabilityService().DaySlots(serviceID, date, employeeID)
	if err != nil {
		if errors.Is(err, scheduling.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found or inactive",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute availability",
			Error:   err.Error(),
		})
	}

	if employeeID != 0 {
		slots := []scheduling.Slot{}
		if len(byEmployee) > 0 {
			slots = byEmployee[0].Slots
		}
		return c.JSON(fiber.Map{"slots": slots})
	}
	return c.JSON(fiber.Map{"by_employee": byEmployee})
}

// GetAvailabilityCalendar flags every day of a month with whether any slot
// is free.
func GetAvailabilityCalendar(c *fiber.Ctx) error {
	serviceID := uint(c.QueryInt("service_id"))
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	employeeID := uint(c.QueryInt("employee_id"))

	if serviceID == 0 || year == 0 || month == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "service_id, year and month are required",
		})
	}
	if month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "month must be between 1 and 12",
		})
	}

	flags, err := availabilityService().MonthAvailability(serviceID, year, month, employeeID)
	if err != nil {
		if errors.Is(err, scheduling.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found or inactive",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute calendar availability",
			Error:   err.Error(),
		})
	}
	return c.JSON(flags)
}
