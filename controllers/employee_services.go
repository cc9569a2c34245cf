package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/db"
	"github.com/platforma-programari/booking-backend/models"
	"github.com/platforma-programari/booking-backend/utils"
)

// GetEmployeeServices lists the services assigned to one employee.
func GetEmployeeServices(c *fiber.Ctx) error {
	employeeID := c.QueryInt("employee_id")
	if employeeID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "employee_id is required",
		})
	}
	var employee models.Employee
	if err := db.DB.Preload("Services").First(&employee, employeeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(employee.Services)
}

type employeeServiceRequest struct {
	EmployeeID uint `json:"employee_id"`
	ServiceID  uint `json:"service_id"`
}

// AddEmployeeService assigns a service to an employee. Adding an existing
// assignment is a no-op.
func AddEmployeeService(c *fiber.Ctx) error {
	var req employeeServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.EmployeeID == 0 || req.ServiceID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "employee_id and service_id are required",
		})
	}

	var employee models.Employee
	if err := db.DB.First(&employee, req.EmployeeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}
	var service models.Service
	if err := db.DB.First(&service, req.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&employee).Association("Services").Append(&service); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to assign service",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// RemoveEmployeeService removes a service assignment from an employee.
func RemoveEmployeeService(c *fiber.Ctx) error {
	employeeID := c.QueryInt("employee_id")
	serviceID := c.QueryInt("service_id")
	if employeeID == 0 || serviceID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "employee_id and service_id are required",
		})
	}

	var employee models.Employee
	if err := db.DB.First(&employee, employeeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
			Error:   err.Error(),
		})
	}
	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&employee).Association("Services").Delete(&service); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to remove service",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}
