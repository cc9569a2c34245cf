package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/db"
	"github.com/platforma-programari/booking-backend/models"
	"github.com/platforma-programari/booking-backend/utils"
)

// GetAllServices lists active services for the public booking form.
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Where("active = ?", true).Order("name").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

type createServiceRequest struct {
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int    `json:"price_cents"`
	Active          *bool  `json:"active"`
}

// CreateService adds a service to the catalog.
func CreateService(c *fiber.Ctx) error {
	var req createServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name is required",
		})
	}
	if req.DurationMinutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "duration_minutes must be positive",
		})
	}
	if req.PriceCents <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "price_cents must be positive",
		})
	}

	service := models.Service{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		Active:          true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}
	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

type updateServiceRequest struct {
	Name            *string `json:"name"`
	DurationMinutes *int    `json:"duration_minutes"`
	PriceCents      *int    `json:"price_cents"`
	Active          *bool   `json:"active"`
}

// UpdateService partially updates a service; omitted fields keep their
// current values.
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	var req updateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "duration_minutes must be positive",
			})
		}
		service.DurationMinutes = *req.DurationMinutes
	}
	if req.PriceCents != nil {
		if *req.PriceCents <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "price_cents must be positive",
			})
		}
		service.PriceCents = *req.PriceCents
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}
