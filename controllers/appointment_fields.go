package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/db"
	"github.com/platforma-programari/booking-backend/models"
	"github.com/platforma-programari/booking-backend/utils"
)

type appointmentFieldResponse struct {
	ID          uint             `json:"id"`
	FieldKey    string           `json:"field_key"`
	Label       string           `json:"label"`
	Type        models.FieldType `json:"type"`
	Required    bool             `json:"required"`
	Options     []string         `json:"options"`
	Active      bool             `json:"active"`
	ShowInTable bool             `json:"show_in_table"`
	ForBooking  bool             `json:"for_booking"`
	SortOrder   int              `json:"sort_order"`
}

func fieldToResponse(f models.AppointmentField) appointmentFieldResponse {
	return appointmentFieldResponse{
		ID:          f.ID,
		FieldKey:    f.FieldKey,
		Label:       f.Label,
		Type:        f.Type,
		Required:    f.Required,
		Options:     f.OptionList(),
		Active:      f.Active,
		ShowInTable: f.ShowInTable,
		ForBooking:  f.ForBooking,
		SortOrder:   f.SortOrder,
	}
}

// GetAppointmentFields lists field definitions; active=true and
// for_booking=true narrow the result for the public booking form.
func GetAppointmentFields(c *fiber.Ctx) error {
	q := db.DB.Model(&models.AppointmentField{})
	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}
	if c.Query("for_booking") == "true" {
		q = q.Where("for_booking = ?", true)
	}

	var fields []models.AppointmentField
	if err := q.Order("sort_order ASC, id ASC").Find(&fields).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch fields",
			Error:   err.Error(),
		})
	}
	out := make([]appointmentFieldResponse, len(fields))
	for i, f := range fields {
		out[i] = fieldToResponse(f)
	}
	return c.JSON(out)
}

type createFieldRequest struct {
	FieldKey    string           `json:"field_key"`
	Label       string           `json:"label"`
	Type        models.FieldType `json:"type"`
	Required    bool             `json:"required"`
	Options     []string         `json:"options"`
	Active      *bool            `json:"active"`
	ShowInTable bool             `json:"show_in_table"`
	ForBooking  bool             `json:"for_booking"`
	SortOrder   int              `json:"sort_order"`
}

// CreateAppointmentField defines a new dynamic field.
func CreateAppointmentField(c *fiber.Ctx) error {
	var req createFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.FieldKey == "" || req.Label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "field_key and label are required",
		})
	}
	switch req.Type {
	case models.FieldText, models.FieldNumber, models.FieldDate, models.FieldTextarea, models.FieldSelect:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "invalid field type",
		})
	}
	if req.Type == models.FieldSelect && len(req.Options) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "select fields require options",
		})
	}

	field := models.AppointmentField{
		FieldKey:    req.FieldKey,
		Label:       req.Label,
		Type:        req.Type,
		Required:    req.Required,
		Active:      true,
		ShowInTable: req.ShowInTable,
		ForBooking:  req.ForBooking,
		SortOrder:   req.SortOrder,
	}
	if req.Active != nil {
		field.Active = *req.Active
	}
	if err := field.SetOptions(req.Options); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid options",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Create(&field).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create field",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fieldToResponse(field))
}

type updateFieldRequest struct {
	Label       *string  `json:"label"`
	Required    *bool    `json:"required"`
	Options     []string `json:"options"`
	Active      *bool    `json:"active"`
	ShowInTable *bool    `json:"show_in_table"`
	ForBooking  *bool    `json:"for_booking"`
	SortOrder   *int     `json:"sort_order"`
}

// UpdateAppointmentField partially updates a field definition. The key and
// type are immutable once created; stored values reference the key.
func UpdateAppointmentField(c *fiber.Ctx) error {
	id := c.Params("id")
	var field models.AppointmentField
	if err := db.DB.First(&field, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Field not found",
			Error:   err.Error(),
		})
	}

	var req updateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Label != nil {
		field.Label = *req.Label
	}
	if req.Required != nil {
		field.Required = *req.Required
	}
	if req.Options != nil {
		if err := field.SetOptions(req.Options); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid options",
				Error:   err.Error(),
			})
		}
	}
	if req.Active != nil {
		field.Active = *req.Active
	}
	if req.ShowInTable != nil {
		field.ShowInTable = *req.ShowInTable
	}
	if req.ForBooking != nil {
		field.ForBooking = *req.ForBooking
	}
	if req.SortOrder != nil {
		field.SortOrder = *req.SortOrder
	}

	if err := db.DB.Save(&field).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update field",
			Error:   err.Error(),
		})
	}
	return c.JSON(fieldToResponse(field))
}

// DeleteAppointmentField soft-deletes a field definition. Stored values
// survive so completed appointments keep their history.
func DeleteAppointmentField(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Delete(&models.AppointmentField{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete field",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}
