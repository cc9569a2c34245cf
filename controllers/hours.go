package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/platforma-programari/booking-backend/db"
	"github.com/platforma-programari/booking-backend/models"
	"github.com/platforma-programari/booking-backend/scheduling"
	"github.com/platforma-programari/booking-backend/utils"
)

// GetRecurringHours lists the weekly schedule of the default location.
func GetRecurringHours(c *fiber.Ctx) error {
	var rows []models.BusinessHours
	if err := db.DB.Where("location_id IS NULL").Order("weekday").Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch business hours",
			Error:   err.Error(),
		})
	}
	return c.JSON(rows)
}

type upsertHoursRequest struct {
	Weekday  *int  `json:"weekday"`
	OpenMin  *int  `json:"open_min"`
	CloseMin *int  `json:"close_min"`
	Active   *bool `json:"active"`
}

// UpsertRecurringHours creates or updates the row for one weekday.
func UpsertRecurringHours(c *fiber.Ctx) error {
	var req upsertHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Weekday == nil || req.OpenMin == nil || req.CloseMin == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "weekday, open_min and close_min are required",
		})
	}
	if *req.Weekday < 1 || *req.Weekday > 7 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "weekday must be 1 (Monday) to 7 (Sunday)",
		})
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	var row models.BusinessHours
	err := db.DB.Where("location_id IS NULL AND weekday = ?", *req.Weekday).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.BusinessHours{Weekday: *req.Weekday, OpenMin: req.OpenMin, CloseMin: req.CloseMin, Active: active}
		if err := db.DB.Create(&row).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to save business hours",
				Error:   err.Error(),
			})
		}
		return c.JSON(fiber.Map{"ok": true})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save business hours",
			Error:   err.Error(),
		})
	}
	row.OpenMin = req.OpenMin
	row.CloseMin = req.CloseMin
	row.Active = active
	if err := db.DB.Save(&row).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save business hours",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ListExceptions returns per-date overrides, optionally restricted to
// [from, to].
func ListExceptions(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")

	q := db.DB.Model(&models.BusinessException{})
	if from != "" && to != "" {
		q = q.Where("date BETWEEN ? AND ?", from, to)
	}
	var rows []models.BusinessException
	if err := q.Order("date DESC").Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch exceptions",
			Error:   err.Error(),
		})
	}
	return c.JSON(rows)
}

type upsertExceptionRequest struct {
	Date     string `json:"date"`
	OpenMin  *int   `json:"open_min"`
	CloseMin *int   `json:"close_min"`
	Closed   bool   `json:"closed"`
	Note     string `json:"note"`
}

// UpsertException creates or updates the override for one date.
func UpsertException(c *fiber.Ctx) error {
	var req upsertExceptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Date == "" || !scheduling.ValidDate(req.Date) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date is required (YYYY-MM-DD)",
		})
	}
	if !req.Closed && (req.OpenMin == nil || req.CloseMin == nil) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "open_min and close_min are required unless closed",
		})
	}
	if req.Closed {
		req.OpenMin = nil
		req.CloseMin = nil
	}

	var row models.BusinessException
	err := db.DB.Where("date = ?", req.Date).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.BusinessException{Date: req.Date}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save exception",
			Error:   err.Error(),
		})
	}
	row.OpenMin = req.OpenMin
	row.CloseMin = req.CloseMin
	row.Closed = req.Closed
	row.Note = req.Note
	if err := db.DB.Save(&row).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save exception",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}

func DeleteException(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Unscoped().Delete(&models.BusinessException{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete exception",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// GetDayWindow resolves one date to closed or its open/close window.
func GetDayWindow(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" || !scheduling.ValidDate(date) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "date parameter is required (YYYY-MM-DD)",
		})
	}
	resolver := scheduling.NewWindowResolver(scheduling.NewStore(db.DB))
	window, err := resolver.Resolve(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve day window",
			Error:   err.Error(),
		})
	}
	return c.JSON(dayWindowResponse(date, window))
}

// GetRangeWindows resolves every date in [from, to].
func GetRangeWindows(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" || !scheduling.ValidDate(from) || !scheduling.ValidDate(to) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "from and to are required (YYYY-MM-DD)",
		})
	}
	start, _ := time.Parse("2006-01-02", from)
	end, _ := time.Parse("2006-01-02", to)
	if end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "invalid range",
		})
	}

	resolver := scheduling.NewWindowResolver(scheduling.NewStore(db.DB))
	results := []fiber.Map{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		window, err := resolver.Resolve(date)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to resolve day window",
				Error:   err.Error(),
			})
		}
		results = append(results, dayWindowResponse(date, window))
	}
	return c.JSON(results)
}

func dayWindowResponse(date string, window scheduling.DayWindow) fiber.Map {
	if window.Closed {
		return fiber.Map{"date": date, "closed": true, "source": window.Source}
	}
	return fiber.Map{
		"date":      date,
		"closed":    false,
		"open_min":  window.OpenMin,
		"close_min": window.CloseMin,
		"source":    window.Source,
	}
}
