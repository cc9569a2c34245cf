package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/platforma-programari/booking-backend/db"
	"github.com/platforma-programari/booking-backend/models"
	"github.com/platforma-programari/booking-backend/scheduling"
	"github.com/platforma-programari/booking-backend/utils"
)

// GetDashboardStats returns today's appointment counts per status plus a
// few headline totals for the admin overview.
func GetDashboardStats(c *fiber.Ctx) error {
	_ = scheduling.MarkOverdue(db.DB, time.Now().UTC())

	today, _, _ := scheduling.ToCivil(time.Now().UTC())
	dayStart, err := scheduling.CivilToUTC(today, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve today",
			Error:   err.Error(),
		})
	}
	dayEnd, err := scheduling.CivilToUTC(today, 24*60)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve today",
			Error:   err.Error(),
		})
	}

	type statusCount struct {
		Status models.AppointmentStatus `json:"status"`
		Count  int64                    `json:"count"`
	}
	var todayCounts []statusCount
	err = db.DB.Model(&models.Appointment{}).
		Select("status, COUNT(*) AS count").
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Group("status").
		Scan(&todayCounts).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute dashboard stats",
			Error:   err.Error(),
		})
	}

	byStatus := fiber.Map{}
	var todayTotal int64
	for _, sc := range todayCounts {
		byStatus[string(sc.Status)] = sc.Count
		todayTotal += sc.Count
	}

	var pendingTotal int64
	db.DB.Model(&models.Appointment{}).Where("status = ?", models.StatusPending).Count(&pendingTotal)
	var employeeTotal int64
	db.DB.Model(&models.Employee{}).Where("active = ?", true).Count(&employeeTotal)
	var serviceTotal int64
	db.DB.Model(&models.Service{}).Where("active = ?", true).Count(&serviceTotal)

	return c.JSON(fiber.Map{
		"date":             today,
		"today_total":      todayTotal,
		"today_by_status":  byStatus,
		"pending_total":    pendingTotal,
		"active_employees": employeeTotal,
		"active_services":  serviceTotal,
	})
}
