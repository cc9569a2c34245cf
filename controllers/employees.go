package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/platforma-programari/booking-backend/db"
	"github.com/platforma-programari/booking-backend/models"
	"github.com/platforma-programari/booking-backend/utils"
)

type employeeListItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// GetAllEmployees lists active employees, optionally restricted to those
// offering a given service.
func GetAllEmployees(c *fiber.Ctx) error {
	serviceID := uint(c.QueryInt("service_id"))

	q := db.DB.Table("employees AS e").
		Select("e.id, u.name, e.position").
		Joins("JOIN users u ON u.id = e.user_id").
		Where("e.deleted_at IS NULL AND e.active = ?", true)
	if serviceID != 0 {
		q = q.Where("EXISTS (SELECT 1 FROM employee_services es WHERE es.employee_id = e.id AND es.service_id = ?)", serviceID)
	}

	var out []employeeListItem
	if err := q.Order("e.id").Scan(&out).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch employees",
			Error:   err.Error(),
		})
	}
	return c.JSON(out)
}

type createEmployeeRequest struct {
	UserID   uint   `json:"user_id"`
	Position string `json:"position"`
}

// CreateEmployee promotes an existing user to an employee.
func CreateEmployee(c *fiber.Ctx) error {
	var req createEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.UserID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "user_id is required",
		})
	}

	var user models.User
	if err := db.DB.First(&user, req.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}

	employee := models.Employee{UserID: req.UserID, Position: req.Position, Active: true}
	if err := db.DB.Create(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create employee",
			Error:   err.Error(),
		})
	}

	if user.Role == models.RoleClient {
		user.Role = models.RoleEmployee
		db.DB.Save(&user)
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

type createEmployeeWithUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Position string `json:"position"`
}

// CreateEmployeeWithUser creates a user account and its employee row in one
// step. Used by admins onboarding new staff.
func CreateEmployeeWithUser(c *fiber.Ctx) error {
	var req createEmployeeWithUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name, email and password are required",
		})
	}

	var existing models.User
	err := db.DB.Where("email = ?", strings.ToLower(req.Email)).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "A user with this email already exists",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check existing user",
			Error:   err.Error(),
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to hash password",
			Error:   err.Error(),
		})
	}

	var employee models.Employee
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			Phone:        req.Phone,
			PasswordHash: string(hash),
			Role:         models.RoleEmployee,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		employee = models.Employee{UserID: user.ID, Position: req.Position, Active: true}
		return tx.Create(&employee).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create employee",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// GetMyEmployee resolves the authenticated user's own employee profile.
func GetMyEmployee(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	var employee models.Employee
	if err := db.DB.Preload("User").Where("user_id = ?", userID).First(&employee).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "You are not registered as an employee",
			Error:   err.Error(),
		})
	}
	return c.JSON(employee)
}

// GetMyServices lists the services the authenticated employee offers.
func GetMyServices(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	var employee models.Employee
	if err := db.DB.Preload("Services").Where("user_id = ?", userID).First(&employee).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "You are not registered as an employee",
			Error:   err.Error(),
		})
	}
	return c.JSON(employee.Services)
}
