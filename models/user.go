package models

import (
	"time"
)

type UserRole string

const (
	RoleClient     UserRole = "CLIENT"
	RoleEmployee   UserRole = "EMPLOYEE"
	RoleAdmin      UserRole = "ADMIN"
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"unique"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Role         UserRole  `json:"role" gorm:"default:CLIENT"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
