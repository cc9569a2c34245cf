package models

import (
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	UserID     uint      `json:"user_id"`
	User       User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Position   string    `json:"position"`
	Active     bool      `json:"active" gorm:"default:true"`
	LocationID *uint     `json:"location_id"`
	Services   []Service `json:"services,omitempty" gorm:"many2many:employee_services;"`
}
