package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int    `json:"price_cents"`
	LocationID      *uint  `json:"location_id"`
	Active          bool   `json:"active" gorm:"default:true"`
}
