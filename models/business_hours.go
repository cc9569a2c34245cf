package models

import (
	"gorm.io/gorm"
)

// BusinessHours is the recurring weekly schedule for the default location.
// Weekday is ISO (1=Monday .. 7=Sunday); at most one row per weekday.
// A missing or inactive row means the business is closed that weekday.
type BusinessHours struct {
	gorm.Model
	LocationID *uint `json:"location_id"`
	Weekday    int   `json:"weekday" gorm:"uniqueIndex"`
	OpenMin    *int  `json:"open_min"`
	CloseMin   *int  `json:"close_min"`
	Active     bool  `json:"active" gorm:"default:true"`
}

// BusinessException overrides the recurring schedule for one calendar date.
// Closed=true marks a full-day closure; otherwise OpenMin/CloseMin replace
// the recurring window for that date.
type BusinessException struct {
	gorm.Model
	Date     string `json:"date" gorm:"type:date;uniqueIndex"`
	OpenMin  *int   `json:"open_min"`
	CloseMin *int   `json:"close_min"`
	Closed   bool   `json:"closed"`
	Note     string `json:"note"`
}
