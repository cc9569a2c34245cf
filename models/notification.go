package models

import (
	"time"

	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationReminder NotificationType = "REMINDER"
)

// Notification logs an outbound SMS tied to an appointment.
type Notification struct {
	gorm.Model
	AppointmentID uint             `json:"appointment_id" gorm:"index"`
	Type          NotificationType `json:"type"`
	Status        string           `json:"status"`
	SentAt        time.Time        `json:"sent_at"`
}
