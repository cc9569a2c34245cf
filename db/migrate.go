package db

import (
	"log"

	"github.com/platforma-programari/booking-backend/models"
)

// Migrate runs AutoMigrate for every model. Init must have been called
// first; only executed when explicitly requested.
func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Employee{},
		&models.BusinessHours{},
		&models.BusinessException{},
		&models.Appointment{},
		&models.AppointmentField{},
		&models.AppointmentFieldValue{},
		&models.AppointmentPhoto{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}
	log.Println("✅ Migrations applied successfully!")
	return nil
}
