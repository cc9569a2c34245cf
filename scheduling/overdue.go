package scheduling

import (
	"time"

	"gorm.io/gorm"

	"github.com/platforma-programari/booking-backend/models"
)

// MarkOverdue promotes every PENDING or BOOKED appointment whose start is
// already in the past to OVERDUE. It is idempotent and never touches
// CANCELLED or COMPLETED rows; the cron sweep and the opportunistic calls
// before listings both go through here.
func MarkOverdue(db *gorm.DB, now time.Time) error {
	return db.Model(&models.Appointment{}).
		Where("status IN ?", []models.AppointmentStatus{models.StatusPending, models.StatusBooked}).
		Where("start_time < ?", now).
		Update("status", models.StatusOverdue).Error
}
