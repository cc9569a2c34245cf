package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/platforma-programari/booking-backend/db"
	"github.com/platforma-programari/booking-backend/models"
	"github.com/platforma-programari/booking-backend/notifications"
	"github.com/platforma-programari/booking-backend/scheduling"
)

// StartCronJobs starts the background scheduler and returns it so the
// caller can Stop it at shutdown. Two jobs run:
//   - every minute: promote past PENDING/BOOKED appointments to OVERDUE
//   - daily at 08:00 Bucharest time: SMS reminders for today's bookings
func StartCronJobs() *cron.Cron {
	fmt.Println("Starting cron job scheduler...")

	loc, err := time.LoadLocation(scheduling.TZ)
	if err != nil {
		log.Fatalf("Failed to load timezone %s: %v", scheduling.TZ, err)
	}
	c := cron.New(cron.WithLocation(loc))

	if _, err := c.AddFunc("* * * * *", sweepOverdueAppointments); err != nil {
		log.Fatalf("Failed to add overdue sweep job: %v", err)
	}
	if _, err := c.AddFunc("0 8 * * *", sendDailyReminders); err != nil {
		log.Fatalf("Failed to add reminder job: %v", err)
	}

	c.Start()
	log.Println("Cron job scheduler started")
	return c
}

// sweepOverdueAppointments is best-effort: a transient DB failure is logged
// and retried on the next tick.
func sweepOverdueAppointments() {
	if err := scheduling.MarkOverdue(db.DB, time.Now().UTC()); err != nil {
		log.Printf("Overdue sweep failed: %v", err)
	}
}

// sendDailyReminders texts every customer with a BOOKED appointment today
// (Bucharest time) and logs the notification.
func sendDailyReminders() {
	today, _, _ := scheduling.ToCivil(time.Now().UTC())
	dayStart, err := scheduling.CivilToUTC(today, 0)
	if err != nil {
		log.Printf("Reminder job: %v", err)
		return
	}
	dayEnd, err := scheduling.CivilToUTC(today, 24*60)
	if err != nil {
		log.Printf("Reminder job: %v", err)
		return
	}

	var appointments []models.Appointment
	err = db.DB.
		Where("status = ?", models.StatusBooked).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		_, minute, _ := scheduling.ToCivil(appointment.StartTime)
		msg := fmt.Sprintf("Reminder: ai programare azi la %02d:%02d.", minute/60, minute%60)
		if err := notifications.SendSMS(appointment.CustomerPhone, msg); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		db.DB.Create(&models.Notification{
			AppointmentID: appointment.ID,
			Type:          models.NotificationReminder,
			Status:        "SENT",
			SentAt:        time.Now().UTC(),
		})
	}
	if len(appointments) > 0 {
		log.Printf("Reminders sent: %d", len(appointments))
	}
}
