package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusBooked    AppointmentStatus = "BOOKED"
	StatusWorking   AppointmentStatus = "WORKING"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusOverdue   AppointmentStatus = "OVERDUE"
)

// BlockingStatuses are the statuses that occupy the employee's interval.
// COMPLETED, CANCELLED and OVERDUE never block a new booking.
var BlockingStatuses = []AppointmentStatus{StatusPending, StatusBooked, StatusWorking}

type Appointment struct {
	gorm.Model
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	CustomerEmail string            `json:"customer_email"`
	ServiceID     uint              `json:"service_id"`
	Service       Service           `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	EmployeeID    uint              `json:"employee_id"`
	Employee      Employee          `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	StartTime     time.Time         `json:"start_time"`
	EndTime       time.Time         `json:"end_time"`
	Status        AppointmentStatus `json:"status"`
	Notes         string            `json:"notes"`
	CreatedBy     UserRole          `json:"created_by"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// IsTerminal reports whether no further status transitions are allowed.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition validates the status state machine:
// PENDING -> BOOKED -> WORKING -> COMPLETED, CANCELLED from any non-terminal
// state, OVERDUE only via the automatic sweep from PENDING/BOOKED.
func (a *Appointment) CanTransition(to AppointmentStatus) error {
	if to == StatusCancelled {
		if a.Status.IsTerminal() {
			return fmt.Errorf("cannot cancel a %s appointment", a.Status)
		}
		return nil
	}
	switch a.Status {
	case StatusPending:
		if to == StatusBooked || to == StatusOverdue {
			return nil
		}
	case StatusBooked:
		if to == StatusWorking || to == StatusCompleted || to == StatusOverdue {
			return nil
		}
	case StatusWorking:
		if to == StatusCompleted {
			return nil
		}
	}
	return fmt.Errorf("invalid transition from %s to %s", a.Status, to)
}
