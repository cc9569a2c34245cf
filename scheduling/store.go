package scheduling

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/platforma-programari/booking-backend/models"
)

// Store is the gorm-backed implementation of the scheduling read
// interfaces. WithRowLocks returns a copy whose conflict probe locks the
// matching appointment rows, for use inside the booking transaction.
type Store struct {
	db       *gorm.DB
	lockRows bool
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) WithRowLocks() *Store {
	return &Store{db: s.db, lockRows: true}
}

func (s *Store) ExceptionForDate(date string) (*models.BusinessException, error) {
	var exc models.BusinessException
	err := s.db.Where("date = ?", date).First(&exc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exc, nil
}

func (s *Store) RecurringForWeekday(weekday int) (*models.BusinessHours, error) {
	var rec models.BusinessHours
	err := s.db.Where("location_id IS NULL AND weekday = ?", weekday).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) ActiveService(id uint) (*models.Service, error) {
	var svc models.Service
	err := s.db.Where("id = ? AND active = ?", id, true).First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *Store) EligibleEmployees(serviceID, employeeID uint) ([]EmployeeRef, error) {
	refs := []EmployeeRef{}
	q := s.db.Table("employees AS e").
		Select("e.id AS id, u.name AS name").
		Joins("JOIN users u ON u.id = e.user_id").
		Where("e.deleted_at IS NULL AND e.active = ?", true).
		Where("EXISTS (SELECT 1 FROM employee_services es WHERE es.employee_id = e.id AND es.service_id = ?)", serviceID)
	if employeeID != 0 {
		q = q.Where("e.id = ?", employeeID)
	}
	if err := q.Order("e.id").Scan(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

func (s *Store) BlockingIntervals(employeeIDs []uint, from, to time.Time) ([]Interval, error) {
	if len(employeeIDs) == 0 {
		return []Interval{}, nil
	}
	var rows []models.Appointment
	err := s.db.Model(&models.Appointment{}).
		Select("employee_id, start_time, end_time").
		Where("employee_id IN ?", employeeIDs).
		Where("status IN ?", models.BlockingStatuses).
		Where("start_time < ? AND end_time > ?", to, from).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	intervals := make([]Interval, len(rows))
	for i, r := range rows {
		intervals[i] = Interval{EmployeeID: r.EmployeeID, Start: r.StartTime, End: r.EndTime}
	}
	return intervals, nil
}

// LockEmployee takes the employee row's FOR UPDATE lock. Booking writers
// serialize on it per employee; see ReserveInterval.
func (s *Store) LockEmployee(employeeID uint) error {
	var id uint
	return s.db.Raw("SELECT id FROM employees WHERE id = ? FOR UPDATE", employeeID).Scan(&id).Error
}

func (s *Store) BlockingConflictExists(employeeID uint, start, end time.Time, excludeID uint) (bool, error) {
	sql := `
		SELECT id FROM appointments
		WHERE employee_id = ?
		  AND deleted_at IS NULL
		  AND status IN ('PENDING','BOOKED','WORKING')
		  AND NOT (end_time <= ? OR start_time >= ?)
	`
	args := []interface{}{employeeID, start, end}
	if excludeID != 0 {
		sql += " AND id <> ?"
		args = append(args, excludeID)
	}
	sql += " LIMIT 1"
	if s.lockRows {
		sql += " FOR UPDATE"
	}
	var ids []uint
	if err := s.db.Raw(sql, args...).Scan(&ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}
