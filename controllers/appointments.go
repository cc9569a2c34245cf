package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platforma-programari/booking-backend/db"
	"github.com/platforma-programari/booking-backend/models"
	"github.com/platforma-programari/booking-backend/notifications"
	"github.com/platforma-programari/booking-backend/realtime"
	"github.com/platforma-programari/booking-backend/scheduling"
	"github.com/platforma-programari/booking-backend/utils"
)

var (
	errEmployeeNotEligible = errors.New("employee does not offer this service")
	errNoEmployeeAvailable = errors.New("no employee available for this interval")
)

// getEmployeeIDForUser maps a user identity to its employee row; 0 when the
// user is not an employee.
func getEmployeeIDForUser(userID uint) uint {
	var emp models.Employee
	if err := db.DB.Where("user_id = ?", userID).First(&emp).Error; err != nil {
		return 0
	}
	return emp.ID
}

// loadCustomFields fetches the dynamic field values of the given
// appointments as appointment_id -> field_key -> value.
func loadCustomFields(appointmentIDs []uint) (map[uint]map[string]string, error) {
	out := map[uint]map[string]string{}
	if len(appointmentIDs) == 0 {
		return out, nil
	}
	var rows []models.AppointmentFieldValue
	if err := db.DB.Where("appointment_id IN ?", appointmentIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		if out[r.AppointmentID] == nil {
			out[r.AppointmentID] = map[string]string{}
		}
		out[r.AppointmentID][r.FieldKey] = r.Value
	}
	return out, nil
}

// saveCustomFields upserts the submitted values, ignoring keys that are not
// part of the active field schema.
func saveCustomFields(tx *gorm.DB, appointmentID uint, custom map[string]string) error {
	if len(custom) == 0 {
		return nil
	}
	var defs []models.AppointmentField
	if err := tx.Where("active = ?", true).Find(&defs).Error; err != nil {
		return err
	}
	allowed := map[string]bool{}
	for _, d := range defs {
		allowed[d.FieldKey] = true
	}
	for key, value := range custom {
		if !allowed[key] {
			continue
		}
		row := models.AppointmentFieldValue{AppointmentID: appointmentID, FieldKey: key, Value: value}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "appointment_id"}, {Name: "field_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// validateCustomFieldTypes rejects values that fail their field's typed
// validation (number, date, select option).
func validateCustomFieldTypes(custom map[string]string) error {
	if len(custom) == 0 {
		return nil
	}
	var defs []models.AppointmentField
	if err := db.DB.Where("active = ?", true).Find(&defs).Error; err != nil {
		return err
	}
	for _, d := range defs {
		if v, ok := custom[d.FieldKey]; ok && !d.Validate(v) {
			return fmt.Errorf("invalid value for field %q", d.FieldKey)
		}
	}
	return nil
}

type appointmentResponse struct {
	models.Appointment
	CustomFields map[string]string `json:"custom_fields"`
}

// GetAllAppointments lists appointments. Employees only see their own;
// created_by, status and limit filters are supported.
func GetAllAppointments(c *fiber.Ctx) error {
	// promote overdue rows before listing, best-effort
	_ = scheduling.MarkOverdue(db.DB, time.Now().UTC())

	q := db.DB.Preload("Service").Preload("Employee.User")

	role, _ := c.Locals("role").(string)
	if role == string(models.RoleEmployee) {
		userID, _ := c.Locals("userID").(uint)
		q = q.Where("employee_id = ?", getEmployeeIDForUser(userID))
	}

	if cb := strings.ToUpper(strings.TrimSpace(c.Query("created_by"))); cb != "" {
		switch models.UserRole(cb) {
		case models.RoleClient, models.RoleEmployee, models.RoleAdmin, models.RoleSuperAdmin:
			q = q.Where("created_by = ?", cb)
		}
	}
	if st := strings.ToUpper(strings.TrimSpace(c.Query("status"))); st != "" {
		switch models.AppointmentStatus(st) {
		case models.StatusPending, models.StatusBooked, models.StatusWorking,
			models.StatusCompleted, models.StatusCancelled, models.StatusOverdue:
			q = q.Where("status = ?", st)
		}
	}

	limit := 200
	if l := c.QueryInt("limit"); l > 0 {
		limit = l
		if limit > 500 {
			limit = 500
		}
	}

	var appointments []models.Appointment
	if err := q.Order("start_time DESC").Limit(limit).Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	ids := make([]uint, len(appointments))
	for i, a := range appointments {
		ids[i] = a.ID
	}
	custom, err := loadCustomFields(ids)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch custom fields",
			Error:   err.Error(),
		})
	}

	out := make([]appointmentResponse, len(appointments))
	for i, a := range appointments {
		cf := custom[a.ID]
		if cf == nil {
			cf = map[string]string{}
		}
		out[i] = appointmentResponse{Appointment: a, CustomFields: cf}
	}
	return c.JSON(out)
}

// GetAppointment returns one appointment with its custom fields.
func GetAppointment(c *fiber.Ctx) error {
	_ = scheduling.MarkOverdue(db.DB, time.Now().UTC())

	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.Preload("Service").Preload("Employee.User").First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	custom, err := loadCustomFields([]uint{appointment.ID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch custom fields",
			Error:   err.Error(),
		})
	}
	cf := custom[appointment.ID]
	if cf == nil {
		cf = map[string]string{}
	}
	return c.JSON(appointmentResponse{Appointment: appointment, CustomFields: cf})
}

type createAppointmentRequest struct {
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	CustomerEmail string            `json:"customer_email"`
	ServiceID     uint              `json:"service_id"`
	EmployeeID    uint              `json:"employee_id"`
	StartTimeUTC  string            `json:"start_time_utc"`
	Notes         string            `json:"notes"`
	CustomFields  map[string]string `json:"custom_fields"`
}

// CreateAppointment books a new appointment. The public form posts without
// credentials (status PENDING); staff bookings start as BOOKED. Employee
// selection falls back to auto-assigning the first free capable employee.
func CreateAppointment(c *fiber.Ctx) error {
	var req createAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.CustomerName == "" || req.CustomerPhone == "" || req.ServiceID == 0 || req.StartTimeUTC == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "customer_name, customer_phone, service_id and start_time_utc are required",
		})
	}

	store := scheduling.NewStore(db.DB)
	svc, err := store.ActiveService(req.ServiceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load service",
			Error:   err.Error(),
		})
	}
	if svc == nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found or inactive",
		})
	}

	start, err := time.Parse(time.RFC3339, req.StartTimeUTC)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start_time_utc",
			Error:   err.Error(),
		})
	}
	start = start.UTC()
	if !start.After(time.Now().UTC()) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot create appointments in the past",
		})
	}
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	resolver := scheduling.NewWindowResolver(store)
	if err := resolver.ValidateStart(start); err != nil {
		return dayWindowError(c, err)
	}

	// role determines created_by and the initial status
	role, _ := c.Locals("role").(string)
	createdBy := models.RoleClient
	initialStatus := models.StatusPending
	switch models.UserRole(role) {
	case models.RoleAdmin, models.RoleSuperAdmin:
		createdBy = models.RoleAdmin
		initialStatus = models.StatusBooked
	case models.RoleEmployee:
		createdBy = models.RoleEmployee
		initialStatus = models.StatusBooked
	}

	// required booking fields must be present and typed values valid
	var bookingDefs []models.AppointmentField
	err = db.DB.Where("active = ? AND for_booking = ?", true, true).
		Order("sort_order ASC, id ASC").Find(&bookingDefs).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load booking fields",
			Error:   err.Error(),
		})
	}
	missing := []string{}
	for _, d := range bookingDefs {
		if d.Required && strings.TrimSpace(req.CustomFields[d.FieldKey]) == "" {
			missing = append(missing, d.Label)
		}
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Please fill in all required fields",
			"missing": missing,
		})
	}
	if err := validateCustomFieldTypes(req.CustomFields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid custom field value",
			Error:   err.Error(),
		})
	}

	appointment := models.Appointment{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		ServiceID:     req.ServiceID,
		StartTime:     start,
		EndTime:       end,
		Status:        initialStatus,
		Notes:         req.Notes,
		CreatedBy:     createdBy,
	}

	// Each candidate is reserved under the employee's row lock: the conflict
	// probe alone has nothing to lock when the slot is still free, so two
	// concurrent writers would both pass it. Serializing on the employee row
	// makes the second writer block until the first commits and then see the
	// fresh appointment in its re-check.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := scheduling.NewStore(tx).WithRowLocks()

		insert := func() error {
			if err := tx.Create(&appointment).Error; err != nil {
				return err
			}
			return saveCustomFields(tx, appointment.ID, req.CustomFields)
		}

		if req.EmployeeID != 0 {
			eligible, err := txStore.EligibleEmployees(req.ServiceID, req.EmployeeID)
			if err != nil {
				return err
			}
			if len(eligible) == 0 {
				return errEmployeeNotEligible
			}
			appointment.EmployeeID = req.EmployeeID
			return scheduling.ReserveInterval(txStore, req.EmployeeID, start, end, 0, insert)
		}

		eligible, err := txStore.EligibleEmployees(req.ServiceID, 0)
		if err != nil {
			return err
		}
		for _, emp := range eligible {
			appointment.EmployeeID = emp.ID
			err := scheduling.ReserveInterval(txStore, emp.ID, start, end, 0, insert)
			if err == nil {
				return nil
			}
			if !errors.Is(err, scheduling.ErrSlotTaken) {
				return err
			}
		}
		return errNoEmployeeAvailable
	})
	if err != nil {
		switch {
		case errors.Is(err, errEmployeeNotEligible):
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Employee does not offer this service",
			})
		case errors.Is(err, scheduling.ErrSlotTaken):
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Employee is busy at that time",
			})
		case errors.Is(err, errNoEmployeeAvailable):
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "No employee available for this interval",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to create appointment",
				Error:   err.Error(),
			})
		}
	}

	notifyBookingCreated(&appointment, svc.Name)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":          appointment.ID,
		"start_time":  appointment.StartTime,
		"end_time":    appointment.EndTime,
		"employee_id": appointment.EmployeeID,
		"status":      appointment.Status,
		"created_by":  appointment.CreatedBy,
	})
}

type updateAppointmentRequest struct {
	CustomerName  *string           `json:"customer_name"`
	CustomerPhone *string           `json:"customer_phone"`
	CustomerEmail *string           `json:"customer_email"`
	ServiceID     *uint             `json:"service_id"`
	EmployeeID    *uint             `json:"employee_id"`
	StartTimeUTC  *string           `json:"start_time_utc"`
	Notes         *string           `json:"notes"`
	CustomFields  map[string]string `json:"custom_fields"`
}

// UpdateAppointment edits an appointment, re-running the full booking
// validation on the new interval. Employees may only edit their own.
func UpdateAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var req updateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var prev models.Appointment
	if err := db.DB.First(&prev, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if resp := requireOwnAppointment(c, &prev); resp != nil {
		return resp
	}

	serviceID := prev.ServiceID
	if req.ServiceID != nil && *req.ServiceID != 0 {
		serviceID = *req.ServiceID
	}
	var svc models.Service
	if err := db.DB.First(&svc, serviceID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service",
			Error:   err.Error(),
		})
	}

	newStart := prev.StartTime
	if req.StartTimeUTC != nil {
		parsed, err := time.Parse(time.RFC3339, *req.StartTimeUTC)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid start_time_utc",
				Error:   err.Error(),
			})
		}
		newStart = parsed.UTC()
	}
	// end time always derives from start + service duration
	newEnd := newStart.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	newEmployee := prev.EmployeeID
	if req.EmployeeID != nil && *req.EmployeeID != 0 {
		newEmployee = *req.EmployeeID
	}

	resolver := scheduling.NewWindowResolver(scheduling.NewStore(db.DB))
	if err := resolver.ValidateStart(newStart); err != nil {
		return dayWindowError(c, err)
	}
	if err := validateCustomFieldTypes(req.CustomFields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid custom field value",
			Error:   err.Error(),
		})
	}

	// same per-employee serialization as create, excluding our own row from
	// the conflict probe
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		txStore := scheduling.NewStore(tx).WithRowLocks()
		return scheduling.ReserveInterval(txStore, newEmployee, newStart, newEnd, prev.ID, func() error {
			if req.CustomerName != nil {
				prev.CustomerName = *req.CustomerName
			}
			if req.CustomerPhone != nil {
				prev.CustomerPhone = *req.CustomerPhone
			}
			if req.CustomerEmail != nil {
				prev.CustomerEmail = *req.CustomerEmail
			}
			if req.Notes != nil {
				prev.Notes = *req.Notes
			}
			prev.ServiceID = serviceID
			prev.EmployeeID = newEmployee
			prev.StartTime = newStart
			prev.EndTime = newEnd

			if err := tx.Save(&prev).Error; err != nil {
				return err
			}
			return saveCustomFields(tx, prev.ID, req.CustomFields)
		})
	})
	if err != nil {
		if errors.Is(err, scheduling.ErrSlotTaken) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Employee is busy in the new interval",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	date, minute, _ := scheduling.ToCivil(prev.StartTime)
	go notifications.SendSMS(prev.CustomerPhone,
		fmt.Sprintf("Actualizare programare: %s %02d:%02d.", date, minute/60, minute%60))
	realtime.PublishToEmployee(prev.EmployeeID, "appointment:updated", fiber.Map{
		"id":         prev.ID,
		"start_time": prev.StartTime,
	})

	return c.JSON(fiber.Map{"ok": true})
}

// WorkAppointment is the employee's "start working" action: it promotes
// PENDING to BOOKED and is a no-op for any later status.
func WorkAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if resp := requireOwnAppointment(c, &appointment); resp != nil {
		return resp
	}

	if appointment.Status == models.StatusPending {
		appointment.Status = models.StatusBooked
		if err := db.DB.Save(&appointment).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update status",
				Error:   err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}

// CancelAppointment sets CANCELLED from any non-terminal state and texts
// the customer.
func CancelAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if resp := requireOwnAppointment(c, &appointment); resp != nil {
		return resp
	}

	if err := appointment.CanTransition(models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot cancel this appointment",
			Error:   err.Error(),
		})
	}
	appointment.Status = models.StatusCancelled
	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel appointment",
			Error:   err.Error(),
		})
	}

	go notifications.SendSMS(appointment.CustomerPhone,
		fmt.Sprintf("Salut %s, programarea ta a fost anulată.", appointment.CustomerName))
	realtime.PublishToEmployee(appointment.EmployeeID, "appointment:cancelled", fiber.Map{
		"id": appointment.ID,
	})

	return c.JSON(fiber.Map{"ok": true})
}

// CompleteAppointment requires every globally-active required custom field
// to hold a non-blank value and at least one photo before setting
// COMPLETED; otherwise it reports exactly what is missing.
func CompleteAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}
	if resp := requireOwnAppointment(c, &appointment); resp != nil {
		return resp
	}

	var defs []models.AppointmentField
	if err := db.DB.Where("active = ? AND required = ?", true, true).Find(&defs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load field schema",
			Error:   err.Error(),
		})
	}

	values, err := loadCustomFields([]uint{appointment.ID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load custom fields",
			Error:   err.Error(),
		})
	}
	stored := values[appointment.ID]

	dynMissing := []utils.MissingField{}
	for _, d := range defs {
		if strings.TrimSpace(stored[d.FieldKey]) == "" {
			dynMissing = append(dynMissing, utils.MissingField{Key: d.FieldKey, Label: d.Label})
		}
	}

	var photoCount int64
	if err := db.DB.Model(&models.AppointmentPhoto{}).
		Where("appointment_id = ?", appointment.ID).Count(&photoCount).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to count photos",
			Error:   err.Error(),
		})
	}
	photosMissing := photoCount == 0

	if len(dynMissing) > 0 || photosMissing {
		return c.Status(fiber.StatusBadRequest).JSON(utils.CompletionError{
			Message:       "Validation failed",
			DynMissing:    dynMissing,
			PhotosMissing: photosMissing,
		})
	}

	if err := appointment.CanTransition(models.StatusCompleted); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Cannot complete this appointment",
			Error:   err.Error(),
		})
	}
	appointment.Status = models.StatusCompleted
	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to complete appointment",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ListAppointmentPhotos returns the photos attached to an appointment.
func ListAppointmentPhotos(c *fiber.Ctx) error {
	id := c.Params("id")
	var photos []models.AppointmentPhoto
	if err := db.DB.Where("appointment_id = ?", id).Order("id DESC").Find(&photos).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch photos",
			Error:   err.Error(),
		})
	}
	return c.JSON(photos)
}

// UploadAppointmentPhotos stores up to 10 multipart "photos" files on
// Cloudinary and records their URLs.
func UploadAppointmentPhotos(c *fiber.Ctx) error {
	id := c.Params("id")
	var appointment models.Appointment
	if err := db.DB.First(&appointment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
			Error:   err.Error(),
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse multipart form",
			Error:   err.Error(),
		})
	}
	files := form.File["photos"]
	if len(files) > 10 {
		files = files[:10]
	}

	count := 0
	for _, fileHeader := range files {
		url, err := utils.UploadAppointmentPhoto(fileHeader, appointment.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to upload photo",
				Error:   err.Error(),
			})
		}
		photo := models.AppointmentPhoto{AppointmentID: appointment.ID, URL: url}
		if err := db.DB.Create(&photo).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to save photo",
				Error:   err.Error(),
			})
		}
		count++
	}
	return c.JSON(fiber.Map{"ok": true, "count": count})
}

// requireOwnAppointment enforces the employee ownership rule; admins pass
// through. Returns a response to send, or nil when allowed.
func requireOwnAppointment(c *fiber.Ctx, appointment *models.Appointment) error {
	role, _ := c.Locals("role").(string)
	if role != string(models.RoleEmployee) {
		return nil
	}
	userID, _ := c.Locals("userID").(uint)
	if getEmployeeIDForUser(userID) != appointment.EmployeeID {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You cannot modify this appointment",
		})
	}
	return nil
}

func dayWindowError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scheduling.ErrDayClosed):
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "The business is closed on this day",
		})
	case errors.Is(err, scheduling.ErrOutsideHours):
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "The selected time is outside business hours",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to resolve day window",
			Error:   err.Error(),
		})
	}
}

// notifyBookingCreated fires the SMS, e-mail and realtime side effects of a
// new booking. All best-effort: failures never roll back the appointment.
func notifyBookingCreated(appointment *models.Appointment, serviceName string) {
	date, minute, _ := scheduling.ToCivil(appointment.StartTime)
	when := fmt.Sprintf("%s %02d:%02d", date, minute/60, minute%60)

	go notifications.SendSMS(appointment.CustomerPhone,
		fmt.Sprintf("Salut %s, programarea ta a fost înregistrată pentru %s.", appointment.CustomerName, when))

	if appointment.CustomerEmail != "" {
		go func() {
			body := fmt.Sprintf(`
				<p>Salut %s,</p>
				<p>Programarea ta pentru <strong>%s</strong> a fost înregistrată pentru %s.</p>
			`, appointment.CustomerName, serviceName, when)
			if err := utils.SendEmail(appointment.CustomerEmail, "Confirmare programare", body); err != nil {
				fmt.Println("Failed to send confirmation email:", err)
			}
		}()
	}

	realtime.PublishToEmployee(appointment.EmployeeID, "appointment:new", fiber.Map{
		"id":             appointment.ID,
		"customer_name":  appointment.CustomerName,
		"customer_phone": appointment.CustomerPhone,
		"service_id":     appointment.ServiceID,
		"service_name":   serviceName,
		"start_time":     appointment.StartTime,
	})
}
