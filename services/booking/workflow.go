package booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// StartSession opens a new wizard session against a hospital. The hospital
// and any doctor/surgery preselection are validated up front so the wizard
// never carries a dangling reference.
func (s *DefaultBookingService) StartSession(opts StartOptions) (*WizardSession, error) {
	hospital, err := s.HospitalRepo.GetByID(opts.HospitalID)
	if err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to look up hospital")
	}
	if hospital == nil {
		return nil, newWorkflowError(CodeNotFound, "hospital %s not found", opts.HospitalID)
	}

	bookingType := opts.Type
	if bookingType == "" {
		bookingType = models.BookingConsultation
	}
	if !bookingType.Valid() {
		return nil, newWorkflowError(CodeValidation, "unknown booking type %q", opts.Type)
	}
	if opts.DoctorID != "" && hospital.FindDoctor(opts.DoctorID) == nil {
		return nil, newWorkflowError(CodeValidation, "doctor %s does not practice at %s", opts.DoctorID, hospital.Name)
	}
	if opts.SurgeryID != "" && hospital.FindSurgery(opts.SurgeryID) == nil {
		return nil, newWorkflowError(CodeValidation, "surgery %s is not offered at %s", opts.SurgeryID, hospital.Name)
	}

	state := StateSelectingSlot
	if opts.UserID == "" {
		// The intent is recorded but the wizard cannot advance until sign-in.
		state = StateUnauthenticated
	}

	session := &WizardSession{
		ID:         uuid.NewString(),
		UserID:     opts.UserID,
		State:      state,
		HospitalID: opts.HospitalID,
		DoctorID:   opts.DoctorID,
		SurgeryID:  opts.SurgeryID,
		Type:       bookingType,
		CreatedAt:  s.now(),
	}
	if err := s.Sessions.Save(session); err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to create booking session")
	}
	return session, nil
}

// GetSession returns the current wizard state.
func (s *DefaultBookingService) GetSession(sessionID string) (*WizardSession, error) {
	return s.loadSession(sessionID)
}

// Authenticate attaches a signed-in user to an unauthenticated session and
// unlocks slot selection. Re-authenticating an already-attached session is a
// no-op for the same user.
func (s *DefaultBookingService) Authenticate(sessionID, userID string) (*WizardSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, newWorkflowError(CodeValidation, "a user id is required")
	}
	if session.UserID != "" {
		if session.UserID != userID {
			return nil, newWorkflowError(CodeInvalidState, "session belongs to another user")
		}
		return session, nil
	}

	session.UserID = userID
	session.State = StateSelectingSlot
	if err := s.Sessions.Save(session); err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to update booking session")
	}
	return session, nil
}

// SelectSlot records the chosen date and time slot. The wizard only advances
// once both are present and valid; a partial selection never moves state.
func (s *DefaultBookingService) SelectSlot(sessionID, date, timeSlot string) (*WizardSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == StateUnauthenticated {
		return nil, newWorkflowError(CodeUnauthenticated, "sign in to continue booking")
	}
	if session.State != StateSelectingSlot && session.State != StateCollectingDetails {
		return nil, newWorkflowError(CodeInvalidState, "slot selection is not open in state %s", session.State)
	}

	if date == "" || timeSlot == "" {
		return nil, newWorkflowError(CodeInvalidSlot, "both a date and a time slot are required")
	}
	if err := s.validateSchedule(date, timeSlot); err != nil {
		return nil, err
	}

	session.ScheduledDate = date
	session.ScheduledTime = timeSlot
	session.State = StateCollectingDetails
	if err := s.Sessions.Save(session); err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to update booking session")
	}
	return session, nil
}

// EnterDetails records the patient's contact details. Validation fails fast:
// nothing is stored when any field is rejected.
func (s *DefaultBookingService) EnterDetails(sessionID string, details PatientDetails) (*WizardSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == StateUnauthenticated {
		return nil, newWorkflowError(CodeUnauthenticated, "sign in to continue booking")
	}
	if session.State != StateCollectingDetails {
		return nil, newWorkflowError(CodeInvalidState, "details are not being collected in state %s", session.State)
	}

	name := strings.TrimSpace(details.Name)
	email := strings.TrimSpace(details.Email)
	if name == "" {
		return nil, newWorkflowError(CodeValidation, "patient name is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, newWorkflowError(CodeValidation, "a valid email address is required")
	}

	session.PatientName = name
	session.PatientEmail = email
	session.PatientPhone = strings.TrimSpace(details.Phone)
	session.Notes = strings.TrimSpace(details.Notes)
	if err := s.Sessions.Save(session); err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to update booking session")
	}
	return session, nil
}

// Submit persists the booking exactly once, sends the confirmation email, and
// moves the session to confirmed. A failed insert drops the session back to
// collecting_details so the patient can retry without re-entering anything; a
// failed email never fails the booking, it is recorded on the record instead.
func (s *DefaultBookingService) Submit(sessionID string) (*WizardSession, *models.Booking, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.State == StateUnauthenticated {
		return nil, nil, newWorkflowError(CodeUnauthenticated, "sign in to continue booking")
	}
	if session.State == StateConfirmed {
		return nil, nil, newWorkflowError(CodeInvalidState, "this booking was already submitted")
	}
	if session.State != StateCollectingDetails {
		return nil, nil, newWorkflowError(CodeInvalidState, "the wizard is not ready to submit in state %s", session.State)
	}
	if !session.SlotComplete() {
		return nil, nil, newWorkflowError(CodeInvalidSlot, "pick a date and time slot before submitting")
	}
	if !session.DetailsComplete() {
		return nil, nil, newWorkflowError(CodeValidation, "patient details are incomplete")
	}

	hospital, err := s.HospitalRepo.GetByID(session.HospitalID)
	if err != nil || hospital == nil {
		return nil, nil, newWorkflowError(CodeStoreError, "failed to look up hospital")
	}

	session.State = StateSubmitting
	if err := s.Sessions.Save(session); err != nil {
		return nil, nil, newWorkflowError(CodeStoreError, "failed to update booking session")
	}

	now := s.now()
	record := &models.Booking{
		ID:            uuid.NewString(),
		UserID:        session.UserID,
		HospitalID:    session.HospitalID,
		DoctorID:      session.DoctorID,
		SurgeryID:     session.SurgeryID,
		Type:          session.Type,
		Status:        models.StatusPending,
		ScheduledDate: session.ScheduledDate,
		ScheduledTime: session.ScheduledTime,
		SlotIndex:     models.SlotIndex(session.ScheduledTime),
		PatientName:   session.PatientName,
		PatientEmail:  session.PatientEmail,
		PatientPhone:  session.PatientPhone,
		Notes:         session.Notes,
	}

	if err := s.Repo.Create(record); err != nil {
		utils.GetLogger().Error("booking insert failed", zap.String("sessionID", session.ID), zap.Error(err))
		session.State = StateCollectingDetails
		if saveErr := s.Sessions.Save(session); saveErr != nil {
			utils.GetLogger().Error("failed to roll session back", zap.Error(saveErr))
		}
		return session, nil, newWorkflowError(CodeStoreError, "failed to save the booking, please try again")
	}

	payload := models.BookingConfirmationPayload{
		BookingID:     record.ID,
		PatientName:   record.PatientName,
		PatientEmail:  record.PatientEmail,
		HospitalName:  hospital.Name,
		BookingType:   record.Type,
		ScheduledDate: record.ScheduledDate,
		ScheduledTime: record.ScheduledTime,
	}
	if d := hospital.FindDoctor(record.DoctorID); d != nil {
		payload.DoctorName = d.Name
	}
	if sg := hospital.FindSurgery(record.SurgeryID); sg != nil {
		payload.SurgeryName = sg.Name
	}

	sendErr := <-s.Dispatcher.DispatchConfirmation(payload)
	record.ConfirmationSent = sendErr == nil
	if err := s.Repo.SetConfirmationSent(record.ID, record.ConfirmationSent); err != nil {
		utils.GetLogger().Warn("failed to record confirmation flag", zap.String("bookingID", record.ID), zap.Error(err))
	}

	s.scheduleReminder(record, hospital.Name, now)

	session.State = StateConfirmed
	session.BookingID = record.ID
	if err := s.Sessions.Save(session); err != nil {
		utils.GetLogger().Warn("failed to persist confirmed session", zap.String("sessionID", session.ID), zap.Error(err))
	}
	return session, record, nil
}

// ResetSession clears everything the patient entered and returns the wizard
// to slot selection so the session can be reused for a fresh booking. The
// hospital intent and the attached user survive the reset.
func (s *DefaultBookingService) ResetSession(sessionID string) (*WizardSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	session.ScheduledDate = ""
	session.ScheduledTime = ""
	session.PatientName = ""
	session.PatientEmail = ""
	session.PatientPhone = ""
	session.Notes = ""
	session.BookingID = ""
	session.State = StateSelectingSlot
	if session.UserID == "" {
		session.State = StateUnauthenticated
	}
	if err := s.Sessions.Save(session); err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to update booking session")
	}
	return session, nil
}

func (s *DefaultBookingService) loadSession(sessionID string) (*WizardSession, error) {
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to load booking session")
	}
	if session == nil {
		return nil, newWorkflowError(CodeSessionNotFound, "booking session not found or expired")
	}
	return session, nil
}

// validateSchedule enforces the bookable window: a known grid slot on a date
// between today and MaxAdvanceDays out.
func (s *DefaultBookingService) validateSchedule(date, timeSlot string) error {
	now := s.now()
	day, err := time.ParseInLocation(models.DateLayout, date, now.Location())
	if err != nil {
		return newWorkflowError(CodeInvalidSlot, "invalid date %q, expected YYYY-MM-DD", date)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return newWorkflowError(CodeInvalidSlot, "the selected date is in the past")
	}
	if day.After(today.AddDate(0, 0, models.MaxAdvanceDays)) {
		return newWorkflowError(CodeInvalidSlot, "bookings can be made at most %d days ahead", models.MaxAdvanceDays)
	}
	if !models.ValidTimeSlot(timeSlot) {
		return newWorkflowError(CodeInvalidSlot, "%q is not an available time slot", timeSlot)
	}
	return nil
}

// scheduleReminder queues a reminder email roughly a day before the
// appointment. Appointments closer than that get no reminder.
func (s *DefaultBookingService) scheduleReminder(record *models.Booking, hospitalName string, now time.Time) {
	if s.Reminders == nil {
		return
	}

	at, err := time.ParseInLocation(models.DateLayout+" 03:04 PM", record.ScheduledDate+" "+record.ScheduledTime, now.Location())
	if err != nil {
		utils.GetLogger().Warn("unparseable schedule, skipping reminder", zap.String("bookingID", record.ID), zap.Error(err))
		return
	}
	fireAt := at.Add(-24 * time.Hour)
	if !fireAt.After(now) {
		return
	}

	payload := models.ReminderPayload{
		BookingID:     record.ID,
		PatientName:   record.PatientName,
		PatientEmail:  record.PatientEmail,
		HospitalName:  hospitalName,
		BookingType:   record.Type,
		ScheduledDate: record.ScheduledDate,
		ScheduledTime: record.ScheduledTime,
	}
	if err := s.Reminders.Schedule(payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to queue reminder", zap.String("bookingID", record.ID), zap.Error(err))
	}
}
