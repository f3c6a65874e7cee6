package booking

import (
	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"go.uber.org/zap"
)

// ListUserBookings returns the user's bookings split into upcoming and past.
// Upcoming bookings are ordered soonest first; everything cancelled or whose
// date has passed lands in past, with its effective status applied.
func (s *DefaultBookingService) ListUserBookings(userID string) (*BookingHistory, error) {
	records, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to load bookings")
	}

	now := s.now()
	history := &BookingHistory{
		Upcoming: []models.Booking{},
		Past:     []models.Booking{},
	}
	for _, b := range records {
		b.Status = b.EffectiveStatus(now)
		if b.Mutable(now) {
			history.Upcoming = append(history.Upcoming, b)
		} else {
			history.Past = append(history.Past, b)
		}
	}
	return history, nil
}

// Reschedule moves a booking to a new slot, resets it to pending, and emails
// the patient both the original and the new schedule. The email is
// best-effort; the reschedule stands even if it fails.
func (s *DefaultBookingService) Reschedule(userID, bookingID, newDate, newTimeSlot string) (*models.Booking, error) {
	record, err := s.loadOwnedBooking(userID, bookingID)
	if err != nil {
		return nil, err
	}
	if !record.Mutable(s.now()) {
		return nil, newWorkflowError(CodeNotMutable, "this booking can no longer be changed")
	}
	if newDate == "" || newTimeSlot == "" {
		return nil, newWorkflowError(CodeInvalidSlot, "both a date and a time slot are required")
	}
	if err := s.validateSchedule(newDate, newTimeSlot); err != nil {
		return nil, err
	}

	originalDate := record.ScheduledDate
	originalTime := record.ScheduledTime

	if err := s.Repo.UpdateSchedule(bookingID, newDate, newTimeSlot, models.SlotIndex(newTimeSlot), models.StatusPending); err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to reschedule the booking")
	}
	record.ScheduledDate = newDate
	record.ScheduledTime = newTimeSlot
	record.SlotIndex = models.SlotIndex(newTimeSlot)
	record.Status = models.StatusPending

	hospitalName := s.hospitalName(record.HospitalID)
	s.Dispatcher.DispatchUpdate(models.BookingUpdatePayload{
		BookingID:    record.ID,
		PatientName:  record.PatientName,
		PatientEmail: record.PatientEmail,
		HospitalName: hospitalName,
		BookingType:  record.Type,
		UpdateType:   models.UpdateRescheduled,
		OriginalDate: originalDate,
		OriginalTime: originalTime,
		NewDate:      newDate,
		NewTime:      newTimeSlot,
	})

	s.scheduleReminder(record, hospitalName, s.now())
	return record, nil
}

// Cancel transitions a booking to cancelled and emails the patient. Only a
// pending or confirmed booking whose date has not passed may be cancelled.
func (s *DefaultBookingService) Cancel(userID, bookingID string) (*models.Booking, error) {
	record, err := s.loadOwnedBooking(userID, bookingID)
	if err != nil {
		return nil, err
	}
	if !record.Mutable(s.now()) {
		return nil, newWorkflowError(CodeNotMutable, "this booking can no longer be changed")
	}
	if record.Status != models.StatusPending && record.Status != models.StatusConfirmed {
		return nil, newWorkflowError(CodeNotMutable, "a %s booking cannot be cancelled", record.Status)
	}

	if err := s.Repo.UpdateStatus(bookingID, models.StatusCancelled); err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to cancel the booking")
	}
	record.Status = models.StatusCancelled

	s.Dispatcher.DispatchUpdate(models.BookingUpdatePayload{
		BookingID:    record.ID,
		PatientName:  record.PatientName,
		PatientEmail: record.PatientEmail,
		HospitalName: s.hospitalName(record.HospitalID),
		BookingType:  record.Type,
		UpdateType:   models.UpdateCancelled,
		OriginalDate: record.ScheduledDate,
		OriginalTime: record.ScheduledTime,
	})
	return record, nil
}

func (s *DefaultBookingService) loadOwnedBooking(userID, bookingID string) (*models.Booking, error) {
	record, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, newWorkflowError(CodeStoreError, "failed to load booking")
	}
	if record == nil || record.UserID != userID {
		// Hide other users' bookings entirely.
		return nil, newWorkflowError(CodeNotFound, "booking not found")
	}
	return record, nil
}

func (s *DefaultBookingService) hospitalName(hospitalID string) string {
	hospital, err := s.HospitalRepo.GetByID(hospitalID)
	if err != nil || hospital == nil {
		utils.GetLogger().Warn("failed to resolve hospital name", zap.String("hospitalID", hospitalID), zap.Error(err))
		return "the hospital"
	}
	return hospital.Name
}
