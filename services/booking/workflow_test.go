package booking

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The clock every workflow test runs against.
var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type memSessionStore struct {
	sessions map[string]WizardSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]WizardSession)}
}

func (m *memSessionStore) Save(s *WizardSession) error {
	m.sessions[s.ID] = *s
	return nil
}

func (m *memSessionStore) Get(id string) (*WizardSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	copy := s
	return &copy, nil
}

type memBookingRepo struct {
	bookings   map[string]models.Booking
	created    []models.Booking
	failCreate bool
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]models.Booking)}
}

func (m *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	copy := b
	return &copy, nil
}

func (m *memBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingRepo) Create(b *models.Booking) error {
	if m.failCreate {
		return fmt.Errorf("insert failed")
	}
	m.bookings[b.ID] = *b
	m.created = append(m.created, *b)
	return nil
}

func (m *memBookingRepo) UpdateSchedule(id, date, slot string, slotIndex int, status models.BookingStatus) error {
	b, ok := m.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	b.ScheduledDate = date
	b.ScheduledTime = slot
	b.SlotIndex = slotIndex
	b.Status = status
	m.bookings[id] = b
	return nil
}

func (m *memBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	b, ok := m.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	b.Status = status
	m.bookings[id] = b
	return nil
}

func (m *memBookingRepo) SetConfirmationSent(id string, sent bool) error {
	b, ok := m.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	b.ConfirmationSent = sent
	m.bookings[id] = b
	return nil
}

type stubHospitalRepo struct {
	hospital models.Hospital
}

func (s *stubHospitalRepo) GetByID(id string) (*models.Hospital, error) {
	if id == s.hospital.ID {
		copy := s.hospital
		return &copy, nil
	}
	return nil, nil
}

func (s *stubHospitalRepo) GetAll() ([]models.Hospital, error) {
	return []models.Hospital{s.hospital}, nil
}

func (s *stubHospitalRepo) GetByIDs(ids []string) ([]models.Hospital, error) {
	var out []models.Hospital
	for _, id := range ids {
		if h, _ := s.GetByID(id); h != nil {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (s *stubHospitalRepo) Create(*models.Hospital) error              { return nil }
func (s *stubHospitalRepo) Count() (int64, error)                      { return 1, nil }
func (s *stubHospitalRepo) IncrementReviewStats(string, float64) error { return nil }

type recordingDispatcher struct {
	confirmErr    error
	confirmations []models.BookingConfirmationPayload
	updates       []models.BookingUpdatePayload
}

func (d *recordingDispatcher) DispatchConfirmation(p models.BookingConfirmationPayload) <-chan error {
	d.confirmations = append(d.confirmations, p)
	result := make(chan error, 1)
	result <- d.confirmErr
	return result
}

func (d *recordingDispatcher) DispatchUpdate(p models.BookingUpdatePayload) <-chan error {
	d.updates = append(d.updates, p)
	result := make(chan error, 1)
	result <- nil
	return result
}

type recordingScheduler struct {
	payloads []models.ReminderPayload
	fireAts  []time.Time
}

func (r *recordingScheduler) Schedule(p models.ReminderPayload, fireAt time.Time) error {
	r.payloads = append(r.payloads, p)
	r.fireAts = append(r.fireAts, fireAt)
	return nil
}

func testHospital() models.Hospital {
	return models.Hospital{
		ID:   "hosp-1",
		Name: "Aster CMI",
		Surgeries: []models.Surgery{
			{ID: "surg-1", Name: "Knee Replacement", Type: models.SurgeryReconstructive},
		},
		Doctors: []models.Doctor{
			{ID: "doc-1", Name: "Dr. Rao"},
		},
	}
}

type workflowFixture struct {
	svc        *DefaultBookingService
	repo       *memBookingRepo
	sessions   *memSessionStore
	dispatcher *recordingDispatcher
	reminders  *recordingScheduler
}

func newWorkflowFixture() *workflowFixture {
	f := &workflowFixture{
		repo:       newMemBookingRepo(),
		sessions:   newMemSessionStore(),
		dispatcher: &recordingDispatcher{},
		reminders:  &recordingScheduler{},
	}
	f.svc = &DefaultBookingService{
		Repo:         f.repo,
		HospitalRepo: &stubHospitalRepo{hospital: testHospital()},
		Sessions:     f.sessions,
		Dispatcher:   f.dispatcher,
		Reminders:    f.reminders,
		Now:          func() time.Time { return testNow },
	}
	return f
}

func workflowCode(t *testing.T, err error) string {
	t.Helper()
	var wfErr *WorkflowError
	require.True(t, errors.As(err, &wfErr), "expected a workflow error, got %v", err)
	return wfErr.Code
}

func TestStartSessionUnknownHospital(t *testing.T) {
	f := newWorkflowFixture()

	_, err := f.svc.StartSession(StartOptions{UserID: "u1", HospitalID: "nope"})
	assert.Equal(t, CodeNotFound, workflowCode(t, err))
}

func TestStartSessionValidatesDoctorAndSurgery(t *testing.T) {
	f := newWorkflowFixture()

	_, err := f.svc.StartSession(StartOptions{UserID: "u1", HospitalID: "hosp-1", DoctorID: "ghost"})
	assert.Equal(t, CodeValidation, workflowCode(t, err))

	_, err = f.svc.StartSession(StartOptions{UserID: "u1", HospitalID: "hosp-1", SurgeryID: "ghost"})
	assert.Equal(t, CodeValidation, workflowCode(t, err))
}

func TestAnonymousSessionCannotAdvance(t *testing.T) {
	f := newWorkflowFixture()

	session, err := f.svc.StartSession(StartOptions{HospitalID: "hosp-1"})
	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, session.State)

	_, err = f.svc.SelectSlot(session.ID, "2025-06-10", "10:00 AM")
	assert.Equal(t, CodeUnauthenticated, workflowCode(t, err))

	_, _, err = f.svc.Submit(session.ID)
	assert.Equal(t, CodeUnauthenticated, workflowCode(t, err))

	// Signing in unlocks the wizard.
	session, err = f.svc.Authenticate(session.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, StateSelectingSlot, session.State)

	_, err = f.svc.SelectSlot(session.ID, "2025-06-10", "10:00 AM")
	assert.NoError(t, err)
}

func TestSelectSlotRequiresBothHalves(t *testing.T) {
	f := newWorkflowFixture()
	session, _ := f.svc.StartSession(StartOptions{UserID: "u1", HospitalID: "hosp-1"})

	_, err := f.svc.SelectSlot(session.ID, "2025-06-10", "")
	assert.Equal(t, CodeInvalidSlot, workflowCode(t, err))

	_, err = f.svc.SelectSlot(session.ID, "", "10:00 AM")
	assert.Equal(t, CodeInvalidSlot, workflowCode(t, err))

	// Neither failed attempt advanced the wizard.
	current, err := f.svc.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingSlot, current.State)
	assert.Empty(t, current.ScheduledDate)
}

func TestSelectSlotRejectsOutOfWindowDates(t *testing.T) {
	f := newWorkflowFixture()
	session, _ := f.svc.StartSession(StartOptions{UserID: "u1", HospitalID: "hosp-1"})

	cases := []struct {
		date string
		slot string
	}{
		{"2025-05-31", "10:00 AM"},  // yesterday
		{"2025-09-01", "10:00 AM"},  // beyond the advance window
		{"not-a-date", "10:00 AM"},  // unparseable
		{"2025-06-10", "10:17 AM"},  // not on the slot grid
		{"2025-06-10", "01:00 PM"},  // lunch gap
	}
	for _, tc := range cases {
		_, err := f.svc.SelectSlot(session.ID, tc.date, tc.slot)
		assert.Equal(t, CodeInvalidSlot, workflowCode(t, err), "date=%s slot=%s", tc.date, tc.slot)
	}

	// Today and the window edge are both bookable.
	_, err := f.svc.SelectSlot(session.ID, "2025-06-01", "05:00 PM")
	assert.NoError(t, err)
	_, err = f.svc.SelectSlot(session.ID, "2025-07-31", "09:00 AM")
	assert.NoError(t, err)
}

func TestEnterDetailsFailsFast(t *testing.T) {
	f := newWorkflowFixture()
	session, _ := f.svc.StartSession(StartOptions{UserID: "u1", HospitalID: "hosp-1"})
	_, err := f.svc.SelectSlot(session.ID, "2025-06-10", "10:00 AM")
	require.NoError(t, err)

	_, err = f.svc.EnterDetails(session.ID, PatientDetails{Name: "   ", Email: "a@b.com"})
	assert.Equal(t, CodeValidation, workflowCode(t, err))

	_, err = f.svc.EnterDetails(session.ID, PatientDetails{Name: "Asha", Email: "not-an-email"})
	assert.Equal(t, CodeValidation, workflowCode(t, err))

	// Nothing was stored by the failed attempts.
	current, err := f.svc.GetSession(session.ID)
	require.NoError(t, err)
	assert.Empty(t, current.PatientName)
	assert.Empty(t, current.PatientEmail)
	assert.Empty(t, f.repo.created)
}

func TestSubmitHappyPathPreservesSelection(t *testing.T) {
	f := newWorkflowFixture()
	session, _ := f.svc.StartSession(StartOptions{
		UserID:     "u1",
		HospitalID: "hosp-1",
		DoctorID:   "doc-1",
		SurgeryID:  "surg-1",
		Type:       models.BookingSurgery,
	})
	_, err := f.svc.SelectSlot(session.ID, "2025-06-10", "10:00 AM")
	require.NoError(t, err)
	_, err = f.svc.EnterDetails(session.ID, PatientDetails{Name: "Asha Patel", Email: "asha@example.com", Phone: "9876543210"})
	require.NoError(t, err)

	finished, record, err := f.svc.Submit(session.ID)
	require.NoError(t, err)

	assert.Equal(t, StateConfirmed, finished.State)
	assert.Equal(t, record.ID, finished.BookingID)

	require.Len(t, f.repo.created, 1, "exactly one booking must be written")
	assert.Equal(t, "2025-06-10", record.ScheduledDate)
	assert.Equal(t, "10:00 AM", record.ScheduledTime)
	assert.Equal(t, models.SlotIndex("10:00 AM"), record.SlotIndex)
	assert.Equal(t, models.StatusPending, record.Status)
	assert.Equal(t, "Asha Patel", record.PatientName)
	assert.True(t, record.ConfirmationSent)

	require.Len(t, f.dispatcher.confirmations, 1)
	payload := f.dispatcher.confirmations[0]
	assert.Equal(t, "Aster CMI", payload.HospitalName)
	assert.Equal(t, "Dr. Rao", payload.DoctorName)
	assert.Equal(t, "Knee Replacement", payload.SurgeryName)

	// Reminder queued a day ahead of the appointment.
	require.Len(t, f.reminders.fireAts, 1)
	expected := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, f.reminders.fireAts[0])
}

func TestSubmitSurvivesNotificationFailure(t *testing.T) {
	f := newWorkflowFixture()
	f.dispatcher.confirmErr = fmt.Errorf("smtp down")

	session, _ := f.svc.StartSession(StartOptions{UserID: "u1", HospitalID: "hosp-1"})
	f.svc.SelectSlot(session.ID, "2025-06-10", "10:00 AM")
	f.svc.EnterDetails(session.ID, PatientDetails{Name: "Asha", Email: "asha@example.com"})

	finished, record, err := f.svc.Submit(session.ID)
	require.NoError(t, err, "a failed email must not fail the booking")
	assert.Equal(t, StateConfirmed, finished.State)
	assert.False(t, record.ConfirmationSent)

	stored, _ := f.repo.GetByID(record.ID)
	require.NotNil(t, stored)
	assert.False(t, stored.ConfirmationSent)
}

func TestSubmitStoreFailureReturnsToDetails(t *testing.T) {
	f := newWorkflowFixture()
	f.repo.failCreate = true

	session, _ := f.svc.StartSession(StartOptions{UserID: "u1", HospitalID: "hosp-1"})
	f.svc.SelectSlot(session.ID, "2025-06-10", "10:00 AM")
	f.svc.EnterDetails(session.ID, PatientDetails{Name: "Asha", Email: "asha@example.com"})

	_, _, err := f.svc.Submit(session.ID)
	assert.Equal(t, CodeStoreError, workflowCode(t, err))
	assert.Empty(t, f.dispatcher.confirmations, "no email without a stored booking")

	// The wizard falls back so the patient can retry with everything intact.
	current, getErr := f.svc.GetSession(session.ID)
	require.NoError(t, getErr)
	assert.Equal(t, StateCollectingDetails, current.State)
	assert.Equal(t, "Asha", current.PatientName)

	// Retry succeeds once the store recovers.
	f.repo.failCreate = false
	finished, _, err := f.svc.Submit(session.ID)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, finished.State)
	assert.Len(t, f.repo.created, 1)
}

func TestSubmitTwiceIsRejected(t *testing.T) {
	f := newWorkflowFixture()

	session, _ := f.svc.StartSession(StartOptions{UserID: "u1", HospitalID: "hosp-1"})
	f.svc.SelectSlot(session.ID, "2025-06-10", "10:00 AM")
	f.svc.EnterDetails(session.ID, PatientDetails{Name: "Asha", Email: "asha@example.com"})

	_, _, err := f.svc.Submit(session.ID)
	require.NoError(t, err)

	_, _, err = f.svc.Submit(session.ID)
	assert.Equal(t, CodeInvalidState, workflowCode(t, err))
	assert.Len(t, f.repo.created, 1)
}

func TestResetSessionReturnsToSlotSelection(t *testing.T) {
	f := newWorkflowFixture()

	session, _ := f.svc.StartSession(StartOptions{UserID: "u1", HospitalID: "hosp-1"})
	f.svc.SelectSlot(session.ID, "2025-06-10", "10:00 AM")
	f.svc.EnterDetails(session.ID, PatientDetails{Name: "Asha", Email: "asha@example.com"})
	_, _, err := f.svc.Submit(session.ID)
	require.NoError(t, err)

	reset, err := f.svc.ResetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingSlot, reset.State)
	assert.Empty(t, reset.ScheduledDate)
	assert.Empty(t, reset.PatientName)
	assert.Empty(t, reset.BookingID)

	// The hospital intent and the signed-in user survive the reset.
	assert.Equal(t, "hosp-1", reset.HospitalID)
	assert.Equal(t, "u1", reset.UserID)

	_, err = f.svc.SelectSlot(session.ID, "2025-06-20", "02:00 PM")
	assert.NoError(t, err)
}

func TestResetUnknownSession(t *testing.T) {
	f := newWorkflowFixture()

	_, err := f.svc.ResetSession("nope")
	assert.Equal(t, CodeSessionNotFound, workflowCode(t, err))
}
