package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/models"

	"github.com/go-redis/redis/v8"
)

// Wizard states. A session moves strictly forward except where a validation
// failure drops it back to collecting_details.
const (
	StateUnauthenticated   = "unauthenticated"
	StateSelectingSlot     = "selecting_slot"
	StateCollectingDetails = "collecting_details"
	StateSubmitting        = "submitting"
	StateConfirmed         = "confirmed"
)

// WizardSession is the server-held state of one in-progress booking wizard.
// Everything the patient has entered so far lives here, not on the client, so
// an expired session always restarts cleanly.
type WizardSession struct {
	ID         string             `json:"id"`
	UserID     string             `json:"userId,omitempty"` // empty until authenticated
	State      string             `json:"state"`
	HospitalID string             `json:"hospitalId"`
	DoctorID   string             `json:"doctorId,omitempty"`
	SurgeryID  string             `json:"surgeryId,omitempty"`
	Type       models.BookingType `json:"bookingType"`

	ScheduledDate string `json:"scheduledDate,omitempty"`
	ScheduledTime string `json:"scheduledTime,omitempty"`

	PatientName  string `json:"patientName,omitempty"`
	PatientEmail string `json:"patientEmail,omitempty"`
	PatientPhone string `json:"patientPhone,omitempty"`
	Notes        string `json:"notes,omitempty"`

	// BookingID is set once the wizard reaches confirmed.
	BookingID string `json:"bookingId,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SlotComplete reports whether both halves of the slot selection are present.
func (s *WizardSession) SlotComplete() bool {
	return s.ScheduledDate != "" && s.ScheduledTime != ""
}

// DetailsComplete reports whether the required patient details are present.
func (s *WizardSession) DetailsComplete() bool {
	return s.PatientName != "" && s.PatientEmail != ""
}

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	// Save writes the session, refreshing its TTL.
	Save(session *WizardSession) error
	// Get retrieves a session by id, or (nil, nil) when missing or expired.
	Get(sessionID string) (*WizardSession, error)
}

const sessionPrefix = "bookingSession:"

// RedisSessionStore keeps wizard sessions in Redis with a sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore builds a store with the default 30 minute TTL.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: 30 * time.Minute}
}

// Save writes the session to Redis, refreshing its TTL.
func (s *RedisSessionStore) Save(session *WizardSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := s.Client.Set(ctx, sessionPrefix+session.ID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save booking session: %w", err)
	}
	return nil
}

// Get retrieves a session from Redis.
func (s *RedisSessionStore) Get(sessionID string) (*WizardSession, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}
	var session WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking session: %w", err)
	}
	return &session, nil
}
