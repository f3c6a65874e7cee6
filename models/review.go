package models

import "time"

// Review is a patient's rating of a hospital, optionally tied to a surgery type.
type Review struct {
	ID          string      `bson:"id" json:"id"`
	UserID      string      `bson:"user_id" json:"userId"`
	UserName    string      `bson:"user_name" json:"userName"`
	HospitalID  string      `bson:"hospital_id" json:"hospitalId"`
	Rating      float64     `bson:"rating" json:"rating"` // [0,5]
	Title       string      `bson:"title" json:"title"`
	Content     string      `bson:"content" json:"content"`
	SurgeryType SurgeryType `bson:"surgery_type,omitempty" json:"surgeryType,omitempty"`
	VisitDate   string      `bson:"visit_date" json:"visitDate"`
	Helpful     int         `bson:"helpful" json:"helpful"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`
}

// Favorite is a user's saved hospital with an optional organising label.
type Favorite struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"userId"`
	HospitalID string    `bson:"hospital_id" json:"hospitalId"`
	Label      string    `bson:"label,omitempty" json:"label,omitempty"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
