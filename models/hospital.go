package models

import "time"

// SurgeryType is the fixed category a surgery belongs to.
type SurgeryType string

const (
	SurgeryDiagnostic     SurgeryType = "diagnostic"
	SurgeryCurative       SurgeryType = "curative"
	SurgeryReconstructive SurgeryType = "reconstructive"
	SurgeryCosmetic       SurgeryType = "cosmetic"
	SurgeryPalliative     SurgeryType = "palliative"
)

// AllSurgeryTypes lists every valid surgery type, in display order.
var AllSurgeryTypes = []SurgeryType{
	SurgeryDiagnostic,
	SurgeryCurative,
	SurgeryReconstructive,
	SurgeryCosmetic,
	SurgeryPalliative,
}

// Valid reports whether t is one of the fixed surgery types.
func (t SurgeryType) Valid() bool {
	for _, st := range AllSurgeryTypes {
		if t == st {
			return true
		}
	}
	return false
}

// SurgeryTypeMeta carries display metadata for a surgery type.
type SurgeryTypeMeta struct {
	Type        SurgeryType `json:"type"`
	Label       string      `json:"label"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
}

// SurgeryTypeCatalog maps each surgery type to its display metadata.
var SurgeryTypeCatalog = map[SurgeryType]SurgeryTypeMeta{
	SurgeryDiagnostic: {
		Type:        SurgeryDiagnostic,
		Label:       "Diagnostic Surgery",
		Icon:        "🔬",
		Description: "Procedures to diagnose medical conditions",
	},
	SurgeryCurative: {
		Type:        SurgeryCurative,
		Label:       "Curative Surgery",
		Icon:        "💊",
		Description: "Surgeries to treat and cure diseases",
	},
	SurgeryReconstructive: {
		Type:        SurgeryReconstructive,
		Label:       "Reconstructive Surgery",
		Icon:        "🏥",
		Description: "Restore function and appearance after injury",
	},
	SurgeryCosmetic: {
		Type:        SurgeryCosmetic,
		Label:       "Cosmetic Surgery",
		Icon:        "✨",
		Description: "Enhance aesthetic appearance",
	},
	SurgeryPalliative: {
		Type:        SurgeryPalliative,
		Label:       "Palliative Surgery",
		Icon:        "🤲",
		Description: "Improve quality of life and comfort",
	},
}

// Label returns the human-readable label for a surgery type.
func (t SurgeryType) Label() string {
	if meta, ok := SurgeryTypeCatalog[t]; ok {
		return meta.Label
	}
	return string(t)
}

// KarnatakaRegions lists the regions hospitals are grouped under.
var KarnatakaRegions = []string{
	"Bengaluru Urban",
	"Bengaluru Rural",
	"Mysuru",
	"Mangaluru",
	"Hubballi-Dharwad",
	"Belagavi",
	"Kalaburagi",
	"Tumakuru",
	"Ballari",
	"Shivamogga",
}

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Surgery is a priced procedure offering attached to a hospital.
// Invariant: MinCost <= MaxCost.
type Surgery struct {
	ID              string      `bson:"id" json:"id"`
	Name            string      `bson:"name" json:"name"`
	Type            SurgeryType `bson:"type" json:"type"`
	Description     string      `bson:"description" json:"description"`
	MinCost         float64     `bson:"min_cost" json:"minCost"`
	MaxCost         float64     `bson:"max_cost" json:"maxCost"`
	AverageDuration string      `bson:"average_duration" json:"averageDuration"`
	RecoveryTime    string      `bson:"recovery_time" json:"recoveryTime"`
	Notes           string      `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Doctor is a practitioner profile attached to a hospital.
type Doctor struct {
	ID              string   `bson:"id" json:"id"`
	Name            string   `bson:"name" json:"name"`
	PhotoURL        string   `bson:"photo_url" json:"photoUrl"`
	Specialization  string   `bson:"specialization" json:"specialization"`
	Qualification   string   `bson:"qualification" json:"qualification"`
	Experience      int      `bson:"experience" json:"experience"` // years, >= 0
	ConsultationFee float64  `bson:"consultation_fee" json:"consultationFee"`
	Rating          float64  `bson:"rating" json:"rating"`
	ReviewCount     int      `bson:"review_count" json:"reviewCount"`
	Availability    []string `bson:"availability" json:"availability"` // weekday names
	Bio             string   `bson:"bio,omitempty" json:"bio,omitempty"`
}

// Hospital is a facility record with its aggregated surgery and doctor offerings.
// Rating is kept in [0,5]; Surgeries is non-empty so cost aggregation is meaningful.
type Hospital struct {
	ID                string        `bson:"id" json:"id"`
	Name              string        `bson:"name" json:"name"`
	Tagline           string        `bson:"tagline" json:"tagline"`
	Rating            float64       `bson:"rating" json:"rating"`
	ReviewCount       int           `bson:"review_count" json:"reviewCount"`
	YearEstablished   int           `bson:"year_established" json:"yearEstablished"`
	Address           string        `bson:"address" json:"address"`
	City              string        `bson:"city" json:"city"`
	District          string        `bson:"district" json:"district"`
	Region            string        `bson:"region" json:"region"`
	Coordinates       GeoPoint      `bson:"coordinates" json:"coordinates"`
	DistanceKm        *float64      `bson:"distance_km,omitempty" json:"distance,omitempty"` // nil when not computed
	ImageURL          string        `bson:"image_url" json:"imageUrl"`
	GalleryImages     []string      `bson:"gallery_images" json:"galleryImages"`
	Accreditations    []string      `bson:"accreditations" json:"accreditations"`
	SurgeryTypes      []SurgeryType `bson:"surgery_types" json:"surgeryTypes"`
	Surgeries         []Surgery     `bson:"surgeries" json:"surgeries"`
	Doctors           []Doctor      `bson:"doctors" json:"doctors"`
	InsuranceAccepted []string      `bson:"insurance_accepted" json:"insuranceAccepted"`
	ContactPhone      string        `bson:"contact_phone" json:"contactPhone"`
	ContactEmail      string        `bson:"contact_email" json:"contactEmail"`
	Website           string        `bson:"website,omitempty" json:"website,omitempty"`
	IsVerified        bool          `bson:"is_verified" json:"isVerified"`
	CreatedAt         time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time     `bson:"updated_at" json:"updatedAt"`
}

// MinSurgeryCost returns the lowest MinCost across the hospital's surgeries.
// Hospitals without surgeries report 0; callers relying on cost ordering
// should treat that as "unknown".
func (h *Hospital) MinSurgeryCost() float64 {
	if len(h.Surgeries) == 0 {
		return 0
	}
	min := h.Surgeries[0].MinCost
	for _, s := range h.Surgeries[1:] {
		if s.MinCost < min {
			min = s.MinCost
		}
	}
	return min
}

// HasSurgeryType reports whether the hospital offers the given surgery type.
func (h *Hospital) HasSurgeryType(t SurgeryType) bool {
	for _, st := range h.SurgeryTypes {
		if st == t {
			return true
		}
	}
	return false
}

// FindSurgery returns the surgery with the given id, or nil.
func (h *Hospital) FindSurgery(id string) *Surgery {
	for i := range h.Surgeries {
		if h.Surgeries[i].ID == id {
			return &h.Surgeries[i]
		}
	}
	return nil
}

// FindDoctor returns the doctor with the given id, or nil.
func (h *Hospital) FindDoctor(id string) *Doctor {
	for i := range h.Doctors {
		if h.Doctors[i].ID == id {
			return &h.Doctors[i]
		}
	}
	return nil
}
