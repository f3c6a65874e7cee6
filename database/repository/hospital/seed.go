package hospitalRepo

import (
	"fmt"

	"github.com/itssanjain-collab/surgery-hub-connect/models"
)

func km(v float64) *float64 { return &v }

// seedCatalog is the starter Karnataka hospital catalog, installed when the
// collection is empty so a fresh deployment is browsable immediately.
var seedCatalog = []models.Hospital{
	{
		ID:              "hosp-aster-cmi",
		Name:            "Aster CMI Hospital",
		Tagline:         "Advanced multi-speciality care in North Bengaluru",
		Rating:          4.6,
		ReviewCount:     1284,
		YearEstablished: 2014,
		Address:         "43/2, New Airport Road, Sahakara Nagar",
		City:            "Bengaluru",
		District:        "Bengaluru Urban",
		Region:          "Bengaluru Urban",
		Coordinates:     models.GeoPoint{Lat: 13.0628, Lng: 77.5937},
		DistanceKm:      km(6.2),
		ImageURL:        "https://images.surgeryhub.in/hospitals/aster-cmi.jpg",
		GalleryImages: []string{
			"https://images.surgeryhub.in/hospitals/aster-cmi-1.jpg",
			"https://images.surgeryhub.in/hospitals/aster-cmi-2.jpg",
		},
		Accreditations: []string{"NABH", "NABL", "JCI"},
		SurgeryTypes:   []models.SurgeryType{models.SurgeryDiagnostic, models.SurgeryCurative, models.SurgeryReconstructive},
		Surgeries: []models.Surgery{
			{
				ID: "surg-aster-angio", Name: "Coronary Angioplasty", Type: models.SurgeryCurative,
				Description: "Balloon angioplasty with drug-eluting stent placement",
				MinCost:     180000, MaxCost: 350000,
				AverageDuration: "1-2 hours", RecoveryTime: "1 week",
			},
			{
				ID: "surg-aster-lap", Name: "Diagnostic Laparoscopy", Type: models.SurgeryDiagnostic,
				Description: "Minimally invasive abdominal exploration",
				MinCost:     45000, MaxCost: 90000,
				AverageDuration: "45 minutes", RecoveryTime: "3-5 days",
			},
			{
				ID: "surg-aster-acl", Name: "ACL Reconstruction", Type: models.SurgeryReconstructive,
				Description: "Arthroscopic anterior cruciate ligament reconstruction",
				MinCost:     150000, MaxCost: 280000,
				AverageDuration: "2 hours", RecoveryTime: "6-9 months",
			},
		},
		Doctors: []models.Doctor{
			{
				ID: "doc-aster-rao", Name: "Dr. Pradeep Rao", Specialization: "Interventional Cardiology",
				Qualification: "MD, DM (Cardiology)", Experience: 22, ConsultationFee: 1200,
				Rating: 4.8, ReviewCount: 412,
				Availability: []string{"Monday", "Tuesday", "Thursday", "Friday"},
				PhotoURL:     "https://images.surgeryhub.in/doctors/pradeep-rao.jpg",
			},
			{
				ID: "doc-aster-nair", Name: "Dr. Meera Nair", Specialization: "Orthopaedic Surgery",
				Qualification: "MS (Ortho), FRCS", Experience: 16, ConsultationFee: 950,
				Rating: 4.7, ReviewCount: 289,
				Availability: []string{"Monday", "Wednesday", "Saturday"},
				PhotoURL:     "https://images.surgeryhub.in/doctors/meera-nair.jpg",
			},
		},
		InsuranceAccepted: []string{"Star Health", "HDFC Ergo", "ICICI Lombard", "Ayushman Bharat"},
		ContactPhone:      "+91 80 4342 0100",
		ContactEmail:      "care@astercmi.in",
		Website:           "https://www.asterhospitals.in",
		IsVerified:        true,
	},
	{
		ID:              "hosp-manipal-mysuru",
		Name:            "Manipal Hospital Mysuru",
		Tagline:         "Trusted surgical excellence in the heritage city",
		Rating:          4.4,
		ReviewCount:     876,
		YearEstablished: 2008,
		Address:         "85-86, Bangalore-Mysore Ring Road Junction",
		City:            "Mysuru",
		District:        "Mysuru",
		Region:          "Mysuru",
		Coordinates:     models.GeoPoint{Lat: 12.3375, Lng: 76.6224},
		DistanceKm:      km(142.5),
		ImageURL:        "https://images.surgeryhub.in/hospitals/manipal-mysuru.jpg",
		GalleryImages: []string{
			"https://images.surgeryhub.in/hospitals/manipal-mysuru-1.jpg",
		},
		Accreditations: []string{"NABH"},
		SurgeryTypes:   []models.SurgeryType{models.SurgeryCurative, models.SurgeryCosmetic, models.SurgeryPalliative},
		Surgeries: []models.Surgery{
			{
				ID: "surg-manipal-cataract", Name: "Cataract Surgery", Type: models.SurgeryCurative,
				Description: "Phacoemulsification with foldable IOL implant",
				MinCost:     25000, MaxCost: 75000,
				AverageDuration: "30 minutes", RecoveryTime: "1-2 weeks",
			},
			{
				ID: "surg-manipal-rhino", Name: "Rhinoplasty", Type: models.SurgeryCosmetic,
				Description: "Functional and aesthetic nasal reshaping",
				MinCost:     90000, MaxCost: 200000,
				AverageDuration: "2-3 hours", RecoveryTime: "2-3 weeks",
			},
			{
				ID: "surg-manipal-pall", Name: "Palliative Stent Placement", Type: models.SurgeryPalliative,
				Description: "Stenting for symptomatic relief in advanced disease",
				MinCost:     60000, MaxCost: 140000,
				AverageDuration: "1 hour", RecoveryTime: "3-5 days",
			},
		},
		Doctors: []models.Doctor{
			{
				ID: "doc-manipal-iyer", Name: "Dr. Lakshmi Iyer", Specialization: "Ophthalmology",
				Qualification: "MS (Ophthalmology)", Experience: 19, ConsultationFee: 700,
				Rating: 4.6, ReviewCount: 334,
				Availability: []string{"Tuesday", "Wednesday", "Friday", "Saturday"},
				PhotoURL:     "https://images.surgeryhub.in/doctors/lakshmi-iyer.jpg",
			},
			{
				ID: "doc-manipal-shetty", Name: "Dr. Arjun Shetty", Specialization: "Plastic Surgery",
				Qualification: "MCh (Plastic Surgery)", Experience: 12, ConsultationFee: 1000,
				Rating: 4.5, ReviewCount: 158,
				Availability: []string{"Monday", "Thursday", "Saturday"},
				PhotoURL:     "https://images.surgeryhub.in/doctors/arjun-shetty.jpg",
			},
		},
		InsuranceAccepted: []string{"Star Health", "New India Assurance", "Ayushman Bharat"},
		ContactPhone:      "+91 821 242 8000",
		ContactEmail:      "mysuru@manipalhospitals.com",
		IsVerified:        true,
	},
	{
		ID:              "hosp-kmc-mangaluru",
		Name:            "KMC Hospital Mangaluru",
		Tagline:         "Coastal Karnataka's teaching hospital network",
		Rating:          4.2,
		ReviewCount:     654,
		YearEstablished: 1995,
		Address:         "Dr. B R Ambedkar Circle",
		City:            "Mangaluru",
		District:        "Dakshina Kannada",
		Region:          "Mangaluru",
		Coordinates:     models.GeoPoint{Lat: 12.8703, Lng: 74.8425},
		ImageURL:        "https://images.surgeryhub.in/hospitals/kmc-mangaluru.jpg",
		GalleryImages:   []string{"https://images.surgeryhub.in/hospitals/kmc-mangaluru-1.jpg"},
		Accreditations:  []string{"NABH", "NABL"},
		SurgeryTypes:    []models.SurgeryType{models.SurgeryDiagnostic, models.SurgeryCurative},
		Surgeries: []models.Surgery{
			{
				ID: "surg-kmc-endo", Name: "Diagnostic Endoscopy", Type: models.SurgeryDiagnostic,
				Description: "Upper GI endoscopy with biopsy",
				MinCost:     8000, MaxCost: 20000,
				AverageDuration: "20 minutes", RecoveryTime: "Same day",
			},
			{
				ID: "surg-kmc-hernia", Name: "Laparoscopic Hernia Repair", Type: models.SurgeryCurative,
				Description: "Mesh repair of inguinal hernia",
				MinCost:     55000, MaxCost: 110000,
				AverageDuration: "1.5 hours", RecoveryTime: "2-3 weeks",
			},
		},
		Doctors: []models.Doctor{
			{
				ID: "doc-kmc-pai", Name: "Dr. Ramesh Pai", Specialization: "General Surgery",
				Qualification: "MS (General Surgery)", Experience: 25, ConsultationFee: 600,
				Rating: 4.4, ReviewCount: 221,
				Availability: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
				PhotoURL:     "https://images.surgeryhub.in/doctors/ramesh-pai.jpg",
			},
		},
		InsuranceAccepted: []string{"Star Health", "Ayushman Bharat", "United India"},
		ContactPhone:      "+91 824 244 5858",
		ContactEmail:      "info@kmcmangaluru.in",
		IsVerified:        true,
	},
	{
		ID:              "hosp-suchirayu-hubballi",
		Name:            "Suchirayu Hospital",
		Tagline:         "North Karnataka's tertiary care destination",
		Rating:          4.0,
		ReviewCount:     312,
		YearEstablished: 2016,
		Address:         "Gokul Road, near Airport",
		City:            "Hubballi",
		District:        "Dharwad",
		Region:          "Hubballi-Dharwad",
		Coordinates:     models.GeoPoint{Lat: 15.3525, Lng: 75.0842},
		DistanceKm:      km(410.8),
		ImageURL:        "https://images.surgeryhub.in/hospitals/suchirayu.jpg",
		GalleryImages:   []string{"https://images.surgeryhub.in/hospitals/suchirayu-1.jpg"},
		Accreditations:  []string{"NABH"},
		SurgeryTypes:    []models.SurgeryType{models.SurgeryCurative, models.SurgeryReconstructive},
		Surgeries: []models.Surgery{
			{
				ID: "surg-suchirayu-tkr", Name: "Total Knee Replacement", Type: models.SurgeryReconstructive,
				Description: "Bilateral and unilateral knee arthroplasty",
				MinCost:     160000, MaxCost: 320000,
				AverageDuration: "2-3 hours", RecoveryTime: "3-6 months",
			},
			{
				ID: "surg-suchirayu-gall", Name: "Gallbladder Removal", Type: models.SurgeryCurative,
				Description: "Laparoscopic cholecystectomy",
				MinCost:     48000, MaxCost: 95000,
				AverageDuration: "1 hour", RecoveryTime: "1-2 weeks",
			},
		},
		Doctors: []models.Doctor{
			{
				ID: "doc-suchirayu-patil", Name: "Dr. Veena Patil", Specialization: "Orthopaedic Surgery",
				Qualification: "MS (Ortho)", Experience: 14, ConsultationFee: 550,
				Rating: 4.3, ReviewCount: 98,
				Availability: []string{"Monday", "Wednesday", "Friday"},
				PhotoURL:     "https://images.surgeryhub.in/doctors/veena-patil.jpg",
			},
		},
		InsuranceAccepted: []string{"Ayushman Bharat", "New India Assurance"},
		ContactPhone:      "+91 836 223 3000",
		ContactEmail:      "contact@suchirayu.in",
		IsVerified:        false,
	},
	{
		ID:              "hosp-sparsh-blr",
		Name:            "Sparsh Hospital Yeshwanthpur",
		Tagline:         "Super-speciality orthopaedic and trauma care",
		Rating:          4.5,
		ReviewCount:     948,
		YearEstablished: 2005,
		Address:         "Tumkur Road, Yeshwanthpur",
		City:            "Bengaluru",
		District:        "Bengaluru Urban",
		Region:          "Bengaluru Urban",
		Coordinates:     models.GeoPoint{Lat: 13.0285, Lng: 77.5404},
		DistanceKm:      km(9.1),
		ImageURL:        "https://images.surgeryhub.in/hospitals/sparsh.jpg",
		GalleryImages:   []string{"https://images.surgeryhub.in/hospitals/sparsh-1.jpg"},
		Accreditations:  []string{"NABH", "JCI"},
		SurgeryTypes:    []models.SurgeryType{models.SurgeryReconstructive, models.SurgeryCosmetic, models.SurgeryDiagnostic},
		Surgeries: []models.Surgery{
			{
				ID: "surg-sparsh-spine", Name: "Spinal Fusion", Type: models.SurgeryReconstructive,
				Description: "Lumbar interbody fusion with instrumentation",
				MinCost:     250000, MaxCost: 500000,
				AverageDuration: "3-4 hours", RecoveryTime: "3-6 months",
			},
			{
				ID: "surg-sparsh-arthro", Name: "Diagnostic Arthroscopy", Type: models.SurgeryDiagnostic,
				Description: "Keyhole joint examination",
				MinCost:     35000, MaxCost: 70000,
				AverageDuration: "45 minutes", RecoveryTime: "1 week",
			},
			{
				ID: "surg-sparsh-lipo", Name: "Liposuction", Type: models.SurgeryCosmetic,
				Description: "Tumescent liposuction, single region",
				MinCost:     80000, MaxCost: 180000,
				AverageDuration: "2 hours", RecoveryTime: "2-4 weeks",
			},
		},
		Doctors: []models.Doctor{
			{
				ID: "doc-sparsh-kumar", Name: "Dr. Sandeep Kumar", Specialization: "Spine Surgery",
				Qualification: "MS (Ortho), Fellowship Spine", Experience: 18, ConsultationFee: 1100,
				Rating: 4.7, ReviewCount: 376,
				Availability: []string{"Tuesday", "Thursday", "Saturday"},
				PhotoURL:     "https://images.surgeryhub.in/doctors/sandeep-kumar.jpg",
			},
			{
				ID: "doc-sparsh-dsouza", Name: "Dr. Anita D'Souza", Specialization: "Plastic Surgery",
				Qualification: "MCh (Plastic Surgery)", Experience: 9, ConsultationFee: 900,
				Rating: 4.4, ReviewCount: 142,
				Availability: []string{"Monday", "Wednesday", "Friday"},
				PhotoURL:     "https://images.surgeryhub.in/doctors/anita-dsouza.jpg",
			},
		},
		InsuranceAccepted: []string{"Star Health", "HDFC Ergo", "Bajaj Allianz"},
		ContactPhone:      "+91 80 6122 2000",
		ContactEmail:      "care@sparshhospital.com",
		Website:           "https://www.sparshhospital.com",
		IsVerified:        true,
	},
}

// SeedIfEmpty installs the starter catalog when the collection has no records.
func SeedIfEmpty(repo HospitalRepository) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check catalog size: %w", err)
	}
	if count > 0 {
		return nil
	}
	for i := range seedCatalog {
		h := seedCatalog[i]
		if err := repo.Create(&h); err != nil {
			return fmt.Errorf("failed to seed hospital %s: %w", h.ID, err)
		}
	}
	return nil
}
