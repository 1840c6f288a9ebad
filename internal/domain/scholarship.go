package domain

import "time"

// Scholarship is a posted funding opportunity applicants can order.
type Scholarship struct {
	ID                string
	Name              string
	Image             string
	Category          string
	SubjectCategory   string
	Degree            string
	UniversityName    string
	UniversityCountry string
	UniversityCity    string
	UniversityRank    int
	TuitionFees       float64
	ApplicationFees   float64
	ServiceCharge     float64
	Deadline          *time.Time
	PostDate          time.Time
	PostedBy          string
	Description       string
}
