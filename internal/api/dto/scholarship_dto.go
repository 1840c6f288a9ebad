package dto

import (
	"time"

	"github.com/spec-kit/scholarship-service/internal/domain"
)

// ScholarshipRequest payload for POST /scholarship.
type ScholarshipRequest struct {
	Name              string     `json:"name"`
	Image             string     `json:"image"`
	Category          string     `json:"category"`
	SubjectCategory   string     `json:"subject_category"`
	Degree            string     `json:"degree"`
	UniversityName    string     `json:"university_name"`
	UniversityCountry string     `json:"university_country"`
	UniversityCity    string     `json:"university_city"`
	UniversityRank    int        `json:"university_rank"`
	TuitionFees       float64    `json:"tuition_fees"`
	ApplicationFees   float64    `json:"application_fees"`
	ServiceCharge     float64    `json:"service_charge"`
	Deadline          *time.Time `json:"deadline"`
	PostDate          *time.Time `json:"post_date"`
	PostedBy          string     `json:"posted_by"`
	Description       string     `json:"description"`
}

// ToDomain converts the request.
func (r ScholarshipRequest) ToDomain() domain.Scholarship {
	s := domain.Scholarship{
		Name:              r.Name,
		Image:             r.Image,
		Category:          r.Category,
		SubjectCategory:   r.SubjectCategory,
		Degree:            r.Degree,
		UniversityName:    r.UniversityName,
		UniversityCountry: r.UniversityCountry,
		UniversityCity:    r.UniversityCity,
		UniversityRank:    r.UniversityRank,
		TuitionFees:       r.TuitionFees,
		ApplicationFees:   r.ApplicationFees,
		ServiceCharge:     r.ServiceCharge,
		Deadline:          r.Deadline,
		PostedBy:          r.PostedBy,
		Description:       r.Description,
	}
	if r.PostDate != nil {
		s.PostDate = *r.PostDate
	}
	return s
}

// ScholarshipResponse is a stored scholarship.
type ScholarshipResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Image             string     `json:"image"`
	Category          string     `json:"category"`
	SubjectCategory   string     `json:"subject_category"`
	Degree            string     `json:"degree"`
	UniversityName    string     `json:"university_name"`
	UniversityCountry string     `json:"university_country"`
	UniversityCity    string     `json:"university_city"`
	UniversityRank    int        `json:"university_rank"`
	TuitionFees       float64    `json:"tuition_fees"`
	ApplicationFees   float64    `json:"application_fees"`
	ServiceCharge     float64    `json:"service_charge"`
	Deadline          *time.Time `json:"deadline"`
	PostDate          time.Time  `json:"post_date"`
	PostedBy          string     `json:"posted_by"`
	Description       string     `json:"description"`
}

// ScholarshipCreatedResponse answers POST /scholarship.
type ScholarshipCreatedResponse struct {
	Message string              `json:"message"`
	Result  ScholarshipResponse `json:"result"`
}

// NewScholarshipResponse maps a domain scholarship.
func NewScholarshipResponse(s *domain.Scholarship) ScholarshipResponse {
	return ScholarshipResponse{
		ID:                s.ID,
		Name:              s.Name,
		Image:             s.Image,
		Category:          s.Category,
		SubjectCategory:   s.SubjectCategory,
		Degree:            s.Degree,
		UniversityName:    s.UniversityName,
		UniversityCountry: s.UniversityCountry,
		UniversityCity:    s.UniversityCity,
		UniversityRank:    s.UniversityRank,
		TuitionFees:       s.TuitionFees,
		ApplicationFees:   s.ApplicationFees,
		ServiceCharge:     s.ServiceCharge,
		Deadline:          s.Deadline,
		PostDate:          s.PostDate,
		PostedBy:          s.PostedBy,
		Description:       s.Description,
	}
}

// NewScholarshipList maps scholarships, never returning nil.
func NewScholarshipList(items []domain.Scholarship) []ScholarshipResponse {
	out := make([]ScholarshipResponse, 0, len(items))
	for i := range items {
		out = append(out, NewScholarshipResponse(&items[i]))
	}
	return out
}
