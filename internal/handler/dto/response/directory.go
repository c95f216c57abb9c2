package response

import (
	"clinic-booking/internal/usecase/queries"
)

type DoctorResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Specialization       string  `json:"specialization"`
	Qualifications       *string `json:"qualifications,omitempty"`
	ExperienceYears      *int32  `json:"experience_years,omitempty"`
	ConsultationFeeCents int32   `json:"consultation_fee_cents"`
	HospitalID           string  `json:"hospital_id"`
	HospitalName         string  `json:"hospital_name"`
}

func FromDoctorView(v *queries.DoctorView) *DoctorResponse {
	return &DoctorResponse{
		ID:                   v.ID.String(),
		Name:                 v.Name,
		Specialization:       v.Specialization,
		Qualifications:       v.Qualifications,
		ExperienceYears:      v.ExperienceYears,
		ConsultationFeeCents: v.ConsultationFeeCents,
		HospitalID:           v.HospitalID.String(),
		HospitalName:         v.HospitalName,
	}
}

func FromDoctorList(items []*queries.DoctorView) []*DoctorResponse {
	res := make([]*DoctorResponse, len(items))
	for i, it := range items {
		res[i] = FromDoctorView(it)
	}
	return res
}

type HospitalResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func FromHospitalView(v *queries.HospitalView) *HospitalResponse {
	return &HospitalResponse{
		ID:      v.ID.String(),
		Name:    v.Name,
		City:    v.City,
		Address: v.Address,
	}
}

func FromHospitalList(items []*queries.HospitalView) []*HospitalResponse {
	res := make([]*HospitalResponse, len(items))
	for i, it := range items {
		res[i] = FromHospitalView(it)
	}
	return res
}
