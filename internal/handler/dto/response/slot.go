package response

import (
	"clinic-booking/internal/usecase/queries"
)

type SlotResponse struct {
	ID                string `json:"id"`
	DoctorID          string `json:"doctor_id"`
	DoctorName        string `json:"doctor_name"`
	Specialization    string `json:"specialization"`
	HospitalID        string `json:"hospital_id"`
	HospitalName      string `json:"hospital_name"`
	SlotDate          string `json:"slot_date"`
	StartTime         string `json:"start_time"`
	EstimatedEndTime  string `json:"estimated_end_time"`
	MinutesPerPatient int32  `json:"minutes_per_patient"`
	MaxBookingsPerDay int32  `json:"max_bookings_per_day"`
	CurrentBookings   int32  `json:"current_bookings"`
	AvailableCount    int32  `json:"available_count"`
	IsAvailable       bool   `json:"is_available"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:                v.ID.String(),
		DoctorID:          v.DoctorID.String(),
		DoctorName:        v.DoctorName,
		Specialization:    v.Specialization,
		HospitalID:        v.HospitalID.String(),
		HospitalName:      v.HospitalName,
		SlotDate:          v.SlotDate.Format("2006-01-02"),
		StartTime:         v.StartTime,
		EstimatedEndTime:  v.EstimatedEndTime,
		MinutesPerPatient: v.MinutesPerPatient,
		MaxBookingsPerDay: v.MaxBookingsPerDay,
		CurrentBookings:   v.CurrentBookings,
		AvailableCount:    v.MaxBookingsPerDay - v.CurrentBookings,
		IsAvailable:       v.IsAvailable,
	}
}

func FromSlotList(items []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(items))
	for i, it := range items {
		res[i] = FromSlotView(it)
	}
	return res
}

type BulkSlotsResponse struct {
	CreatedIDs []string `json:"created_ids"`
}
