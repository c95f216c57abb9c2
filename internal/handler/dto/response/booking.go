package response

import (
	"clinic-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        string  `json:"user_name"`
	SlotID          string  `json:"slot_id"`
	DoctorName      string  `json:"doctor_name"`
	HospitalName    string  `json:"hospital_name"`
	SlotDate        string  `json:"slot_date"`
	AppointmentTime string  `json:"appointment_time"`
	BookingTime     int64   `json:"booking_time"`
	Status          string  `json:"status"`
	PatientNotes    *string `json:"patient_notes,omitempty"`
	AmountPaidCents *int32  `json:"amount_paid_cents,omitempty"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID.String(),
		UserID:          v.UserID.String(),
		UserName:        v.UserName,
		SlotID:          v.SlotID.String(),
		DoctorName:      v.DoctorName,
		HospitalName:    v.HospitalName,
		SlotDate:        v.SlotDate.Format("2006-01-02"),
		AppointmentTime: v.AppointmentTime,
		BookingTime:     v.BookingTime.Unix(),
		Status:          v.Status,
		PatientNotes:    v.PatientNotes,
		AmountPaidCents: v.AmountPaidCents,
		CreatedAt:       v.CreatedAt.Unix(),
		UpdatedAt:       v.UpdatedAt.Unix(),
	}
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingView(it)
	}
	return res
}
