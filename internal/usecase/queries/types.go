package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	ID                uuid.UUID `json:"id"`
	DoctorID          uuid.UUID `json:"doctor_id"`
	DoctorName        string    `json:"doctor_name"`
	Specialization    string    `json:"specialization"`
	HospitalID        uuid.UUID `json:"hospital_id"`
	HospitalName      string    `json:"hospital_name"`
	SlotDate          time.Time `json:"slot_date"`
	StartTime         string    `json:"start_time"`
	EstimatedEndTime  string    `json:"estimated_end_time"`
	MinutesPerPatient int32     `json:"minutes_per_patient"`
	MaxBookingsPerDay int32     `json:"max_bookings_per_day"`
	CurrentBookings   int32     `json:"current_bookings"`
	IsAvailable       bool      `json:"is_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	SlotID          uuid.UUID `json:"slot_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name"`
	HospitalName    string    `json:"hospital_name"`
	SlotDate        time.Time `json:"slot_date"`
	AppointmentTime string    `json:"appointment_time"`
	BookingTime     time.Time `json:"booking_time"`
	Status          string    `json:"status"`
	PatientNotes    *string   `json:"patient_notes,omitempty"`
	AmountPaidCents *int32    `json:"amount_paid_cents,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DoctorView struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Specialization       string    `json:"specialization"`
	Qualifications       *string   `json:"qualifications,omitempty"`
	ExperienceYears      *int32    `json:"experience_years,omitempty"`
	ConsultationFeeCents int32     `json:"consultation_fee_cents"`
	HospitalID           uuid.UUID `json:"hospital_id"`
	HospitalName         string    `json:"hospital_name"`
}

type HospitalView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	City    string    `json:"city"`
	Address string    `json:"address"`
}
