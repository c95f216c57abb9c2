package shared

import (
	"time"

	"github.com/google/uuid"

	"clinic-booking/internal/domain/slot"
)

// Snapshots are flat row images used on the command side. Reconstruction into
// domain entities happens in the command handlers.

type SlotSnapshot struct {
	ID                uuid.UUID
	DoctorID          uuid.UUID
	SlotDate          time.Time
	StartTime         slot.TimeOfDay
	MinutesPerPatient int32
	MaxBookingsPerDay int32
	CurrentBookings   int32
	IsAvailable       bool
}

type BookingSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	SlotID          uuid.UUID
	BookingTime     time.Time
	AppointmentTime slot.TimeOfDay
	Status          string
	PatientNotes    *string
	AmountPaidCents *int32
}

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type DoctorSnapshot struct {
	ID                   uuid.UUID
	Name                 string
	Specialization       string
	ConsultationFeeCents int32
	HospitalID           uuid.UUID
}

// CreateSlotParams is the persisted shape of a new slot. Validation happens
// in the domain constructor before this is built.
type CreateSlotParams struct {
	ID                uuid.UUID
	DoctorID          uuid.UUID
	SlotDate          time.Time
	StartTime         slot.TimeOfDay
	MinutesPerPatient int32
	MaxBookingsPerDay int32
}
