//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	dombooking "clinic-booking/internal/domain/booking"
	domslot "clinic-booking/internal/domain/slot"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"
)

type BookingBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	UserName        string
	UserEmail       string
	SlotID          uuid.UUID
	DoctorID        uuid.UUID
	DoctorName      string
	HospitalName    string
	SlotDate        time.Time
	BookingTime     time.Time
	AppointmentTime domslot.TimeOfDay
	Status          dombooking.Status
	PatientNotes    *string
	AmountPaidCents *int32
}

func NewBookingBuilder() *BookingBuilder {
	appointmentTime, _ := domslot.NewTimeOfDay(9, 0)
	tomorrow := time.Now().AddDate(0, 0, 1)
	fee := int32(50000)
	return &BookingBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		UserName:        "Ravi Kumar",
		UserEmail:       "ravi@example.com",
		SlotID:          uuid.New(),
		DoctorID:        uuid.New(),
		DoctorName:      "Dr. Asha Rao",
		HospitalName:    "City General",
		SlotDate:        time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC),
		BookingTime:     time.Now(),
		AppointmentTime: appointmentTime,
		Status:          dombooking.StatusConfirmed,
		AmountPaidCents: &fee,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	var notes dombooking.Note
	if b.PatientNotes != nil {
		notes = dombooking.NewNote(*b.PatientNotes)
	}
	return dombooking.ReconstructBooking(
		b.ID, b.UserID, b.SlotID, b.BookingTime, b.AppointmentTime,
		b.Status, notes, b.AmountPaidCents,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:              b.ID,
		UserID:          b.UserID,
		SlotID:          b.SlotID,
		BookingTime:     b.BookingTime,
		AppointmentTime: b.AppointmentTime,
		Status:          b.Status.String(),
		PatientNotes:    b.PatientNotes,
		AmountPaidCents: b.AmountPaidCents,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:              b.ID,
		UserID:          b.UserID,
		UserName:        b.UserName,
		UserEmail:       b.UserEmail,
		SlotID:          b.SlotID,
		DoctorID:        b.DoctorID,
		DoctorName:      b.DoctorName,
		HospitalName:    b.HospitalName,
		SlotDate:        b.SlotDate,
		AppointmentTime: b.AppointmentTime.String(),
		BookingTime:     b.BookingTime,
		Status:          b.Status.String(),
		PatientNotes:    b.PatientNotes,
		AmountPaidCents: b.AmountPaidCents,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
