//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	domslot "clinic-booking/internal/domain/slot"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"
)

type SlotBuilder struct {
	ID                uuid.UUID
	DoctorID          uuid.UUID
	DoctorName        string
	Specialization    string
	HospitalID        uuid.UUID
	HospitalName      string
	SlotDate          time.Time
	StartTime         domslot.TimeOfDay
	MinutesPerPatient int
	MaxBookingsPerDay int
	CurrentBookings   int
	IsAvailable       bool
}

func NewSlotBuilder() *SlotBuilder {
	startTime, _ := domslot.NewTimeOfDay(9, 0)
	tomorrow := time.Now().AddDate(0, 0, 1)
	return &SlotBuilder{
		ID:                uuid.New(),
		DoctorID:          uuid.New(),
		DoctorName:        "Dr. Asha Rao",
		Specialization:    "Cardiology",
		HospitalID:        uuid.New(),
		HospitalName:      "City General",
		SlotDate:          time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:         startTime,
		MinutesPerPatient: 10,
		MaxBookingsPerDay: 30,
		CurrentBookings:   0,
		IsAvailable:       true,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain(now time.Time) (*domslot.Slot, error) {
	return domslot.NewSlot(b.DoctorID, b.SlotDate, b.StartTime, b.MinutesPerPatient, b.MaxBookingsPerDay, now)
}

func (b *SlotBuilder) BuildReconstructed() *domslot.Slot {
	return domslot.ReconstructSlot(
		b.ID, b.DoctorID, b.SlotDate, b.StartTime,
		b.MinutesPerPatient, b.MaxBookingsPerDay, b.CurrentBookings,
	)
}

func (b *SlotBuilder) BuildSnapshot() *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:                b.ID,
		DoctorID:          b.DoctorID,
		SlotDate:          b.SlotDate,
		StartTime:         b.StartTime,
		MinutesPerPatient: int32(b.MinutesPerPatient),
		MaxBookingsPerDay: int32(b.MaxBookingsPerDay),
		CurrentBookings:   int32(b.CurrentBookings),
		IsAvailable:       b.IsAvailable,
	}
}

func (b *SlotBuilder) BuildView() *queries.SlotView {
	now := time.Now()
	return &queries.SlotView{
		ID:                b.ID,
		DoctorID:          b.DoctorID,
		DoctorName:        b.DoctorName,
		Specialization:    b.Specialization,
		HospitalID:        b.HospitalID,
		HospitalName:      b.HospitalName,
		SlotDate:          b.SlotDate,
		StartTime:         b.StartTime.String(),
		EstimatedEndTime:  domslot.EstimatedEndTime(b.StartTime, b.MinutesPerPatient, b.MaxBookingsPerDay).String(),
		MinutesPerPatient: int32(b.MinutesPerPatient),
		MaxBookingsPerDay: int32(b.MaxBookingsPerDay),
		CurrentBookings:   int32(b.CurrentBookings),
		IsAvailable:       b.IsAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
