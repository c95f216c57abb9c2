package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotFull        = errors.New("slot is fully booked")
	ErrInvalidCapacity = errors.New("max bookings per day must be positive")
	ErrInvalidDuration = errors.New("minutes per patient must be positive")
	ErrPastDate        = errors.New("cannot create slots for past dates")
)

// Slot is one doctor's bookable day. The occupancy counter is the only
// mutable state; it must only ever change through Book and ReleaseBooking,
// and only while the caller holds the slot's guard.
type Slot struct {
	id                uuid.UUID
	doctorID          uuid.UUID
	slotDate          time.Time
	startTime         TimeOfDay
	minutesPerPatient int
	maxBookingsPerDay int
	currentBookings   int
}

func NewSlot(
	doctorID uuid.UUID,
	slotDate time.Time,
	startTime TimeOfDay,
	minutesPerPatient int,
	maxBookingsPerDay int,
	now time.Time,
) (*Slot, error) {
	if maxBookingsPerDay <= 0 {
		return nil, ErrInvalidCapacity
	}
	if minutesPerPatient <= 0 {
		return nil, ErrInvalidDuration
	}
	if slotDate.Before(truncateToDay(now)) {
		return nil, ErrPastDate
	}

	return &Slot{
		id:                uuid.New(),
		doctorID:          doctorID,
		slotDate:          truncateToDay(slotDate),
		startTime:         startTime,
		minutesPerPatient: minutesPerPatient,
		maxBookingsPerDay: maxBookingsPerDay,
	}, nil
}

func ReconstructSlot(
	id, doctorID uuid.UUID,
	slotDate time.Time,
	startTime TimeOfDay,
	minutesPerPatient, maxBookingsPerDay, currentBookings int,
) *Slot {
	return &Slot{
		id:                id,
		doctorID:          doctorID,
		slotDate:          slotDate,
		startTime:         startTime,
		minutesPerPatient: minutesPerPatient,
		maxBookingsPerDay: maxBookingsPerDay,
		currentBookings:   currentBookings,
	}
}

// Book claims the next occupancy position and returns the appointment time
// for it. The time is computed from the pre-increment counter, so positions
// map to start + k*minutesPerPatient for k = 0,1,2,...
//
// After a cancellation frees a position mid-sequence, the next booking is
// computed from the lowered counter and can receive the same time as an
// existing later booking. That matches the source system's behavior and is
// kept deliberately; see DESIGN.md.
func (s *Slot) Book() (TimeOfDay, error) {
	if s.currentBookings >= s.maxBookingsPerDay {
		return TimeOfDay{}, ErrSlotFull
	}
	appointmentTime := AppointmentTimeAt(s.startTime, s.minutesPerPatient, s.currentBookings)
	s.currentBookings++
	return appointmentTime, nil
}

// ReleaseBooking frees one occupancy position, flooring at zero.
func (s *Slot) ReleaseBooking() {
	if s.currentBookings > 0 {
		s.currentBookings--
	}
}

func (s *Slot) IsAvailable() bool {
	return s.currentBookings < s.maxBookingsPerDay
}

func (s *Slot) EstimatedEnd() TimeOfDay {
	return EstimatedEndTime(s.startTime, s.minutesPerPatient, s.maxBookingsPerDay)
}

func (s *Slot) ID() uuid.UUID          { return s.id }
func (s *Slot) DoctorID() uuid.UUID    { return s.doctorID }
func (s *Slot) SlotDate() time.Time    { return s.slotDate }
func (s *Slot) StartTime() TimeOfDay   { return s.startTime }
func (s *Slot) MinutesPerPatient() int { return s.minutesPerPatient }
func (s *Slot) MaxBookingsPerDay() int { return s.maxBookingsPerDay }
func (s *Slot) CurrentBookings() int   { return s.currentBookings }

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
