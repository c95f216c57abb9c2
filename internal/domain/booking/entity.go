package booking

import (
	"errors"
	"strings"
	"time"

	"clinic-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrNotOwned          = errors.New("booking belongs to another user")
	ErrNotCancellable    = errors.New("only confirmed bookings can be cancelled")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// Booking is one patient's reservation against a slot. The appointment time
// is assigned exactly once, at creation, from the slot's occupancy at that
// moment; it is never recomputed afterwards.
type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	slotID          uuid.UUID
	bookingTime     time.Time
	appointmentTime slot.TimeOfDay
	status          Status
	patientNotes    Note
	amountPaidCents *int32
}

func NewBooking(
	userID, slotID uuid.UUID,
	appointmentTime slot.TimeOfDay,
	patientNotes Note,
	amountPaidCents *int32,
	now time.Time,
) *Booking {
	return &Booking{
		id:              uuid.New(),
		userID:          userID,
		slotID:          slotID,
		bookingTime:     now,
		appointmentTime: appointmentTime,
		status:          StatusConfirmed,
		patientNotes:    patientNotes,
		amountPaidCents: amountPaidCents,
	}
}

func ReconstructBooking(
	id, userID, slotID uuid.UUID,
	bookingTime time.Time,
	appointmentTime slot.TimeOfDay,
	status Status,
	patientNotes Note,
	amountPaidCents *int32,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		slotID:          slotID,
		bookingTime:     bookingTime,
		appointmentTime: appointmentTime,
		status:          status,
		patientNotes:    patientNotes,
		amountPaidCents: amountPaidCents,
	}
}

// CancelBy transitions confirmed -> cancelled on behalf of actorID.
// Only the owning user may cancel, and only while still confirmed.
func (b *Booking) CancelBy(actorID uuid.UUID) error {
	if b.userID != actorID {
		return ErrNotOwned
	}
	if b.status != StatusConfirmed {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	return nil
}

// TransitionTo applies an administrative transition. Confirmed bookings may
// become completed or no_show; everything else is rejected.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() || next == StatusConfirmed {
		return ErrInvalidTransition
	}
	if b.status.IsTerminal() {
		return ErrInvalidTransition
	}
	if next == StatusCancelled {
		// Cancellation goes through CancelBy so ownership is always checked.
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) UserID() uuid.UUID               { return b.userID }
func (b *Booking) SlotID() uuid.UUID               { return b.slotID }
func (b *Booking) BookingTime() time.Time          { return b.bookingTime }
func (b *Booking) AppointmentTime() slot.TimeOfDay { return b.appointmentTime }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) PatientNotes() Note              { return b.patientNotes }
func (b *Booking) AmountPaidCents() *int32         { return b.amountPaidCents }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
