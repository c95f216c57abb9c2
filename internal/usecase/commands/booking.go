package commands

import (
	"context"

	"github.com/google/uuid"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrDoctorNotFound          = errs.New("doctor not found")
	ErrSlotNotFound            = errs.New("slot not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrSlotNotAvailable        = errs.New("slot not open for booking")
	ErrSlotCapacityExceeded    = errs.New("slot capacity exceeded")
	ErrBookingNotOwned         = errs.New("booking belongs to another user")
	ErrBookingNotCancellable   = errs.New("booking cannot be cancelled")
	ErrInvalidStatusTransition = errs.New("invalid booking status transition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingInput struct {
	UserID       uuid.UUID
	SlotID       uuid.UUID
	PatientNotes *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (uuid.UUID, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clock clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clock}
}

// CreateBooking books one position in a slot. The slot row is locked for the
// duration of the transaction, so the capacity check, the appointment time
// assignment and the counter update are atomic against concurrent bookings.
func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, input CreateBookingInput) (uuid.UUID, error) {
	var bookingID uuid.UUID

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, tx.DB(), input.UserID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		snap, err := tx.Slots().FindByIDForUpdate(ctx, tx.DB(), input.SlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if snap.CurrentBookings >= snap.MaxBookingsPerDay {
			return ErrSlotCapacityExceeded
		}
		// The availability flag only gates bookings for slots closed by an
		// administrator; a full slot is reported as a capacity rejection.
		if !snap.IsAvailable {
			return ErrSlotNotAvailable
		}

		doctor, err := tx.Reads().DoctorByID(ctx, tx.DB(), snap.DoctorID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrDoctorNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		slotEntity := slot.ReconstructSlot(
			snap.ID, snap.DoctorID, snap.SlotDate, snap.StartTime,
			int(snap.MinutesPerPatient), int(snap.MaxBookingsPerDay), int(snap.CurrentBookings),
		)

		appointmentTime, err := slotEntity.Book()
		if err != nil {
			return ErrSlotCapacityExceeded
		}

		fee := doctor.ConsultationFeeCents
		var notes booking.Note
		if input.PatientNotes != nil {
			notes = booking.NewNote(*input.PatientNotes)
		}
		bookingEntity := booking.NewBooking(
			input.UserID, input.SlotID, appointmentTime, notes, &fee, u.clock.Now(),
		)

		if _, err := tx.Bookings().Create(ctx, tx.DB(), bookingEntity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Slots().UpdateOccupancy(
			ctx, tx.DB(), snap.ID,
			int32(slotEntity.CurrentBookings()), slotEntity.IsAvailable(),
		); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		bookingID = bookingEntity.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

// CancelBooking releases the user's booking and frees its position in the
// slot. Ownership is checked before the slot lock is taken; the status flip
// is conditional so a racing cancel cannot decrement the counter twice.
func (u *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		bookingEntity := reconstructBooking(snap)
		if err := bookingEntity.CancelBy(userID); err != nil {
			switch err {
			case booking.ErrNotOwned:
				return ErrBookingNotOwned
			default:
				return ErrBookingNotCancellable
			}
		}

		slotSnap, err := tx.Slots().FindByIDForUpdate(ctx, tx.DB(), snap.SlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		changed, err := tx.Bookings().UpdateStatusIf(
			ctx, tx.DB(), bookingID, booking.StatusConfirmed, booking.StatusCancelled,
		)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !changed {
			return ErrBookingNotCancellable
		}

		slotEntity := slot.ReconstructSlot(
			slotSnap.ID, slotSnap.DoctorID, slotSnap.SlotDate, slotSnap.StartTime,
			int(slotSnap.MinutesPerPatient), int(slotSnap.MaxBookingsPerDay), int(slotSnap.CurrentBookings),
		)
		slotEntity.ReleaseBooking()

		if err := tx.Slots().UpdateOccupancy(
			ctx, tx.DB(), slotSnap.ID,
			int32(slotEntity.CurrentBookings()), slotEntity.IsAvailable(),
		); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// UpdateBookingStatus applies an administrative transition such as completed
// or no_show. Cancellation is rejected here; it goes through CancelBooking.
func (u *bookingUseCaseImpl) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		bookingEntity := reconstructBooking(snap)
		prev := bookingEntity.Status()
		if err := bookingEntity.TransitionTo(next); err != nil {
			return ErrInvalidStatusTransition
		}

		changed, err := tx.Bookings().UpdateStatusIf(ctx, tx.DB(), bookingID, prev, next)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !changed {
			return ErrInvalidStatusTransition
		}
		return nil
	})
}

func reconstructBooking(snap *shared.BookingSnapshot) *booking.Booking {
	var notes booking.Note
	if snap.PatientNotes != nil {
		notes = booking.NewNote(*snap.PatientNotes)
	}
	return booking.ReconstructBooking(
		snap.ID, snap.UserID, snap.SlotID,
		snap.BookingTime, snap.AppointmentTime,
		booking.Status(snap.Status), notes, snap.AmountPaidCents,
	)
}
