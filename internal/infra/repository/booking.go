package repository

import (
	"context"

	"github.com/google/uuid"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/converter"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/pkg/pgconv"
)

var errNoRowsAffected = errs.New("no rows affected")

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingQuery = `
INSERT INTO bookings (id, user_id, slot_id, booking_time, appointment_time, status, patient_notes, amount_paid_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var notes *string
	if !b.PatientNotes().IsEmpty() {
		v := b.PatientNotes().String()
		notes = &v
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBookingQuery,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.UserID()),
		pgconv.UUIDToPgtype(b.SlotID()),
		pgconv.TimeToPgtype(b.BookingTime()),
		converter.TimeOfDayToPgtype(b.AppointmentTime()),
		b.Status().String(),
		pgconv.StringPtrToPgtype(notes),
		pgconv.Int32PtrToPgtype(b.AmountPaidCents()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const updateBookingStatusIfQuery = `
UPDATE bookings
SET status = $3, updated_at = NOW()
WHERE id = $1 AND status = $2
`

// UpdateStatusIf is a compare-and-set on the status column. Zero rows
// affected means the booking was missing or already past the expected status.
func (r *BookingRepository) UpdateStatusIf(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status) (bool, error) {
	tag, err := dbtx.Exec(ctx, updateBookingStatusIfQuery,
		pgconv.UUIDToPgtype(id), from.String(), to.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() > 0, nil
}
