package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/converter"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/shared"
)

// CommandReads serves the lookups command handlers need mid-transaction.
// Unlike the view read stores it takes the DBTX per call, so the same
// instance works against the pool and against any open transaction.
type CommandReads struct{}

func NewCommandReads() *CommandReads {
	return &CommandReads{}
}

const userSnapshotQuery = `
SELECT id, name, email
FROM users
WHERE id = $1
`

func (r *CommandReads) UserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	err := dbtx.QueryRow(ctx, userSnapshotQuery, pgconv.UUIDToPgtype(id)).
		Scan(&snap.ID, &snap.Name, &snap.Email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &snap, nil
}

const doctorSnapshotQuery = `
SELECT id, name, specialization, consultation_fee_cents, hospital_id
FROM doctors
WHERE id = $1
`

func (r *CommandReads) DoctorByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.DoctorSnapshot, error) {
	var snap shared.DoctorSnapshot
	err := dbtx.QueryRow(ctx, doctorSnapshotQuery, pgconv.UUIDToPgtype(id)).
		Scan(&snap.ID, &snap.Name, &snap.Specialization, &snap.ConsultationFeeCents, &snap.HospitalID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("doctor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find doctor by ID", err)
	}
	return &snap, nil
}

const slotSnapshotQuery = `
SELECT id, doctor_id, slot_date, start_time, minutes_per_patient, max_bookings_per_day, current_bookings, is_available
FROM slots
WHERE id = $1
`

func (r *CommandReads) SlotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.SlotSnapshot, error) {
	var snap shared.SlotSnapshot
	var startTime pgtype.Time
	err := dbtx.QueryRow(ctx, slotSnapshotQuery, pgconv.UUIDToPgtype(id)).Scan(
		&snap.ID, &snap.DoctorID, &snap.SlotDate, &startTime,
		&snap.MinutesPerPatient, &snap.MaxBookingsPerDay, &snap.CurrentBookings, &snap.IsAvailable,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	snap.StartTime = converter.TimeOfDayFromPgtype(startTime)
	return &snap, nil
}

const bookingSnapshotQuery = `
SELECT id, user_id, slot_id, booking_time, appointment_time, status, patient_notes, amount_paid_cents
FROM bookings
WHERE id = $1
`

func (r *CommandReads) BookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	var appointmentTime pgtype.Time
	var notes pgtype.Text
	var amountPaid pgtype.Int4
	err := dbtx.QueryRow(ctx, bookingSnapshotQuery, pgconv.UUIDToPgtype(id)).Scan(
		&snap.ID, &snap.UserID, &snap.SlotID, &snap.BookingTime,
		&appointmentTime, &snap.Status, &notes, &amountPaid,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	snap.AppointmentTime = converter.TimeOfDayFromPgtype(appointmentTime)
	snap.PatientNotes = pgconv.StringPtrFromPgtype(notes)
	snap.AmountPaidCents = pgconv.Int32PtrFromPgtype(amountPaid)
	return &snap, nil
}
