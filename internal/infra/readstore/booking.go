package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/converter"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewColumns = `
SELECT b.id, b.user_id, u.name, u.email, b.slot_id, s.doctor_id, d.name, h.name,
       s.slot_date, b.appointment_time, b.booking_time, b.status,
       b.patient_notes, b.amount_paid_cents, b.created_at, b.updated_at
FROM bookings b
JOIN users u ON u.id = b.user_id
JOIN slots s ON s.id = b.slot_id
JOIN doctors d ON d.id = s.doctor_id
JOIN hospitals h ON h.id = d.hospital_id
`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewColumns+`WHERE b.id = $1`, pgconv.UUIDToPgtype(id))
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		bookingViewColumns+`WHERE b.user_id = $1 ORDER BY s.slot_date DESC, b.appointment_time DESC`,
		pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user", err)
	}
	return collectBookingViews(rows)
}

func (r *BookingReadStore) FindByUserAndDateFrom(ctx context.Context, userID uuid.UUID, from time.Time) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		bookingViewColumns+`WHERE b.user_id = $1 AND s.slot_date >= $2 AND b.status = $3 ORDER BY s.slot_date, b.appointment_time`,
		pgconv.UUIDToPgtype(userID), pgconv.DateToPgtype(from), booking.StatusConfirmed.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find upcoming bookings", err)
	}
	return collectBookingViews(rows)
}

func (r *BookingReadStore) FindByUserAndDateUntil(ctx context.Context, userID uuid.UUID, until time.Time) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx,
		bookingViewColumns+`WHERE b.user_id = $1 AND s.slot_date < $2 ORDER BY s.slot_date DESC, b.appointment_time DESC`,
		pgconv.UUIDToPgtype(userID), pgconv.DateToPgtype(until))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find past bookings", err)
	}
	return collectBookingViews(rows)
}

const overdueConfirmedQuery = `
SELECT b.id
FROM bookings b
JOIN slots s ON s.id = b.slot_id
WHERE b.status = $1 AND s.slot_date < $2
ORDER BY s.slot_date
LIMIT $3
`

func (r *BookingReadStore) FindOverdueConfirmedIDs(ctx context.Context, before time.Time, limit int32) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, overdueConfirmedQuery,
		booking.StatusConfirmed.String(), pgconv.DateToPgtype(before), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overdue bookings", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking ID", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking IDs", err)
	}
	return ids, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	var appointmentTime pgtype.Time
	var notes pgtype.Text
	var amountPaid pgtype.Int4
	err := row.Scan(
		&v.ID, &v.UserID, &v.UserName, &v.UserEmail, &v.SlotID, &v.DoctorID, &v.DoctorName, &v.HospitalName,
		&v.SlotDate, &appointmentTime, &v.BookingTime, &v.Status,
		&notes, &amountPaid, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.AppointmentTime = converter.TimeOfDayFromPgtype(appointmentTime).String()
	v.PatientNotes = pgconv.StringPtrFromPgtype(notes)
	v.AmountPaidCents = pgconv.Int32PtrFromPgtype(amountPaid)
	return &v, nil
}
