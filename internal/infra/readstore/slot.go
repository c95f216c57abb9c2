package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/converter"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

const slotViewColumns = `
SELECT s.id, s.doctor_id, d.name, d.specialization, d.hospital_id, h.name,
       s.slot_date, s.start_time, s.minutes_per_patient, s.max_bookings_per_day,
       s.current_bookings, s.is_available, s.created_at, s.updated_at
FROM slots s
JOIN doctors d ON d.id = s.doctor_id
JOIN hospitals h ON h.id = d.hospital_id
`

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row := r.db.QueryRow(ctx, slotViewColumns+`WHERE s.id = $1`, pgconv.UUIDToPgtype(id))
	view, err := scanSlotView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return view, nil
}

func (r *SlotReadStore) FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*queries.SlotView, error) {
	row := r.db.QueryRow(ctx, slotViewColumns+`WHERE s.doctor_id = $1 AND s.slot_date = $2`,
		pgconv.UUIDToPgtype(doctorID), pgconv.DateToPgtype(date))
	view, err := scanSlotView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by doctor and date", err)
	}
	return view, nil
}

func (r *SlotReadStore) FindAvailableByDate(ctx context.Context, date time.Time) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx,
		slotViewColumns+`WHERE s.slot_date = $1 AND s.is_available ORDER BY s.start_time, h.name, d.name`,
		pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available slots by date", err)
	}
	return collectSlotViews(rows)
}

func (r *SlotReadStore) FindAvailableByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx,
		slotViewColumns+`WHERE s.doctor_id = $1 AND s.slot_date = $2 AND s.is_available`,
		pgconv.UUIDToPgtype(doctorID), pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available slots by doctor", err)
	}
	return collectSlotViews(rows)
}

func (r *SlotReadStore) FindAvailableByHospitalAndDate(ctx context.Context, hospitalID uuid.UUID, date time.Time) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx,
		slotViewColumns+`WHERE d.hospital_id = $1 AND s.slot_date = $2 AND s.is_available ORDER BY d.name`,
		pgconv.UUIDToPgtype(hospitalID), pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available slots by hospital", err)
	}
	return collectSlotViews(rows)
}

func (r *SlotReadStore) FindAvailableByHospitalSpecializationAndDate(ctx context.Context, hospitalID uuid.UUID, specialization string, date time.Time) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx,
		slotViewColumns+`WHERE d.hospital_id = $1 AND d.specialization ILIKE $2 AND s.slot_date = $3 AND s.is_available ORDER BY d.name`,
		pgconv.UUIDToPgtype(hospitalID), specialization, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available slots by hospital and specialization", err)
	}
	return collectSlotViews(rows)
}

func (r *SlotReadStore) FindByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx,
		slotViewColumns+`WHERE s.doctor_id = $1 ORDER BY s.slot_date`,
		pgconv.UUIDToPgtype(doctorID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slots by doctor", err)
	}
	return collectSlotViews(rows)
}

func (r *SlotReadStore) FindByDoctorAndDateRange(ctx context.Context, doctorID uuid.UUID, start, end time.Time) ([]*queries.SlotView, error) {
	rows, err := r.db.Query(ctx,
		slotViewColumns+`WHERE s.doctor_id = $1 AND s.slot_date BETWEEN $2 AND $3 ORDER BY s.slot_date`,
		pgconv.UUIDToPgtype(doctorID), pgconv.DateToPgtype(start), pgconv.DateToPgtype(end))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slots by doctor and date range", err)
	}
	return collectSlotViews(rows)
}

func collectSlotViews(rows pgx.Rows) ([]*queries.SlotView, error) {
	defer rows.Close()

	var result []*queries.SlotView
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return result, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var v queries.SlotView
	var startTime pgtype.Time
	err := row.Scan(
		&v.ID, &v.DoctorID, &v.DoctorName, &v.Specialization, &v.HospitalID, &v.HospitalName,
		&v.SlotDate, &startTime, &v.MinutesPerPatient, &v.MaxBookingsPerDay,
		&v.CurrentBookings, &v.IsAvailable, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	start := converter.TimeOfDayFromPgtype(startTime)
	v.StartTime = start.String()
	v.EstimatedEndTime = slot.EstimatedEndTime(start, int(v.MinutesPerPatient), int(v.MaxBookingsPerDay)).String()
	return &v, nil
}
