package repository

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

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

const createSlotQuery = `
INSERT INTO slots (id, doctor_id, slot_date, start_time, minutes_per_patient, max_bookings_per_day, current_bookings, is_available)
VALUES ($1, $2, $3, $4, $5, $6, 0, TRUE)
RETURNING id
`

func (r *SlotRepository) Create(ctx context.Context, dbtx db.DBTX, params shared.CreateSlotParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createSlotQuery,
		pgconv.UUIDToPgtype(params.ID),
		pgconv.UUIDToPgtype(params.DoctorID),
		pgconv.DateToPgtype(params.SlotDate),
		converter.TimeOfDayToPgtype(params.StartTime),
		params.MinutesPerPatient,
		params.MaxBookingsPerDay,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create slot", err)
	}
	return id, nil
}

const findSlotForUpdateQuery = `
SELECT id, doctor_id, slot_date, start_time, minutes_per_patient, max_bookings_per_day, current_bookings, is_available
FROM slots
WHERE id = $1
FOR UPDATE
`

// FindByIDForUpdate blocks until any concurrent transaction holding the same
// slot row commits or rolls back.
func (r *SlotRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.SlotSnapshot, error) {
	row := dbtx.QueryRow(ctx, findSlotForUpdateQuery, pgconv.UUIDToPgtype(id))

	var snap shared.SlotSnapshot
	var startTime pgtype.Time
	err := row.Scan(
		&snap.ID,
		&snap.DoctorID,
		&snap.SlotDate,
		&startTime,
		&snap.MinutesPerPatient,
		&snap.MaxBookingsPerDay,
		&snap.CurrentBookings,
		&snap.IsAvailable,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}
	snap.StartTime = converter.TimeOfDayFromPgtype(startTime)
	return &snap, nil
}

const updateSlotOccupancyQuery = `
UPDATE slots
SET current_bookings = $2, is_available = $3, updated_at = NOW()
WHERE id = $1
`

func (r *SlotRepository) UpdateOccupancy(ctx context.Context, dbtx db.DBTX, id uuid.UUID, currentBookings int32, isAvailable bool) error {
	tag, err := dbtx.Exec(ctx, updateSlotOccupancyQuery, pgconv.UUIDToPgtype(id), currentBookings, isAvailable)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot occupancy", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found for occupancy update", errNoRowsAffected, infra.KindNotFound)
	}
	return nil
}

const setSlotAvailabilityQuery = `
UPDATE slots
SET is_available = $2, updated_at = NOW()
WHERE id = $1
`

func (r *SlotRepository) SetAvailability(ctx context.Context, dbtx db.DBTX, id uuid.UUID, isAvailable bool) error {
	tag, err := dbtx.Exec(ctx, setSlotAvailabilityQuery, pgconv.UUIDToPgtype(id), isAvailable)
	if err != nil {
		return infra.WrapRepoErr("failed to set slot availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found for availability update", errNoRowsAffected, infra.KindNotFound)
	}
	return nil
}
