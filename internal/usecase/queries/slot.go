package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SlotSearchParams mirrors the search surface of the original system: the
// most specific filter provided wins.
type SlotSearchParams struct {
	Date           time.Time
	DoctorID       *uuid.UUID
	HospitalID     *uuid.UUID
	Specialization *string
}

type SlotQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	GetByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*SlotView, error)
	ListAvailableByDate(ctx context.Context, date time.Time) ([]*SlotView, error)
	Search(ctx context.Context, params SlotSearchParams) ([]*SlotView, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*SlotView, error)
	ListByDoctorAndDateRange(ctx context.Context, doctorID uuid.UUID, start, end time.Time) ([]*SlotView, error)
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*SlotView, error)
	FindAvailableByDate(ctx context.Context, date time.Time) ([]*SlotView, error)
	FindAvailableByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]*SlotView, error)
	FindAvailableByHospitalAndDate(ctx context.Context, hospitalID uuid.UUID, date time.Time) ([]*SlotView, error)
	FindAvailableByHospitalSpecializationAndDate(ctx context.Context, hospitalID uuid.UUID, specialization string, date time.Time) ([]*SlotView, error)
	FindByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*SlotView, error)
	FindByDoctorAndDateRange(ctx context.Context, doctorID uuid.UUID, start, end time.Time) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *slotQueriesImpl) GetByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*SlotView, error) {
	return q.store.FindByDoctorAndDate(ctx, doctorID, date)
}

func (q *slotQueriesImpl) ListAvailableByDate(ctx context.Context, date time.Time) ([]*SlotView, error) {
	return q.store.FindAvailableByDate(ctx, date)
}

// Search applies the most specific filter present, in the same precedence
// order the original exposed: doctor > hospital+specialization > hospital >
// date only.
func (q *slotQueriesImpl) Search(ctx context.Context, params SlotSearchParams) ([]*SlotView, error) {
	switch {
	case params.DoctorID != nil:
		return q.store.FindAvailableByDoctorAndDate(ctx, *params.DoctorID, params.Date)
	case params.HospitalID != nil && params.Specialization != nil:
		return q.store.FindAvailableByHospitalSpecializationAndDate(ctx, *params.HospitalID, *params.Specialization, params.Date)
	case params.HospitalID != nil:
		return q.store.FindAvailableByHospitalAndDate(ctx, *params.HospitalID, params.Date)
	default:
		return q.store.FindAvailableByDate(ctx, params.Date)
	}
}

func (q *slotQueriesImpl) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*SlotView, error) {
	return q.store.FindByDoctor(ctx, doctorID)
}

func (q *slotQueriesImpl) ListByDoctorAndDateRange(ctx context.Context, doctorID uuid.UUID, start, end time.Time) ([]*SlotView, error) {
	return q.store.FindByDoctorAndDateRange(ctx, doctorID, start, end)
}
