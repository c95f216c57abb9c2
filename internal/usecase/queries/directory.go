package queries

import (
	"context"

	"github.com/google/uuid"
)

// The doctor/hospital directory is a read-only collaborator of the booking
// core: plain lookups plus the free-text-ish filters the original exposed.

type DoctorSearchParams struct {
	Specialization *string
	HospitalID     *uuid.UUID
}

type DoctorQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DoctorView, error)
	List(ctx context.Context) ([]*DoctorView, error)
	Search(ctx context.Context, params DoctorSearchParams) ([]*DoctorView, error)
}

type HospitalQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HospitalView, error)
	List(ctx context.Context) ([]*HospitalView, error)
}

type DoctorReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DoctorView, error)
	FindAll(ctx context.Context) ([]*DoctorView, error)
	FindBySpecialization(ctx context.Context, specialization string) ([]*DoctorView, error)
	FindByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*DoctorView, error)
	FindByHospitalAndSpecialization(ctx context.Context, hospitalID uuid.UUID, specialization string) ([]*DoctorView, error)
}

type HospitalReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HospitalView, error)
	FindAll(ctx context.Context) ([]*HospitalView, error)
}

type doctorQueriesImpl struct {
	store DoctorReadStore
}

func NewDoctorQueries(store DoctorReadStore) DoctorQueries {
	return &doctorQueriesImpl{store: store}
}

func (q *doctorQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DoctorView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *doctorQueriesImpl) List(ctx context.Context) ([]*DoctorView, error) {
	return q.store.FindAll(ctx)
}

func (q *doctorQueriesImpl) Search(ctx context.Context, params DoctorSearchParams) ([]*DoctorView, error) {
	switch {
	case params.HospitalID != nil && params.Specialization != nil:
		return q.store.FindByHospitalAndSpecialization(ctx, *params.HospitalID, *params.Specialization)
	case params.HospitalID != nil:
		return q.store.FindByHospital(ctx, *params.HospitalID)
	case params.Specialization != nil:
		return q.store.FindBySpecialization(ctx, *params.Specialization)
	default:
		return q.store.FindAll(ctx)
	}
}

type hospitalQueriesImpl struct {
	store HospitalReadStore
}

func NewHospitalQueries(store HospitalReadStore) HospitalQueries {
	return &hospitalQueriesImpl{store: store}
}

func (q *hospitalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HospitalView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *hospitalQueriesImpl) List(ctx context.Context) ([]*HospitalView, error) {
	return q.store.FindAll(ctx)
}
