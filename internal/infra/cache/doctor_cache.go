package cache

import (
	"context"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/queries"
)

// CachedDoctorReadStore memoizes single-doctor lookups in front of the
// database store. The directory is effectively immutable from this service's
// point of view, so entries are only ever evicted by LRU pressure.
// List queries always hit the database.
type CachedDoctorReadStore struct {
	inner queries.DoctorReadStore
	byID  *lru.Cache[uuid.UUID, *queries.DoctorView]
}

func NewCachedDoctorReadStore(inner queries.DoctorReadStore, size int) (*CachedDoctorReadStore, error) {
	byID, err := lru.New[uuid.UUID, *queries.DoctorView](size)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create doctor cache")
	}
	return &CachedDoctorReadStore{inner: inner, byID: byID}, nil
}

func (c *CachedDoctorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DoctorView, error) {
	if view, ok := c.byID.Get(id); ok {
		return view, nil
	}

	view, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.byID.Add(id, view)
	return view, nil
}

func (c *CachedDoctorReadStore) FindAll(ctx context.Context) ([]*queries.DoctorView, error) {
	return c.inner.FindAll(ctx)
}

func (c *CachedDoctorReadStore) FindBySpecialization(ctx context.Context, specialization string) ([]*queries.DoctorView, error) {
	return c.inner.FindBySpecialization(ctx, specialization)
}

func (c *CachedDoctorReadStore) FindByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*queries.DoctorView, error) {
	return c.inner.FindByHospital(ctx, hospitalID)
}

func (c *CachedDoctorReadStore) FindByHospitalAndSpecialization(ctx context.Context, hospitalID uuid.UUID, specialization string) ([]*queries.DoctorView, error) {
	return c.inner.FindByHospitalAndSpecialization(ctx, hospitalID, specialization)
}
