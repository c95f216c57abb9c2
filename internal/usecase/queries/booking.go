package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListUpcomingByUser(ctx context.Context, userID uuid.UUID, from time.Time) ([]*BookingView, error)
	ListPastByUser(ctx context.Context, userID uuid.UUID, until time.Time) ([]*BookingView, error)
	// ListOverdueConfirmed feeds the no-show sweeper: confirmed bookings
	// whose slot day is already over.
	ListOverdueConfirmed(ctx context.Context, before time.Time, limit int32) ([]uuid.UUID, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindByUserAndDateFrom(ctx context.Context, userID uuid.UUID, from time.Time) ([]*BookingView, error)
	FindByUserAndDateUntil(ctx context.Context, userID uuid.UUID, until time.Time) ([]*BookingView, error)
	FindOverdueConfirmedIDs(ctx context.Context, before time.Time, limit int32) ([]uuid.UUID, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.store.FindByUser(ctx, userID)
}

func (q *bookingQueriesImpl) ListUpcomingByUser(ctx context.Context, userID uuid.UUID, from time.Time) ([]*BookingView, error) {
	return q.store.FindByUserAndDateFrom(ctx, userID, from)
}

func (q *bookingQueriesImpl) ListPastByUser(ctx context.Context, userID uuid.UUID, until time.Time) ([]*BookingView, error) {
	return q.store.FindByUserAndDateUntil(ctx, userID, until)
}

func (q *bookingQueriesImpl) ListOverdueConfirmed(ctx context.Context, before time.Time, limit int32) ([]uuid.UUID, error) {
	if limit <= 0 {
		limit = 100
	}
	return q.store.FindOverdueConfirmedIDs(ctx, before, limit)
}
