package shared

import (
	"context"

	"github.com/google/uuid"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/infra/db"
)

// UnitOfWork runs a function within a single database transaction. Within
// retries the whole function on serialization conflicts, so the function must
// be safe to run more than once.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write repositories bound to the current transaction.
type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Reads() CommandReads
	DB() db.DBTX
}

type SlotRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, params CreateSlotParams) (uuid.UUID, error)
	// FindByIDForUpdate takes a row lock on the slot, serializing all
	// bookings and cancellations against it until the transaction ends.
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*SlotSnapshot, error)
	UpdateOccupancy(ctx context.Context, dbtx db.DBTX, id uuid.UUID, currentBookings int32, isAvailable bool) error
	SetAvailability(ctx context.Context, dbtx db.DBTX, id uuid.UUID, isAvailable bool) error
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatusIf transitions the booking only when it still has the
	// expected status, and reports whether a row changed.
	UpdateStatusIf(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to booking.Status) (bool, error)
}

// CommandReads are the lookups command handlers need before mutating:
// existence checks and snapshots for domain reconstruction. They read
// committed state and take no locks.
type CommandReads interface {
	UserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*UserSnapshot, error)
	DoctorByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*DoctorSnapshot, error)
	SlotByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*SlotSnapshot, error)
	BookingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
}
