//go:build unit || e2e

package fake

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"
)

var errNotFound = errs.New("not found")

// UnitOfWork is an in-memory stand-in for the postgres implementation. Each
// Within call runs under a single mutex, mirroring the serialization the row
// lock provides, and restores the previous state when the function fails.
type UnitOfWork struct {
	mu sync.Mutex

	Users    map[uuid.UUID]*shared.UserSnapshot
	Doctors  map[uuid.UUID]*shared.DoctorSnapshot
	Slots    map[uuid.UUID]*shared.SlotSnapshot
	Bookings map[uuid.UUID]*shared.BookingSnapshot
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Users:    make(map[uuid.UUID]*shared.UserSnapshot),
		Doctors:  make(map[uuid.UUID]*shared.DoctorSnapshot),
		Slots:    make(map[uuid.UUID]*shared.SlotSnapshot),
		Bookings: make(map[uuid.UUID]*shared.BookingSnapshot),
	}
}

func (u *UnitOfWork) AddUser(s *shared.UserSnapshot)       { u.Users[s.ID] = s }
func (u *UnitOfWork) AddDoctor(s *shared.DoctorSnapshot)   { u.Doctors[s.ID] = s }
func (u *UnitOfWork) AddSlot(s *shared.SlotSnapshot)       { u.Slots[s.ID] = s }
func (u *UnitOfWork) AddBooking(s *shared.BookingSnapshot) { u.Bookings[s.ID] = s }

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	backup := u.snapshot()
	tx := &fakeTx{uow: u}
	if err := fn(ctx, tx); err != nil {
		u.restore(backup)
		return err
	}
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(ctx, &fakeTx{uow: u})
}

type state struct {
	users    map[uuid.UUID]shared.UserSnapshot
	doctors  map[uuid.UUID]shared.DoctorSnapshot
	slots    map[uuid.UUID]shared.SlotSnapshot
	bookings map[uuid.UUID]shared.BookingSnapshot
}

func (u *UnitOfWork) snapshot() state {
	s := state{
		users:    make(map[uuid.UUID]shared.UserSnapshot, len(u.Users)),
		doctors:  make(map[uuid.UUID]shared.DoctorSnapshot, len(u.Doctors)),
		slots:    make(map[uuid.UUID]shared.SlotSnapshot, len(u.Slots)),
		bookings: make(map[uuid.UUID]shared.BookingSnapshot, len(u.Bookings)),
	}
	for k, v := range u.Users {
		s.users[k] = *v
	}
	for k, v := range u.Doctors {
		s.doctors[k] = *v
	}
	for k, v := range u.Slots {
		s.slots[k] = *v
	}
	for k, v := range u.Bookings {
		s.bookings[k] = *v
	}
	return s
}

func (u *UnitOfWork) restore(s state) {
	u.Users = make(map[uuid.UUID]*shared.UserSnapshot, len(s.users))
	u.Doctors = make(map[uuid.UUID]*shared.DoctorSnapshot, len(s.doctors))
	u.Slots = make(map[uuid.UUID]*shared.SlotSnapshot, len(s.slots))
	u.Bookings = make(map[uuid.UUID]*shared.BookingSnapshot, len(s.bookings))
	for k := range s.users {
		v := s.users[k]
		u.Users[k] = &v
	}
	for k := range s.doctors {
		v := s.doctors[k]
		u.Doctors[k] = &v
	}
	for k := range s.slots {
		v := s.slots[k]
		u.Slots[k] = &v
	}
	for k := range s.bookings {
		v := s.bookings[k]
		u.Bookings[k] = &v
	}
}

type fakeTx struct {
	uow *UnitOfWork
}

func (t *fakeTx) DB() db.DBTX { return nil }

func (t *fakeTx) Slots() shared.SlotRepository { return &fakeSlotRepo{uow: t.uow} }

func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{uow: t.uow} }

func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{uow: t.uow} }

type fakeSlotRepo struct {
	uow *UnitOfWork
}

func (r *fakeSlotRepo) Create(_ context.Context, _ db.DBTX, params shared.CreateSlotParams) (uuid.UUID, error) {
	for _, s := range r.uow.Slots {
		if s.DoctorID == params.DoctorID && s.SlotDate.Equal(params.SlotDate) {
			return uuid.Nil, infra.WrapRepoErr("slot exists", errNotFound, infra.KindDuplicateKey)
		}
	}
	r.uow.Slots[params.ID] = &shared.SlotSnapshot{
		ID:                params.ID,
		DoctorID:          params.DoctorID,
		SlotDate:          params.SlotDate,
		StartTime:         params.StartTime,
		MinutesPerPatient: params.MinutesPerPatient,
		MaxBookingsPerDay: params.MaxBookingsPerDay,
		IsAvailable:       true,
	}
	return params.ID, nil
}

func (r *fakeSlotRepo) FindByIDForUpdate(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.SlotSnapshot, error) {
	s, ok := r.uow.Slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", errNotFound, infra.KindNotFound)
	}
	snap := *s
	return &snap, nil
}

func (r *fakeSlotRepo) UpdateOccupancy(_ context.Context, _ db.DBTX, id uuid.UUID, currentBookings int32, isAvailable bool) error {
	s, ok := r.uow.Slots[id]
	if !ok {
		return infra.WrapRepoErr("slot not found", errNotFound, infra.KindNotFound)
	}
	s.CurrentBookings = currentBookings
	s.IsAvailable = isAvailable
	return nil
}

func (r *fakeSlotRepo) SetAvailability(_ context.Context, _ db.DBTX, id uuid.UUID, isAvailable bool) error {
	s, ok := r.uow.Slots[id]
	if !ok {
		return infra.WrapRepoErr("slot not found", errNotFound, infra.KindNotFound)
	}
	s.IsAvailable = isAvailable
	return nil
}

type fakeBookingRepo struct {
	uow *UnitOfWork
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var notes *string
	if !b.PatientNotes().IsEmpty() {
		v := b.PatientNotes().String()
		notes = &v
	}
	r.uow.Bookings[b.ID()] = &shared.BookingSnapshot{
		ID:              b.ID(),
		UserID:          b.UserID(),
		SlotID:          b.SlotID(),
		BookingTime:     b.BookingTime(),
		AppointmentTime: b.AppointmentTime(),
		Status:          b.Status().String(),
		PatientNotes:    notes,
		AmountPaidCents: b.AmountPaidCents(),
	}
	return b.ID(), nil
}

func (r *fakeBookingRepo) UpdateStatusIf(_ context.Context, _ db.DBTX, id uuid.UUID, from, to booking.Status) (bool, error) {
	b, ok := r.uow.Bookings[id]
	if !ok || b.Status != from.String() {
		return false, nil
	}
	b.Status = to.String()
	return true, nil
}

type fakeReads struct {
	uow *UnitOfWork
}

func (r *fakeReads) UserByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	s, ok := r.uow.Users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errNotFound, infra.KindNotFound)
	}
	snap := *s
	return &snap, nil
}

func (r *fakeReads) DoctorByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.DoctorSnapshot, error) {
	s, ok := r.uow.Doctors[id]
	if !ok {
		return nil, infra.WrapRepoErr("doctor not found", errNotFound, infra.KindNotFound)
	}
	snap := *s
	return &snap, nil
}

func (r *fakeReads) SlotByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.SlotSnapshot, error) {
	s, ok := r.uow.Slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", errNotFound, infra.KindNotFound)
	}
	snap := *s
	return &snap, nil
}

func (r *fakeReads) BookingByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	s, ok := r.uow.Bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errNotFound, infra.KindNotFound)
	}
	snap := *s
	return &snap, nil
}
