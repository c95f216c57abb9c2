//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"clinic-booking/internal/domain/booking"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/shared"
	"clinic-booking/tests/common/builder"
	"clinic-booking/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	uow    *fake.UnitOfWork
	cmds   commands.BookingCommands
	userID uuid.UUID
	slotID uuid.UUID
}

func newBookingFixture(t *testing.T, mutate func(*builder.SlotBuilder)) *bookingFixture {
	t.Helper()

	uow := fake.NewUnitOfWork()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cmds := commands.NewBookingUseCase(uow, clock.NewMockClock(now))

	slotBld := builder.NewSlotBuilder()
	if mutate != nil {
		slotBld.With(mutate)
	}

	userID := uuid.New()
	uow.AddUser(&shared.UserSnapshot{ID: userID, Name: "Ravi Kumar", Email: "ravi@example.com"})
	uow.AddDoctor(&shared.DoctorSnapshot{
		ID:                   slotBld.DoctorID,
		Name:                 slotBld.DoctorName,
		Specialization:       slotBld.Specialization,
		ConsultationFeeCents: 50000,
		HospitalID:           slotBld.HospitalID,
	})
	uow.AddSlot(slotBld.BuildSnapshot())

	return &bookingFixture{uow: uow, cmds: cmds, userID: userID, slotID: slotBld.ID}
}

func (f *bookingFixture) book(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := f.cmds.CreateBooking(context.Background(), commands.CreateBookingInput{
		UserID: f.userID,
		SlotID: f.slotID,
	})
	require.NoError(t, err)
	return id
}

func TestCreateBooking(t *testing.T) {
	t.Run("assigns sequential appointment times", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		first := f.book(t)
		second := f.book(t)

		assert.Equal(t, "09:00", f.uow.Bookings[first].AppointmentTime.String())
		assert.Equal(t, "09:10", f.uow.Bookings[second].AppointmentTime.String())
		assert.Equal(t, int32(2), f.uow.Slots[f.slotID].CurrentBookings)
	})

	t.Run("records fee and notes", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		notes := "first visit"

		id, err := f.cmds.CreateBooking(context.Background(), commands.CreateBookingInput{
			UserID:       f.userID,
			SlotID:       f.slotID,
			PatientNotes: &notes,
		})
		require.NoError(t, err)

		snap := f.uow.Bookings[id]
		require.NotNil(t, snap)
		assert.Equal(t, booking.StatusConfirmed.String(), snap.Status)
		require.NotNil(t, snap.AmountPaidCents)
		assert.Equal(t, int32(50000), *snap.AmountPaidCents)
		require.NotNil(t, snap.PatientNotes)
		assert.Equal(t, notes, *snap.PatientNotes)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.cmds.CreateBooking(context.Background(), commands.CreateBookingInput{
			UserID: uuid.New(),
			SlotID: f.slotID,
		})
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.cmds.CreateBooking(context.Background(), commands.CreateBookingInput{
			UserID: f.userID,
			SlotID: uuid.New(),
		})
		assert.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("closed slot", func(t *testing.T) {
		f := newBookingFixture(t, func(b *builder.SlotBuilder) {
			b.IsAvailable = false
		})

		_, err := f.cmds.CreateBooking(context.Background(), commands.CreateBookingInput{
			UserID: f.userID,
			SlotID: f.slotID,
		})
		assert.ErrorIs(t, err, commands.ErrSlotNotAvailable)
	})

	t.Run("capacity exhausted", func(t *testing.T) {
		f := newBookingFixture(t, func(b *builder.SlotBuilder) {
			b.MaxBookingsPerDay = 2
		})

		f.book(t)
		f.book(t)

		_, err := f.cmds.CreateBooking(context.Background(), commands.CreateBookingInput{
			UserID: f.userID,
			SlotID: f.slotID,
		})
		assert.ErrorIs(t, err, commands.ErrSlotCapacityExceeded)
		assert.Equal(t, int32(2), f.uow.Slots[f.slotID].CurrentBookings)
	})

	t.Run("full slot reports capacity, not closure", func(t *testing.T) {
		f := newBookingFixture(t, func(b *builder.SlotBuilder) {
			b.MaxBookingsPerDay = 2
			b.CurrentBookings = 2
			b.IsAvailable = false
		})

		_, err := f.cmds.CreateBooking(context.Background(), commands.CreateBookingInput{
			UserID: f.userID,
			SlotID: f.slotID,
		})
		assert.ErrorIs(t, err, commands.ErrSlotCapacityExceeded)
		assert.NotErrorIs(t, err, commands.ErrSlotNotAvailable)
	})
}

func TestCreateBookingConcurrent(t *testing.T) {
	const (
		capacity = 30
		attempts = 50
	)

	f := newBookingFixture(t, func(b *builder.SlotBuilder) {
		b.MaxBookingsPerDay = capacity
	})

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.cmds.CreateBooking(context.Background(), commands.CreateBookingInput{
				UserID: f.userID,
				SlotID: f.slotID,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, commands.ErrSlotCapacityExceeded):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, attempts-capacity, rejected)
	assert.Equal(t, int32(capacity), f.uow.Slots[f.slotID].CurrentBookings)
	assert.False(t, f.uow.Slots[f.slotID].IsAvailable)

	// No two of the winning bookings share an appointment time.
	seen := make(map[string]bool, capacity)
	for _, b := range f.uow.Bookings {
		at := b.AppointmentTime.String()
		assert.False(t, seen[at], "duplicate appointment time %s", at)
		seen[at] = true
	}
}

func TestCancelBooking(t *testing.T) {
	t.Run("owner cancels and the position is freed", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := f.book(t)

		require.NoError(t, f.cmds.CancelBooking(context.Background(), id, f.userID))

		assert.Equal(t, booking.StatusCancelled.String(), f.uow.Bookings[id].Status)
		assert.Equal(t, int32(0), f.uow.Slots[f.slotID].CurrentBookings)
		assert.True(t, f.uow.Slots[f.slotID].IsAvailable)
	})

	t.Run("cancelling reopens a full slot", func(t *testing.T) {
		f := newBookingFixture(t, func(b *builder.SlotBuilder) {
			b.MaxBookingsPerDay = 1
		})
		id := f.book(t)
		assert.False(t, f.uow.Slots[f.slotID].IsAvailable)

		require.NoError(t, f.cmds.CancelBooking(context.Background(), id, f.userID))
		assert.True(t, f.uow.Slots[f.slotID].IsAvailable)

		f.book(t)
	})

	t.Run("rebooking after a mid-sequence cancellation reuses the freed position", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		first := f.book(t)
		second := f.book(t)
		third := f.book(t)
		require.Equal(t, "09:20", f.uow.Bookings[third].AppointmentTime.String())

		require.NoError(t, f.cmds.CancelBooking(context.Background(), second, f.userID))

		// Cancellation never renumbers the surviving bookings.
		assert.Equal(t, "09:00", f.uow.Bookings[first].AppointmentTime.String())
		assert.Equal(t, "09:20", f.uow.Bookings[third].AppointmentTime.String())

		fourth := f.book(t)
		assert.Equal(t, "09:20", f.uow.Bookings[fourth].AppointmentTime.String())
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		err := f.cmds.CancelBooking(context.Background(), uuid.New(), f.userID)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("not the owner", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := f.book(t)

		err := f.cmds.CancelBooking(context.Background(), id, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBookingNotOwned)
		assert.Equal(t, booking.StatusConfirmed.String(), f.uow.Bookings[id].Status)
		assert.Equal(t, int32(1), f.uow.Slots[f.slotID].CurrentBookings)
	})

	t.Run("cancelling twice fails and decrements only once", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := f.book(t)

		require.NoError(t, f.cmds.CancelBooking(context.Background(), id, f.userID))
		err := f.cmds.CancelBooking(context.Background(), id, f.userID)
		assert.ErrorIs(t, err, commands.ErrBookingNotCancellable)
		assert.Equal(t, int32(0), f.uow.Slots[f.slotID].CurrentBookings)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	t.Run("confirmed to completed", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := f.book(t)

		require.NoError(t, f.cmds.UpdateBookingStatus(context.Background(), id, booking.StatusCompleted))
		assert.Equal(t, booking.StatusCompleted.String(), f.uow.Bookings[id].Status)
	})

	t.Run("confirmed to no_show", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := f.book(t)

		require.NoError(t, f.cmds.UpdateBookingStatus(context.Background(), id, booking.StatusNoShow))
		assert.Equal(t, booking.StatusNoShow.String(), f.uow.Bookings[id].Status)
	})

	t.Run("cancellation is rejected here", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := f.book(t)

		err := f.cmds.UpdateBookingStatus(context.Background(), id, booking.StatusCancelled)
		assert.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
	})

	t.Run("terminal booking cannot transition again", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		id := f.book(t)
		require.NoError(t, f.cmds.UpdateBookingStatus(context.Background(), id, booking.StatusCompleted))

		err := f.cmds.UpdateBookingStatus(context.Background(), id, booking.StatusNoShow)
		assert.ErrorIs(t, err, commands.ErrInvalidStatusTransition)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		err := f.cmds.UpdateBookingStatus(context.Background(), uuid.New(), booking.StatusCompleted)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
