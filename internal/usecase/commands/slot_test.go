//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/shared"
	"clinic-booking/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotFixture struct {
	uow      *fake.UnitOfWork
	cmds     commands.SlotCommands
	doctorID uuid.UUID
	now      time.Time
}

func newSlotFixture(t *testing.T) *slotFixture {
	t.Helper()

	uow := fake.NewUnitOfWork()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	policy := config.BookingConfig{MaxBookingsPerDay: 30, MinutesPerPatient: 10}
	cmds := commands.NewSlotUseCase(uow, clock.NewMockClock(now), policy)

	doctorID := uuid.New()
	uow.AddDoctor(&shared.DoctorSnapshot{
		ID:                   doctorID,
		Name:                 "Dr. Asha Rao",
		Specialization:       "Cardiology",
		ConsultationFeeCents: 50000,
		HospitalID:           uuid.New(),
	})

	return &slotFixture{uow: uow, cmds: cmds, doctorID: doctorID, now: now}
}

func mustTimeOfDay(t *testing.T, hour, minute int) slot.TimeOfDay {
	t.Helper()
	tod, err := slot.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}

func TestCreateSlot(t *testing.T) {
	t.Run("defaults come from the booking policy", func(t *testing.T) {
		f := newSlotFixture(t)

		id, err := f.cmds.CreateSlot(context.Background(), commands.CreateSlotInput{
			DoctorID:  f.doctorID,
			SlotDate:  f.now.AddDate(0, 0, 1),
			StartTime: mustTimeOfDay(t, 9, 0),
		})
		require.NoError(t, err)

		snap := f.uow.Slots[id]
		require.NotNil(t, snap)
		assert.Equal(t, int32(10), snap.MinutesPerPatient)
		assert.Equal(t, int32(30), snap.MaxBookingsPerDay)
		assert.Equal(t, int32(0), snap.CurrentBookings)
		assert.True(t, snap.IsAvailable)
	})

	t.Run("explicit overrides win", func(t *testing.T) {
		f := newSlotFixture(t)
		minutes, capacity := 15, 20

		id, err := f.cmds.CreateSlot(context.Background(), commands.CreateSlotInput{
			DoctorID:          f.doctorID,
			SlotDate:          f.now.AddDate(0, 0, 1),
			StartTime:         mustTimeOfDay(t, 10, 30),
			MinutesPerPatient: &minutes,
			MaxBookingsPerDay: &capacity,
		})
		require.NoError(t, err)

		snap := f.uow.Slots[id]
		assert.Equal(t, int32(15), snap.MinutesPerPatient)
		assert.Equal(t, int32(20), snap.MaxBookingsPerDay)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		f := newSlotFixture(t)

		_, err := f.cmds.CreateSlot(context.Background(), commands.CreateSlotInput{
			DoctorID:  uuid.New(),
			SlotDate:  f.now.AddDate(0, 0, 1),
			StartTime: mustTimeOfDay(t, 9, 0),
		})
		assert.ErrorIs(t, err, commands.ErrDoctorNotFound)
	})

	t.Run("duplicate doctor and date", func(t *testing.T) {
		f := newSlotFixture(t)
		date := f.now.AddDate(0, 0, 1)

		_, err := f.cmds.CreateSlot(context.Background(), commands.CreateSlotInput{
			DoctorID:  f.doctorID,
			SlotDate:  date,
			StartTime: mustTimeOfDay(t, 9, 0),
		})
		require.NoError(t, err)

		_, err = f.cmds.CreateSlot(context.Background(), commands.CreateSlotInput{
			DoctorID:  f.doctorID,
			SlotDate:  date,
			StartTime: mustTimeOfDay(t, 14, 0),
		})
		assert.ErrorIs(t, err, commands.ErrSlotAlreadyExists)
	})

	t.Run("past date", func(t *testing.T) {
		f := newSlotFixture(t)

		_, err := f.cmds.CreateSlot(context.Background(), commands.CreateSlotInput{
			DoctorID:  f.doctorID,
			SlotDate:  f.now.AddDate(0, 0, -1),
			StartTime: mustTimeOfDay(t, 9, 0),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidSlotInput)
		assert.ErrorContains(t, err, "past dates")
	})

	t.Run("invalid capacity override", func(t *testing.T) {
		f := newSlotFixture(t)
		capacity := 0

		_, err := f.cmds.CreateSlot(context.Background(), commands.CreateSlotInput{
			DoctorID:          f.doctorID,
			SlotDate:          f.now.AddDate(0, 0, 1),
			StartTime:         mustTimeOfDay(t, 9, 0),
			MaxBookingsPerDay: &capacity,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidSlotInput)
	})
}

func TestCreateBulkSlots(t *testing.T) {
	t.Run("one slot per day over the inclusive range", func(t *testing.T) {
		f := newSlotFixture(t)

		ids, err := f.cmds.CreateBulkSlots(context.Background(), commands.CreateBulkSlotsInput{
			DoctorID:  f.doctorID,
			StartDate: f.now.AddDate(0, 0, 1),
			EndDate:   f.now.AddDate(0, 0, 5),
			StartTime: mustTimeOfDay(t, 9, 0),
		})
		require.NoError(t, err)
		assert.Len(t, ids, 5)
		assert.Len(t, f.uow.Slots, 5)
	})

	t.Run("days that already have a slot are skipped", func(t *testing.T) {
		f := newSlotFixture(t)
		taken := f.now.AddDate(0, 0, 2)

		_, err := f.cmds.CreateSlot(context.Background(), commands.CreateSlotInput{
			DoctorID:  f.doctorID,
			SlotDate:  taken,
			StartTime: mustTimeOfDay(t, 9, 0),
		})
		require.NoError(t, err)

		ids, err := f.cmds.CreateBulkSlots(context.Background(), commands.CreateBulkSlotsInput{
			DoctorID:  f.doctorID,
			StartDate: f.now.AddDate(0, 0, 1),
			EndDate:   f.now.AddDate(0, 0, 3),
			StartTime: mustTimeOfDay(t, 9, 0),
		})
		require.NoError(t, err)
		assert.Len(t, ids, 2)
		assert.Len(t, f.uow.Slots, 3)
	})

	t.Run("end before start", func(t *testing.T) {
		f := newSlotFixture(t)

		_, err := f.cmds.CreateBulkSlots(context.Background(), commands.CreateBulkSlotsInput{
			DoctorID:  f.doctorID,
			StartDate: f.now.AddDate(0, 0, 3),
			EndDate:   f.now.AddDate(0, 0, 1),
			StartTime: mustTimeOfDay(t, 9, 0),
		})
		assert.ErrorIs(t, err, commands.ErrInvalidSlotInput)
	})

	t.Run("unknown doctor rolls the batch back", func(t *testing.T) {
		f := newSlotFixture(t)

		_, err := f.cmds.CreateBulkSlots(context.Background(), commands.CreateBulkSlotsInput{
			DoctorID:  uuid.New(),
			StartDate: f.now.AddDate(0, 0, 1),
			EndDate:   f.now.AddDate(0, 0, 3),
			StartTime: mustTimeOfDay(t, 9, 0),
		})
		assert.ErrorIs(t, err, commands.ErrDoctorNotFound)
		assert.Empty(t, f.uow.Slots)
	})
}

func TestSetSlotAvailability(t *testing.T) {
	t.Run("closes and reopens a slot", func(t *testing.T) {
		f := newSlotFixture(t)

		id, err := f.cmds.CreateSlot(context.Background(), commands.CreateSlotInput{
			DoctorID:  f.doctorID,
			SlotDate:  f.now.AddDate(0, 0, 1),
			StartTime: mustTimeOfDay(t, 9, 0),
		})
		require.NoError(t, err)

		require.NoError(t, f.cmds.SetSlotAvailability(context.Background(), id, false))
		assert.False(t, f.uow.Slots[id].IsAvailable)

		require.NoError(t, f.cmds.SetSlotAvailability(context.Background(), id, true))
		assert.True(t, f.uow.Slots[id].IsAvailable)
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newSlotFixture(t)
		err := f.cmds.SetSlotAvailability(context.Background(), uuid.New(), false)
		assert.ErrorIs(t, err, commands.ErrSlotNotFound)
	})
}
