package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"
)

var (
	ErrSlotAlreadyExists = errs.New("slot already exists for doctor and date")
	ErrInvalidSlotInput  = errs.New("invalid slot input")
)

type CreateSlotInput struct {
	DoctorID          uuid.UUID
	SlotDate          time.Time
	StartTime         slot.TimeOfDay
	MinutesPerPatient *int
	MaxBookingsPerDay *int
}

type CreateBulkSlotsInput struct {
	DoctorID          uuid.UUID
	StartDate         time.Time
	EndDate           time.Time
	StartTime         slot.TimeOfDay
	MinutesPerPatient *int
	MaxBookingsPerDay *int
}

type SlotCommands interface {
	CreateSlot(ctx context.Context, input CreateSlotInput) (uuid.UUID, error)
	CreateBulkSlots(ctx context.Context, input CreateBulkSlotsInput) ([]uuid.UUID, error)
	SetSlotAvailability(ctx context.Context, slotID uuid.UUID, isAvailable bool) error
}

type slotUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy config.BookingConfig
}

func NewSlotUseCase(uow shared.UnitOfWork, clock clock.Clock, policy config.BookingConfig) SlotCommands {
	return &slotUseCaseImpl{uow: uow, clock: clock, policy: policy}
}

func (u *slotUseCaseImpl) CreateSlot(ctx context.Context, input CreateSlotInput) (uuid.UUID, error) {
	var slotID uuid.UUID

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := u.createOne(ctx, tx, input.DoctorID, input.SlotDate, input.StartTime,
			input.MinutesPerPatient, input.MaxBookingsPerDay)
		if err != nil {
			return err
		}
		slotID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return slotID, nil
}

// CreateBulkSlots creates one slot per day over an inclusive date range,
// within a single transaction. Days that already have a slot for the doctor
// are skipped rather than failing the whole batch.
func (u *slotUseCaseImpl) CreateBulkSlots(ctx context.Context, input CreateBulkSlotsInput) ([]uuid.UUID, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidSlotInput
	}

	var created []uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = created[:0]
		for d := input.StartDate; !d.After(input.EndDate); d = d.AddDate(0, 0, 1) {
			id, err := u.createOne(ctx, tx, input.DoctorID, d, input.StartTime,
				input.MinutesPerPatient, input.MaxBookingsPerDay)
			if err != nil {
				if errors.Is(err, ErrSlotAlreadyExists) {
					continue
				}
				return err
			}
			created = append(created, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (u *slotUseCaseImpl) SetSlotAvailability(ctx context.Context, slotID uuid.UUID, isAvailable bool) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Slots().FindByIDForUpdate(ctx, tx.DB(), slotID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Slots().SetAvailability(ctx, tx.DB(), slotID, isAvailable); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *slotUseCaseImpl) createOne(
	ctx context.Context,
	tx shared.Tx,
	doctorID uuid.UUID,
	date time.Time,
	startTime slot.TimeOfDay,
	minutesPerPatient, maxBookingsPerDay *int,
) (uuid.UUID, error) {
	if _, err := tx.Reads().DoctorByID(ctx, tx.DB(), doctorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrDoctorNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	minutes := u.policy.MinutesPerPatient
	if minutesPerPatient != nil {
		minutes = *minutesPerPatient
	}
	capacity := u.policy.MaxBookingsPerDay
	if maxBookingsPerDay != nil {
		capacity = *maxBookingsPerDay
	}

	slotEntity, err := slot.NewSlot(doctorID, date, startTime, minutes, capacity, u.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Wrap(ErrInvalidSlotInput, err.Error())
	}

	id, err := tx.Slots().Create(ctx, tx.DB(), shared.CreateSlotParams{
		ID:                slotEntity.ID(),
		DoctorID:          slotEntity.DoctorID(),
		SlotDate:          slotEntity.SlotDate(),
		StartTime:         slotEntity.StartTime(),
		MinutesPerPatient: int32(slotEntity.MinutesPerPatient()),
		MaxBookingsPerDay: int32(slotEntity.MaxBookingsPerDay()),
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrSlotAlreadyExists
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrDoctorNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}
