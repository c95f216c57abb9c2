package request

import (
	"time"

	"github.com/google/uuid"

	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

var errInvalidDate = errs.New("invalid date format, expected YYYY-MM-DD")

type CreateSlotRequest struct {
	DoctorID          uuid.UUID `json:"doctor_id" binding:"required"`
	SlotDate          string    `json:"slot_date" binding:"required"`
	StartTime         string    `json:"start_time" binding:"required"`
	MinutesPerPatient *int      `json:"minutes_per_patient" binding:"omitempty,min=1"`
	MaxBookingsPerDay *int      `json:"max_bookings_per_day" binding:"omitempty,min=1"`
}

func (r *CreateSlotRequest) ToInput() (commands.CreateSlotInput, error) {
	date, err := time.Parse(dateLayout, r.SlotDate)
	if err != nil {
		return commands.CreateSlotInput{}, errInvalidDate
	}
	startTime, err := slot.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.CreateSlotInput{}, err
	}
	return commands.CreateSlotInput{
		DoctorID:          r.DoctorID,
		SlotDate:          date,
		StartTime:         startTime,
		MinutesPerPatient: r.MinutesPerPatient,
		MaxBookingsPerDay: r.MaxBookingsPerDay,
	}, nil
}

type CreateBulkSlotsRequest struct {
	DoctorID          uuid.UUID `json:"doctor_id" binding:"required"`
	StartDate         string    `json:"start_date" binding:"required"`
	EndDate           string    `json:"end_date" binding:"required"`
	StartTime         string    `json:"start_time" binding:"required"`
	MinutesPerPatient *int      `json:"minutes_per_patient" binding:"omitempty,min=1"`
	MaxBookingsPerDay *int      `json:"max_bookings_per_day" binding:"omitempty,min=1"`
}

func (r *CreateBulkSlotsRequest) ToInput() (commands.CreateBulkSlotsInput, error) {
	startDate, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return commands.CreateBulkSlotsInput{}, errInvalidDate
	}
	endDate, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return commands.CreateBulkSlotsInput{}, errInvalidDate
	}
	startTime, err := slot.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.CreateBulkSlotsInput{}, err
	}
	return commands.CreateBulkSlotsInput{
		DoctorID:          r.DoctorID,
		StartDate:         startDate,
		EndDate:           endDate,
		StartTime:         startTime,
		MinutesPerPatient: r.MinutesPerPatient,
		MaxBookingsPerDay: r.MaxBookingsPerDay,
	}, nil
}

type SetSlotAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}
