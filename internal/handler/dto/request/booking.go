package request

import (
	"github.com/google/uuid"

	"clinic-booking/internal/usecase/commands"
)

type CreateBookingRequest struct {
	UserID       uuid.UUID `json:"user_id" binding:"required"`
	SlotID       uuid.UUID `json:"slot_id" binding:"required"`
	PatientNotes *string   `json:"patient_notes" binding:"omitempty,max=1000"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		UserID:       r.UserID,
		SlotID:       r.SlotID,
		PatientNotes: r.PatientNotes,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed no_show"`
}
