package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-booking/internal/domain/booking"
	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
)

type BookingHandler struct {
	cmds  commands.BookingCommands
	q     queries.BookingQueries
	clock clock.Clock
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, clock clock.Clock) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, clock: clock}
}

// @Summary Create booking
// @Description Book the next position in a slot; the appointment time is assigned by the server
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	bookingID, err := h.cmds.CreateBooking(c.Request.Context(), req.ToInput())
	if err != nil {
		abortBookingError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel own confirmed booking and free its position in the slot
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Param user_id query string true "Requesting user ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}

	if err := h.cmds.CancelBooking(c.Request.Context(), id, userID); err != nil {
		abortBookingError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Administrative transition to completed or no_show
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateBookingStatus(c.Request.Context(), id, booking.Status(req.Status)); err != nil {
		abortBookingError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List user bookings
// @Description List all bookings for a user, newest first
// @Tags bookings
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /users/{id}/bookings [get]
func (h *BookingHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}
	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary List upcoming bookings
// @Description List a user's confirmed bookings from today onward
// @Tags bookings
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /users/{id}/bookings/upcoming [get]
func (h *BookingHandler) ListUpcoming(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}
	items, err := h.q.ListUpcomingByUser(c.Request.Context(), userID, h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary List past bookings
// @Description List a user's bookings before today, newest first
// @Tags bookings
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /users/{id}/bookings/past [get]
func (h *BookingHandler) ListPast(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}
	items, err := h.q.ListPastByUser(c.Request.Context(), userID, h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, commands.ErrDoctorNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Doctor not found", nil)
	case errors.Is(err, commands.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrSlotNotAvailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is not open for booking", nil)
	case errors.Is(err, commands.ErrSlotCapacityExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is fully booked", nil)
	case errors.Is(err, commands.ErrBookingNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Booking belongs to another user", nil)
	case errors.Is(err, commands.ErrBookingNotCancellable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking cannot be cancelled", nil)
	case errors.Is(err, commands.ErrInvalidStatusTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status transition", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
