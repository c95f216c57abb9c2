package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

type SlotHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary Create slot
// @Description Create one doctor's bookable day
// @Tags slots
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSlotRequest true "Slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	slotID, err := h.cmds.CreateSlot(c.Request.Context(), input)
	if err != nil {
		abortSlotError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), slotID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load slot", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary Create bulk slots
// @Description Create one slot per day over an inclusive date range
// @Tags slots
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBulkSlotsRequest true "Bulk slot request"
// @Success 201 {object} resdto.BulkSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/bulk [post]
func (h *SlotHandler) CreateBulk(c *gin.Context) {
	var req reqdto.CreateBulkSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ids, err := h.cmds.CreateBulkSlots(c.Request.Context(), input)
	if err != nil {
		abortSlotError(c, err)
		return
	}

	resp := resdto.BulkSlotsResponse{CreatedIDs: make([]string, len(ids))}
	for i, id := range ids {
		resp.CreatedIDs[i] = id.String()
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get slot
// @Description Get a slot by ID with current occupancy
// @Tags slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Search slots
// @Description Search available slots by date with optional doctor, hospital and specialization filters
// @Tags slots
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param doctor_id query string false "Doctor ID"
// @Param hospital_id query string false "Hospital ID"
// @Param specialization query string false "Specialization"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /slots [get]
func (h *SlotHandler) Search(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date", nil)
		return
	}

	params := queries.SlotSearchParams{Date: date}
	if v := c.Query("doctor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid doctor ID", nil)
			return
		}
		params.DoctorID = &id
	}
	if v := c.Query("hospital_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hospital ID", nil)
			return
		}
		params.HospitalID = &id
	}
	if v := c.Query("specialization"); v != "" {
		params.Specialization = &v
	}

	items, err := h.q.Search(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to search slots", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotList(items))
}

// @Summary List doctor slots
// @Description List a doctor's slots, optionally within a date range
// @Tags slots
// @Produce json
// @Param id path string true "Doctor ID"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /doctors/{id}/slots [get]
func (h *SlotHandler) ListByDoctor(c *gin.Context) {
	doctorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid doctor ID", nil)
		return
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	var items []*queries.SlotView
	if fromStr != "" || toStr != "" {
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid range start", nil)
			return
		}
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid range end", nil)
			return
		}
		items, err = h.q.ListByDoctorAndDateRange(c.Request.Context(), doctorID, from, to)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list slots", nil)
			return
		}
	} else {
		items, err = h.q.ListByDoctor(c.Request.Context(), doctorID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list slots", nil)
			return
		}
	}
	c.JSON(http.StatusOK, resdto.FromSlotList(items))
}

// @Summary Set slot availability
// @Description Open or close a slot for new bookings
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param request body reqdto.SetSlotAvailabilityRequest true "Availability"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id}/availability [patch]
func (h *SlotHandler) SetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID", nil)
		return
	}
	var req reqdto.SetSlotAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SetSlotAvailability(c.Request.Context(), id, *req.IsAvailable); err != nil {
		abortSlotError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load slot", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

func abortSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDoctorNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Doctor not found", nil)
	case errors.Is(err, commands.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
	case errors.Is(err, commands.ErrSlotAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot already exists for this doctor and date", nil)
	case errors.Is(err, commands.ErrInvalidSlotInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot input", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
