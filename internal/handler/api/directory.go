package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/usecase/queries"
)

type DirectoryHandler struct {
	doctors   queries.DoctorQueries
	hospitals queries.HospitalQueries
}

func NewDirectoryHandler(doctors queries.DoctorQueries, hospitals queries.HospitalQueries) *DirectoryHandler {
	return &DirectoryHandler{doctors: doctors, hospitals: hospitals}
}

// @Summary List doctors
// @Description List doctors with optional specialization and hospital filters
// @Tags directory
// @Produce json
// @Param specialization query string false "Specialization"
// @Param hospital_id query string false "Hospital ID"
// @Success 200 {array} resdto.DoctorResponse
// @Failure 400 {object} map[string]string
// @Router /doctors [get]
func (h *DirectoryHandler) ListDoctors(c *gin.Context) {
	var params queries.DoctorSearchParams
	if v := c.Query("specialization"); v != "" {
		params.Specialization = &v
	}
	if v := c.Query("hospital_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hospital ID", nil)
			return
		}
		params.HospitalID = &id
	}

	items, err := h.doctors.Search(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list doctors", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDoctorList(items))
}

// @Summary Get doctor
// @Description Get a doctor by ID
// @Tags directory
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} resdto.DoctorResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /doctors/{id} [get]
func (h *DirectoryHandler) GetDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid doctor ID", nil)
		return
	}
	view, err := h.doctors.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Doctor not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDoctorView(view))
}

// @Summary List hospitals
// @Description List all hospitals
// @Tags directory
// @Produce json
// @Success 200 {array} resdto.HospitalResponse
// @Router /hospitals [get]
func (h *DirectoryHandler) ListHospitals(c *gin.Context) {
	items, err := h.hospitals.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list hospitals", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHospitalList(items))
}

// @Summary Get hospital
// @Description Get a hospital by ID
// @Tags directory
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {object} resdto.HospitalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hospitals/{id} [get]
func (h *DirectoryHandler) GetHospital(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hospital ID", nil)
		return
	}
	view, err := h.hospitals.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hospital not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHospitalView(view))
}
