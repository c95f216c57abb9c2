//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"clinic-booking/internal/handler/api"
	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/tests/common/builder"
	"clinic-booking/tests/common/httptest"
	"clinic-booking/tests/common/testutil"
	commandsmock "clinic-booking/tests/mock/commands"
	queriesmock "clinic-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSlotCommands
	mockQueries  *queriesmock.MockSlotQueries
	handler      *api.SlotHandler
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewSlotHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/slots", s.handler.Create)
	s.router.POST("/slots/bulk", s.handler.CreateBulk)
	s.router.GET("/slots", s.handler.Search)
	s.router.GET("/slots/:id", s.handler.Get)
	s.router.PATCH("/slots/:id/availability", s.handler.SetAvailability)
	s.router.GET("/doctors/:id/slots", s.handler.ListByDoctor)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) validCreateRequest() reqdto.CreateSlotRequest {
	return reqdto.CreateSlotRequest{
		DoctorID:  uuid.New(),
		SlotDate:  "2026-04-01",
		StartTime: "09:00",
	}
}

func (s *SlotHandlerTestSuite) TestCreate() {
	s.Run("created", func() {
		bld := builder.NewSlotBuilder()
		req := s.validCreateRequest()

		s.mockCommands.EXPECT().CreateSlot(gomock.Any(), gomock.Any()).Return(bld.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bld.ID).Return(bld.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots", req)

		var res resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal(bld.ID.String(), res.ID)
		s.Equal("09:00", res.StartTime)
		s.Equal(int32(30), res.AvailableCount)
	})

	s.Run("validation", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing doctor_id", mutate: testutil.Field("doctor_id", nil)},
			{name: "missing slot_date", mutate: testutil.Field("slot_date", nil)},
			{name: "malformed slot_date", mutate: testutil.Field("slot_date", "01/04/2026")},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "9am")},
			{name: "zero minutes_per_patient", mutate: testutil.Field("minutes_per_patient", 0)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), s.validCreateRequest(), tc.mutate)
				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots", body)
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("duplicate slot", func() {
		s.mockCommands.EXPECT().CreateSlot(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrSlotAlreadyExists)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots", s.validCreateRequest())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Slot already exists for this doctor and date")
	})

	s.Run("unknown doctor", func() {
		s.mockCommands.EXPECT().CreateSlot(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDoctorNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots", s.validCreateRequest())
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Doctor not found")
	})
}

func (s *SlotHandlerTestSuite) TestCreateBulk() {
	s.Run("created", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		s.mockCommands.EXPECT().CreateBulkSlots(gomock.Any(), gomock.Any()).Return(ids, nil)

		body := reqdto.CreateBulkSlotsRequest{
			DoctorID:  uuid.New(),
			StartDate: "2026-04-01",
			EndDate:   "2026-04-03",
			StartTime: "09:00",
		}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/bulk", body)

		var res resdto.BulkSlotsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Len(res.CreatedIDs, 3)
		s.Equal(ids[0].String(), res.CreatedIDs[0])
	})

	s.Run("range end before start", func() {
		s.mockCommands.EXPECT().CreateBulkSlots(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidSlotInput)

		body := reqdto.CreateBulkSlotsRequest{
			DoctorID:  uuid.New(),
			StartDate: "2026-04-03",
			EndDate:   "2026-04-01",
			StartTime: "09:00",
		}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots/bulk", body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid slot input")
	})
}

func (s *SlotHandlerTestSuite) TestGet() {
	s.Run("found", func() {
		bld := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
			b.CurrentBookings = 12
		})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bld.ID).Return(bld.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/"+bld.ID.String(), nil)

		var res resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(int32(12), res.CurrentBookings)
		s.Equal(int32(18), res.AvailableCount)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/nope", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid slot ID")
	})
}

func (s *SlotHandlerTestSuite) TestSearch() {
	s.Run("date only", func() {
		views := []*queries.SlotView{builder.NewSlotBuilder().BuildView()}
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2026-04-01", nil)

		var res []*resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Len(res, 1)
	})

	s.Run("doctor filter is forwarded", func() {
		doctorID := uuid.New()
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params queries.SlotSearchParams) ([]*queries.SlotView, error) {
				s.Require().NotNil(params.DoctorID)
				s.Equal(doctorID, *params.DoctorID)
				return nil, nil
			})

		path := "/slots?date=2026-04-01&doctor_id=" + doctorID.String()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("missing date", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid or missing date")
	})

	s.Run("malformed doctor id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2026-04-01&doctor_id=nope", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid doctor ID")
	})
}

func (s *SlotHandlerTestSuite) TestListByDoctor() {
	s.Run("without range", func() {
		doctorID := uuid.New()
		s.mockQueries.EXPECT().ListByDoctor(gomock.Any(), doctorID).
			Return([]*queries.SlotView{builder.NewSlotBuilder().BuildView()}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/doctors/"+doctorID.String()+"/slots", nil)

		var res []*resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Len(res, 1)
	})

	s.Run("with range", func() {
		doctorID := uuid.New()
		s.mockQueries.EXPECT().
			ListByDoctorAndDateRange(gomock.Any(), doctorID, gomock.Any(), gomock.Any()).
			Return([]*queries.SlotView{}, nil)

		path := "/doctors/" + doctorID.String() + "/slots?from=2026-04-01&to=2026-04-07"
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("half open range is rejected", func() {
		path := "/doctors/" + uuid.NewString() + "/slots?from=2026-04-01"
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid range end")
	})
}

func (s *SlotHandlerTestSuite) TestSetAvailability() {
	s.Run("closed", func() {
		bld := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
			b.IsAvailable = false
		})
		s.mockCommands.EXPECT().SetSlotAvailability(gomock.Any(), bld.ID, false).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bld.ID).Return(bld.BuildView(), nil)

		closed := false
		body := reqdto.SetSlotAvailabilityRequest{IsAvailable: &closed}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/slots/"+bld.ID.String()+"/availability", body)

		var res resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.False(res.IsAvailable)
	})

	s.Run("missing is_available", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/slots/"+uuid.NewString()+"/availability", map[string]any{})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("unknown slot", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().SetSlotAvailability(gomock.Any(), id, true).Return(commands.ErrSlotNotFound)

		open := true
		body := reqdto.SetSlotAvailabilityRequest{IsAvailable: &open}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/slots/"+id.String()+"/availability", body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Slot not found")
	})
}
