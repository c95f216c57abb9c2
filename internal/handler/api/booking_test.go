//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"clinic-booking/internal/handler/api"
	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/pkg/clock"
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

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(now))

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.DELETE("/bookings/:id/cancel", s.handler.Cancel)
	s.router.PATCH("/bookings/:id/status", s.handler.UpdateStatus)
	s.router.GET("/users/:id/bookings", s.handler.ListByUser)
	s.router.GET("/users/:id/bookings/upcoming", s.handler.ListUpcoming)
	s.router.GET("/users/:id/bookings/past", s.handler.ListPast)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) validCreateRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		UserID: uuid.New(),
		SlotID: uuid.New(),
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	s.Run("created", func() {
		bld := builder.NewBookingBuilder()
		view := bld.BuildView()
		req := s.validCreateRequest()

		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), req.ToInput()).Return(bld.ID, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bld.ID).Return(view, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal(bld.ID.String(), res.ID)
		s.Equal("09:00", res.AppointmentTime)
		s.Equal("confirmed", res.Status)
	})

	s.Run("validation", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing user_id", mutate: testutil.Field("user_id", nil)},
			{name: "missing slot_id", mutate: testutil.Field("slot_id", nil)},
			{name: "malformed slot_id", mutate: testutil.Field("slot_id", "not-a-uuid")},
			{name: "notes too long", mutate: testutil.Field("patient_notes", strings.Repeat("a", 1001))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), s.validCreateRequest(), tc.mutate)
				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body)
				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("command errors", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "user not found", err: commands.ErrUserNotFound, expectCode: http.StatusNotFound},
			{name: "slot not found", err: commands.ErrSlotNotFound, expectCode: http.StatusNotFound},
			{name: "slot closed", err: commands.ErrSlotNotAvailable, expectCode: http.StatusConflict},
			{name: "slot full", err: commands.ErrSlotCapacityExceeded, expectCode: http.StatusConflict},
			{name: "infrastructure failure", err: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := s.validCreateRequest()
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)

				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", req)
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("found", func() {
		bld := builder.NewBookingBuilder()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bld.ID).Return(bld.BuildView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bld.ID.String(), nil)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(bld.ID.String(), res.ID)
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/nope", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, commands.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	s.Run("cancelled", func() {
		bld := builder.NewBookingBuilder()
		view := bld.BuildView()
		view.Status = "cancelled"

		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bld.ID, bld.UserID).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bld.ID).Return(view, nil)

		path := "/bookings/" + bld.ID.String() + "/cancel?user_id=" + bld.UserID.String()
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("cancelled", res.Status)
	})

	s.Run("missing user_id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+uuid.NewString()+"/cancel", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid user ID")
	})

	s.Run("command errors", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "not found", err: commands.ErrBookingNotFound, expectCode: http.StatusNotFound},
			{name: "not the owner", err: commands.ErrBookingNotOwned, expectCode: http.StatusForbidden},
			{name: "already cancelled", err: commands.ErrBookingNotCancellable, expectCode: http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				bookingID, userID := uuid.New(), uuid.New()
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, userID).Return(tc.err)

				path := "/bookings/" + bookingID.String() + "/cancel?user_id=" + userID.String()
				w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, path, nil)
				httptest.AssertErrorResponse(s.T(), w, tc.expectCode, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	s.Run("completed", func() {
		bld := builder.NewBookingBuilder()
		view := bld.BuildView()
		view.Status = "completed"

		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), bld.ID, gomock.Any()).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bld.ID).Return(view, nil)

		body := reqdto.UpdateBookingStatusRequest{Status: "completed"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+bld.ID.String()+"/status", body)

		var res resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("completed", res.Status)
	})

	s.Run("status outside the allowed set", func() {
		body := map[string]any{"status": "cancelled"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+uuid.NewString()+"/status", body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("terminal booking", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), id, gomock.Any()).Return(commands.ErrInvalidStatusTransition)

		body := reqdto.UpdateBookingStatusRequest{Status: "no_show"}
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+id.String()+"/status", body)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Invalid status transition")
	})
}

func (s *BookingHandlerTestSuite) TestListByUser() {
	s.Run("returns the user's bookings", func() {
		userID := uuid.New()
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), userID).Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/bookings", nil)

		var res []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Len(res, 2)
		s.Equal(views[0].ID.String(), res[0].ID)
	})

	s.Run("malformed user id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/nope/bookings", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid user ID")
	})
}

func (s *BookingHandlerTestSuite) TestListUpcomingAndPast() {
	s.Run("upcoming passes the current time", func() {
		userID := uuid.New()
		views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}
		s.mockQueries.EXPECT().
			ListUpcomingByUser(gomock.Any(), userID, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)).
			Return(views, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/bookings/upcoming", nil)

		var res []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Len(res, 1)
	})

	s.Run("past passes the current time", func() {
		userID := uuid.New()
		s.mockQueries.EXPECT().
			ListPastByUser(gomock.Any(), userID, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)).
			Return([]*queries.BookingView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+userID.String()+"/bookings/past", nil)

		var res []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Empty(res)
	})
}
