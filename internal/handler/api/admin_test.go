//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/Evidive-blue/evidive/internal/domain/booking"
	"github.com/Evidive-blue/evidive/internal/handler/api"
	resdto "github.com/Evidive-blue/evidive/internal/handler/dto/response"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"
	"github.com/Evidive-blue/evidive/tests/common/httptest"
	commandsmock "github.com/Evidive-blue/evidive/tests/mock/commands"
	queriesmock "github.com/Evidive-blue/evidive/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBookings *commandsmock.MockBookingCommands
	mockSettings *commandsmock.MockSettingsCommands
	mockQueries  *queriesmock.MockSettingsQueries
	adminID      uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockSettings = commandsmock.NewMockSettingsCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSettingsQueries(s.mockCtrl)
	handler := api.NewAdminHandler(s.mockBookings, s.mockSettings, s.mockQueries)
	s.adminID = uuid.New()

	auth := fakeAuth(s.adminID, "admin@evidive.example")
	s.router.GET("/admin/settings", auth, handler.ListSettings)
	s.router.PUT("/admin/settings/:key", auth, handler.UpdateSetting)
	s.router.POST("/admin/bookings/:id/complete", auth, handler.CompleteBooking)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListSettings() {
	views := []*queries.SettingView{
		{Key: "commission_rate", Value: "20", Category: "payments"},
		{Key: "stripe_webhook_secret", Value: "****cdef", Category: "payments", IsSecret: true},
	}
	s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/settings", nil, "bearer-token")

	var body []queries.SettingView
	httptest.AssertDataResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal("****cdef", body[1].Value)
}

func (s *AdminHandlerTestSuite) TestUpdateSetting() {
	s.Run("success", func() {
		s.mockSettings.EXPECT().Update(gomock.Any(), s.adminID, "commission_rate", "15").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/settings/commission_rate", map[string]any{"value": "15"}, "bearer-token")

		var body resdto.SettingUpdated
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("commission_rate", body.Key)
	})

	s.Run("success: explicit empty value is forwarded", func() {
		s.mockSettings.EXPECT().Update(gomock.Any(), s.adminID, "support_email", "").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/settings/support_email", map[string]any{"value": ""}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: value missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/settings/commission_rate", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: invalid rate", func() {
		s.mockSettings.EXPECT().Update(gomock.Any(), s.adminID, "commission_rate", "150").
			Return(commands.ErrInvalidCommissionRate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/settings/commission_rate", map[string]any{"value": "150"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "commission_rate must be a decimal between 0 and 100 with at most 2 decimal places")
	})

	s.Run("error: unknown key names the key", func() {
		notFound := errs.Mark(errs.Sentinel("Configuration key 'nope' not found", errs.ErrNotFound), commands.ErrSettingNotFound)
		s.mockSettings.EXPECT().Update(gomock.Any(), s.adminID, "nope", "x").Return(notFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/settings/nope", map[string]any{"value": "x"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Configuration key 'nope' not found")
	})
}

func (s *AdminHandlerTestSuite) TestCompleteBooking() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockBookings.EXPECT().Complete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+id.String()+"/complete", nil, "bearer-token")

		var body resdto.StatusChange
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Status)
	})

	s.Run("error: not confirmed", func() {
		s.mockBookings.EXPECT().Complete(gomock.Any(), id).Return(booking.ErrCannotComplete).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+id.String()+"/complete", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "only confirmed bookings can be completed")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/42/complete", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}
