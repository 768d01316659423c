//go:build unit

package api_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"github.com/Evidive-blue/evidive/internal/handler/api"
	resdto "github.com/Evidive-blue/evidive/internal/handler/dto/response"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/tests/common/httptest"
	commandsmock "github.com/Evidive-blue/evidive/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
	payload      []byte
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.router.POST("/stripe/webhook", api.NewWebhookHandler(s.mockCommands).Handle)
	s.payload = []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) post(signature string) *nethttptest.ResponseRecorder {
	headers := map[string]string{"Content-Type": "application/json"}
	if signature != "" {
		headers["Stripe-Signature"] = signature
	}
	return httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/stripe/webhook", s.payload, headers)
}

func (s *WebhookHandlerTestSuite) TestAcknowledged() {
	s.mockCommands.EXPECT().Handle(gomock.Any(), s.payload, "t=1,v1=abc").Return(nil).Times(1)

	rec := s.post("t=1,v1=abc")

	var body resdto.WebhookAck
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.Received)
}

func (s *WebhookHandlerTestSuite) TestRawBodyIsForwardedVerbatim() {
	s.payload = []byte("{\n  \"id\": \"evt_2\"\n}")
	s.mockCommands.EXPECT().Handle(gomock.Any(), []byte("{\n  \"id\": \"evt_2\"\n}"), "sig").Return(nil).Times(1)

	rec := s.post("sig")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *WebhookHandlerTestSuite) TestFailures() {
	cases := []struct {
		name   string
		sig    string
		err    error
		status int
		msg    string
	}{
		{name: "missing signature", sig: "", err: commands.ErrMissingSignature, status: http.StatusBadRequest, msg: "Missing Stripe-Signature header"},
		{name: "invalid signature", sig: "t=1,v1=forged", err: errs.Wrap(commands.ErrInvalidSignature, "timestamp outside tolerance"), status: http.StatusBadRequest, msg: "Invalid webhook signature"},
		{name: "transient failure asks for redelivery", sig: "t=1,v1=abc", err: errors.New("connection refused"), status: http.StatusInternalServerError, msg: "Internal server error"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Handle(gomock.Any(), s.payload, tc.sig).Return(tc.err).Times(1)

			rec := s.post(tc.sig)
			httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
		})
	}
}
