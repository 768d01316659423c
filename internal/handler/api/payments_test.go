//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Evidive-blue/evidive/internal/domain/center"
	"github.com/Evidive-blue/evidive/internal/handler/api"
	resdto "github.com/Evidive-blue/evidive/internal/handler/dto/response"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"
	"github.com/Evidive-blue/evidive/tests/common/httptest"
	commandsmock "github.com/Evidive-blue/evidive/tests/mock/commands"
	queriesmock "github.com/Evidive-blue/evidive/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPaymentQueries
	mockPayouts *commandsmock.MockPayoutCommands
	userID      uuid.UUID
	centerID    uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.mockPayouts = commandsmock.NewMockPayoutCommands(s.mockCtrl)
	handler := api.NewPaymentHandler(s.mockQueries, s.mockPayouts)
	s.userID = uuid.New()
	s.centerID = uuid.New()

	auth := fakeAuth(s.userID, "owner@evidive.example")
	s.router.GET("/centers/:id/commissions", auth, handler.Commissions)
	s.router.GET("/centers/:id/payments", auth, handler.Payments)
	s.router.GET("/centers/:id/revenue", auth, handler.Revenue)
	s.router.POST("/centers/:id/payouts", auth, handler.RequestPayout)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) path(suffix string) string {
	return "/centers/" + s.centerID.String() + suffix
}

func (s *PaymentHandlerTestSuite) TestCommissions() {
	s.Run("success: page is normalized before the query", func() {
		rows := []*queries.CommissionView{{
			BookingID:        uuid.New(),
			BookingDate:      "2026-06-15",
			TotalPrice:       decimal.NewFromInt(200),
			CommissionRate:   decimal.NewFromInt(20),
			CommissionAmount: decimal.NewFromInt(40),
			Currency:         "EUR",
			Status:           "completed",
		}}
		s.mockQueries.EXPECT().
			Commissions(gomock.Any(), s.userID, s.centerID, queries.Page{Limit: queries.MaxListLimit, Offset: 0}).
			Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/commissions?limit=1000&offset=-5"), nil, "bearer-token")

		var body []queries.CommissionView
		httptest.AssertDataResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.True(body[0].CommissionAmount.Equal(decimal.NewFromInt(40)))
	})

	s.Run("error: non-member", func() {
		s.mockQueries.EXPECT().Commissions(gomock.Any(), s.userID, s.centerID, gomock.Any()).
			Return(nil, center.ErrNotMember).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/commissions"), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not a member of this center")
	})

	s.Run("error: malformed center id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/centers/xyz/commissions", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid center ID")
	})
}

func (s *PaymentHandlerTestSuite) TestPayments() {
	s.mockQueries.EXPECT().
		Payments(gomock.Any(), s.userID, s.centerID, queries.Page{Limit: queries.DefaultListLimit, Offset: 20}).
		Return(nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/payments?offset=20"), nil, "bearer-token")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":[]}`, rec.Body.String())
}

func (s *PaymentHandlerTestSuite) TestRevenue() {
	view := &queries.RevenueView{
		CenterID:         s.centerID,
		TotalRevenue:     decimal.NewFromInt(500),
		TotalCommission:  decimal.NewFromInt(100),
		NetRevenue:       decimal.NewFromInt(400),
		TransactionCount: 3,
		Currency:         "EUR",
		AvailableBalance: decimal.NewFromInt(160),
	}
	s.mockQueries.EXPECT().Revenue(gomock.Any(), s.userID, s.centerID).Return(view, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/revenue"), nil, "bearer-token")

	var body queries.RevenueView
	httptest.AssertDataResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.NetRevenue.Equal(decimal.NewFromInt(400)))
	s.True(body.AvailableBalance.Equal(decimal.NewFromInt(160)))
	s.Equal(int64(3), body.TransactionCount)
}

func (s *PaymentHandlerTestSuite) TestRequestPayout() {
	key := uuid.New()
	headers := map[string]string{"Idempotency-Key": key.String()}

	s.Run("success: amount accepted as string", func() {
		amount := decimal.RequireFromString("120.50")
		s.mockPayouts.EXPECT().Request(gomock.Any(), s.userID, s.centerID, gomock.Any(), key).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, got decimal.Decimal, _ uuid.UUID) (*commands.PayoutResult, error) {
				s.True(got.Equal(amount))
				return &commands.PayoutResult{TransferID: "tr_1", Amount: amount, Currency: "EUR", Status: "created"}, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, s.path("/payouts"), map[string]any{"amount": "120.50"}, headers, "bearer-token")

		var body resdto.PayoutResponse
		httptest.AssertDataResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("tr_1", body.TransferID)
		s.True(body.Amount.Equal(amount))
		s.Equal("created", body.Status)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: replay is flagged in a header", func() {
		s.mockPayouts.EXPECT().Request(gomock.Any(), s.userID, s.centerID, gomock.Any(), key).
			Return(&commands.PayoutResult{TransferID: "tr_1", Amount: decimal.NewFromInt(10), Currency: "EUR", Status: "created", Replayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, s.path("/payouts"), map[string]any{"amount": 10}, headers, "bearer-token")

		var body resdto.PayoutResponse
		httptest.AssertDataResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("tr_1", body.TransferID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: idempotency key", func() {
		cases := []struct {
			name    string
			headers map[string]string
			msg     string
		}{
			{name: "missing", headers: nil, msg: "Idempotency-Key header required"},
			{name: "not a uuid", headers: map[string]string{"Idempotency-Key": "retry-1"}, msg: "Invalid Idempotency-Key, expected a UUID"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockPayouts.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, s.path("/payouts"), map[string]any{"amount": 10}, tc.headers, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: amount is not a number", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, s.path("/payouts"), map[string]any{"amount": "lots"}, headers, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "not owner", err: center.ErrNotOwner, status: http.StatusForbidden, msg: "only the center owner can do this"},
			{name: "onboarding incomplete", err: center.ErrOnboardingIncomplete, status: http.StatusBadRequest, msg: "stripe onboarding is not complete"},
			{name: "insufficient balance", err: center.ErrInsufficientBalance, status: http.StatusBadRequest, msg: "amount exceeds available balance"},
			{name: "non-positive", err: center.ErrInvalidPayoutAmount, status: http.StatusBadRequest, msg: "payout amount must be greater than zero"},
			{name: "key still in progress", err: commands.ErrIdempotencyInProgress, status: http.StatusConflict, msg: "a request with this Idempotency-Key is still in progress"},
			{name: "key reused for another amount", err: commands.ErrIdempotencyKeyReused, status: http.StatusConflict, msg: "Idempotency-Key was already used for a different request"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockPayouts.EXPECT().Request(gomock.Any(), s.userID, s.centerID, gomock.Any(), key).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, s.path("/payouts"), map[string]any{"amount": 10}, headers, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}
