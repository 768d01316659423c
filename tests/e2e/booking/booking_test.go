//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/infra/query"
	"github.com/Evidive-blue/evidive/internal/pkg/ptr"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"
	"github.com/Evidive-blue/evidive/internal/usecase/queries"
	"github.com/Evidive-blue/evidive/tests/common/authtest"
	"github.com/Evidive-blue/evidive/tests/common/dbtest"
	"github.com/Evidive-blue/evidive/tests/common/httptest"
	"github.com/Evidive-blue/evidive/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	adminRole = "admin_diver"
	diverRole = "diver"
)

type BookingFlowTestSuite struct {
	e2e.SharedSuite
}

func TestBookingFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingFlowTestSuite))
}

type actors struct {
	clientID    uuid.UUID
	clientToken string
	ownerID     uuid.UUID
	ownerToken  string
	adminToken  string
	centerID    uuid.UUID
	serviceID   uuid.UUID
}

func (s *BookingFlowTestSuite) seed() actors {
	t := s.T()
	jwt := authtest.NewJWTHelper(s.Config.Auth)

	clientID := dbtest.CreateTestProfile(t, s.DB, "client@example.com", diverRole)
	ownerID := dbtest.CreateTestProfile(t, s.DB, "owner@example.com", diverRole)
	adminID := dbtest.CreateTestProfile(t, s.DB, "admin@example.com", adminRole)

	centerID := dbtest.CreateTestCenter(t, s.DB, ownerID, dbtest.CenterFixture{
		Name:                     "Blue Lagoon Divers",
		Currency:                 "EUR",
		StripeAccountID:          ptr.Of("acct_e2e_center"),
		StripeOnboardingComplete: true,
	})
	serviceID := dbtest.CreateTestService(t, s.DB, centerID, "Discover Scuba", "100.00")

	return actors{
		clientID:    clientID,
		clientToken: jwt.GenerateToken(t, clientID, "client@example.com"),
		ownerID:     ownerID,
		ownerToken:  jwt.GenerateToken(t, ownerID, "owner@example.com"),
		adminToken:  jwt.GenerateToken(t, adminID, "admin@example.com"),
		centerID:    centerID,
		serviceID:   serviceID,
	}
}

func bookingDate() string {
	return time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02")
}

func (s *BookingFlowTestSuite) createBooking(a actors, slot string, participants int) *http.Response {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/bookings", map[string]any{
		"service_id":   a.serviceID,
		"center_id":    a.centerID,
		"booking_date": bookingDate(),
		"time_slot":    slot,
		"participants": participants,
	}, a.clientToken)
	return w.Result()
}

func (s *BookingFlowTestSuite) mustCreateBooking(a actors, slot string) uuid.UUID {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/bookings", map[string]any{
		"service_id":   a.serviceID,
		"center_id":    a.centerID,
		"booking_date": bookingDate(),
		"time_slot":    slot,
		"participants": 2,
	}, a.clientToken)

	var created struct {
		ID               uuid.UUID       `json:"id"`
		Status           string          `json:"status"`
		TotalPrice       decimal.Decimal `json:"total_price"`
		CommissionAmount decimal.Decimal `json:"commission_amount"`
		Currency         string          `json:"currency"`
	}
	httptest.AssertDataResponse(s.T(), w, http.StatusCreated, &created)
	s.Require().Equal("pending", created.Status)
	s.Require().True(decimal.RequireFromString("200").Equal(created.TotalPrice), created.TotalPrice.String())
	s.Require().True(decimal.RequireFromString("40").Equal(created.CommissionAmount), created.CommissionAmount.String())
	s.Require().Equal("EUR", created.Currency)
	return created.ID
}

func (s *BookingFlowTestSuite) postWebhook(payload []byte, signature string) int {
	w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/v1/stripe/webhook", payload, map[string]string{
		"Content-Type":     "application/json",
		"Stripe-Signature": signature,
	})
	return w.Code
}

func (s *BookingFlowTestSuite) checkoutCompleted(eventID string, bookingID uuid.UUID, intentID string) ([]byte, string) {
	return s.Gateway.SignEvent(s.T(), eventID, "checkout.session.completed", map[string]any{
		"id":             "cs_" + eventID,
		"object":         "checkout.session",
		"amount_total":   20000,
		"currency":       "eur",
		"payment_intent": intentID,
		"metadata":       map[string]string{"booking_id": bookingID.String()},
	})
}

func (s *BookingFlowTestSuite) transactionCount(bookingID uuid.UUID) int64 {
	n, err := query.New().CountTransactionsByBooking(context.Background(), s.DB, bookingID)
	s.Require().NoError(err)
	return n
}

func (s *BookingFlowTestSuite) bookingStatus(a actors, id uuid.UUID) string {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/v1/bookings/"+id.String(), nil, a.clientToken)
	var view queries.BookingView
	httptest.AssertDataResponse(s.T(), w, http.StatusOK, &view)
	return view.Status
}

func (s *BookingFlowTestSuite) TestPaidBookingIsSettledAndPaidOut() {
	s.Run("checkout, settlement, completion and payout", func() {
		a := s.seed()
		id := s.mustCreateBooking(a, "08:00")

		// checkout
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/bookings/"+id.String()+"/checkout", nil, a.clientToken)
		var checkout struct {
			CheckoutURL string `json:"checkout_url"`
		}
		httptest.AssertDataResponse(s.T(), w, http.StatusOK, &checkout)
		s.NotEmpty(checkout.CheckoutURL)

		sessions := s.Gateway.Sessions()
		s.Require().Len(sessions, 1)
		s.Require().NotNil(sessions[0].Destination)
		s.Equal("acct_e2e_center", *sessions[0].Destination)
		s.Equal(int64(20000), sessions[0].AmountCents)
		s.Equal(int64(4000), sessions[0].ApplicationFeeCents)

		// settlement
		payload, sig := s.checkoutCompleted("evt_1", id, "pi_e2e_1")
		s.Equal(http.StatusOK, s.postWebhook(payload, sig))
		s.Equal(int64(1), s.transactionCount(id))

		payload, sig = s.Gateway.SignEvent(s.T(), "evt_2", "payment_intent.succeeded", map[string]any{
			"id":       "pi_e2e_1",
			"object":   "payment_intent",
			"metadata": map[string]string{"booking_id": id.String()},
		})
		s.Equal(http.StatusOK, s.postWebhook(payload, sig))
		s.Equal("confirmed", s.bookingStatus(a, id))

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/v1/centers/"+a.centerID.String()+"/payments", nil, a.ownerToken)
		var payments []queries.PaymentView
		httptest.AssertDataResponse(s.T(), w, http.StatusOK, &payments)
		s.Require().Len(payments, 1)
		s.True(decimal.RequireFromString("40").Equal(payments[0].PlatformFee))
		s.True(decimal.RequireFromString("160").Equal(payments[0].VendorAmount))

		// completion unlocks the balance
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/admin/bookings/"+id.String()+"/complete", nil, a.adminToken)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
		s.Equal("completed", s.bookingStatus(a, id))

		payoutPath := "/api/v1/centers/" + a.centerID.String() + "/payouts"
		key := uuid.New()
		headers := map[string]string{"Idempotency-Key": key.String()}

		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, payoutPath,
			map[string]any{"amount": "160.00"}, headers, a.ownerToken)
		s.Equal(http.StatusCreated, w.Code, w.Body.String())
		first := w.Body.String()

		// a client retry with the same key replays instead of paying twice
		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, payoutPath,
			map[string]any{"amount": "160.00"}, headers, a.ownerToken)
		s.Equal(http.StatusCreated, w.Code, w.Body.String())
		s.Equal("true", w.Header().Get("Idempotent-Replayed"))
		s.JSONEq(first, w.Body.String())

		want := []commands.TransferRequest{{
			CenterID:       a.centerID,
			Destination:    "acct_e2e_center",
			AmountCents:    16000,
			Currency:       "EUR",
			Description:    "Payout for center Blue Lagoon Divers",
			IdempotencyKey: key.String(),
		}}
		if diff := cmp.Diff(want, s.Gateway.Transfers()); diff != "" {
			s.T().Errorf("transfers mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, payoutPath,
			map[string]any{"amount": "50.00"}, headers, a.ownerToken)
		s.Equal(http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, payoutPath,
			map[string]any{"amount": "160.01"}, map[string]string{"Idempotency-Key": uuid.NewString()}, a.ownerToken)
		s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *BookingFlowTestSuite) TestWebhookRedelivery() {
	s.Run("sequential redelivery records one transaction", func() {
		a := s.seed()
		id := s.mustCreateBooking(a, "08:00")

		payload, sig := s.checkoutCompleted("evt_dup", id, "pi_dup")
		for range 3 {
			s.Equal(http.StatusOK, s.postWebhook(payload, sig))
		}
		s.Equal(int64(1), s.transactionCount(id))
	})

	s.Run("concurrent redelivery records one transaction", func() {
		a := s.seed()
		id := s.mustCreateBooking(a, "10:00")

		payload, sig := s.checkoutCompleted("evt_race", id, "pi_race")
		var wg sync.WaitGroup
		codes := make([]int, 5)
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				codes[i] = s.postWebhook(payload, sig)
			}(i)
		}
		wg.Wait()

		for _, code := range codes {
			s.Equal(http.StatusOK, code)
		}
		s.Equal(int64(1), s.transactionCount(id))
	})
}

func (s *BookingFlowTestSuite) TestWebhookSignature() {
	tests := []struct {
		name      string
		signature func(sig string) string
		wantCode  int
	}{
		{name: "missing signature", signature: func(string) string { return "" }, wantCode: http.StatusBadRequest},
		{name: "tampered signature", signature: func(sig string) string { return sig + "0" }, wantCode: http.StatusBadRequest},
		{name: "foreign secret", signature: func(string) string { return "t=1,v1=deadbeef" }, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			a := s.seed()
			id := s.mustCreateBooking(a, "08:00")

			payload, sig := s.checkoutCompleted("evt_sig", id, "pi_sig")
			s.Equal(tt.wantCode, s.postWebhook(payload, tt.signature(sig)))
			s.Equal(int64(0), s.transactionCount(id))
		})
	}
}

func (s *BookingFlowTestSuite) TestSlotRace() {
	s.Run("only one of two concurrent bookings takes the slot", func() {
		a := s.seed()

		var wg sync.WaitGroup
		codes := make([]int, 2)
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				resp := s.createBooking(a, "14:00", 2)
				defer resp.Body.Close()
				codes[i] = resp.StatusCode
			}(i)
		}
		wg.Wait()

		assert.ElementsMatch(s.T(), []int{http.StatusCreated, http.StatusConflict}, codes)

		var n int
		err := s.DB.QueryRow(context.Background(),
			"SELECT COUNT(*) FROM bookings WHERE service_id = $1 AND status <> 'cancelled'", a.serviceID).Scan(&n)
		require.NoError(s.T(), err)
		s.Equal(1, n)
	})

	s.Run("a cancelled booking frees the slot", func() {
		a := s.seed()
		id := s.mustCreateBooking(a, "14:00")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/bookings/"+id.String()+"/cancel", nil, a.clientToken)
		s.Equal(http.StatusOK, w.Code, w.Body.String())

		s.mustCreateBooking(a, "14:00")
	})
}

func (s *BookingFlowTestSuite) TestConfirmRace() {
	s.Run("concurrent confirmations transition once", func() {
		a := s.seed()
		id := s.mustCreateBooking(a, "08:00")

		var wg sync.WaitGroup
		codes := make([]int, 2)
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
					fmt.Sprintf("/api/v1/bookings/%s/confirm", id), nil, a.ownerToken)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		ok := 0
		for _, code := range codes {
			if code == http.StatusOK {
				ok++
				continue
			}
			// the loser either sees the new status or loses the guarded update
			s.Contains([]int{http.StatusBadRequest, http.StatusConflict}, code)
		}
		s.Equal(1, ok)
		s.Equal("confirmed", s.bookingStatus(a, id))
	})

	s.Run("a completed booking cannot be cancelled", func() {
		a := s.seed()
		id := s.mustCreateBooking(a, "08:00")
		dbtest.SetBookingStatus(s.T(), s.DB, id, "completed")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/v1/bookings/"+id.String()+"/cancel", nil, a.clientToken)
		s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *BookingFlowTestSuite) TestBlockedDates() {
	s.Run("a blocked day refuses bookings until it is unblocked", func() {
		a := s.seed()
		datesPath := "/api/v1/centers/" + a.centerID.String() + "/blocked-dates"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, datesPath,
			map[string]any{"blocked_date": bookingDate(), "reason": "Boat maintenance"}, a.ownerToken)
		var created struct {
			ID uuid.UUID `json:"id"`
		}
		httptest.AssertDataResponse(s.T(), w, http.StatusCreated, &created)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, datesPath,
			map[string]any{"start_date": bookingDate()}, a.ownerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "this date is already blocked")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, datesPath, nil, a.ownerToken)
		var listed []queries.BlockedDateView
		httptest.AssertDataResponse(s.T(), w, http.StatusOK, &listed)
		s.Require().Len(listed, 1)
		s.Equal(bookingDate(), listed[0].BlockedDate)
		s.Require().NotNil(listed[0].Reason)
		s.Equal("Boat maintenance", *listed[0].Reason)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, datesPath, nil, a.clientToken)
		s.Equal(http.StatusForbidden, w.Code, w.Body.String())

		availability := fmt.Sprintf("/api/v1/bookings/availability?service_id=%s&date=%s", a.serviceID, bookingDate())
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availability, nil, "")
		var day queries.DayAvailabilityView
		httptest.AssertDataResponse(s.T(), w, http.StatusOK, &day)
		s.False(day.Available)
		s.Equal("date_blocked", day.Reason)

		resp := s.createBooking(a, "08:00", 2)
		resp.Body.Close()
		s.Equal(http.StatusBadRequest, resp.StatusCode)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, datesPath+"/"+created.ID.String(), nil, a.ownerToken)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, datesPath+"/"+created.ID.String(), nil, a.ownerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "blocked date not found")

		s.mustCreateBooking(a, "08:00")
	})
}

func (s *BookingFlowTestSuite) TestServiceCatalogue() {
	s.Run("a created service is listed publicly", func() {
		a := s.seed()
		servicesPath := "/api/v1/centers/" + a.centerID.String() + "/services"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, servicesPath, map[string]any{
			"name":             "Night Dive",
			"price":            "65.00",
			"min_participants": 2,
			"max_capacity":     8,
		}, a.ownerToken)
		var created queries.ServiceView
		httptest.AssertDataResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("EUR", created.Currency)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, servicesPath, nil, "")
		var listed []queries.ServiceView
		httptest.AssertDataResponse(s.T(), w, http.StatusOK, &listed)

		names := make([]string, 0, len(listed))
		for _, v := range listed {
			names = append(names, v.Name)
		}
		s.Equal([]string{"Discover Scuba", "Night Dive"}, names)
		s.Equal(created.ID, listed[1].ID)
		s.Require().NotNil(listed[1].MinParticipants)
		s.Equal(2, *listed[1].MinParticipants)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/v1/centers/"+uuid.NewString()+"/services", nil, "")
		s.Equal(http.StatusNotFound, w.Code, w.Body.String())
	})
}
