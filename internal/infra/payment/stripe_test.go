//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/domain/payment"
	stripegw "github.com/Evidive-blue/evidive/internal/infra/payment"
	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/pkg/ptr"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func signed(t *testing.T, body map[string]any) ([]byte, string) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   raw,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return sp.Payload, sp.Header
}

func eventBody(id, typ string, object map[string]any) map[string]any {
	return map[string]any{
		"id":          id,
		"object":      "event",
		"type":        typ,
		"api_version": "2019-01-01",
		"data":        map[string]any{"object": object},
	}
}

func TestStripeGateway_ParseWebhook(t *testing.T) {
	gw := stripegw.NewStripeGatewayWithBackends("sk_test_000", testWebhookSecret, nil)
	bookingID := uuid.New()

	t.Run("checkout completed carries booking ref and intent", func(t *testing.T) {
		payload, sig := signed(t, eventBody("evt_1", "checkout.session.completed", map[string]any{
			"id":             "cs_1",
			"object":         "checkout.session",
			"payment_intent": "pi_1",
			"amount_total":   15000,
			"currency":       "eur",
			"metadata":       map[string]string{"booking_id": bookingID.String()},
		}))

		ev, err := gw.ParseWebhook(payload, sig)

		require.NoError(t, err)
		assert.Equal(t, payment.CheckoutCompleted{
			EventID:          "evt_1",
			BookingRef:       bookingID.String(),
			PaymentIntentID:  "pi_1",
			AmountTotalCents: 15000,
			Currency:         "EUR",
		}, ev)
	})

	t.Run("checkout completed falls back to client reference", func(t *testing.T) {
		payload, sig := signed(t, eventBody("evt_2", "checkout.session.completed", map[string]any{
			"id":                  "cs_2",
			"object":              "checkout.session",
			"payment_intent":      "pi_2",
			"client_reference_id": bookingID.String(),
		}))

		ev, err := gw.ParseWebhook(payload, sig)

		require.NoError(t, err)
		completed, ok := ev.(payment.CheckoutCompleted)
		require.True(t, ok)
		assert.Equal(t, bookingID.String(), completed.BookingRef)
	})

	t.Run("payment intent succeeded", func(t *testing.T) {
		payload, sig := signed(t, eventBody("evt_3", "payment_intent.succeeded", map[string]any{
			"id":       "pi_3",
			"object":   "payment_intent",
			"metadata": map[string]string{"booking_id": bookingID.String()},
		}))

		ev, err := gw.ParseWebhook(payload, sig)

		require.NoError(t, err)
		assert.Equal(t, payment.PaymentSucceeded{EventID: "evt_3", PaymentIntentID: "pi_3", BookingRef: bookingID.String()}, ev)
	})

	t.Run("charge refunded", func(t *testing.T) {
		payload, sig := signed(t, eventBody("evt_4", "charge.refunded", map[string]any{
			"id":             "ch_4",
			"object":         "charge",
			"payment_intent": "pi_4",
		}))

		ev, err := gw.ParseWebhook(payload, sig)

		require.NoError(t, err)
		assert.Equal(t, payment.ChargeRefunded{EventID: "evt_4", PaymentIntentID: "pi_4"}, ev)
	})

	t.Run("account updated", func(t *testing.T) {
		payload, sig := signed(t, eventBody("evt_5", "account.updated", map[string]any{
			"id":              "acct_5",
			"object":          "account",
			"charges_enabled": true,
		}))

		ev, err := gw.ParseWebhook(payload, sig)

		require.NoError(t, err)
		assert.Equal(t, payment.AccountUpdated{EventID: "evt_5", AccountID: "acct_5", ChargesEnabled: true}, ev)
	})

	t.Run("unknown type is ignored", func(t *testing.T) {
		payload, sig := signed(t, eventBody("evt_6", "customer.created", map[string]any{"id": "cus_6", "object": "customer"}))

		ev, err := gw.ParseWebhook(payload, sig)

		require.NoError(t, err)
		assert.Equal(t, payment.Ignored{EventID: "evt_6", Type: "customer.created"}, ev)
	})

	t.Run("missing signature", func(t *testing.T) {
		payload, _ := signed(t, eventBody("evt_7", "account.updated", map[string]any{"id": "acct_7"}))

		_, err := gw.ParseWebhook(payload, "")

		assert.True(t, errs.Is(err, commands.ErrMissingSignature))
	})

	t.Run("tampered payload fails verification", func(t *testing.T) {
		payload, sig := signed(t, eventBody("evt_8", "account.updated", map[string]any{"id": "acct_8"}))
		payload = append(payload, ' ')

		_, err := gw.ParseWebhook(payload, sig)

		assert.True(t, errs.Is(err, commands.ErrInvalidSignature))
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, "Invalid webhook signature", errs.PublicMessage(err))
	})

	t.Run("wrong secret fails verification", func(t *testing.T) {
		raw, err := json.Marshal(eventBody("evt_9", "account.updated", map[string]any{"id": "acct_9"}))
		require.NoError(t, err)
		sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{Payload: raw, Secret: "whsec_other", Timestamp: time.Now()})

		_, err = gw.ParseWebhook(sp.Payload, sp.Header)

		assert.True(t, errs.Is(err, commands.ErrInvalidSignature))
	})
}

func newBackendGateway(t *testing.T, handler http.HandlerFunc) *stripegw.StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return stripegw.NewStripeGatewayWithBackends("sk_test_000", testWebhookSecret, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
}

func readForm(t *testing.T, r *http.Request) url.Values {
	t.Helper()
	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	form, err := url.ParseQuery(string(body))
	require.NoError(t, err)
	return form
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	bookingID := uuid.New()

	t.Run("destination charge carries fee and metadata", func(t *testing.T) {
		var form url.Values
		gw := newBackendGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			form = readForm(t, r)
			_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.example/cs_test_1"}`))
		})

		session, err := gw.CreateCheckoutSession(context.Background(), commands.CheckoutSessionRequest{
			BookingID:           bookingID,
			ProductName:         "Reef dive",
			AmountCents:         15000,
			Currency:            "EUR",
			Destination:         ptr.Of("acct_123"),
			ApplicationFeeCents: 3000,
			SuccessURL:          "http://localhost:3000/bookings/x?status=success",
			CancelURL:           "http://localhost:3000/bookings/x?status=cancelled",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://checkout.example/cs_test_1", session.URL)
		assert.Equal(t, "payment", form.Get("mode"))
		assert.Equal(t, "eur", form.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "15000", form.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "Reef dive", form.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "1", form.Get("line_items[0][quantity]"))
		assert.Equal(t, bookingID.String(), form.Get("metadata[booking_id]"))
		assert.Equal(t, bookingID.String(), form.Get("payment_intent_data[metadata][booking_id]"))
		assert.Equal(t, "3000", form.Get("payment_intent_data[application_fee_amount]"))
		assert.Equal(t, "acct_123", form.Get("payment_intent_data[transfer_data][destination]"))
	})

	t.Run("platform charge without destination", func(t *testing.T) {
		var form url.Values
		gw := newBackendGateway(t, func(w http.ResponseWriter, r *http.Request) {
			form = readForm(t, r)
			_, _ = w.Write([]byte(`{"id":"cs_test_2","object":"checkout.session","url":"https://checkout.example/cs_test_2"}`))
		})

		_, err := gw.CreateCheckoutSession(context.Background(), commands.CheckoutSessionRequest{
			BookingID:   bookingID,
			ProductName: "Dive booking",
			AmountCents: 5000,
			Currency:    "EUR",
		})

		require.NoError(t, err)
		assert.Empty(t, form.Get("payment_intent_data[application_fee_amount]"))
		assert.Empty(t, form.Get("payment_intent_data[transfer_data][destination]"))
	})

	t.Run("api error is marked as gateway failure", func(t *testing.T) {
		gw := newBackendGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"parameter_invalid","message":"bad"}}`))
		})

		_, err := gw.CreateCheckoutSession(context.Background(), commands.CheckoutSessionRequest{
			BookingID: bookingID, ProductName: "x", AmountCents: 100, Currency: "EUR",
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrGateway))
	})
}

func TestStripeGateway_ConnectAndTransfer(t *testing.T) {
	centerID := uuid.New()

	t.Run("transfer", func(t *testing.T) {
		var form url.Values
		var idempotencyKey string
		gw := newBackendGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/transfers", r.URL.Path)
			idempotencyKey = r.Header.Get("Idempotency-Key")
			form = readForm(t, r)
			_, _ = w.Write([]byte(`{"id":"tr_1","object":"transfer"}`))
		})

		tr, err := gw.CreateTransfer(context.Background(), commands.TransferRequest{
			CenterID:       centerID,
			Destination:    "acct_1",
			AmountCents:    12050,
			Currency:       "EUR",
			Description:    "Payout for center Blue Reef",
			IdempotencyKey: "7b0e3f4c-2d7a-4a53-9a61-0f6c1f1e9d2b",
		})

		require.NoError(t, err)
		assert.Equal(t, "tr_1", tr.ID)
		assert.Equal(t, "7b0e3f4c-2d7a-4a53-9a61-0f6c1f1e9d2b", idempotencyKey)
		assert.Equal(t, "12050", form.Get("amount"))
		assert.Equal(t, "eur", form.Get("currency"))
		assert.Equal(t, "acct_1", form.Get("destination"))
		assert.Equal(t, "Payout for center Blue Reef", form.Get("description"))
	})

	t.Run("express account and onboarding link", func(t *testing.T) {
		forms := map[string]url.Values{}
		gw := newBackendGateway(t, func(w http.ResponseWriter, r *http.Request) {
			forms[r.URL.Path] = readForm(t, r)
			switch r.URL.Path {
			case "/v1/accounts":
				_, _ = w.Write([]byte(`{"id":"acct_new","object":"account"}`))
			case "/v1/account_links":
				_, _ = w.Write([]byte(`{"object":"account_link","url":"https://connect.example/onboard"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		})

		accountID, err := gw.CreateConnectedAccount(context.Background(), commands.ConnectedAccountRequest{CenterID: centerID, Email: "owner@example.com"})
		require.NoError(t, err)
		link, err := gw.CreateOnboardingLink(context.Background(), commands.OnboardingLinkRequest{
			AccountID:  accountID,
			RefreshURL: "http://localhost:3000/dashboard/stripe/refresh",
			ReturnURL:  "http://localhost:3000/dashboard/stripe/return",
		})
		require.NoError(t, err)

		assert.Equal(t, "acct_new", accountID)
		assert.Equal(t, "https://connect.example/onboard", link)
		assert.Equal(t, "express", forms["/v1/accounts"].Get("type"))
		assert.Equal(t, "owner@example.com", forms["/v1/accounts"].Get("email"))
		assert.Equal(t, "account_onboarding", forms["/v1/account_links"].Get("type"))
		assert.Equal(t, "acct_new", forms["/v1/account_links"].Get("account"))
	})
}
