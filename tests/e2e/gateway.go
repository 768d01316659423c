//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Evidive-blue/evidive/internal/infra/payment"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81/webhook"
)

// FakeGateway records outbound calls and verifies webhooks with the real
// Stripe signature scheme.
type FakeGateway struct {
	*payment.StripeGateway
	secret string

	mu        sync.Mutex
	sessions  []commands.CheckoutSessionRequest
	transfers []commands.TransferRequest
	seq       int
}

func NewFakeGateway(webhookSecret string) *FakeGateway {
	return &FakeGateway{
		StripeGateway: payment.NewStripeGatewayWithBackends("sk_test_e2e", webhookSecret, nil),
		secret:        webhookSecret,
	}
}

func (g *FakeGateway) next(prefix string) string {
	g.seq++
	return fmt.Sprintf("%s_e2e_%d", prefix, g.seq)
}

func (g *FakeGateway) CreateCheckoutSession(_ context.Context, req commands.CheckoutSessionRequest) (*commands.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions = append(g.sessions, req)
	id := g.next("cs")
	return &commands.CheckoutSession{ID: id, URL: "https://checkout.stripe.test/" + id}, nil
}

func (g *FakeGateway) CreateTransfer(_ context.Context, req commands.TransferRequest) (*commands.Transfer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transfers = append(g.transfers, req)
	return &commands.Transfer{ID: g.next("tr")}, nil
}

func (g *FakeGateway) CreateConnectedAccount(context.Context, commands.ConnectedAccountRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.next("acct"), nil
}

func (g *FakeGateway) CreateOnboardingLink(_ context.Context, req commands.OnboardingLinkRequest) (string, error) {
	return "https://connect.stripe.test/setup/" + req.AccountID, nil
}

func (g *FakeGateway) Sessions() []commands.CheckoutSessionRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]commands.CheckoutSessionRequest(nil), g.sessions...)
}

func (g *FakeGateway) Transfers() []commands.TransferRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]commands.TransferRequest(nil), g.transfers...)
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions = nil
	g.transfers = nil
}

// SignEvent builds a Stripe event envelope around object and signs it with
// the webhook secret.
func (g *FakeGateway) SignEvent(t *testing.T, eventID, eventType string, object map[string]any) ([]byte, string) {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"id":          eventID,
		"object":      "event",
		"type":        eventType,
		"api_version": "2019-01-01",
		"data":        map[string]any{"object": object},
	})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   raw,
		Secret:    g.secret,
		Timestamp: time.Now(),
	})
	return signed.Payload, signed.Header
}
