package bootstrap

import (
	"github.com/Evidive-blue/evidive/internal/infra/payment"
	"github.com/Evidive-blue/evidive/internal/pkg/config"
	"github.com/Evidive-blue/evidive/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		NewFrontendURLs,
	),
)

func NewPaymentGateway(cfg config.Config) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Stripe)
}

func NewFrontendURLs(cfg config.Config) commands.FrontendURLs {
	return commands.NewFrontendURLs(cfg.BaseURL())
}
