package components

import (
	"github.com/Evidive-blue/evidive/internal/handler"
	"github.com/Evidive-blue/evidive/internal/handler/api"
	"github.com/Evidive-blue/evidive/internal/handler/middleware"
	"github.com/Evidive-blue/evidive/internal/handler/validation"
	"github.com/Evidive-blue/evidive/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(pool *pgxpool.Pool) *api.HealthHandler {
			return api.NewHealthHandler(pool)
		},
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewConnectHandler,
		api.NewWebhookHandler,
		api.NewCouponHandler,
		api.NewAdminHandler,
		api.NewCenterHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(validation.Register),
	fx.Invoke(registerRoutes),
)

type routerParams struct {
	fx.In

	Engine  *gin.Engine
	Config  config.Config
	Health  *api.HealthHandler
	Booking *api.BookingHandler
	Payment *api.PaymentHandler
	Connect *api.ConnectHandler
	Webhook *api.WebhookHandler
	Coupon  *api.CouponHandler
	Admin   *api.AdminHandler
	Center  *api.CenterHandler
	AuthMw  *middleware.AuthMiddleware
}

func registerRoutes(p routerParams) {
	handler.NewRouter(p.Engine, p.Config, handler.Handlers{
		Health:  p.Health,
		Booking: p.Booking,
		Payment: p.Payment,
		Connect: p.Connect,
		Webhook: p.Webhook,
		Coupon:  p.Coupon,
		Admin:   p.Admin,
		Center:  p.Center,
		AuthMw:  p.AuthMw,
	})
}
