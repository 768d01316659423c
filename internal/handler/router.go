package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Evidive-blue/evidive/internal/handler/api"
	"github.com/Evidive-blue/evidive/internal/handler/middleware"
	"github.com/Evidive-blue/evidive/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
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

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/api/v1")
	auth := h.AuthMw.RequireAuth()
	{
		// Public
		addRoutes(v1, []route{
			{Method: http.MethodGet, Path: "/bookings/availability", Handler: h.Booking.Availability},
			{Method: http.MethodGet, Path: "/coupons/validate", Handler: h.Coupon.Validate},
			{Method: http.MethodPost, Path: "/stripe/webhook", Handler: h.Webhook.Handle},
			{Method: http.MethodGet, Path: "/centers/:id/services", Handler: h.Center.ListServices},
		})

		bookings := v1.Group("/bookings")
		bookings.Use(auth)
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.Confirm},
			{Method: http.MethodPost, Path: "/:id/checkout", Handler: h.Booking.Checkout},
		})

		centers := v1.Group("/centers")
		centers.Use(auth)
		addRoutes(centers, []route{
			{Method: http.MethodGet, Path: "/:id/commissions", Handler: h.Payment.Commissions},
			{Method: http.MethodGet, Path: "/:id/payments", Handler: h.Payment.Payments},
			{Method: http.MethodGet, Path: "/:id/revenue", Handler: h.Payment.Revenue},
			{Method: http.MethodPost, Path: "/:id/payouts", Handler: h.Payment.RequestPayout},
			{Method: http.MethodGet, Path: "/:id/blocked-dates", Handler: h.Center.ListBlockedDates},
			{Method: http.MethodPost, Path: "/:id/blocked-dates", Handler: h.Center.BlockDate},
			{Method: http.MethodDelete, Path: "/:id/blocked-dates/:date_id", Handler: h.Center.UnblockDate},
			{Method: http.MethodPost, Path: "/:id/services", Handler: h.Center.CreateService},
		})

		stripe := v1.Group("/stripe")
		addRoutes(stripe, []route{
			{Method: http.MethodPost, Path: "/connect", Handler: h.Connect.Onboard, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodGet, Path: "/config", Handler: h.Connect.GetConfig, Mw: []gin.HandlerFunc{auth}},
			{Method: http.MethodPatch, Path: "/config", Handler: h.Connect.UpdateConfig, Mw: []gin.HandlerFunc{auth}},
		})

		admin := v1.Group("/admin")
		admin.Use(auth, h.AuthMw.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/settings", Handler: h.Admin.ListSettings},
			{Method: http.MethodPut, Path: "/settings/:key", Handler: h.Admin.UpdateSetting},
			{Method: http.MethodPost, Path: "/bookings/:id/complete", Handler: h.Admin.CompleteBooking},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
