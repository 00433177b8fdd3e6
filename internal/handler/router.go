package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petstay/internal/domain/user"
	"petstay/internal/handler/api"
	"petstay/internal/handler/middleware"
	"petstay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	couponHandler *api.CouponHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, reservationHandler, couponHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	couponHandler *api.CouponHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
				{Method: http.MethodPost, Path: "/quote", Handler: reservationHandler.Quote},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: reservationHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/coupon", Handler: reservationHandler.ApplyCoupon},
				{Method: http.MethodDelete, Path: "/:id/coupon", Handler: reservationHandler.RemoveCoupon},
				{Method: http.MethodPost, Path: "/:id/payment-proof", Handler: reservationHandler.SubmitPaymentProof},

				{Method: http.MethodPost, Path: "/:id/discount", Handler: reservationHandler.GrantManualDiscount, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodDelete, Path: "/:id/discount", Handler: reservationHandler.ClearManualDiscount, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: reservationHandler.Confirm, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/request-payment", Handler: reservationHandler.RequestPayment, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/approve-payment", Handler: reservationHandler.ApprovePayment, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/finalize", Handler: reservationHandler.Finalize, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "", Handler: couponHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: couponHandler.Get},

				{Method: http.MethodPost, Path: "", Handler: couponHandler.Create, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: couponHandler.Update, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: couponHandler.Deactivate, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/activate", Handler: couponHandler.Activate, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
