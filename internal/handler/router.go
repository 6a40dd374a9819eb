package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smartpark/internal/domain/user"
	"smartpark/internal/handler/api"
	"smartpark/internal/handler/middleware"
	"smartpark/internal/pkg/config"
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
	slotHandler *api.SlotHandler,
	carHandler *api.CarHandler,
	recordHandler *api.RecordHandler,
	paymentHandler *api.PaymentHandler,
	reportHandler *api.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, slotHandler, carHandler, recordHandler, paymentHandler, reportHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	slotHandler *api.SlotHandler,
	carHandler *api.CarHandler,
	recordHandler *api.RecordHandler,
	paymentHandler *api.PaymentHandler,
	reportHandler *api.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operatorOnly := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
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

		slots := apiGroup.Group("/slots")
		slots.Use(authMiddleware.RequireAuth())
		{
			addRoutes(slots, []route{
				{Method: http.MethodPost, Path: "", Handler: slotHandler.CreateSlot, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodGet, Path: "", Handler: slotHandler.ListSlots},
				{Method: http.MethodGet, Path: "/:number", Handler: slotHandler.GetSlot},
				{Method: http.MethodDelete, Path: "/:number", Handler: slotHandler.DeleteSlot, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		cars := apiGroup.Group("/cars")
		cars.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cars, []route{
				{Method: http.MethodPost, Path: "", Handler: carHandler.RegisterCar, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodGet, Path: "", Handler: carHandler.ListCars},
				{Method: http.MethodGet, Path: "/:plate", Handler: carHandler.GetCar},
				{Method: http.MethodPatch, Path: "/:plate", Handler: carHandler.UpdateCar, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodDelete, Path: "/:plate", Handler: carHandler.DeleteCar, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		records := apiGroup.Group("/records")
		records.Use(authMiddleware.RequireAuth())
		{
			addRoutes(records, []route{
				{Method: http.MethodPost, Path: "/entry", Handler: recordHandler.RecordEntry, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodPost, Path: "/:id/exit", Handler: recordHandler.RecordExit, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodGet, Path: "", Handler: recordHandler.ListRecords},
				{Method: http.MethodGet, Path: "/:id", Handler: recordHandler.GetRecord},
				{Method: http.MethodDelete, Path: "/:id", Handler: recordHandler.DeleteRecord, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "/:id/fee", Handler: paymentHandler.QuoteFee},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: paymentHandler.Pay, Mw: []gin.HandlerFunc{operatorOnly}},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: paymentHandler.GetPayment},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "", Handler: paymentHandler.ListPayments},
			})
		}

		reports := apiGroup.Group("/reports")
		reports.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/daily", Handler: reportHandler.DailyReport},
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
