package v1

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/documents/sales_note"
	"salesdesk/internal/domain/editor"
	"salesdesk/internal/domain/reports"
	"salesdesk/internal/infrastructure/http/v1/handlers"
	"salesdesk/internal/infrastructure/http/v1/middleware"
	"salesdesk/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Development switches gin to debug mode
	Development bool

	// Version reported by /health/ready
	Version string

	// Sessions is the in-memory draft store
	Sessions *editor.Store

	Editor     *editor.Service
	SalesNotes *sales_note.Service
	Quotations *quotation.Service
	Reports    *reports.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.Sessions, cfg.Version)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	v1 := router.Group("/api/v1")
	{
		registerDraftRoutes(v1, cfg)
		registerDocumentRoutes(v1, cfg)
		registerReportRoutes(v1, cfg)
	}

	return router
}

// registerDraftRoutes registers edit session endpoints.
func registerDraftRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	h := handlers.NewDraftHandler(handlers.NewBaseHandler(), cfg.Editor)

	drafts := rg.Group("/drafts")
	drafts.POST("", h.Open)
	drafts.GET("/:id", h.Get)
	drafts.DELETE("/:id", h.Close)

	drafts.POST("/:id/client/lookup", h.LookupClient)
	drafts.PUT("/:id/client", h.CaptureClient)
	drafts.PUT("/:id/final-consumer", h.SetFinalConsumer)
	drafts.PUT("/:id/payment-method", h.SetPaymentMethod)
	drafts.PUT("/:id/note", h.SetNote)

	drafts.POST("/:id/lines", h.AddLine)
	drafts.PATCH("/:id/lines/:pos", h.UpdateLine)
	drafts.DELETE("/:id/lines/:pos", h.RemoveLine)

	drafts.POST("/:id/submit", h.Submit)
}

// registerDocumentRoutes registers persisted sales note and quotation endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	// --- SALES NOTES ---
	{
		handler := handlers.NewSalesNoteHandler(baseHandler, cfg.SalesNotes, cfg.Editor)
		group := rg.Group("/sales-notes")
		RegisterDocumentRoutes(group, handler)
		group.POST("/:id/void", handler.Void)
	}

	// --- QUOTATIONS ---
	{
		handler := handlers.NewQuotationHandler(baseHandler, cfg.Quotations, cfg.Editor)
		group := rg.Group("/quotations")
		RegisterDocumentRoutes(group, handler)
		group.GET("/by-number/:number", handler.GetByNumber)
		group.POST("/:id/convert", handler.Convert)
		group.POST("/:id/convert/backend", handler.ConvertOnBackend)
	}
}

// registerReportRoutes registers report endpoints.
func registerReportRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	h := handlers.NewReportsHandler(handlers.NewBaseHandler(), cfg.Reports)

	reportsGroup := rg.Group("/reports")
	reportsGroup.GET("/daily", h.Daily)
	reportsGroup.GET("/monthly", h.Monthly)
	reportsGroup.GET("/range", h.Range)
	reportsGroup.GET("/commissions", h.Commissions)
	reportsGroup.GET("/daily-detail", h.DailyDetail)
	reportsGroup.GET("/monthly-detail", h.MonthlyDetail)
}
