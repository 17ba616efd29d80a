package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the API handlers
type Handlers struct {
	Trade          *handler.TradeHandler
	Budget         *handler.BudgetHandler
	Permission     *handler.PermissionHandler
	Position       *handler.PositionHandler
	Reconciliation *handler.ReconciliationHandler
	Health         *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API. metricsHandler may be nil.
func SetupRoutes(router *gin.Engine, h Handlers, metricsPath string, metricsHandler http.Handler) {
	router.GET("/healthz", h.Health.Healthz)
	if metricsHandler != nil {
		router.GET(metricsPath, gin.WrapH(metricsHandler))
	}

	api := router.Group("/api")
	{
		// POST /api/trades
		api.POST("/trades", h.Trade.ExecuteTrade)

		// POST /api/positions/sell
		api.POST("/positions/sell", h.Trade.SellPosition)
		// GET /api/positions/:userId
		api.GET("/positions/:userId", h.Position.GetPositions)

		api.PUT("/budgets/:userId", h.Budget.SetBudget)
		api.GET("/budgets/:userId", h.Budget.GetBudget)

		api.POST("/spend-permissions", h.Permission.StorePermission)
		api.GET("/spend-permissions/:userId", h.Permission.GetLatest)

		api.GET("/reconciliations", h.Reconciliation.ListOpen)
		api.POST("/reconciliations/:id/resolve", h.Reconciliation.Resolve)
	}
}

// SetupMiddlewares configures global middlewares for the API. observer may be nil.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, observer middleware.HTTPObserver) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if observer != nil {
		router.Use(middleware.Metrics(observer))
	}
}
