package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/usecase/budget"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/usecase/permission"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/usecase/position"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/usecase/reconciliation"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/usecase/spend"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/usecase/trade"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/chain"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/exchange"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/market"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

const lockCleanupInterval = time.Minute

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Logger, cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger core.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	// Metrics
	var (
		sagaMetrics  core.Metrics = metrics.NewNoop()
		httpObserver middleware.HTTPObserver
		poolRecorder database.PoolStatsRecorder
		promHandler  http.Handler
	)
	if cfg.Metrics.Enabled {
		prom := metrics.New()
		sagaMetrics = prom
		httpObserver = prom
		poolRecorder = prom
		promHandler = prom.Handler()
	}

	// Database
	dbConfig, err := database.FromAppConfig(cfg.Database, cfg.Logger.Level)
	if err != nil {
		return fmt.Errorf("database config: %w", err)
	}
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	dbManager.StartPoolMonitor(cfg.Metrics.PoolMonitorInterval, poolRecorder)

	uow := dbManager.CreateUnitOfWork()
	userLocks := repository.NewUserLockRepository(dbManager.DB(), tp, appLogger)

	// External collaborators
	spendGateway, err := chain.NewSpendGateway(ctx, cfg.Chain, appLogger)
	if err != nil {
		return fmt.Errorf("spend gateway: %w", err)
	}
	defer spendGateway.Close()

	clob, err := exchange.NewClobClient(cfg.Exchange, tp, appLogger)
	if err != nil {
		return fmt.Errorf("exchange client: %w", err)
	}

	markets, err := market.NewGammaClient(cfg.Market, tp, appLogger)
	if err != nil {
		return fmt.Errorf("market client: %w", err)
	}

	var positionCache gateway.PositionCache
	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() { _ = rdb.Close() }()
		positionCache = cache.NewPositionCache(rdb, cfg.Redis, appLogger)
		appLogger.Info("Redis position cache enabled", map[string]any{"ttl": cfg.Redis.PositionTTL.String()})
	}

	// Use cases
	budgetService := budget.NewService(uow, tp, appLogger)
	permissionService := permission.NewService(uow, tp, appLogger)
	reconciliationService := reconciliation.NewService(uow, tp, appLogger)
	executor := spend.NewExecutor(uow, spendGateway, tp, appLogger)
	aggregator := position.NewAggregator(uow, markets, clob, positionCache, appLogger, cfg.Saga.PositionWorkers)

	sagaConfig, err := sagaConfigFrom(cfg.Saga)
	if err != nil {
		return err
	}
	saga := trade.NewSaga(trade.Dependencies{
		Budget:       budgetService,
		Executor:     executor,
		Exchange:     clob,
		Markets:      markets,
		Positions:    positionCache,
		UnitOfWork:   uow,
		UserLocks:    userLocks,
		IDGenerator:  id.NewUUIDGenerator(),
		TimeProvider: tp,
		Logger:       appLogger,
		Metrics:      sagaMetrics,
	}, sagaConfig)
	defer saga.Shutdown()

	go cleanupExpiredLocks(ctx, userLocks, appLogger)

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, httpObserver)
	routes.SetupRoutes(router, routes.Handlers{
		Trade:          handler.NewTradeHandler(saga, appLogger),
		Budget:         handler.NewBudgetHandler(budgetService, appLogger),
		Permission:     handler.NewPermissionHandler(permissionService, appLogger),
		Position:       handler.NewPositionHandler(aggregator, appLogger),
		Reconciliation: handler.NewReconciliationHandler(reconciliationService, appLogger),
		Health:         handler.NewHealthHandler(dbManager, appLogger),
	}, cfg.Metrics.Path, promHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"operator": spendGateway.Operator().Hex(),
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// cleanupExpiredLocks deletes user locks left behind by crashed instances
func cleanupExpiredLocks(ctx context.Context, locks persistence.UserLockRepository, appLogger core.Logger) {
	ticker := time.NewTicker(lockCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := locks.CleanupExpiredLocks(ctx)
			if err != nil {
				appLogger.Warn("Failed to clean up expired user locks", map[string]any{"error": err.Error()})
				continue
			}
			if n > 0 {
				appLogger.Info("Expired user locks removed", map[string]any{"count": n})
			}
		}
	}
}
