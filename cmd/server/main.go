package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	"github.com/dcdesk/dcdesk/application/port/inbound"
	"github.com/dcdesk/dcdesk/application/usecase"
	"github.com/dcdesk/dcdesk/application/usecase/catalog"
	"github.com/dcdesk/dcdesk/application/usecase/challan"
	usermgmt "github.com/dcdesk/dcdesk/application/usecase/user_management"
	"github.com/dcdesk/dcdesk/infrastructure/config"
	"github.com/dcdesk/dcdesk/infrastructure/http/handler"
	"github.com/dcdesk/dcdesk/infrastructure/http/middleware"
	"github.com/dcdesk/dcdesk/infrastructure/persistence/postgres"
	"github.com/dcdesk/dcdesk/infrastructure/service/jwt"
	"github.com/dcdesk/dcdesk/infrastructure/service/logger"
	"github.com/dcdesk/dcdesk/infrastructure/service/password"
	"github.com/dcdesk/dcdesk/infrastructure/service/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger config may itself be broken, so write directly.
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.NewStructuredLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "dcdesk",
	})
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error(ctx, "failed to open database", err, nil)
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Error(ctx, "database unreachable", err, nil)
		os.Exit(1)
	}

	tokenService, err := jwt.NewService(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		log.Error(ctx, "failed to initialize token service", err, nil)
		os.Exit(1)
	}
	passwordService := password.NewBcryptService(0)

	var rateLimitService inbound.RateLimitService
	if cfg.RateLimitEnabled {
		svc, err := ratelimit.NewRedisRateLimitService(cfg.RedisURL, log)
		if err != nil {
			log.Error(ctx, "failed to connect rate limiter, throttling disabled", err, nil)
			rateLimitService = ratelimit.NewNoopRateLimitService()
		} else {
			defer svc.Close()
			rateLimitService = svc
		}
	} else {
		rateLimitService = ratelimit.NewNoopRateLimitService()
	}

	userRepo := postgres.NewUserRepository(db)
	challanRepo := postgres.NewChallanRepository(db)
	draftRepo := postgres.NewDraftChallanRepository(db)
	supplierRepo := postgres.NewSupplierRepository(db)
	itemRepo := postgres.NewItemRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenService, passwordService, log)
	userMgmtUseCase := usermgmt.NewUserManagementUseCase(userRepo, passwordService)
	challanUseCase := challan.NewChallanUseCase(challanRepo)
	draftUseCase := challan.NewDraftChallanUseCase(draftRepo, supplierRepo)
	catalogUseCase := catalog.NewCatalogUseCase(supplierRepo, itemRepo)

	authMW := middleware.NewAuthMiddleware(tokenService)
	rateLimitMW := middleware.NewRateLimitMiddleware(rateLimitService, middleware.RateLimitConfig{
		LoginAttempts:   cfg.RateLimitLoginBurst,
		LoginWindow:     cfg.RateLimitLoginWindow,
		RefreshAttempts: cfg.RateLimitRefreshBurst,
	}, log)

	router := &handler.Router{
		Auth:      handler.NewAuthHandler(authUseCase, userMgmtUseCase, cfg.IsProduction(), cfg.AccessTokenTTL, cfg.RefreshTokenTTL, log),
		Users:     handler.NewUserManagementHandler(userMgmtUseCase, log),
		Challans:  handler.NewChallanHandler(challanUseCase, log),
		Drafts:    handler.NewDraftChallanHandler(draftUseCase, log),
		Catalog:   handler.NewCatalogHandler(catalogUseCase, log),
		AuthMW:    authMW,
		RateLimit: rateLimitMW,
	}

	r := mux.NewRouter()
	router.RegisterRoutes(r)

	var root http.Handler = r
	if cfg.CORSEnabled {
		root = middleware.CORS(root, cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials)
	}
	root = middleware.CorrelationID(root)

	server := &http.Server{
		Addr:         cfg.ServerHost + ":" + cfg.ServerPort,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info(ctx, "server starting", map[string]interface{}{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server failed", err, nil)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down", nil)
	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, 30*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "forced shutdown", err, nil)
	}
	log.Info(ctx, "server stopped", nil)
}
