package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/carebridge/eldercare-backend/api/controllers"
	"github.com/carebridge/eldercare-backend/api/routes"
	"github.com/carebridge/eldercare-backend/api/views"
	"github.com/carebridge/eldercare-backend/internal/accounts"
	"github.com/carebridge/eldercare-backend/internal/users"
	"github.com/carebridge/eldercare-backend/pkg/auth/session"
	"github.com/carebridge/eldercare-backend/pkg/config"
	"github.com/carebridge/eldercare-backend/pkg/db"
	"github.com/carebridge/eldercare-backend/pkg/logger"
	"github.com/carebridge/eldercare-backend/pkg/metrics"
	"github.com/carebridge/eldercare-backend/pkg/migrate"
	"github.com/carebridge/eldercare-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "web"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "web",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunAuto(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	accountsService, err := accounts.NewService(accounts.ServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create accounts service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(users.ServiceParams{DB: dbClient})
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	renderer, err := views.New(logg)
	if err != nil {
		logg.Error(context.Background(), "failed to parse templates", err)
		os.Exit(1)
	}

	health := controllers.HealthDeps{DB: dbClient}
	if redisClient != nil {
		health.Redis = redisClient
	}

	router := routes.NewRouter(routes.RouterParams{
		Config:      cfg,
		Logger:      logg,
		Renderer:    renderer,
		Sessions:    session.NewManager(cfg.Session),
		Accounts:    accountsService,
		Users:       usersService,
		Redis:       redisClient,
		HTTPMetrics: metrics.NewHTTPMetrics(),
		Health:      health,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting web server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "web server stopped unexpectedly", err)
		os.Exit(1)
	}
}
