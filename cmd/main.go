package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jiangnanwaw/csfh-backend/config"
	"github.com/jiangnanwaw/csfh-backend/db"
	authhandler "github.com/jiangnanwaw/csfh-backend/internal/auth/handler"
	"github.com/jiangnanwaw/csfh-backend/internal/auth/repository/memory"
	authrepo "github.com/jiangnanwaw/csfh-backend/internal/auth/repository/postgres"
	"github.com/jiangnanwaw/csfh-backend/internal/auth/service"
	"github.com/jiangnanwaw/csfh-backend/internal/httpx"
	"github.com/jiangnanwaw/csfh-backend/internal/logging"
	"github.com/jiangnanwaw/csfh-backend/internal/ratelimit"
	recordhandler "github.com/jiangnanwaw/csfh-backend/internal/record/handler"
	recordrepo "github.com/jiangnanwaw/csfh-backend/internal/record/repository/postgres"
	recordservice "github.com/jiangnanwaw/csfh-backend/internal/record/service"
)

func main() {
	cfg := config.Load()
	logger := logging.NewDefault()
	httpx.SetDevMode(!cfg.IsProduction())

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error(ctx, "database init failed", "error", err)
		return
	}
	defer dbPool.Close()

	userRepo := authrepo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.TokenExpiryMin)
	smsService := service.NewSMSService(memory.NewCodeStore(), service.NewLogSender(logger), logger, cfg)
	userService := service.NewUserService(userRepo, tokenService, smsService, logger)
	authHandler := authhandler.NewAuthHandler(userService, smsService, tokenService, cfg)

	recorder := recordservice.NewRecorder(recordrepo.NewPostgresRepository(dbPool), logger)
	recordHandler := recordhandler.NewRecordHandler(recorder)

	apiLimiter := ratelimit.New(ratelimit.Rule{
		Window: time.Duration(cfg.APIRateWindowMin) * time.Minute,
		Max:    cfg.APIRateMax,
	})
	smsLimiter := ratelimit.New(ratelimit.Rule{
		Window: time.Duration(cfg.SMSRateWindowMin) * time.Minute,
		Max:    cfg.SMSRateMax,
	})

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := app.Group("/api", ratelimit.Middleware(apiLimiter))
	authhandler.RegisterRoutes(api, authHandler, ratelimit.Middleware(smsLimiter))
	recordhandler.RegisterRoutes(api, recordHandler, authhandler.RequireAuth(tokenService))

	logger.Info(ctx, "server starting", "port", cfg.Port, "env", cfg.Env)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
	}
}
