package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voltkart/storefront-backend/api/routes"
	cartsvc "github.com/voltkart/storefront-backend/internal/cart"
	"github.com/voltkart/storefront-backend/internal/catalog"
	checkoutsvc "github.com/voltkart/storefront-backend/internal/checkout"
	registrationsvc "github.com/voltkart/storefront-backend/internal/registration"
	"github.com/voltkart/storefront-backend/pkg/config"
	"github.com/voltkart/storefront-backend/pkg/env"
	"github.com/voltkart/storefront-backend/pkg/logger"
	"github.com/voltkart/storefront-backend/pkg/metrics"
	"github.com/voltkart/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var (
		redisClient  *redis.Client
		redisP       redis.Pinger
		cartStore    = cartsvc.NewMemoryStore()
		stateStore   = checkoutsvc.NewMemoryStateStore()
		captchaStore = registrationsvc.NewMemoryCaptchaStore()
	)
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
		redisP = redisClient

		cartStore, err = cartsvc.NewRedisStore(redisClient, cfg.Session.TTL)
		if err != nil {
			logg.Error(context.Background(), "failed to create cart store", err)
			os.Exit(1)
		}
		stateStore, err = checkoutsvc.NewRedisStateStore(redisClient, cfg.Session.TTL)
		if err != nil {
			logg.Error(context.Background(), "failed to create checkout store", err)
			os.Exit(1)
		}
		captchaStore, err = registrationsvc.NewRedisCaptchaStore(redisClient)
		if err != nil {
			logg.Error(context.Background(), "failed to create captcha store", err)
			os.Exit(1)
		}
	}

	registry := prometheus.NewRegistry()
	storefrontMetrics := metrics.NewStorefrontMetrics(registry)

	catalogRepo := catalog.NewRepository()

	cartService, err := cartsvc.NewService(cartStore, catalogRepo, logg, storefrontMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	gateway, err := checkoutsvc.NewMockGateway(cfg.Checkout.GatewayBaseURL, cfg.Checkout.ReturnURL)
	if err != nil {
		logg.Error(context.Background(), "failed to create payment gateway", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(stateStore, cartService, gateway, cfg.Checkout.ProcessingDelay, logg, storefrontMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	registrationService, err := registrationsvc.NewService(captchaStore, cfg.Captcha, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create registration service", err)
		os.Exit(1)
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisP,
			catalogRepo,
			cartService,
			checkoutService,
			registrationService,
			registry,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
