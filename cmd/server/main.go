// Package main is the entry point for the trip deal optimizer service.
//
//	@title						Trip Deal Optimizer API
//	@version					1.0.0
//	@description				A constraint-based trip planner that assembles multi-segment itineraries from scraped fare offers and ranks the cheapest valid combinations.
//
//	@contact.name				Trip Finder Engineering
//	@contact.url				https://github.com/trip-finder/trip-deal-optimizer/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
//
//	@externalDocs.description	Project repository
//	@externalDocs.url			https://github.com/trip-finder/trip-deal-optimizer
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// The generated swagger spec registers itself on import.
	_ "github.com/trip-finder/trip-deal-optimizer/docs"

	triphttp "github.com/trip-finder/trip-deal-optimizer/internal/adapter/http"
	"github.com/trip-finder/trip-deal-optimizer/internal/adapter/http/middleware"
	"github.com/trip-finder/trip-deal-optimizer/internal/adapter/provider/offerfile"
	"github.com/trip-finder/trip-deal-optimizer/internal/config"
	"github.com/trip-finder/trip-deal-optimizer/internal/domain"
	"github.com/trip-finder/trip-deal-optimizer/internal/infrastructure/cache"
	"github.com/trip-finder/trip-deal-optimizer/internal/infrastructure/logger"
	"github.com/trip-finder/trip-deal-optimizer/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	cachePingTimeout = 3 * time.Second
)

func main() {
	cfg := config.MustLoad()

	logger.Init(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "trip-optimizer",
	})
	logger.Info().Str("env", cfg.App.Env).Int("port", cfg.Server.Port).Msg("Config loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Request ID, request logging and panic recovery for every route.
	middleware.Setup(e, logger.Global.Logger)

	planCache := setupCache(cfg)
	setupRoutes(e, cfg, planCache)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, planCache)
}

// setupCache builds the optional Redis plan cache. A missing Redis
// address or an unreachable server both disable caching rather than
// failing startup.
func setupCache(cfg *config.Config) *cache.RedisPlanCache {
	if !cfg.CacheEnabled() {
		logger.Info().Msg("No Redis address configured, plan caching disabled")
		return nil
	}

	c := cache.NewRedisPlanCache(cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger.Global)

	ctx, cancel := context.WithTimeout(context.Background(), cachePingTimeout)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, continuing without plan cache")
		_ = c.Close()
		return nil
	}

	logger.Info().Str("addr", cfg.Redis.Addr).Msg("Plan cache enabled")
	return c
}

// setupProviders loads the file-backed offer sources named by the
// manifest. No manifest means no providers, which leaves the optimize
// endpoint usable and the plan endpoint answering 503.
func setupProviders(cfg *config.Config) []domain.OfferProvider {
	if cfg.Provider.ManifestPath == "" {
		logger.Warn().Msg("No offer manifest configured, plan endpoint disabled")
		return nil
	}

	adapters, err := offerfile.LoadAdapters(cfg.Provider.ManifestPath)
	if err != nil {
		logger.Fatal().Err(err).Str("manifest", cfg.Provider.ManifestPath).Msg("Failed to load offer manifest")
	}

	// The registry keeps registration order and collapses duplicate
	// source names, so a repeated manifest entry does not double offers.
	registry := domain.NewProviderRegistry()
	for _, a := range adapters {
		registry.Register(a)
	}

	providers := registry.GetAll()
	logger.Info().Strs("sources", registry.Names()).Msg("Offer sources loaded")
	return providers
}

// setupRoutes assembles the use case from config and mounts the API.
func setupRoutes(e *echo.Echo, cfg *config.Config, planCache *cache.RedisPlanCache) {
	providers := setupProviders(cfg)

	ucConfig := &usecase.Config{
		Workers:         cfg.Optimizer.Workers,
		GlobalTimeout:   cfg.Optimizer.GlobalTimeout,
		ProviderTimeout: cfg.Optimizer.ProviderTimeout,
		FetchDelay:      cfg.Provider.FetchDelay,
		CacheTTL:        cfg.Redis.CacheTTL,
	}

	// A nil *RedisPlanCache must become a nil interface, not a typed nil,
	// or the use case would treat caching as enabled.
	var pc usecase.PlanCache
	if planCache != nil {
		pc = planCache
	}

	tripUseCase := usecase.NewTripOptimizeUseCase(providers, pc, nil, ucConfig)
	triphttp.RegisterRoutes(e, triphttp.NewTripHandler(tripUseCase))

	// Swagger stays off in production; the API surface is documented
	// out of band there.
	if !cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
}

// gracefulShutdown blocks until SIGINT or SIGTERM, drains in-flight
// requests and closes the cache connection.
func gracefulShutdown(e *echo.Echo, planCache *cache.RedisPlanCache) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	if planCache != nil {
		_ = planCache.Close()
	}

	logger.Info().Msg("Server stopped")
}
