package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medcalc/medcalc/internal/config"
	"github.com/medcalc/medcalc/internal/domain/cardiology"
	"github.com/medcalc/medcalc/internal/domain/emergency"
	"github.com/medcalc/medcalc/internal/domain/geriatrics"
	"github.com/medcalc/medcalc/internal/domain/hematology"
	"github.com/medcalc/medcalc/internal/domain/nephrology"
	"github.com/medcalc/medcalc/internal/domain/neurology"
	"github.com/medcalc/medcalc/internal/domain/pulmonology"
	"github.com/medcalc/medcalc/internal/platform/auth"
	"github.com/medcalc/medcalc/internal/platform/metrics"
	"github.com/medcalc/medcalc/internal/platform/middleware"
	"github.com/medcalc/medcalc/internal/platform/openapi"
	"github.com/medcalc/medcalc/internal/registry"
	"github.com/medcalc/medcalc/internal/scores"
)

const version = "1.0.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "scores-server",
		Short: "Medical score calculation API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(listCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the score calculation API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the registered score catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry()
			if err != nil {
				return err
			}
			fmt.Printf("%-35s %-15s %s\n", "ID", "CATEGORY", "TITLE")
			for _, meta := range reg.All() {
				fmt.Printf("%-35s %-15s %s\n", meta.ID, meta.Category, meta.Title)
			}
			fmt.Printf("\n%d scores in %d categories\n", reg.Len(), len(reg.Categories()))
			return nil
		},
	}
}

// buildRegistry registers every specialty package and seals the registry.
// Registration conflicts are programming errors and abort startup.
func buildRegistry() (*registry.Registry, error) {
	reg := registry.New()

	registrars := []func(*registry.Registry) error{
		cardiology.Register,
		emergency.Register,
		geriatrics.Register,
		hematology.Register,
		nephrology.Register,
		neurology.Register,
		pulmonology.Register,
	}
	for _, register := range registrars {
		if err := register(reg); err != nil {
			return nil, fmt.Errorf("registering calculators: %w", err)
		}
	}

	reg.Freeze()
	return reg, nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Registry and dispatcher
	reg, err := buildRegistry()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build score registry")
	}
	logger.Info().
		Int("scores", reg.Len()).
		Int("categories", len(reg.Categories())).
		Msg("score registry sealed")

	m := metrics.New()
	dispatcher := registry.NewDispatcher(reg, logger, m)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout))
	e.Use(middleware.CatalogCache(middleware.DefaultCacheConfig()))

	// Auth middleware
	if cfg.AuthEnabled {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			SigningKey: []byte(cfg.AuthSecret),
			Issuer:     cfg.AuthIssuer,
			Audience:   cfg.AuthAudience,
			SkipPaths:  []string{"/health", "/metrics", "/openapi.json"},
		}))
	}

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"version": version,
			"scores":  reg.Len(),
		})
	})

	// Prometheus exposition
	e.GET("/metrics", metrics.Handler())

	// OpenAPI document generated from the registry
	baseURL := fmt.Sprintf("http://localhost:%s", cfg.Port)
	generator := openapi.NewGenerator(reg, version, baseURL)
	spec := generator.GenerateSpec()
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, spec)
	})

	// API group with rate limiting
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Catalog and generic dispatch routes
	scores.NewHandler(dispatcher).RegisterRoutes(apiV1)

	// Dedicated per-score routes
	cardiology.NewHandler(dispatcher).RegisterRoutes(apiV1)
	emergency.NewHandler(dispatcher).RegisterRoutes(apiV1)
	geriatrics.NewHandler(dispatcher).RegisterRoutes(apiV1)
	hematology.NewHandler(dispatcher).RegisterRoutes(apiV1)
	nephrology.NewHandler(dispatcher).RegisterRoutes(apiV1)
	neurology.NewHandler(dispatcher).RegisterRoutes(apiV1)
	pulmonology.NewHandler(dispatcher).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")

		var err error
		if cfg.TLSEnabled {
			err = e.StartTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = e.Start(addr)
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
