// Statdash - National Statistics Indicator Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/statdash

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/statdash/internal/api"
	"github.com/tomtom215/statdash/internal/cache"
	"github.com/tomtom215/statdash/internal/config"
	"github.com/tomtom215/statdash/internal/dashboard"
	"github.com/tomtom215/statdash/internal/logging"
	"github.com/tomtom215/statdash/internal/supervisor"
	"github.com/tomtom215/statdash/internal/supervisor/services"
	"github.com/tomtom215/statdash/internal/upstream"
)

// janitorInterval is how often expired cache entries and sessions are purged.
const janitorInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("upstream", cfg.Upstream.BaseURL).
		Str("token", logging.SanitizeToken(cfg.Upstream.Token)).
		Dur("cache_ttl", cfg.Upstream.CacheTTL).
		Msg("Starting statdash")

	if !cfg.Upstream.HasToken() {
		logging.Warn().Msg("INEGI_TOKEN is not set; indicator queries will fail until it is configured")
	}

	// Upstream chain: client -> circuit breaker -> response cache.
	client := upstream.NewClient(cfg.Upstream)
	breaker := upstream.NewBreakerFetcher(client, upstream.DefaultBreakerSettings())
	responses := cache.New(cfg.Upstream.CacheTTL)
	cached := upstream.NewCachedFetcher(breaker, responses)

	sessions := cache.New(cfg.Session.TTL)
	board, err := dashboard.New(cfg.Session, "/", upstream.NewPublicFetcher(cached), sessions)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize dashboard")
	}

	handler := api.NewHandler(cfg.Upstream, cached, breaker)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)))
	router.Mount(board.Routes())

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// Allow a full upstream round trip on top of the request timeout.
		WriteTimeout: cfg.Server.Timeout + cfg.Upstream.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(cache.NewJanitor(upstream.CacheType, responses, janitorInterval))
	tree.AddDataService(cache.NewJanitor(dashboard.SessionCacheType, sessions, janitorInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, 10*time.Second))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Statdash stopped")
}
