package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"hbnb_web/internal/adapters/hbnb"
	server "hbnb_web/internal/adapters/http_server"
	"hbnb_web/internal/adapters/memcache"
	"hbnb_web/internal/adapters/observability"
	redisad "hbnb_web/internal/adapters/redis"
	"hbnb_web/internal/app"
	"hbnb_web/internal/domain"
	"hbnb_web/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// api client; the bearer token is read from the request being served
	client, err := hbnb.New(cfg.APIOrigin, hbnb.TokenFunc(app.ContextToken), cfg.APIRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("api client")
	}
	log.Info().Str("base", client.BaseURL()).Int("rps", cfg.APIRPS).Msg("api client ready")

	// snapshot store
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis not reachable yet, snapshots will miss until it is")
		}
		cancel()
		cache = rc
	} else {
		cache = memcache.New()
	}

	ctrl := app.NewControllers(client, cache, cfg.SnapshotTTL, log.Logger)
	h, err := server.NewHandlers(ctrl, cfg.Auth, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("page templates")
	}

	// http
	srv := server.New(cfg.RequestTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("web listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
