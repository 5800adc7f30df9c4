package main

import (
    "context"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "github.com/joho/godotenv"
    "github.com/rs/zerolog/log"

    "github.com/local/genrelay/internal/ai"
    "github.com/local/genrelay/internal/cache"
    cfgpkg "github.com/local/genrelay/internal/config"
    logpkg "github.com/local/genrelay/internal/logger"
    "github.com/local/genrelay/internal/metrics"
    "github.com/local/genrelay/internal/server"
    "github.com/local/genrelay/internal/upload"
)

func main() {
    _ = godotenv.Load()
    cfg := cfgpkg.FromEnv()

    // Init logging
    _ = logpkg.Init(logpkg.Options{
        Level:        cfg.Logging.Level,
        Pretty:       cfg.Logging.Pretty,
        File:         cfg.Logging.File,
        MaxSizeMB:    cfg.Logging.MaxSizeMB,
        MaxBackups:   cfg.Logging.MaxBackups,
        MaxAgeDays:   cfg.Logging.MaxAgeDays,
        Compress:     cfg.Logging.Compress,
        SendToAxiom:  cfg.Axiom.Send && cfg.Axiom.APIKey != "",
        AxiomAPIKey:  cfg.Axiom.APIKey,
        AxiomOrgID:   cfg.Axiom.OrgID,
        AxiomDataset: cfg.Axiom.Dataset,
        AxiomFlush:   cfg.Axiom.FlushInterval,
    })
    defer logpkg.Close()

    metrics.Init()

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    // Model client, constructed once and injected
    model, err := ai.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
    if err != nil {
        log.Fatal().Err(err).Msg("failed to init gemini client")
    }
    defer model.Close()

    // Upload storage
    uploads, err := upload.NewReceiver(cfg.Upload.Dir, int64(cfg.Upload.MaxMB)<<20)
    if err != nil {
        log.Fatal().Err(err).Msg("failed to init upload storage")
    }
    go sweepLoop(ctx, cfg.Upload.Dir, cfg.Upload.SweepAge)

    // Optional response cache
    deps := server.Dependencies{Model: model, Uploads: uploads}
    if cfg.Cache.Enable {
        rc, err := cache.New(cfg.Cache.RedisURL, cfg.Cache.TTL)
        if err != nil {
            log.Fatal().Err(err).Msg("failed to connect to redis")
        }
        defer rc.Close()
        deps.Cache = rc
        log.Info().Msg("response cache enabled")
    }

    srv := server.New(deps)

    r := chi.NewRouter()
    r.Use(
        middleware.Recoverer,
        middleware.Throttle(cfg.Server.ThrottleLimit),
        middleware.Timeout(cfg.Server.RequestTimeout),
    )
    srv.RegisterRoutes(r)
    r.Handle("/metrics", metrics.Handler())

    httpSrv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: r}

    go func() {
        log.Info().Msgf("HTTP server listening on :%s", cfg.Server.Port)
        if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatal().Err(err).Msg("http server error")
        }
    }()

    <-ctx.Done()

    shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
    defer cancel()
    _ = httpSrv.Shutdown(shutdownCtx)
    log.Info().Msg("shutdown complete")
}

// sweepLoop periodically clears uploads left behind by crashed handlers.
func sweepLoop(ctx context.Context, dir string, maxAge time.Duration) {
    ticker := time.NewTicker(maxAge)
    defer ticker.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            upload.Sweep(dir, maxAge)
        }
    }
}
