// @title         Podium API
// @version       0.1.0
// @description   Talk submissions, scheduling calendar, and cover generation

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"podium/internal/platform/config"
	"podium/internal/platform/logger"
	phttp "podium/internal/platform/net/http"

	"podium/internal/adapters/render"
	"podium/internal/services/api"
	coversdom "podium/internal/services/api/covers/domain"
	"podium/internal/services/sweeper"

	"github.com/joho/godotenv"
)

func main() {
	// local dev convenience; the file is optional
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (PODIUM_API_*)
	root := config.New()
	apiCfg := root.Prefix("PODIUM_API_")
	coversCfg := root.Prefix("COVERS_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// headless Chromium capture is opt-out so tests and slim deploys run without it
	var renderer coversdom.Renderer
	if coversCfg.MayBool("RENDER_ENABLED", true) {
		renderer = render.New()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// http server (reads PODIUM_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	ports := api.Mount(
		srv.Router(),
		api.Options{
			Config:           apiCfg,
			Renderer:         renderer,
			CoverPresetsPath: coversCfg.MayString("PRESETS_PATH", ""),
			EnableSwagger:    apiCfg.MayBool("SWAGGER", true),
			EnableProfiler:   apiCfg.MayBool("PROFILER", true),
		},
	)

	// background status sweep over approved talks
	sw := sweeper.New(ports.Sweep, sweeper.Config{
		Schedule: apiCfg.MayString("SWEEP_SCHEDULE", "@hourly"),
	})
	if err := sw.Start(ctx); err != nil {
		l.Panic().Err(err).Msg("sweeper failed to start")
	}
	defer sw.Stop()

	// run until signalled
	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		l.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error().Err(err).Msg("shutdown incomplete")
		}
	}
}
