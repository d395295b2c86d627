package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/config"
	"github.com/openpoen/backend/internal/consent"
	v1 "github.com/openpoen/backend/internal/controllers/v1"
	"github.com/openpoen/backend/internal/ingest"
	"github.com/openpoen/backend/internal/jobs"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/internal/psd2"
	"github.com/openpoen/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	c, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Open(c)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	bank, err := psd2.NewClient(c.Bank)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	runner := jobs.NewRunner(ingest.New(models.DB, bank, c)).WithLease(models.DB)
	orchestrator := consent.New(models.DB, bank, runner, c)

	scheduler, err := jobs.NewScheduler(c, runner, orchestrator)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	apiURL, err := url.Parse(c.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(apiURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(v1.Controller{Consent: orchestrator, Runner: runner}, auth.NewTokens(c.SecretKey), r.Group("/"))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", c.Port),
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler.Start()
	log.Info().Time("next", scheduler.Next()).Msg("Scheduler started")

	go func() {
		log.Info().Int("port", c.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Wait for a running ingestion to finish
	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn().Msg("Ingestion still running at shutdown")
	}

	log.Info().Msg("Server exited")
}
