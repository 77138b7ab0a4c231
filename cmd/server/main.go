package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/weather-fetcher/config"
	"ulascansenturk/weather-fetcher/internal/api/v1/handlers"
	"ulascansenturk/weather-fetcher/internal/providers"
	"ulascansenturk/weather-fetcher/internal/scheduler"
	"ulascansenturk/weather-fetcher/internal/service"
	"ulascansenturk/weather-fetcher/internal/sessions"
	"ulascansenturk/weather-fetcher/internal/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Str("env", conf.Env).
		Timestamp().
		Logger()

	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	weatherAPIService := providers.NewWeatherAPIService(
		conf.GeocodingBaseURL,
		conf.ForecastBaseURL,
		conf.UpstreamTimeout,
	)
	weatherService := service.NewWeatherService(weatherAPIService)

	sessionStore := sessions.NewInMemoryStore(conf.SessionTTL, func() *ui.Controller {
		return ui.NewController(weatherService)
	})

	sweeper := scheduler.New(conf.SessionSweepInterval, sessionStore)
	if err := sweeper.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start session sweeper")
	}

	router := handlers.NewRouter(
		logger,
		handlers.NewWeatherHandler(weatherService, conf.HTTPTimeoutDuration()),
		handlers.NewPageHandler(sessionStore, conf.Env == "production"),
	)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		sweeper.Stop()

		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Fatal().Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
