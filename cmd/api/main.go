package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"inkwash/internal/http/handlers"
	"inkwash/internal/http/httpapi"
	"inkwash/internal/infra"
	"inkwash/internal/infra/geoip"
	"inkwash/internal/middleware"
	"inkwash/internal/providers/genai"
	"inkwash/internal/providers/image"
	"inkwash/internal/providers/vision"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Country lookups are optional; without a database the locale falls back
	// to headers and the configured default.
	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip database unavailable")
	}
	if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	client, err := genai.NewClient(genai.Options{
		APIKey:      cfg.GeminiAPIKey,
		BaseURL:     cfg.GeminiBaseURL,
		ImageModel:  cfg.GeminiImageModel,
		VisionModel: cfg.GeminiVisionModel,
		HTTPClient:  &http.Client{Timeout: cfg.GeminiTimeout},
		Logger:      &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build gemini client")
	}

	app := handlers.NewApp(cfg, logger, image.NewGeminiGenerator(client), vision.NewGeminiDescriber(client))
	router := httpapi.NewRouter(app, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
