package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raushankrgupta/nutritrack/api"
	"github.com/raushankrgupta/nutritrack/config"
	"github.com/raushankrgupta/nutritrack/credentials"
	"github.com/raushankrgupta/nutritrack/notify"
	"github.com/raushankrgupta/nutritrack/planning"
	"github.com/raushankrgupta/nutritrack/profiles"
	"github.com/raushankrgupta/nutritrack/providers"
	"github.com/raushankrgupta/nutritrack/storage"
	"github.com/raushankrgupta/nutritrack/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := utils.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, logger, storage.Options{
		Driver:     cfg.StoreDriver,
		MongoURI:   cfg.MongoURI,
		DBName:     cfg.DBName,
		SQLitePath: cfg.SQLitePath,
		Timeout:    cfg.StoreTimeout,
	})
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()

	notifier, err := notify.New(ctx, logger, notify.Options{
		Provider:       cfg.MailProvider,
		SendGridAPIKey: cfg.SendGridAPIKey,
		FromEmail:      cfg.MailFrom,
		FromName:       cfg.MailFromName,
		AWSRegion:      cfg.AWSRegion,
	})
	if err != nil {
		logger.Error("failed to set up notifier", "provider", cfg.MailProvider, "error", err)
		os.Exit(1)
	}

	providerCfg := providers.Config{
		APINinjasKey: cfg.APINinjasKey,
		EdamamAppID:  cfg.EdamamAppID,
		EdamamAppKey: cfg.EdamamAppKey,
		Timeout:      cfg.HTTPTimeout,
	}
	foods, err := providers.GetNutritionProvider(cfg.NutritionProvider, providerCfg)
	if err != nil {
		logger.Error("failed to set up nutrition provider", "error", err)
		os.Exit(1)
	}

	// Export and AI titles are optional.
	var uploader planning.Uploader
	if cfg.AWSBucketName != "" {
		s3Uploader, err := utils.NewS3Uploader(ctx, cfg.AWSRegion, cfg.AWSBucketName)
		if err != nil {
			logger.Warn("plan export disabled", "error", err)
		} else {
			uploader = s3Uploader
		}
	}

	var titler planning.Titler
	if cfg.GeminiAPIKey != "" {
		gemini, err := planning.NewGeminiTitler(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("meal title suggestions disabled", "error", err)
		} else {
			defer gemini.Close()
			titler = gemini
		}
	}

	kv := credentials.NewKVStore(store)
	handler := api.NewHandler(api.Dependencies{
		Credentials: credentials.NewService(kv, kv, logger),
		Profiles:    profiles.NewService(store, logger),
		Plans:       planning.NewService(store, uploader, logger),
		Generator:   planning.NewGenerator(titler, logger),
		Foods:       foods,
		Recipes:     providers.GetRecipeSearcher(providerCfg),
		Notifier:    notifier,
		JWTSecret:   []byte(cfg.JWTSecret),
		TokenTTL:    cfg.TokenTTL,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(handler, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "store", cfg.StoreDriver, "nutrition_provider", foods.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
