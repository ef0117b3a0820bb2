package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"astrokalki/catalog"
	"astrokalki/config"
	"astrokalki/db"
	"astrokalki/handlers"
	"astrokalki/services"
	"astrokalki/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, config.Load())
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger, err := config.NewLogger(cfg.Logs)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Logs.Style == "json" {
		gin.SetMode(gin.ReleaseMode)
	}

	features := config.LoadFeatures()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	store, closeStore, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var analyzer services.Analyzer
	gemini, err := services.NewGeminiAnalyzer(ctx, cfg.AI, logger.Named("gemini"))
	switch {
	case errors.Is(err, services.ErrNotConfigured):
		logger.Warn("GEMINI_API_KEY not set, AI analysis endpoints will answer 503")
	case err != nil:
		return err
	default:
		analyzer = gemini
	}

	notifications := services.NewNotifications(
		services.NewMailer(cfg.Mail),
		services.NewSlackNotifier(cfg.SlackWebhookURL),
		logger.Named("notify"),
	)
	features.AIAnalysis = analyzer != nil
	features.Notifications = notifications.Enabled()
	logger.Info("features",
		zap.Bool("ai_analysis", features.AIAnalysis),
		zap.Bool("notifications", features.Notifications),
		zap.Bool("database", features.Database),
		zap.Bool("admin", features.Admin),
	)

	h := handlers.New(handlers.Deps{
		Store:          store,
		Analyzer:       analyzer,
		Notifier:       notifications,
		Catalog:        cat,
		Features:       features,
		Admin:          cfg.Admin,
		MeetingBaseURL: cfg.MeetingBaseURL,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(h, cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		notifications.Wait()
		return err
	})
	return g.Wait()
}

// openStorage picks Postgres when DATABASE_URL is set and the in-memory
// store otherwise.
func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Storage, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Info("using in-memory storage")
		return storage.NewMemStorage(), func() {}, nil
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	logger.Info("database schema verified")
	return storage.NewPostgresStorage(conn), func() { conn.Close() }, nil
}
