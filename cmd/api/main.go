package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/rental-marketplace/internal/audit"
	"github.com/BruksfildServices01/rental-marketplace/internal/checkout"
	"github.com/BruksfildServices01/rental-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/rental-marketplace/internal/db"
	"github.com/BruksfildServices01/rental-marketplace/internal/events"
	"github.com/BruksfildServices01/rental-marketplace/internal/identity"
	"github.com/BruksfildServices01/rental-marketplace/internal/imaging"
	"github.com/BruksfildServices01/rental-marketplace/internal/metrics"
	"github.com/BruksfildServices01/rental-marketplace/internal/revalidate"
	"github.com/BruksfildServices01/rental-marketplace/internal/routes"
	"github.com/BruksfildServices01/rental-marketplace/internal/storage"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// --------------------------------------------------
	// Redis (optional): identity metadata + shared view cache
	// --------------------------------------------------
	var rdb *redis.Client
	var metadata identity.MetadataStore = identity.NewMemoryMetadataStore()

	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Error("redis unreachable", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		metadata = identity.NewRedisMetadataStore(rdb)
	}

	views := revalidate.New(rdb, 10_000, 10*time.Minute)
	go views.Listen(ctx)

	// --------------------------------------------------
	// Object storage
	// --------------------------------------------------
	backend, err := newBackend(ctx, cfg.Storage)
	if err != nil {
		slog.Error("storage init failed", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	imgOpts := imaging.Options{Quality: cfg.Storage.WebPQuality, MaxWidth: cfg.Storage.MaxWidth}

	// --------------------------------------------------
	// Listing events
	// --------------------------------------------------
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.Rabbit.Enabled() {
		amqpPub, err := events.NewAMQPPublisher(cfg.Rabbit.URL, cfg.Rabbit.Queue)
		if err != nil {
			slog.Error("rabbitmq init failed", "error", err)
			os.Exit(1)
		}
		defer amqpPub.Close()
		publisher = amqpPub
	}

	// --------------------------------------------------
	// Checkout
	// --------------------------------------------------
	var provider checkout.Provider = checkout.Disabled{}
	if cfg.Checkout.Enabled() {
		mp, err := checkout.NewMercadoPago(cfg.Checkout)
		if err != nil {
			slog.Error("checkout init failed", "error", err)
			os.Exit(1)
		}
		provider = mp
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	defer auditDispatcher.Close()

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	r := gin.Default()

	routes.RegisterRoutes(r, routes.Deps{
		DB:             db,
		Config:         cfg,
		Verifier:       identity.NewVerifier(cfg.JWTSecret),
		Metadata:       metadata,
		ProfileImages:  storage.NewImageStore(backend, cfg.Storage.PublicURL, "profiles", imgOpts),
		PropertyImages: storage.NewImageStore(backend, cfg.Storage.PublicURL, "properties", imgOpts),
		Views:          views,
		Events:         publisher,
		Checkout:       provider,
		Metrics:        metrics.New(),
		Audit:          auditDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

func newBackend(ctx context.Context, cfg config.StorageConfig) (storage.Backend, error) {
	switch cfg.Driver {
	case "s3":
		return storage.NewS3Backend(cfg), nil
	case "memory":
		slog.Warn("using in-memory image storage, uploads are lost on restart")
		return storage.NewMemoryBackend(), nil
	default:
		return storage.NewMinIOBackend(ctx, cfg)
	}
}
