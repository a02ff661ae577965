package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/config"
	dbpkg "github.com/BruksfildServices01/shelter-adoption/internal/db"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/cache"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/payments"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/repository"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
	"github.com/BruksfildServices01/shelter-adoption/internal/routes"
	"github.com/BruksfildServices01/shelter-adoption/internal/telemetry"
	"github.com/BruksfildServices01/shelter-adoption/internal/timezone"
)

const serviceName = "shelter-api"

func main() {
	cfg := config.Load()

	shutdownTelemetry := telemetry.Setup(serviceName, cfg.OTLPEndpoint, cfg.OTLPInsecure)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	db := dbpkg.NewDB(cfg)

	// ======================================================
	// INFRA
	// ======================================================
	var (
		listing cache.Listing
		limiter middleware.Limiter
	)
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		listing = cache.NewRedisListing(rdb, "pets:public", 5*time.Minute)
		limiter = cache.NewRedisLimiter(rdb, cfg.LoginRatePerMinute, time.Minute)
	} else {
		log.Printf("REDIS_URL not set, using in-process cache and rate limiter")
		listing = cache.NewMemoryListing(5 * time.Minute)
		limiter = cache.NewMemoryLimiter(cfg.LoginRatePerMinute, cfg.LoginRatePerMinute)
	}

	store := repository.NewGormStore(db, repository.WithPetCache(listing))

	var bucket storage.Bucket
	if cfg.S3AccessKey != "" {
		bucket = storage.NewS3(storage.S3Config{
			Endpoint:      cfg.S3Endpoint,
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	} else {
		log.Printf("S3 not configured, storing uploads in %s", cfg.UploadDir)
		bucket = storage.NewLocal(cfg.UploadDir, cfg.PublicBaseURL()+"/uploads")
	}

	var sender notify.Sender = notify.LogSender{}
	if cfg.SMTPHost != "" {
		sender = notify.NewSMTPSender(notify.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.MailFrom,
		})
	}
	notifier := notify.NewDispatcher(sender)
	defer notifier.Close()

	checkout, err := payments.NewMercadoPago(payments.Options{
		AccessToken:     cfg.MercadoPagoAccessToken,
		NotificationURL: cfg.MercadoPagoNotificationURL,
		BackURL:         cfg.DonationsBackURL,
	})
	if err != nil {
		log.Fatalf("mercadopago: %v", err)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)
	defer auditDispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins...))

	if cfg.S3AccessKey == "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	routes.RegisterRoutes(r, routes.Deps{
		Config:    cfg,
		Store:     store,
		Bucket:    bucket,
		Listing:   listing,
		Limiter:   limiter,
		Checkout:  checkout,
		Notifier:  notifier,
		Audit:     auditDispatcher,
		Location:  timezone.Location(cfg.Timezone),
		AuditLogs: auditLogger,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      otelhttp.NewHandler(r, serviceName),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
