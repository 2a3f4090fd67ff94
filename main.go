package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/achraf-fouad/aura-scents/controllers"
	"github.com/achraf-fouad/aura-scents/database"
	"github.com/achraf-fouad/aura-scents/logger"
	"github.com/achraf-fouad/aura-scents/middleware"
	"github.com/achraf-fouad/aura-scents/models"
	"github.com/achraf-fouad/aura-scents/notifier"
	"github.com/achraf-fouad/aura-scents/repository"
	"github.com/achraf-fouad/aura-scents/routes"
	"github.com/achraf-fouad/aura-scents/services"
	"github.com/achraf-fouad/aura-scents/storage"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	log := logger.Log
	defer log.Sync() //nolint:errcheck

	// --- 1. Infrastructure ---

	db, err := database.ConnectPostgres(log,
		&models.Product{}, &models.Order{}, &models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	if cfg.SeedCatalog {
		if err := database.SeedProducts(db, log); err != nil {
			log.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close() //nolint:errcheck

	// Image storage is optional: without a bucket the admin panel can
	// still reference externally hosted images.
	var uploader storage.Uploader
	if cfg.S3Bucket != "" {
		s3Client, s3Err := storage.NewS3ClientFromEnv(context.Background())
		if s3Err != nil {
			log.Warn("S3 unavailable, image upload disabled", zap.Error(s3Err))
		} else {
			uploader = storage.NewS3Uploader(s3Client, cfg.S3Bucket, cfg.S3Prefix, cfg.S3Endpoint, cfg.CloudfrontDomain)
		}
	} else {
		log.Warn("AWS_S3_BUCKET not set, image upload disabled")
	}

	var emailSender notifier.Sender
	if cfg.SMTPHost != "" {
		smtpSender, smtpErr := notifier.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom)
		if smtpErr != nil {
			log.Warn("SMTP misconfigured, confirmation emails disabled", zap.Error(smtpErr))
		} else {
			emailSender = smtpSender
		}
	} else {
		log.Warn("SMTP_HOST not set, confirmation emails disabled")
	}

	// --- 2. Dependency injection ---

	productRepo := repository.NewGormProductRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	cartStore := repository.NewRedisCartStore(redisClient, cfg.CartTTL)

	dispatcher := notifier.NewDispatcher(orderRepo, emailSender, cfg.QueueSize, log)
	defer dispatcher.Close()

	productService := services.NewProductService(productRepo, uploader, log)
	cartService := services.NewCartService(cartStore, productRepo, log)
	orderService := services.NewOrderService(orderRepo, productRepo, cartStore, dispatcher, log)

	productController := controllers.NewProductController(productService)
	cartController := controllers.NewCartController(cartService)
	orderController := controllers.NewOrderController(orderService)

	// --- 3. HTTP server & middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())

	// Per-request timeout; persistence calls inherit it.
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "aura-scents-backend"})
	})

	routes.RegisterRoutes(r, productController, cartController, orderController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// --- 4. Graceful shutdown ---

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	log.Info("Aura Scents backend started", zap.String("port", cfg.Port))
	<-quit
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited cleanly")
}
