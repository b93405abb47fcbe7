package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayhub-notifications/internal/accommodation"
	notificationHTTP "stayhub-notifications/internal/controller/http"
	"stayhub-notifications/internal/events"
	"stayhub-notifications/internal/repo/persistent"
	"stayhub-notifications/internal/usecase"
	"stayhub-notifications/internal/ws"
	"stayhub-notifications/pkg/config"
	"stayhub-notifications/pkg/jwt"
	"stayhub-notifications/pkg/logger"
	"stayhub-notifications/pkg/middleware"
	"stayhub-notifications/pkg/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Repositories
	notificationRepo := persistent.NewNotificationRepository(db)
	settingsRepo := persistent.NewSettingsRepository(db)

	// Use cases
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, log)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, log)

	// Push hub and event pipeline
	hub := ws.NewHub(log)
	accommodationClient := accommodation.NewClient(
		cfg.AccommodationServiceURL,
		time.Duration(cfg.EnrichmentTimeoutSec)*time.Second,
	)
	processor := events.NewProcessor(
		notificationRepo,
		settingsRepo,
		accommodationClient,
		hub,
		events.NewRedisDeduper(redisClient, log),
		log,
	)
	if err := processor.Register(queueClient); err != nil {
		log.Error("Failed to register event consumers: %v", err)
		panic(err)
	}

	// HTTP handlers
	notificationHandler := notificationHTTP.NewNotificationHandler(notificationUseCase, log)
	settingsHandler := notificationHTTP.NewSettingsHandler(settingsUseCase, log)
	wsHandler := notificationHTTP.NewWSHandler(hub, jwtService, log)

	// Setup router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Protected routes - require authentication
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService))
	protected.Use(middleware.RateLimitMiddleware(redisClient, 120, time.Minute))
	{
		protected.GET("/notifications", notificationHandler.GetNotifications)
		protected.GET("/notifications/unread", notificationHandler.GetUnreadNotifications)
		protected.GET("/notifications/:id", notificationHandler.GetNotificationByID)
		protected.PATCH("/notifications/read-all", notificationHandler.MarkAllAsRead)
		protected.PATCH("/notifications/read", notificationHandler.MarkAsReadBulk)
		protected.PATCH("/notifications/:id/read", notificationHandler.MarkAsRead)
		protected.DELETE("/notifications/:id", notificationHandler.DeleteNotification)
		protected.DELETE("/notifications", notificationHandler.DeleteNotifications)

		protected.GET("/notification-settings", settingsHandler.GetSettings)
		protected.PATCH("/notification-settings/:notifType", settingsHandler.UpdateSetting)
	}

	// WebSocket endpoint - performs its own two-gate authentication
	api.GET("/notifications/ws", wsHandler.HandleWebSocket)

	// Internal routes - called by sibling services, not end clients
	api.POST("/notification-settings/init", settingsHandler.InitSettings)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Notification service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down notification service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub.Shutdown()

	if queueClient != nil {
		queueClient.Close()
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Error closing Redis: %v", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Notification service exited")
}
