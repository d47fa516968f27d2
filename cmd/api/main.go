package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/homevista/homevista-backend/internal/handlers"
	"github.com/homevista/homevista-backend/internal/repository"
	"github.com/homevista/homevista-backend/internal/service"
	"github.com/homevista/homevista-backend/pkg/config"
	"github.com/homevista/homevista-backend/pkg/events"
	"github.com/homevista/homevista-backend/pkg/logger"
	mw "github.com/homevista/homevista-backend/pkg/middleware"
	"github.com/homevista/homevista-backend/pkg/ratelimit"
)

func main() {
	cfg := config.Load()

	// Event bus is optional; without a broker events are discarded
	var bus events.Publisher = events.NewNopBus()
	if cfg.NATS.URL != "" {
		natsBus, err := events.NewNATSBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		bus = natsBus
	}
	defer bus.Close()

	// Rate limiting is optional as well; without Redis the limiter passes
	// requests through
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Error("Invalid Redis URL", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opt)
	}
	limiter := ratelimit.New(redisClient, ratelimit.Config{
		Requests: 20,
		Window:   time.Minute,
		KeyFunc:  ratelimit.IPKeyFunc,
	})

	// Initialize stores
	sellers := repository.NewSellerDirectory(repository.DefaultSellers())
	properties := repository.NewPropertyRepository(sellers)
	users := repository.NewUserRepository()
	bans := repository.NewBanRepository()
	chats := repository.NewChatRepository()

	// Startup bulk load; a missing seed file yields an empty store
	records, err := repository.LoadSeedFile(cfg.Seed.PropertiesPath)
	if err != nil {
		logger.Error("Failed to load property seed", "error", err, "path", cfg.Seed.PropertiesPath)
		os.Exit(1)
	}
	properties.ReplaceAll(records)
	logger.Info("Property store loaded", "count", properties.Len(), "path", cfg.Seed.PropertiesPath)

	// Initialize services
	authService := service.NewAuthService(users, bus, cfg)
	propertyService := service.NewPropertyService(properties, bus, cfg.Seed.PropertiesPath)
	chatService := service.NewChatService(properties, users, chats, bus)
	adminService := service.NewAdminService(properties, users, bans, bus)

	h := handlers.New(authService, propertyService, chatService, adminService, cfg)

	// Setup router
	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("api"))
	r.Use(mw.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Admin-Email", "X-Admin-Password"},
		MaxAge:         300,
	}))

	r.Mount("/api", h.Router(limiter.Middleware()))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down API server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("API server shutdown error", "error", err)
		}
	}()

	logger.Info("API server starting", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("API server error", "error", err)
		os.Exit(1)
	}
}
