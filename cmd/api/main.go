package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/api"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/auth"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/config"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/infrastructure/kafka"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/infrastructure/store"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/menu"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/order"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[API] Failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("[API] JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[API] JWT_SECRET must be at least 32 characters long")
	}
	if cfg.AdminPassword == "" {
		log.Fatal("[API] ADMIN_PASSWORD environment variable is required")
	}
	adminHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("[API] Invalid admin password: %v", err)
	}

	log.Println("[API] ========================================")
	log.Println("[API] Food Nest - Order API")
	log.Println("[API] ========================================")
	log.Printf("[API] Kafka: %v", cfg.Brokers())
	log.Printf("[API] Order topic: %s", cfg.OrderTopic)
	log.Printf("[API] Notification topic: %s", cfg.NotificationTopic)

	db, err := store.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()
	if err := store.InitSchema(ctx, db); err != nil {
		log.Fatalf("[API] Failed to initialize schema: %v", err)
	}
	log.Println("[API] Connected to PostgreSQL")

	intakeProducer := kafka.NewProducer(cfg.Brokers(), cfg.OrderTopic)
	defer intakeProducer.Close()
	relayProducer := kafka.NewProducer(cfg.Brokers(), cfg.NotificationTopic)
	defer relayProducer.Close()

	menuSvc := menu.NewService(store.NewMenuStore(db))
	orderSvc := order.NewService(store.NewOrderStore(db), menuSvc, relayProducer)

	jwtService := auth.NewJWTService(cfg.JWTSecret, 15*time.Minute)

	handlers := api.NewHandlers(menuSvc, orderSvc, intakeProducer)
	adminHandlers := api.NewAdminHandlers(api.AdminConfig{
		JWTService:        jwtService,
		AdminUser:         cfg.AdminUser,
		AdminPasswordHash: adminHash,
		Broker:            cfg.Brokers()[0],
		OrderTopic:        cfg.OrderTopic,
		NotificationTopic: cfg.NotificationTopic,
	})
	router := api.NewRouter(api.RouterConfig{
		Handlers:      handlers,
		AdminHandlers: adminHandlers,
		JWTService:    jwtService,
	})

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("[API] Server started on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("[API] Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("[API] Server error: %v", err)
	}
}
