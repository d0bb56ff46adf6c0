package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/config"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/infrastructure/kafka"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/infrastructure/store"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/intake"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/menu"
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/order"
	"golang.org/x/sync/errgroup"
)

const consumerRestartDelay = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[OrderWorker] Failed to load configuration: %v", err)
	}

	log.Println("[OrderWorker] ========================================")
	log.Println("[OrderWorker] Food Nest - Order Worker")
	log.Println("[OrderWorker] ========================================")
	log.Printf("[OrderWorker] Kafka: %v", cfg.Brokers())
	log.Printf("[OrderWorker] Consuming topic: %s", cfg.OrderTopic)

	db, err := store.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[OrderWorker] Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()
	if err := store.InitSchema(ctx, db); err != nil {
		log.Fatalf("[OrderWorker] Failed to initialize schema: %v", err)
	}
	log.Println("[OrderWorker] Connected to PostgreSQL")

	relayProducer := kafka.NewProducer(cfg.Brokers(), cfg.NotificationTopic)
	defer relayProducer.Close()

	menuSvc := menu.NewService(store.NewMenuStore(db))
	orderSvc := order.NewService(store.NewOrderStore(db), menuSvc, relayProducer)
	worker := intake.NewWorker(orderSvc)

	consumer := kafka.NewConsumer(cfg.Brokers(), cfg.OrderTopic, "order-worker")
	defer consumer.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Println("[OrderWorker] Starting order request consumer...")
		for {
			err := consumer.Consume(ctx, worker.HandleMessage)
			if ctx.Err() != nil {
				return err
			}
			// The failed offset is uncommitted; resuming refetches it.
			log.Printf("[OrderWorker] Consumer stopped: %v; resuming in %s", err, consumerRestartDelay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(consumerRestartDelay):
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("[OrderWorker] Consumer error: %v", err)
	}
	log.Println("[OrderWorker] Shut down")
}
