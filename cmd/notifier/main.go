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
	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/notification"
	"golang.org/x/sync/errgroup"
)

const consumerRestartDelay = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Notifier] Failed to load configuration: %v", err)
	}

	log.Println("[Notifier] ========================================")
	log.Println("[Notifier] Food Nest - Notification Service")
	log.Println("[Notifier] ========================================")
	log.Printf("[Notifier] Kafka: %v", cfg.Brokers())
	log.Printf("[Notifier] Consuming topic: %s", cfg.NotificationTopic)

	dispatcher := notification.NewDispatcher(time.Duration(cfg.NotifySendDelayMS) * time.Millisecond)

	consumer := kafka.NewConsumer(cfg.Brokers(), cfg.NotificationTopic, "notification-service")
	defer consumer.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Println("[Notifier] Starting event consumer...")
		for {
			err := consumer.Consume(ctx, dispatcher.HandleEvent)
			if ctx.Err() != nil {
				return err
			}
			// The failed offset is uncommitted; resuming refetches it.
			log.Printf("[Notifier] Consumer stopped: %v; resuming in %s", err, consumerRestartDelay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(consumerRestartDelay):
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("[Notifier] Consumer error: %v", err)
	}
	log.Println("[Notifier] Shut down")
}
