package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airportbooking/config"
	"github.com/Domenick1991/airportbooking/internal/kafka"
	"github.com/Domenick1991/airportbooking/internal/logger"
	"github.com/Domenick1991/airportbooking/internal/notify"
	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Sync()

	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.NotificationsTopic == "" {
		lg.Fatal("worker needs kafka brokers and a notifications topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := notify.NewSender(lg)

	lg.Info("worker consuming", zap.String("topic", cfg.Kafka.NotificationsTopic))
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		return handleMessage(ctx, lg, sender, msg)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("consumer stopped", zap.Error(err))
		return
	}
	lg.Info("worker stopped")
}

type eventSender interface {
	Send(ctx context.Context, event kafka.BookingEvent) error
}

// handleMessage skips payloads that do not decode as booking events.
func handleMessage(ctx context.Context, lg *zap.Logger, sender eventSender, msg kafkaGo.Message) error {
	var event kafka.BookingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		lg.Warn("decode event", zap.Int64("offset", msg.Offset), zap.Error(err))
		return nil
	}
	return sender.Send(ctx, event)
}
