// reconcile находит заказы без продавца или курьера и отправляет по ним запросы
// на повторный подбор в топик, который читает движок.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/green-basket/internal/config"
	"github.com/SergeyBogomolovv/green-basket/internal/handler"
	"github.com/SergeyBogomolovv/green-basket/internal/postgres"
	"github.com/SergeyBogomolovv/green-basket/internal/repo"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

func main() {
	interval := flag.Duration("interval", 0, "повторять проход с этим интервалом; 0 - один проход")
	limit := flag.Int("limit", 500, "максимум заказов за проход")
	flag.Parse()

	godotenv.Load()
	conf := config.New()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil)).With(slog.String("job", "reconcile"))
	if err := conf.Validate(); err != nil {
		logger.Error("invalid config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	if err != nil {
		logger.Error("failed to connect to db", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	orders := repo.NewPostgresRepo(db)
	writer := &kafka.Writer{
		Addr:         kafka.TCP(conf.Kafka.Brokers...),
		Topic:        conf.Kafka.ReconcileTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: conf.Kafka.BatchTimeout,
	}
	defer writer.Close()

	pass := func() {
		degraded, err := orders.ListDegraded(ctx, *limit)
		if err != nil {
			logger.Error("failed to list degraded orders", slog.Any("error", err))
			return
		}

		msgs := make([]kafka.Message, 0, len(degraded))
		for _, o := range degraded {
			req, ok := handler.ReconcileRequestFor(o)
			if !ok {
				continue
			}
			data, _ := json.Marshal(req)
			msgs = append(msgs, kafka.Message{Key: []byte(req.OrderID), Value: data})
		}
		if len(msgs) == 0 {
			logger.Info("no degraded orders")
			return
		}

		if err := writer.WriteMessages(ctx, msgs...); err != nil {
			logger.Error("failed to publish reconcile requests", slog.Any("error", err))
			return
		}
		logger.Info("reconcile requests published", slog.Int("count", len(msgs)))
	}

	pass()
	if *interval <= 0 {
		return
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			pass()
		case <-ctx.Done():
			return
		}
	}
}
