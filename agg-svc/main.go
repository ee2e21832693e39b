package main

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"tableside/agg-svc/internal/service"
	"tableside/agg-svc/internal/storage"
	"tableside/config"
)

func main() {
	config.Execute(config.NewCommand("agg-svc", "", "Folds order and feedback events into sales aggregates", run))
}

func run(ctx context.Context, cfg config.Settings, log *logrus.Entry) error {
	if cfg.KafkaBroker == "" || cfg.RedisAddr == "" {
		return errors.New("agg-svc needs KAFKA_BROKER and REDIS_ADDR")
	}

	rdb := config.MustInitRedis(cfg.RedisAddr, log)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.KafkaTopic, cfg.KafkaGroupID)
	defer reader.Close()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), log.WithField("topic", cfg.KafkaTopic))
	return consumer.Start(ctx)
}
