package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialvid-go/internal/config"
	infraES "socialvid-go/internal/infra/elasticsearch"
	infraKafka "socialvid-go/internal/infra/kafka"
	"socialvid-go/pkg/logger"

	"go.uber.org/zap"
)

// 内容索引 worker：消费内容发布事件并写入 Elasticsearch
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if !cfg.Kafka.Enabled {
		logger.Fatal("Kafka is disabled, indexing worker has nothing to consume")
	}

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["content_events"]
	if topic == "" {
		topic = "content-events"
	}
	groupID := cfg.Kafka.GroupID
	if groupID == "" {
		groupID = "socialvid-indexer"
	}

	logger.Info("Content indexing worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	infraKafka.StartContentEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, indexContentEvent)
	logger.Info("Content indexing worker stopped")
}

// indexContentEvent 把一条内容发布事件写进对应的 ES 索引
func indexContentEvent(event *infraKafka.ContentEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch event.Kind {
	case "post":
		return infraES.SyncPost(ctx, &infraES.ESPostDoc{
			ID:         event.ID,
			AuthorID:   event.AuthorID,
			AuthorName: event.AuthorName,
			Content:    event.Text,
			CreatedAt:  event.CreatedAt,
		})
	case "video":
		return infraES.SyncVideo(ctx, &infraES.ESVideoDoc{
			ID:          event.ID,
			AuthorID:    event.AuthorID,
			AuthorName:  event.AuthorName,
			Description: event.Text,
			SoundName:   event.SoundName,
			CreatedAt:   event.CreatedAt,
		})
	default:
		logger.Warn("Unknown content event kind, skipped",
			zap.String("kind", event.Kind),
			zap.Int64("id", event.ID),
		)
		return nil
	}
}
