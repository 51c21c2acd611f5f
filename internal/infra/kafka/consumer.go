package kafka

import (
	"context"
	"encoding/json"
	"time"

	"socialvid-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ContentEventHandler 处理内容发布事件的回调函数
type ContentEventHandler func(event *ContentEvent) error

// StartContentEventConsumer 启动内容事件消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartContentEventConsumer(ctx context.Context, brokers []string, topic, groupID string, handler ContentEventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka content event consumer stopped")
	}()

	logger.Info("Kafka content event consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var event ContentEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("Failed to unmarshal content event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(&event); err != nil {
			logger.Error("Failed to handle content event",
				zap.String("kind", event.Kind),
				zap.Int64("id", event.ID),
				zap.Error(err),
			)
		}
	}
}
