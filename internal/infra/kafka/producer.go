package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"socialvid-go/internal/config"
	"socialvid-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// ContentEvent 内容发布事件，worker 消费后写入搜索索引
type ContentEvent struct {
	Kind       string `json:"kind"` // post 或 video
	ID         int64  `json:"id"`
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
	Text       string `json:"text"`
	SoundName  string `json:"sound_name,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// Enabled 生产者是否可用
func Enabled() bool {
	return producer != nil
}

// SendContentEvent 发送内容发布事件到 Kafka
func SendContentEvent(ctx context.Context, topic string, event *ContentEvent) error {
	if producer == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal content event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(fmt.Sprintf("%s-%d", event.Kind, event.ID)),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send content event: %w", err)
	}

	logger.Info("Content event sent",
		zap.String("kind", event.Kind),
		zap.Int64("id", event.ID),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
