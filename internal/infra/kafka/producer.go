package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"starwars-api/internal/config"
	"starwars-api/internal/model"
	"starwars-api/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// publishTimeout 单次发布的上限，Kafka 不可达时请求不会被拖住
const publishTimeout = 2 * time.Second

// Publisher 把目录变更事件写入 Kafka
type Publisher struct {
	writer  *kafka.Writer
	topic   string
	timeout time.Duration
}

// NewPublisher 初始化 Kafka 生产者，连接在首次写入时建立
func NewPublisher(cfg *config.KafkaConfig) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.CatalogTopic(),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		MaxAttempts:            3,
		WriteTimeout:           publishTimeout,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.CatalogTopic()),
	)

	return &Publisher{writer: writer, topic: cfg.CatalogTopic(), timeout: publishTimeout}
}

// eventMessage 同一实体的事件使用相同的 key，保证分区内有序
func eventMessage(event *model.CatalogEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal catalog event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(event.Key()),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}

// Publish 发送目录变更事件，超过 timeout 直接返回错误
func (p *Publisher) Publish(ctx context.Context, event *model.CatalogEvent) error {
	msg, err := eventMessage(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send catalog event: %w", err)
	}

	logger.Debug("Catalog event sent",
		zap.String("type", event.Type),
		zap.String("key", event.Key()),
		zap.String("topic", p.topic),
	)
	return nil
}

// Close 关闭生产者
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return p.writer.Close()
}
