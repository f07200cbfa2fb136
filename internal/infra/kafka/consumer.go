package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"starwars-api/internal/model"
	"starwars-api/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventHandler 处理目录变更事件的回调函数
type EventHandler func(ctx context.Context, event *model.CatalogEvent) error

func decodeEvent(value []byte) (*model.CatalogEvent, error) {
	var event model.CatalogEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, err
	}
	if event.Kind == "" || event.Type == "" {
		return nil, fmt.Errorf("incomplete catalog event")
	}
	return &event, nil
}

// StartCatalogEventConsumer 启动目录事件消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartCatalogEventConsumer(ctx context.Context, brokers []string, topic, groupID string, handler EventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka catalog event consumer stopped")
	}()

	logger.Info("Kafka catalog event consumer started",
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

		event, err := decodeEvent(msg.Value)
		if err != nil {
			logger.Error("Failed to unmarshal catalog event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		logger.Info("Received catalog event",
			zap.String("type", event.Type),
			zap.String("key", event.Key()),
		)

		if err := handler(ctx, event); err != nil {
			logger.Error("Failed to handle catalog event",
				zap.String("key", event.Key()),
				zap.Error(err),
			)
		}
	}
}
